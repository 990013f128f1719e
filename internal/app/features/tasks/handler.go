// internal/app/features/tasks/handler.go
package tasks

import (
	taskstore "github.com/dalemusser/taskhub/internal/app/store/tasks"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the personal-tasks
// feature.
type Handler struct {
	Tasks *taskstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a tasks Handler. It is typically called from the
// bootstrap BuildHandler function.
func NewHandler(tasks *taskstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Tasks: tasks, Log: logger}
}
