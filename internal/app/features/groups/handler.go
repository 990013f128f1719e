// internal/app/features/groups/handler.go
package groups

import (
	groupstore "github.com/dalemusser/taskhub/internal/app/store/groups"
	grouptaskstore "github.com/dalemusser/taskhub/internal/app/store/grouptasks"
	userstore "github.com/dalemusser/taskhub/internal/app/store/users"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the groups feature. It
// also carries the user and group-task stores: invites resolve invitees by
// email, and deleting a group cascades to its tasks.
type Handler struct {
	Groups     *groupstore.Store
	GroupTasks *grouptaskstore.Store
	Users      *userstore.Store
	Log        *zap.Logger
}

// NewHandler constructs a groups Handler. It is typically called from the
// bootstrap BuildHandler function.
func NewHandler(groups *groupstore.Store, groupTasks *grouptaskstore.Store, users *userstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Groups:     groups,
		GroupTasks: groupTasks,
		Users:      users,
		Log:        logger,
	}
}
