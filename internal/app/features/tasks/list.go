package tasks

import (
	"context"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/auth"
	"github.com/dalemusser/taskhub/internal/app/system/httpjson"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeList handles GET /tasks. Returns the caller's tasks, newest first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Tasks.ListByUser(ctx, user.ID)
	if err != nil {
		h.Log.Error("tasks: list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to load tasks")
		return
	}
	httpjson.Respond(w, http.StatusOK, list)
}
