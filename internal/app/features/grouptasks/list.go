package grouptasks

import (
	"context"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/auth"
	"github.com/dalemusser/taskhub/internal/app/system/httpjson"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeList handles GET /groups/{id}/tasks. Any role, including viewer,
// can read.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	g, ok := h.loadGroupForCaller(ctx, w, r, user.ID)
	if !ok {
		return
	}

	list, err := h.GroupTasks.ListByGroup(ctx, g.ID)
	if err != nil {
		h.Log.Error("group tasks: list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to load tasks")
		return
	}
	httpjson.Respond(w, http.StatusOK, list)
}
