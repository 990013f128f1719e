package groups

import (
	"context"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/auth"
	"github.com/dalemusser/taskhub/internal/app/system/httpjson"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeList handles GET /groups. Returns every group the caller belongs
// to, newest first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Groups.ListByMember(ctx, user.ID)
	if err != nil {
		h.Log.Error("groups: list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to load groups")
		return
	}
	httpjson.Respond(w, http.StatusOK, list)
}
