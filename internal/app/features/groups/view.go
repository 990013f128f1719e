package groups

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/auth"
	"github.com/dalemusser/taskhub/internal/app/system/httpjson"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	groupstore "github.com/dalemusser/taskhub/internal/app/store/groups"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeView handles GET /groups/{id}. Non-members get the same 404 as a
// nonexistent group, so group IDs cannot be probed.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "Group not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	g, err := h.Groups.GetByIDForMember(ctx, id, user.ID)
	if err != nil {
		if errors.Is(err, groupstore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Group not found")
			return
		}
		h.Log.Error("groups: view failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to load group")
		return
	}
	httpjson.Respond(w, http.StatusOK, g)
}
