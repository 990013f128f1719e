package groups

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/policy/grouppolicy"
	"github.com/dalemusser/taskhub/internal/app/system/auth"
	"github.com/dalemusser/taskhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/taskhub/internal/app/system/httpjson"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	groupstore "github.com/dalemusser/taskhub/internal/app/store/groups"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type updateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// HandleUpdate handles PATCH /groups/{id}. Only name and description can
// change; owner and member list have their own endpoints. Requires the
// owner or admin role.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
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

	var req updateRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name != nil {
		clean := htmlsanitize.Strip(*req.Name)
		req.Name = &clean
	}
	if req.Description != nil {
		clean := htmlsanitize.Strip(*req.Description)
		req.Description = &clean
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	g, err := h.Groups.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, groupstore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Group not found")
			return
		}
		h.Log.Error("groups: update load failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to update group")
		return
	}

	member, isMember := grouppolicy.MemberOf(g, user.ID)
	if !isMember || !grouppolicy.CanManage(member.Role) {
		httpjson.Error(w, http.StatusForbidden, "Not authorized to update group")
		return
	}

	if err := h.Groups.UpdateInfo(ctx, id, req.Name, req.Description); err != nil {
		h.Log.Error("groups: update failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to update group")
		return
	}

	updated, err := h.Groups.GetByID(ctx, id)
	if err != nil {
		h.Log.Error("groups: reload after update failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to update group")
		return
	}
	httpjson.Respond(w, http.StatusOK, updated)
}
