package groups

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dalemusser/taskhub/internal/app/policy/grouppolicy"
	"github.com/dalemusser/taskhub/internal/app/system/auth"
	"github.com/dalemusser/taskhub/internal/app/system/httpjson"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	groupstore "github.com/dalemusser/taskhub/internal/app/store/groups"
	userstore "github.com/dalemusser/taskhub/internal/app/store/users"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type inviteRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=admin member viewer"`
}

// HandleInvite handles POST /groups/{id}/invite. The invitee must already
// have an account. Their name and email are snapshotted into the
// membership at invite time and not kept in sync with later profile edits.
// The owner role can never be granted here.
func (h *Handler) HandleInvite(w http.ResponseWriter, r *http.Request) {
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

	var req inviteRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Role == "" {
		req.Role = grouppolicy.RoleMember
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	g, err := h.Groups.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, groupstore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Group not found")
			return
		}
		h.Log.Error("groups: invite load failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to invite member")
		return
	}

	member, isMember := grouppolicy.MemberOf(g, user.ID)
	if !isMember || !grouppolicy.CanManage(member.Role) {
		httpjson.Error(w, http.StatusForbidden, "Not authorized to invite members")
		return
	}

	invitee, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "User not found. They need to register first.")
			return
		}
		h.Log.Error("groups: invitee lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to invite member")
		return
	}

	if grouppolicy.IsMember(g, invitee.ID) {
		httpjson.Error(w, http.StatusBadRequest, "User is already a member of this group")
		return
	}

	err = h.Groups.AddMember(ctx, id, models.Member{
		UserID:    invitee.ID,
		UserName:  invitee.Name,
		UserEmail: invitee.Email,
		Role:      req.Role,
		JoinedAt:  time.Now().UTC(),
	})
	if err != nil {
		h.Log.Error("groups: add member failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to invite member")
		return
	}

	updated, err := h.Groups.GetByID(ctx, id)
	if err != nil {
		h.Log.Error("groups: reload after invite failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to invite member")
		return
	}
	httpjson.Respond(w, http.StatusOK, updated)
}
