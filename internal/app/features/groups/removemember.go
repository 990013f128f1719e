package groups

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/policy/grouppolicy"
	"github.com/dalemusser/taskhub/internal/app/system/auth"
	"github.com/dalemusser/taskhub/internal/app/system/httpjson"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	groupstore "github.com/dalemusser/taskhub/internal/app/store/groups"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleRemoveMember handles DELETE /groups/{id}/members/{memberID}.
// The owner can never be removed. Anyone may remove themself; removing
// another member takes the owner or admin role. The checks run in a fixed
// order (caller membership, target existence, owner protection, then
// authority) so each failure mode keeps a stable status code.
func (h *Handler) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
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
	memberID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "memberID"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "Member not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	g, err := h.Groups.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, groupstore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Group not found")
			return
		}
		h.Log.Error("groups: remove-member load failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to remove member")
		return
	}

	caller, callerIsMember := grouppolicy.MemberOf(g, user.ID)
	target, targetIsMember := grouppolicy.MemberOf(g, memberID)

	if !callerIsMember {
		httpjson.Error(w, http.StatusForbidden, "You are not a member of this group")
		return
	}
	if !targetIsMember {
		httpjson.Error(w, http.StatusNotFound, "Member not found")
		return
	}
	if target.Role == grouppolicy.RoleOwner {
		httpjson.Error(w, http.StatusBadRequest, "Cannot remove the group owner")
		return
	}
	if memberID != user.ID && !grouppolicy.CanManage(caller.Role) {
		httpjson.Error(w, http.StatusForbidden, "Not authorized to remove members")
		return
	}

	if err := h.Groups.RemoveMember(ctx, id, memberID); err != nil {
		h.Log.Error("groups: remove member failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to remove member")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]string{"message": "Member removed"})
}
