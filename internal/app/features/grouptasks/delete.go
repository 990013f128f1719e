package grouptasks

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/policy/grouppolicy"
	"github.com/dalemusser/taskhub/internal/app/system/auth"
	"github.com/dalemusser/taskhub/internal/app/system/httpjson"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	grouptaskstore "github.com/dalemusser/taskhub/internal/app/store/grouptasks"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleDelete handles DELETE /groups/{id}/tasks/{taskID}. Owner or admin
// only.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	taskID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "taskID"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "Task not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	g, ok := h.loadGroupForCaller(ctx, w, r, user.ID)
	if !ok {
		return
	}

	member, _ := grouppolicy.MemberOf(g, user.ID)
	if !grouppolicy.CanManage(member.Role) {
		httpjson.Error(w, http.StatusForbidden, "Only admins and owners can delete tasks")
		return
	}

	if err := h.GroupTasks.Delete(ctx, taskID, g.ID); err != nil {
		if errors.Is(err, grouptaskstore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Task not found")
			return
		}
		h.Log.Error("group tasks: delete failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to delete task")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]string{"message": "Task deleted"})
}
