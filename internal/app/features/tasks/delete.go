package tasks

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/auth"
	"github.com/dalemusser/taskhub/internal/app/system/httpjson"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	taskstore "github.com/dalemusser/taskhub/internal/app/store/tasks"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleDelete handles DELETE /tasks/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "Task not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Tasks.Delete(ctx, id, user.ID); err != nil {
		if errors.Is(err, taskstore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Task not found")
			return
		}
		h.Log.Error("tasks: delete failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to delete task")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]string{"message": "Task deleted"})
}
