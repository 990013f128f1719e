package tasks

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/auth"
	"github.com/dalemusser/taskhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/taskhub/internal/app/system/httpjson"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	taskstore "github.com/dalemusser/taskhub/internal/app/store/tasks"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type updateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"due_date"`
}

// HandleUpdate handles PATCH /tasks/{id}. Absent fields are left alone.
// A task that is missing or owned by someone else is a 404 either way.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
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

	var req updateRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Title != nil {
		clean := htmlsanitize.Strip(*req.Title)
		req.Title = &clean
	}
	if req.Description != nil {
		clean := htmlsanitize.Strip(*req.Description)
		req.Description = &clean
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	updated, err := h.Tasks.Update(ctx, id, user.ID, taskstore.Patch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		if errors.Is(err, taskstore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Task not found")
			return
		}
		h.Log.Error("tasks: update failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to update task")
		return
	}
	httpjson.Respond(w, http.StatusOK, updated)
}
