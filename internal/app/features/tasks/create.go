package tasks

import (
	"context"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/auth"
	"github.com/dalemusser/taskhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/taskhub/internal/app/system/httpjson"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.uber.org/zap"
)

type createRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"due_date"`
}

// HandleCreate handles POST /tasks. New tasks start in "todo" with medium
// priority unless the request says otherwise.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Tasks.Create(ctx, models.Task{
		Title:       htmlsanitize.Strip(req.Title),
		Description: htmlsanitize.Strip(req.Description),
		Status:      models.StatusTodo,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		UserID:      user.ID,
	})
	if err != nil {
		h.Log.Error("tasks: create failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to create task")
		return
	}
	httpjson.Respond(w, http.StatusOK, created)
}
