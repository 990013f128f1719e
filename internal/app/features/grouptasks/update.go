package grouptasks

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/policy/grouppolicy"
	"github.com/dalemusser/taskhub/internal/app/system/auth"
	"github.com/dalemusser/taskhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/taskhub/internal/app/system/httpjson"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	grouptaskstore "github.com/dalemusser/taskhub/internal/app/store/grouptasks"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type updateRequest struct {
	Title       *string                   `json:"title"`
	Description *string                   `json:"description"`
	Status      *string                   `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	Priority    *string                   `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *string                   `json:"due_date"`
	AssignedTo  httpjson.Optional[string] `json:"assigned_to"`
}

// HandleUpdate handles PATCH /groups/{id}/tasks/{taskID}. Viewers cannot
// update. Whenever assigned_to appears in the patch, even as an explicit
// null, the assignee name snapshot is recomputed from the current member
// list; an absent assigned_to leaves both fields alone.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
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

	g, ok := h.loadGroupForCaller(ctx, w, r, user.ID)
	if !ok {
		return
	}

	member, _ := grouppolicy.MemberOf(g, user.ID)
	if !grouppolicy.CanEditTasks(member.Role) {
		httpjson.Error(w, http.StatusForbidden, "Viewers cannot update tasks")
		return
	}

	patch := grouptaskstore.Patch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	}
	if req.AssignedTo.Set {
		patch.SetAssignee = true
		if req.AssignedTo.Value != nil {
			assigneeID, err := primitive.ObjectIDFromHex(*req.AssignedTo.Value)
			if err != nil {
				httpjson.Error(w, http.StatusBadRequest, "Invalid assignee ID")
				return
			}
			patch.AssignedTo = &assigneeID
			patch.AssignedToName = grouppolicy.SnapshotName(g, assigneeID)
		}
	}

	updated, err := h.GroupTasks.Update(ctx, taskID, g.ID, patch)
	if err != nil {
		if errors.Is(err, grouptaskstore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Task not found")
			return
		}
		h.Log.Error("group tasks: update failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to update task")
		return
	}
	httpjson.Respond(w, http.StatusOK, updated)
}
