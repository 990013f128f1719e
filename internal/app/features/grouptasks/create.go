package grouptasks

import (
	"context"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/policy/grouppolicy"
	"github.com/dalemusser/taskhub/internal/app/system/auth"
	"github.com/dalemusser/taskhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/taskhub/internal/app/system/httpjson"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type createRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=low medium high"`
	AssignedTo  *string `json:"assigned_to"`
	DueDate     *string `json:"due_date"`
}

// HandleCreate handles POST /groups/{id}/tasks. Viewers cannot create.
// When the task is assigned, the assignee's display name is snapshotted
// from the current member list; an assignee who is not a member stores a
// null name.
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

	g, ok := h.loadGroupForCaller(ctx, w, r, user.ID)
	if !ok {
		return
	}

	member, _ := grouppolicy.MemberOf(g, user.ID)
	if !grouppolicy.CanEditTasks(member.Role) {
		httpjson.Error(w, http.StatusForbidden, "Viewers cannot create tasks")
		return
	}

	var assignedTo *primitive.ObjectID
	var assignedToName *string
	if req.AssignedTo != nil {
		assigneeID, err := primitive.ObjectIDFromHex(*req.AssignedTo)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "Invalid assignee ID")
			return
		}
		assignedTo = &assigneeID
		assignedToName = grouppolicy.SnapshotName(g, assigneeID)
	}

	created, err := h.GroupTasks.Create(ctx, models.GroupTask{
		Title:          htmlsanitize.Strip(req.Title),
		Description:    htmlsanitize.Strip(req.Description),
		Status:         models.StatusTodo,
		Priority:       req.Priority,
		DueDate:        req.DueDate,
		GroupID:        g.ID,
		CreatedBy:      user.ID,
		AssignedTo:     assignedTo,
		AssignedToName: assignedToName,
	})
	if err != nil {
		h.Log.Error("group tasks: create failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to create task")
		return
	}
	httpjson.Respond(w, http.StatusOK, created)
}
