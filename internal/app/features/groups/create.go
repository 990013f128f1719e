package groups

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/taskhub/internal/app/policy/grouppolicy"
	"github.com/dalemusser/taskhub/internal/app/system/auth"
	"github.com/dalemusser/taskhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/taskhub/internal/app/system/httpjson"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.uber.org/zap"
)

type createRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// HandleCreate handles POST /groups. The creator is seeded as the sole
// member with the owner role; ownership never moves after this.
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

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Groups.Create(ctx, models.Group{
		Name:        htmlsanitize.Strip(req.Name),
		Description: htmlsanitize.Strip(req.Description),
		OwnerID:     user.ID,
		Members: []models.Member{{
			UserID:    user.ID,
			UserName:  user.Name,
			UserEmail: user.Email,
			Role:      grouppolicy.RoleOwner,
			JoinedAt:  time.Now().UTC(),
		}},
	})
	if err != nil {
		h.Log.Error("groups: create failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to create group")
		return
	}
	httpjson.Respond(w, http.StatusOK, created)
}
