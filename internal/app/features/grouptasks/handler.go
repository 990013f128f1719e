// internal/app/features/grouptasks/handler.go
package grouptasks

import (
	"context"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/httpjson"
	groupstore "github.com/dalemusser/taskhub/internal/app/store/groups"
	grouptaskstore "github.com/dalemusser/taskhub/internal/app/store/grouptasks"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the group-tasks feature.
type Handler struct {
	Groups     *groupstore.Store
	GroupTasks *grouptaskstore.Store
	Log        *zap.Logger
}

// NewHandler constructs a group-tasks Handler. It is typically called from
// the bootstrap BuildHandler function.
func NewHandler(groups *groupstore.Store, groupTasks *grouptaskstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Groups:     groups,
		GroupTasks: groupTasks,
		Log:        logger,
	}
}

// loadGroupForCaller resolves the {id} URL param and loads the group
// scoped to the caller's membership. Every group-task endpoint starts
// here: a group the caller does not belong to is indistinguishable from
// one that does not exist. Writes the error response itself and reports
// success via ok.
func (h *Handler) loadGroupForCaller(ctx context.Context, w http.ResponseWriter, r *http.Request, callerID primitive.ObjectID) (models.Group, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "Group not found or access denied")
		return models.Group{}, false
	}

	g, err := h.Groups.GetByIDForMember(ctx, id, callerID)
	if err != nil {
		if err == groupstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "Group not found or access denied")
			return models.Group{}, false
		}
		h.Log.Error("group tasks: group load failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to load group")
		return models.Group{}, false
	}
	return g, true
}
