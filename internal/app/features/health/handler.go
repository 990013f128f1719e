package health

import (
	"context"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/httpjson"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for liveness checks.
type Handler struct {
	Client *mongo.Client
	Log    *zap.Logger
}

// NewHandler constructs a health Handler with the Mongo client and logger.
func NewHandler(client *mongo.Client, logger *zap.Logger) *Handler {
	return &Handler{Client: client, Log: logger}
}

// ServeRoot handles GET /. It returns a service banner so load balancers
// and humans poking the base URL get a sensible answer.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	httpjson.Respond(w, http.StatusOK, map[string]string{
		"message": "TaskHub API",
		"status":  "healthy",
	})
}

// ServeHealth handles GET /health.
//
// On success: 200 and {"status":"healthy"}.
// On DB failure: 503 and {"status":"error","message":"Database unavailable"}.
func (h *Handler) ServeHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		httpjson.Respond(w, http.StatusServiceUnavailable, map[string]string{
			"status":  "error",
			"message": "Database unavailable",
		})
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "healthy"})
}
