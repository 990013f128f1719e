// internal/app/features/grouptasks/routes.go
package grouptasks

import (
	"github.com/go-chi/chi/v5"
)

// Routes is mounted by the groups feature at /groups/{id}/tasks, inside
// its authenticated route group, so the guard is already applied and the
// {id} param resolves to the group.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)
	r.Patch("/{taskID}", h.HandleUpdate)
	r.Delete("/{taskID}", h.HandleDelete)

	return r
}
