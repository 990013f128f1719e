// internal/app/features/groups/routes.go
package groups

import (
	"github.com/dalemusser/taskhub/internal/app/features/grouptasks"
	"github.com/dalemusser/taskhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the group endpoints plus the group-task sub-router at
// /{id}/tasks. Chi propagates the {id} URL param through the mount.
func Routes(h *Handler, gt *grouptasks.Handler, guard *auth.Guard) chi.Router {
	r := chi.NewRouter()

	// Everything under /groups requires authentication.
	r.Group(func(pr chi.Router) {
		pr.Use(guard.RequireSignedIn)

		pr.Get("/", h.ServeList)
		pr.Post("/", h.HandleCreate)

		pr.Get("/{id}", h.ServeView)
		pr.Patch("/{id}", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleDelete)

		pr.Post("/{id}/invite", h.HandleInvite)
		pr.Delete("/{id}/members/{memberID}", h.HandleRemoveMember)

		pr.Mount("/{id}/tasks", grouptasks.Routes(gt))
	})

	return r
}
