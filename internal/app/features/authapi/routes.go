// internal/app/features/authapi/routes.go
package authapi

import (
	"github.com/dalemusser/taskhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, guard *auth.Guard) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.HandleRegister)
	r.Post("/login", h.HandleLogin)
	r.Post("/google", h.HandleGoogle)
	r.Post("/refresh", h.HandleRefresh)

	r.Group(func(pr chi.Router) {
		pr.Use(guard.RequireSignedIn)
		pr.Get("/me", h.ServeMe)
	})

	return r
}
