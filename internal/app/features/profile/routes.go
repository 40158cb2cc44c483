// internal/app/features/profile/routes.go
package profile

import (
	"github.com/dalemusser/paperhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the profile endpoints (typically under /api). All of them
// need a signed-in caller.
func Routes(h *Handler, am *auth.Middleware) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(am.Require)

		pr.Post("/register", h.HandleRegister)
		pr.Get("/profile", h.ServeProfile)
		pr.Put("/profile", h.HandleUpdate)
		pr.Post("/profile/photo", h.HandlePhoto)
	})

	return r
}
