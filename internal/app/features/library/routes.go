// internal/app/features/library/routes.go
package library

import "github.com/go-chi/chi/v5"

// Routes mounts the public library (typically under /api/library).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeResolve)
	r.Get("/{collection}", h.ServeList)
	r.Get("/{collection}/{id}", h.ServeResource)
	return r
}
