// internal/app/features/taxonomy/routes.go
package taxonomy

import "github.com/go-chi/chi/v5"

// Routes mounts the taxonomy endpoints (typically under /api/taxonomy).
// All of them are public.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/categories", h.ServeCategories)
	r.Get("/content-types", h.ServeContentTypes)
	r.Get("/provinces", h.ServeProvinces)
	r.Get("/classes", h.ServeClasses)
	r.Get("/boards", h.ServeBoards)
	r.Get("/subjects", h.ServeSubjects)
	r.Get("/requirements", h.ServeRequirements)
	r.Get("/steps", h.ServeSteps)
	r.Get("/collections", h.ServeCollections)

	r.Post("/advance", h.HandleAdvance)
	r.Post("/resolve", h.HandleResolve)

	return r
}
