// internal/app/features/upload/routes.go
package upload

import (
	"net/http"

	"github.com/dalemusser/paperhub/internal/app/system/auth"
	"github.com/dalemusser/paperhub/internal/app/system/ratelimit"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the upload endpoints (typically under /api/uploads). Every
// route needs a signed-in caller; writes are rate limited per uid.
func Routes(h *Handler, am *auth.Middleware, rl *ratelimit.Limiter) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(am.Require)

		pr.Get("/mine", h.ServeMine)

		pr.Group(func(wr chi.Router) {
			wr.Use(rl.Middleware(uidKey))

			wr.Post("/file", h.HandleFile)
			wr.Post("/", h.HandleCreate)
			wr.Delete("/{collection}/{id}", h.HandleDelete)
		})
	})

	return r
}

func uidKey(r *http.Request) string {
	if u, ok := auth.CurrentUser(r); ok {
		return "uid:" + u.UID
	}
	return ""
}
