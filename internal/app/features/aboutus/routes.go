// internal/app/features/aboutus/routes.go
package aboutus

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeAboutUs)
	return r
}
