// internal/app/features/projectsadmin/routes.go
package projectsadmin

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)
	r.Get("/new", h.ServeNew)
	r.Get("/{id}/edit", h.ServeEdit)
	r.Post("/{id}", h.HandleUpdate)
	r.Post("/{id}/delete", h.HandleDelete)
	return r
}
