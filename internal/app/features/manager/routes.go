// internal/app/features/manager/routes.go
package manager

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeIndex)
	r.Route("/{family}", func(r chi.Router) {
		r.Get("/", h.ServeList)
		r.Post("/", h.HandleCreate)
		r.Get("/new", h.ServeNew)
		r.Get("/edit", h.ServeEdit) // singleton form
		r.Post("/delete-all", h.HandleDeleteAll)
		r.Get("/{id}/edit", h.ServeEdit)
		r.Post("/{id}", h.HandleUpdate)
		r.Post("/{id}/delete", h.HandleDelete)
	})
	return r
}
