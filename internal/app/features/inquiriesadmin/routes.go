// internal/app/features/inquiriesadmin/routes.go
package inquiriesadmin

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeDetail)
	r.Post("/{id}/delete", h.HandleDelete)
	return r
}
