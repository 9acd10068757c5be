// internal/app/features/visionmission/routes.go
package visionmission

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeVisionMission)
	return r
}
