// internal/app/features/profileadmin/routes.go
package profileadmin

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeProfile)
	r.Post("/", h.HandleUpdate)
	r.Post("/picture", h.HandlePicture)
	r.Post("/reset", h.HandleReset)
	return r
}

// PasswordRoutes serves the change-password form, mounted separately at
// /admin/password.
func PasswordRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServePassword)
	r.Post("/", h.HandlePassword)
	return r
}
