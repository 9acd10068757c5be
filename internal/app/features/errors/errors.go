// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/hopeworks/ngohub/internal/app/system/viewdata"
)

// pageData is the view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
}

// Handler renders the site's error pages. It needs no backend; the pages
// are static apart from the shared chrome.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders the friendly 404 page. It is wired as the router's
// NotFound handler, so it also covers unknown project IDs and stale links.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Page not found", "/"),
		Message: "The page you are looking for does not exist or has moved.",
	}
	templates.Render(w, r, "error_page", data)
}

// ServerError renders the friendly 500 page.
func (h *Handler) ServerError(w http.ResponseWriter, r *http.Request) {
	RenderServerError(w, r, "")
}

// Forbidden renders a friendly "access denied" page.
func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusForbidden)
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Access denied", "/"),
		Message: "You don't have permission to view this page.",
	}
	templates.Render(w, r, "error_page", data)
}
