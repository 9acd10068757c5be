// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/hopeworks/ngohub/internal/app/system/viewdata"
)

// RenderNotFound shows the 404 page with an optional custom message.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg string) {
	if msg == "" {
		msg = "The page you are looking for does not exist or has moved."
	}
	w.WriteHeader(http.StatusNotFound)
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Page not found", "/"),
		Message: msg,
	}
	templates.Render(w, r, "error_page", data)
}

// RenderServerError shows the 500 page. The message is what the visitor
// sees; backend error details belong in the log, not here.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg string) {
	if msg == "" {
		msg = "Something went wrong on our side. Please try again in a moment."
	}
	w.WriteHeader(http.StatusInternalServerError)
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Something went wrong", "/"),
		Message: msg,
	}
	templates.Render(w, r, "error_page", data)
}
