// internal/app/features/contact/handler.go
package contact

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/hopeworks/ngohub/internal/app/system/htmlsanitize"
	"github.com/hopeworks/ngohub/internal/app/system/inputval"
	"github.com/hopeworks/ngohub/internal/app/system/viewdata"
	"github.com/hopeworks/ngohub/internal/backend"
)

// Handler serves the public contact form.
type Handler struct {
	Backend *backend.Client
	Log     *zap.Logger
}

func NewHandler(client *backend.Client, logger *zap.Logger) *Handler {
	return &Handler{Backend: client, Log: logger}
}

// formInput mirrors the form fields. Presence is validated here; nothing is
// sent to the backend until every required field passes.
type formInput struct {
	Name         string `validate:"required" label:"Name"`
	Email        string `validate:"required,email" label:"Email"`
	Phone        string `validate:"required" label:"Phone"`
	City         string
	Organization string
	Subject      string
	Message      string `validate:"required,max=2000" label:"Message"`
}

type pageData struct {
	viewdata.BaseVM
	Form    formInput
	Error   string
	Success bool
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /contact                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "contact", pageData{
		BaseVM: viewdata.NewBaseVM(r, "Contact Us", "/"),
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /contact                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderForm(w, r, formInput{}, "Invalid form data.", false)
		return
	}

	// Honeypot: the hidden "website" field stays empty for people. A filled
	// value gets the success page without creating anything.
	if r.FormValue("website") != "" {
		h.renderForm(w, r, formInput{}, "", true)
		return
	}

	in := formInput{
		Name:         strings.TrimSpace(r.FormValue("name")),
		Email:        strings.TrimSpace(r.FormValue("email")),
		Phone:        strings.TrimSpace(r.FormValue("phone")),
		City:         strings.TrimSpace(r.FormValue("city")),
		Organization: strings.TrimSpace(r.FormValue("organization")),
		Subject:      strings.TrimSpace(r.FormValue("subject")),
		Message:      strings.TrimSpace(r.FormValue("message")),
	}

	if res := inputval.Validate(in); res.HasErrors() {
		h.renderForm(w, r, in, res.First(), false)
		return
	}

	res := h.Backend.CreateInquiry(r.Context(), backend.InquiryInput{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		City:         in.City,
		Organization: in.Organization,
		Subject:      htmlsanitize.StripAll(in.Subject),
		Message:      htmlsanitize.StripAll(in.Message),
	})
	if !res.Success {
		h.Log.Warn("contact: inquiry submit failed", zap.String("error", res.Error))
		h.renderForm(w, r, in, "We could not send your message. Please try again in a moment.", false)
		return
	}

	// Clear the form on success.
	h.renderForm(w, r, formInput{}, "", true)
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, in formInput, errMsg string, success bool) {
	templates.Render(w, r, "contact", pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Contact Us", "/"),
		Form:    in,
		Error:   errMsg,
		Success: success,
	})
}
