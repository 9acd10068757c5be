// internal/app/features/login/handler.go
package login

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"

	"github.com/hopeworks/ngohub/internal/app/system/auth"
	"github.com/hopeworks/ngohub/internal/app/system/inputval"
	"github.com/hopeworks/ngohub/internal/app/system/viewdata"
	"github.com/hopeworks/ngohub/internal/backend"
)

// Handler owns the admin account flows: login, signup, forgot password and
// the token-carrying reset form. The backend issues and verifies
// credentials; this app only keeps the resulting bearer token in the
// session.
type Handler struct {
	Backend    *backend.Client
	SessionMgr *auth.SessionManager
	Log        *zap.Logger
}

func NewHandler(client *backend.Client, sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Backend:    client,
		SessionMgr: sessionMgr,
		Log:        logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Template-data                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

type loginFormData struct {
	viewdata.BaseVM
	Flash     string
	Error     string
	Email     string
	ReturnURL string
}

type signupFormData struct {
	viewdata.BaseVM
	Error string
	Name  string
	Email string
}

type forgotFormData struct {
	viewdata.BaseVM
	Error string
	Email string
	Sent  bool
}

type resetFormData struct {
	viewdata.BaseVM
	Error string
	Token string
	Done  bool
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Login", "/"),
		Flash:     query.Get(r, "ok"),
		ReturnURL: query.Get(r, "return"),
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderFormWithError(w, r, "Invalid form data.", "")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if email == "" || !inputval.IsValidEmail(email) {
		h.renderFormWithError(w, r, "Please enter a valid email address.", email)
		return
	}
	if password == "" {
		h.renderFormWithError(w, r, "Please enter your password.", email)
		return
	}

	res := h.Backend.Login(r.Context(), email, password)
	if !res.Success {
		h.Log.Info("login rejected", zap.String("email", email), zap.String("error", res.Error))
		h.renderFormWithError(w, r, res.Error, email)
		return
	}
	if res.Data.Token == "" {
		h.Log.Error("login succeeded without a token", zap.String("email", email))
		h.renderFormWithError(w, r, "A server error occurred. Please try again.", email)
		return
	}

	user := auth.SessionUser{
		ID:    res.Data.User.ID,
		Name:  res.Data.User.Name,
		Email: res.Data.User.Email,
		Role:  res.Data.User.Role,
	}
	if err := h.SessionMgr.Establish(w, r, res.Data.Token, user); err != nil {
		h.Log.Error("establish session failed", zap.Error(err), zap.String("email", email))
		h.renderFormWithError(w, r, "Unable to create session. Please try again.", email)
		return
	}

	h.Log.Info("admin signed in", zap.String("email", email))

	dest := urlutil.SafeReturn(strings.TrimSpace(r.FormValue("return")), "", "/admin")
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg, email string) {
	ret := strings.TrimSpace(r.FormValue("return"))
	if ret == "" {
		ret = query.Get(r, "return")
	}

	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Login", "/"),
		Error:     msg,
		Email:     email,
		ReturnURL: ret,
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET/POST /login/signup                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeSignup(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "login_signup", signupFormData{
		BaseVM: viewdata.NewBaseVM(r, "Create Account", "/login"),
	})
}

// HandleSignupPost registers a new admin. The backend decides whether
// signups are open; a granted account is signed in on the spot.
func (h *Handler) HandleSignupPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderSignupWithError(w, r, "Invalid form data.", "", "")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	confirm := r.FormValue("confirm")

	switch {
	case name == "":
		h.renderSignupWithError(w, r, "Please enter your name.", name, email)
		return
	case !inputval.IsValidEmail(email):
		h.renderSignupWithError(w, r, "Please enter a valid email address.", name, email)
		return
	case len(password) < 8:
		h.renderSignupWithError(w, r, "Password must be at least 8 characters.", name, email)
		return
	case password != confirm:
		h.renderSignupWithError(w, r, "Passwords do not match.", name, email)
		return
	}

	res := h.Backend.Signup(r.Context(), name, email, password)
	if !res.Success {
		h.Log.Info("signup rejected", zap.String("email", email), zap.String("error", res.Error))
		h.renderSignupWithError(w, r, res.Error, name, email)
		return
	}

	// Some deployments confirm accounts by email instead of issuing a
	// token straight away.
	if res.Data.Token == "" {
		http.Redirect(w, r, "/login?ok="+
			url.QueryEscape("Account created. Please sign in."), http.StatusSeeOther)
		return
	}

	user := auth.SessionUser{
		ID:    res.Data.User.ID,
		Name:  res.Data.User.Name,
		Email: res.Data.User.Email,
		Role:  res.Data.User.Role,
	}
	if err := h.SessionMgr.Establish(w, r, res.Data.Token, user); err != nil {
		h.Log.Error("establish session failed", zap.Error(err), zap.String("email", email))
		h.renderSignupWithError(w, r, "Unable to create session. Please try again.", name, email)
		return
	}

	h.Log.Info("admin signed up", zap.String("email", email))
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *Handler) renderSignupWithError(w http.ResponseWriter, r *http.Request, msg, name, email string) {
	templates.Render(w, r, "login_signup", signupFormData{
		BaseVM: viewdata.NewBaseVM(r, "Create Account", "/login"),
		Error:  msg,
		Name:   name,
		Email:  email,
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET/POST /login/forgot                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeForgot(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "login_forgot", forgotFormData{
		BaseVM: viewdata.NewBaseVM(r, "Forgot Password", "/login"),
	})
}

func (h *Handler) HandleForgotPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		templates.Render(w, r, "login_forgot", forgotFormData{
			BaseVM: viewdata.NewBaseVM(r, "Forgot Password", "/login"),
			Error:  "Invalid form data.",
		})
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	if !inputval.IsValidEmail(email) {
		templates.Render(w, r, "login_forgot", forgotFormData{
			BaseVM: viewdata.NewBaseVM(r, "Forgot Password", "/login"),
			Error:  "Please enter a valid email address.",
			Email:  email,
		})
		return
	}

	res := h.Backend.ForgotPassword(r.Context(), email)
	if !res.Success {
		h.Log.Warn("forgot-password failed", zap.String("error", res.Error))
	}

	// Always render the sent state; whether the address exists is not
	// something we reveal.
	templates.Render(w, r, "login_forgot", forgotFormData{
		BaseVM: viewdata.NewBaseVM(r, "Forgot Password", "/login"),
		Sent:   true,
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET/POST /login/reset                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeReset(w http.ResponseWriter, r *http.Request) {
	token := query.Get(r, "token")
	if token == "" {
		http.Redirect(w, r, "/login/forgot", http.StatusSeeOther)
		return
	}
	templates.Render(w, r, "login_reset", resetFormData{
		BaseVM: viewdata.NewBaseVM(r, "Reset Password", "/login"),
		Token:  token,
	})
}

func (h *Handler) HandleResetPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/login/forgot", http.StatusSeeOther)
		return
	}

	token := strings.TrimSpace(r.FormValue("token"))
	password := r.FormValue("password")
	confirm := r.FormValue("confirm")

	data := resetFormData{
		BaseVM: viewdata.NewBaseVM(r, "Reset Password", "/login"),
		Token:  token,
	}

	switch {
	case token == "":
		http.Redirect(w, r, "/login/forgot", http.StatusSeeOther)
		return
	case password == "":
		data.Error = "Please enter a new password."
	case password != confirm:
		data.Error = "Passwords do not match."
	}
	if data.Error != "" {
		templates.Render(w, r, "login_reset", data)
		return
	}

	res := h.Backend.ResetPassword(r.Context(), token, password)
	if !res.Success {
		data.Error = res.Error
		templates.Render(w, r, "login_reset", data)
		return
	}

	data.Done = true
	templates.Render(w, r, "login_reset", data)
}
