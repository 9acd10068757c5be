// internal/app/features/profileadmin/handler.go
//
// Package profileadmin edits the singleton organization profile that drives
// the public site's identity (name, tagline, contact details, social links,
// logo). It also hosts the signed-in admin's change-password form.
package profileadmin

import (
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/hopeworks/ngohub/internal/app/system/auth"
	"github.com/hopeworks/ngohub/internal/app/system/inputval"
	"github.com/hopeworks/ngohub/internal/app/system/viewdata"
	"github.com/hopeworks/ngohub/internal/backend"
	"github.com/hopeworks/ngohub/internal/domain/models"
)

const maxPictureBytes = 5 << 20

type Handler struct {
	Backend  *backend.Client
	Sessions *auth.SessionManager
	Log      *zap.Logger
}

func NewHandler(client *backend.Client, sessions *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{Backend: client, Sessions: sessions, Log: logger}
}

type profileFormData struct {
	viewdata.BaseVM
	Input      backend.ProfileInput
	Platforms  []string
	PictureURL string
	Flash      string
	Error      string
}

type passwordFormData struct {
	viewdata.BaseVM
	Flash string
	Error string
}

// profileInput mirrors the required subset of the profile form for
// validation; everything else is optional.
type profileInput struct {
	NGOName  string `validate:"required" label:"Organization name"`
	MobileNo string `validate:"required" label:"Mobile number"`
	Email    string `validate:"email" label:"Email"`
	Website  string `validate:"url" label:"Website"`
}

// ServeProfile shows the profile editor with current backend values.
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	data := profileFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Organization profile", "/admin"),
		Platforms: models.SocialPlatforms,
		Flash:     query.Get(r, "ok"),
		Error:     query.Get(r, "err"),
	}

	res := h.Backend.GetAdminProfile(r.Context())
	if h.Sessions.ExpireIfUnauthorized(w, r, res.Unauthorized) {
		return
	}
	if !res.Success {
		h.Log.Warn("profileadmin: load failed", zap.String("error", res.Error))
		if data.Error == "" {
			data.Error = "Could not load the profile: " + res.Error
		}
	} else {
		data.Input = inputFromProfile(res.Data)
		data.PictureURL = res.Data.ComputedProfilePicture
	}

	templates.Render(w, r, "profile_admin", data)
}

// HandleUpdate saves the profile fields. The picture travels separately
// through HandlePicture; this path is JSON only.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderWithError(w, r, backend.ProfileInput{}, "Could not read the form.")
		return
	}

	in := backend.ProfileInput{
		NGOName:     strings.TrimSpace(r.FormValue("ngoName")),
		Description: strings.TrimSpace(r.FormValue("description")),
		MobileNo:    strings.TrimSpace(r.FormValue("mobileNo")),
		Email:       strings.TrimSpace(r.FormValue("email")),
		Website:     strings.TrimSpace(r.FormValue("website")),
		Address:     strings.TrimSpace(r.FormValue("address")),
		AddressMap:  strings.TrimSpace(r.FormValue("addressMap")),
		SocialLinks: map[string]string{},
	}
	for _, p := range models.SocialPlatforms {
		in.SocialLinks[p] = strings.TrimSpace(r.FormValue("social_" + p))
	}

	check := inputval.Validate(profileInput{
		NGOName:  in.NGOName,
		MobileNo: in.MobileNo,
		Email:    in.Email,
		Website:  in.Website,
	})
	if check.HasErrors() {
		h.renderWithError(w, r, in, check.First())
		return
	}

	res := h.Backend.UpdateProfile(r.Context(), in)
	if h.Sessions.ExpireIfUnauthorized(w, r, res.Unauthorized) {
		return
	}
	if !res.Success {
		h.Log.Warn("profileadmin: update failed", zap.String("error", res.Error))
		h.renderWithError(w, r, in, "Save failed: "+res.Error)
		return
	}

	http.Redirect(w, r, "/admin/profile?ok="+url.QueryEscape("Profile saved."), http.StatusSeeOther)
}

// HandlePicture replaces the profile picture: an uploaded file wins over a
// pasted URL, a URL alone goes through the JSON update path.
func (h *Handler) HandlePicture(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxPictureBytes); err != nil {
		http.Redirect(w, r, "/admin/profile?err="+
			url.QueryEscape("Could not read the upload."), http.StatusSeeOther)
		return
	}

	file, header, err := r.FormFile("picture")
	if err == nil {
		defer file.Close()
		data, rerr := io.ReadAll(file)
		if rerr != nil {
			http.Redirect(w, r, "/admin/profile?err="+
				url.QueryEscape("Could not read the upload."), http.StatusSeeOther)
			return
		}
		res := h.Backend.UploadProfilePicture(r.Context(), backend.Upload{
			Field:       "image",
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
		if h.Sessions.ExpireIfUnauthorized(w, r, res.Unauthorized) {
			return
		}
		h.finishPicture(w, r, res.Success, res.Error)
		return
	}

	pictureURL := strings.TrimSpace(r.FormValue("pictureUrl"))
	if pictureURL == "" {
		http.Redirect(w, r, "/admin/profile?err="+
			url.QueryEscape("Choose a file or paste an image URL."), http.StatusSeeOther)
		return
	}
	if !inputval.IsValidHTTPURL(pictureURL) {
		http.Redirect(w, r, "/admin/profile?err="+
			url.QueryEscape("The image URL must be a valid http(s) URL."), http.StatusSeeOther)
		return
	}

	// URL-referenced picture rides the normal profile update, preserving
	// the other fields as the backend last saw them.
	cur := h.Backend.GetAdminProfile(r.Context())
	if h.Sessions.ExpireIfUnauthorized(w, r, cur.Unauthorized) {
		return
	}
	if !cur.Success {
		h.finishPicture(w, r, false, cur.Error)
		return
	}
	in := inputFromProfile(cur.Data)
	in.ProfilePicture = pictureURL
	in.UseUpload = false
	res := h.Backend.UpdateProfile(r.Context(), in)
	if h.Sessions.ExpireIfUnauthorized(w, r, res.Unauthorized) {
		return
	}
	h.finishPicture(w, r, res.Success, res.Error)
}

// HandleReset restores the backend's default profile.
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	res := h.Backend.ResetProfile(r.Context())
	if h.Sessions.ExpireIfUnauthorized(w, r, res.Unauthorized) {
		return
	}
	if !res.Success {
		h.Log.Warn("profileadmin: reset failed", zap.String("error", res.Error))
		http.Redirect(w, r, "/admin/profile?err="+
			url.QueryEscape("Reset failed: "+res.Error), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/profile?ok="+
		url.QueryEscape("Profile reset to defaults."), http.StatusSeeOther)
}

// ServePassword shows the change-password form.
func (h *Handler) ServePassword(w http.ResponseWriter, r *http.Request) {
	data := passwordFormData{
		BaseVM: viewdata.NewBaseVM(r, "Change password", "/admin"),
		Flash:  query.Get(r, "ok"),
	}
	templates.Render(w, r, "profile_password", data)
}

// HandlePassword rotates the signed-in admin's password.
func (h *Handler) HandlePassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderPasswordError(w, r, "Could not read the form.")
		return
	}
	current := r.FormValue("current")
	next := r.FormValue("new")
	confirm := r.FormValue("confirm")

	switch {
	case current == "":
		h.renderPasswordError(w, r, "Current password is required.")
		return
	case next == "":
		h.renderPasswordError(w, r, "New password is required.")
		return
	case len(next) < 8:
		h.renderPasswordError(w, r, "New password must be at least 8 characters.")
		return
	case next != confirm:
		h.renderPasswordError(w, r, "Passwords do not match.")
		return
	}

	res := h.Backend.ChangePassword(r.Context(), current, next)
	if h.Sessions.ExpireIfUnauthorized(w, r, res.Unauthorized) {
		return
	}
	if !res.Success {
		h.Log.Warn("profileadmin: change password failed", zap.String("error", res.Error))
		h.renderPasswordError(w, r, res.Error)
		return
	}
	http.Redirect(w, r, "/admin/password?ok="+
		url.QueryEscape("Password changed."), http.StatusSeeOther)
}

func (h *Handler) finishPicture(w http.ResponseWriter, r *http.Request, success bool, errMsg string) {
	if !success {
		h.Log.Warn("profileadmin: picture update failed", zap.String("error", errMsg))
		http.Redirect(w, r, "/admin/profile?err="+
			url.QueryEscape("Picture update failed: "+errMsg), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/profile?ok="+
		url.QueryEscape("Picture updated."), http.StatusSeeOther)
}

func (h *Handler) renderWithError(w http.ResponseWriter, r *http.Request, in backend.ProfileInput, msg string) {
	data := profileFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Organization profile", "/admin"),
		Input:     in,
		Platforms: models.SocialPlatforms,
		Error:     msg,
	}
	templates.Render(w, r, "profile_admin", data)
}

func (h *Handler) renderPasswordError(w http.ResponseWriter, r *http.Request, msg string) {
	data := passwordFormData{
		BaseVM: viewdata.NewBaseVM(r, "Change password", "/admin"),
		Error:  msg,
	}
	templates.Render(w, r, "profile_password", data)
}

func inputFromProfile(p models.Profile) backend.ProfileInput {
	links := make(map[string]string, len(models.SocialPlatforms))
	for _, plat := range models.SocialPlatforms {
		links[plat] = p.SocialLink(plat)
	}
	return backend.ProfileInput{
		NGOName:        p.NGOName,
		Description:    p.Description,
		MobileNo:       p.MobileNo,
		Email:          p.Email,
		Website:        p.Website,
		Address:        p.Address,
		AddressMap:     p.AddressMap,
		SocialLinks:    links,
		ProfilePicture: p.ProfilePicture,
		UseUpload:      p.UseUpload,
	}
}
