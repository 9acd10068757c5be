// internal/app/features/projectsadmin/handler.go
//
// Package projectsadmin is the admin editor for the our-work projects.
// Projects do not fit the generic content manager: one write carries three
// named images plus bounded solution and gallery image sets, so the form
// and its validation are bespoke. Reads reuse the public project endpoints.
package projectsadmin

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hopeworks/ngohub/internal/app/system/auth"
	"github.com/hopeworks/ngohub/internal/app/system/viewdata"
	"github.com/hopeworks/ngohub/internal/backend"
	"github.com/hopeworks/ngohub/internal/domain/models"
)

// Projects carry up to eleven images in one submission.
const maxUploadBytes = 40 << 20

type Handler struct {
	Backend  *backend.Client
	Sessions *auth.SessionManager
	Log      *zap.Logger
}

func NewHandler(client *backend.Client, sessions *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{Backend: client, Sessions: sessions, Log: logger}
}

type listPageData struct {
	viewdata.BaseVM
	Projects []models.Project
	Flash    string
	Error    string
}

type formPageData struct {
	viewdata.BaseVM
	IsEdit  bool
	ItemID  string
	Values  map[string]string
	Current models.Project // stored record, zero on create
	Errors  map[string]string
	Error   string
}

// ServeList shows the project grid in admin form.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	data := listPageData{
		BaseVM: viewdata.NewBaseVM(r, "Projects", "/admin"),
		Flash:  query.Get(r, "ok"),
		Error:  query.Get(r, "err"),
	}

	res := h.Backend.ListProjects(r.Context())
	if h.Sessions.ExpireIfUnauthorized(w, r, res.Unauthorized) {
		return
	}
	if !res.Success {
		h.Log.Warn("projectsadmin: list failed", zap.String("error", res.Error))
		if data.Error == "" {
			data.Error = "Could not load projects: " + res.Error
		}
	} else {
		data.Projects = res.Data
	}

	templates.Render(w, r, "projects_admin_list", data)
}

// ServeNew shows an empty create form.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data := formPageData{
		BaseVM: viewdata.NewBaseVM(r, "New project", "/admin/projects"),
		Values: map[string]string{},
	}
	templates.Render(w, r, "projects_admin_form", data)
}

// ServeEdit shows the edit form for one project.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	res := h.Backend.GetProject(r.Context(), id)
	if h.Sessions.ExpireIfUnauthorized(w, r, res.Unauthorized) {
		return
	}
	if !res.Success {
		h.Log.Warn("projectsadmin: get failed",
			zap.String("id", id), zap.String("error", res.Error))
		http.Redirect(w, r, "/admin/projects?err="+
			url.QueryEscape("Could not load the project."), http.StatusSeeOther)
		return
	}

	data := formPageData{
		BaseVM:  viewdata.NewBaseVM(r, "Edit project", "/admin/projects"),
		IsEdit:  true,
		ItemID:  id,
		Values:  projectValues(res.Data),
		Current: res.Data,
	}
	templates.Render(w, r, "projects_admin_form", data)
}

// HandleCreate posts a new project.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, "")
}

// HandleUpdate rewrites one project.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, chi.URLParam(r, "id"))
}

// submit is the shared create/update path. Validation failures re-render
// the form with the entered values and never reach the backend.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request, id string) {
	write, values, errs := h.collect(r, id == "")

	render := func(errMsg string) {
		title := "New project"
		if id != "" {
			title = "Edit project"
		}
		data := formPageData{
			BaseVM: viewdata.NewBaseVM(r, title, "/admin/projects"),
			IsEdit: id != "",
			ItemID: id,
			Values: values,
			Errors: errs,
			Error:  errMsg,
		}
		if id != "" {
			if cur := h.Backend.GetProject(r.Context(), id); cur.Success {
				data.Current = cur.Data
			}
		}
		templates.Render(w, r, "projects_admin_form", data)
	}

	if len(errs) > 0 {
		render(firstError(errs))
		return
	}

	var res backend.Result[models.Project]
	done := "Created."
	if id == "" {
		res = h.Backend.CreateProject(r.Context(), write)
	} else {
		res = h.Backend.UpdateProject(r.Context(), id, write)
		done = "Saved."
	}

	if h.Sessions.ExpireIfUnauthorized(w, r, res.Unauthorized) {
		return
	}
	if !res.Success {
		h.Log.Warn("projectsadmin: write failed",
			zap.String("id", id), zap.String("error", res.Error))
		render("Save failed: " + res.Error)
		return
	}

	http.Redirect(w, r, "/admin/projects?ok="+url.QueryEscape(done), http.StatusSeeOther)
}

// HandleDelete removes one project.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	res := h.Backend.DeleteProject(r.Context(), id)
	if h.Sessions.ExpireIfUnauthorized(w, r, res.Unauthorized) {
		return
	}
	if !res.Success {
		h.Log.Warn("projectsadmin: delete failed",
			zap.String("id", id), zap.String("error", res.Error))
		http.Redirect(w, r, "/admin/projects?err="+
			url.QueryEscape("Delete failed: "+res.Error), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/projects?ok="+
		url.QueryEscape("Project deleted."), http.StatusSeeOther)
}

// collect parses the submitted multipart form into a ProjectWrite plus
// sticky values for re-render, and validates required fields and the
// image-set bounds. isCreate tightens the rules: a cover image and a full
// set of solution and gallery images must be present, while edits keep
// whatever is stored when nothing new arrives.
func (h *Handler) collect(r *http.Request, isCreate bool) (backend.ProjectWrite, map[string]string, map[string]string) {
	values := map[string]string{}
	errs := map[string]string{}
	write := backend.ProjectWrite{Fields: map[string]string{}}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		errs["_form"] = "Could not read the form."
		return write, values, errs
	}

	for _, name := range []string{"title", "location", "description", "whatWeDo", "solution"} {
		v := strings.TrimSpace(r.FormValue(name))
		values[name] = v
		write.Fields[name] = v
	}
	if values["title"] == "" {
		errs["title"] = "Title is required"
	}

	order := strings.TrimSpace(r.FormValue("order"))
	values["order"] = order
	if order != "" {
		if _, err := strconv.Atoi(order); err != nil {
			errs["order"] = "Order must be a whole number"
		} else {
			write.Fields["order"] = order
		}
	}

	anyUpload := false
	for _, name := range []string{"coverImage", "heroImage", "whatImage"} {
		up, err := h.readFile(r, name+"_file", name)
		if err != nil {
			errs[name] = "Could not read the uploaded file."
			continue
		}
		imageURL := strings.TrimSpace(r.FormValue(name))
		values[name] = imageURL
		if up != nil {
			write.Files = append(write.Files, *up)
			anyUpload = true
			continue
		}
		if imageURL != "" {
			write.Fields[name] = imageURL
		} else if name == "coverImage" && isCreate {
			errs[name] = "Cover image is required"
		}
	}

	solution, err := h.readFiles(r, "solutionImages")
	if err != nil {
		errs["solutionImages"] = "Could not read the uploaded files."
	} else if bad := countOutOfBounds(len(solution), isCreate,
		models.MinSolutionImages, models.MaxSolutionImages); bad != "" {
		errs["solutionImages"] = "Solution images: " + bad
	} else if len(solution) > 0 {
		write.Files = append(write.Files, solution...)
		anyUpload = true
	}

	gallery, err := h.readFiles(r, "galleryImages")
	if err != nil {
		errs["galleryImages"] = "Could not read the uploaded files."
	} else if bad := countOutOfBounds(len(gallery), isCreate,
		models.MinGalleryImages, models.MaxGalleryImages); bad != "" {
		errs["galleryImages"] = "Gallery images: " + bad
	} else if len(gallery) > 0 {
		write.Files = append(write.Files, gallery...)
		anyUpload = true
	}

	write.Fields["useUpload"] = strconv.FormatBool(anyUpload)
	return write, values, errs
}

// countOutOfBounds checks an image-set count against its bounds. On edit an
// empty set means "keep what is stored" and passes.
func countOutOfBounds(n int, isCreate bool, min, max int) string {
	if n == 0 && !isCreate {
		return ""
	}
	if n < min || n > max {
		return fmt.Sprintf("choose between %d and %d", min, max)
	}
	return ""
}

func (h *Handler) readFile(r *http.Request, field, part string) (*backend.Upload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	headers := r.MultipartForm.File[field]
	if len(headers) == 0 {
		return nil, nil
	}
	up, err := openUpload(headers[0], part)
	if err != nil {
		return nil, err
	}
	return &up, nil
}

func (h *Handler) readFiles(r *http.Request, field string) ([]backend.Upload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	headers := r.MultipartForm.File[field]
	ups := make([]backend.Upload, 0, len(headers))
	for _, hdr := range headers {
		up, err := openUpload(hdr, field)
		if err != nil {
			return nil, err
		}
		ups = append(ups, up)
	}
	return ups, nil
}

func openUpload(hdr *multipart.FileHeader, part string) (backend.Upload, error) {
	file, err := hdr.Open()
	if err != nil {
		return backend.Upload{}, err
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return backend.Upload{}, err
	}
	return backend.Upload{
		Field:       part,
		Filename:    hdr.Filename,
		ContentType: hdr.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// projectValues flattens a stored project into sticky form values.
func projectValues(p models.Project) map[string]string {
	return map[string]string{
		"title":       p.Title,
		"location":    p.Location,
		"description": p.Description,
		"whatWeDo":    p.WhatWeDo,
		"solution":    p.Solution,
		"order":       strconv.Itoa(p.Order),
		"coverImage":  p.CoverImage,
		"heroImage":   p.HeroImage,
		"whatImage":   p.WhatImage,
	}
}

// firstError returns the message for the first field (in form order) that
// failed, so the flash matches what the admin sees first.
func firstError(errs map[string]string) string {
	for _, name := range []string{"_form", "title", "location", "description",
		"order", "coverImage", "heroImage", "whatImage",
		"whatWeDo", "solution", "solutionImages", "galleryImages"} {
		if msg, found := errs[name]; found {
			return msg
		}
	}
	for _, msg := range errs {
		return msg
	}
	return ""
}
