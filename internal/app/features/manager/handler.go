// internal/app/features/manager/handler.go
//
// Package manager is the generic admin editor for the managed content
// families. One configuration entry per family drives the whole flow:
// list grid, create/edit form, delete, and bulk reset. The handler never
// caches records; every page load is a fresh backend read, and a failed
// write re-renders the form without refetching.
package manager

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/hopeworks/ngohub/internal/app/features/errors"
	"github.com/hopeworks/ngohub/internal/app/system/auth"
	"github.com/hopeworks/ngohub/internal/app/system/viewdata"
	"github.com/hopeworks/ngohub/internal/backend"
)

const maxUploadBytes = 10 << 20

type Handler struct {
	Backend  *backend.Client
	Sessions *auth.SessionManager
	Log      *zap.Logger
}

func NewHandler(client *backend.Client, sessions *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{Backend: client, Sessions: sessions, Log: logger}
}

type indexPageData struct {
	viewdata.BaseVM
	Families []Family
	Counts   map[string]int // record count per family slug, nil when unavailable
}

type listPageData struct {
	viewdata.BaseVM
	Family   Family
	Families []Family
	Items    []backend.Item
	Columns  []Field
	Flash    string
	Error    string
}

type formPageData struct {
	viewdata.BaseVM
	Family   Family
	Families []Family
	IsEdit   bool
	ItemID   string
	Values   map[string]string
	ImageURL string // current image, edit only
	Errors   map[string]string
	Error    string
}

// family resolves the {family} URL segment; on an unknown slug it renders
// the 404 page and returns nil.
func (h *Handler) family(w http.ResponseWriter, r *http.Request) *Family {
	fam := FamilyBySlug(chi.URLParam(r, "family"))
	if fam == nil {
		apperrors.RenderNotFound(w, r, "No such content section.")
		return nil
	}
	return fam
}

// ServeIndex shows the content hub with one card per family. Record
// counts come from the backend's counts aggregate; when that read fails
// the cards render without them.
func (h *Handler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	data := indexPageData{
		BaseVM:   viewdata.NewBaseVM(r, "Content", "/admin"),
		Families: Families(),
	}
	counts := h.Backend.GetContentCounts(r.Context())
	if h.Sessions.ExpireIfUnauthorized(w, r, counts.Unauthorized) {
		return
	}
	if counts.Success {
		data.Counts = counts.Data.ByType
	} else {
		h.Log.Warn("manager: counts failed", zap.String("error", counts.Error))
	}
	templates.Render(w, r, "manager_index", data)
}

// ServeList shows the record grid for one family, sorted by display order.
// Singleton families skip the grid and go straight to their form.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	fam := h.family(w, r)
	if fam == nil {
		return
	}
	if fam.Singleton {
		http.Redirect(w, r, "/admin/content/"+fam.Slug+"/edit", http.StatusSeeOther)
		return
	}

	data := listPageData{
		BaseVM:   viewdata.NewBaseVM(r, fam.Title, "/admin/content"),
		Family:   *fam,
		Families: Families(),
		Columns:  fam.listColumns(),
		Flash:    query.Get(r, "ok"),
		Error:    query.Get(r, "err"),
	}

	res := h.LoadList(r.Context(), fam)
	if h.Sessions.ExpireIfUnauthorized(w, r, res.Unauthorized) {
		return
	}
	if !res.Success {
		h.Log.Warn("manager: list failed",
			zap.String("family", fam.Slug), zap.String("error", res.Error))
		if data.Error == "" {
			data.Error = "Could not load records: " + res.Error
		}
	} else {
		data.Items = res.Data
	}

	templates.Render(w, r, "manager_list", data)
}

// LoadList fetches one family's records, sorted by display order.
func (h *Handler) LoadList(ctx context.Context, fam *Family) backend.Result[[]backend.Item] {
	return fam.Resource(h.Backend).List(ctx)
}

// ServeNew shows an empty create form.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	fam := h.family(w, r)
	if fam == nil {
		return
	}
	data := formPageData{
		BaseVM:   viewdata.NewBaseVM(r, "New "+fam.Title, "/admin/content/"+fam.Slug),
		Family:   *fam,
		Families: Families(),
		Values:   map[string]string{},
	}
	templates.Render(w, r, "manager_form", data)
}

// ServeEdit shows the edit form for one record, or the singleton form.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	fam := h.family(w, r)
	if fam == nil {
		return
	}
	rsc := fam.Resource(h.Backend)

	var res backend.Result[backend.Item]
	id := chi.URLParam(r, "id")
	if fam.Singleton {
		res = rsc.GetSingleton(r.Context())
	} else {
		res = rsc.Get(r.Context(), id)
	}

	if h.Sessions.ExpireIfUnauthorized(w, r, res.Unauthorized) {
		return
	}

	data := formPageData{
		BaseVM:   viewdata.NewBaseVM(r, "Edit "+fam.Title, "/admin/content/"+fam.Slug),
		Family:   *fam,
		Families: Families(),
		IsEdit:   !fam.Singleton,
		ItemID:   id,
		Values:   map[string]string{},
	}

	switch {
	case res.Success && res.Data != nil:
		data.Values = itemValues(fam, res.Data)
		data.ImageURL = res.Data.ComputedImageURL()
		if fam.Singleton {
			data.ItemID = res.Data.ID()
		}
	case fam.Singleton:
		// No record yet; the form creates one.
	default:
		h.Log.Warn("manager: get failed",
			zap.String("family", fam.Slug), zap.String("id", id), zap.String("error", res.Error))
		http.Redirect(w, r, "/admin/content/"+fam.Slug+"?err="+
			escape("Could not load the record."), http.StatusSeeOther)
		return
	}

	templates.Render(w, r, "manager_form", data)
}

// HandleCreate creates a record, or upserts the singleton.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	fam := h.family(w, r)
	if fam == nil {
		return
	}
	h.submit(w, r, fam, "")
}

// HandleUpdate rewrites one record.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	fam := h.family(w, r)
	if fam == nil {
		return
	}
	h.submit(w, r, fam, chi.URLParam(r, "id"))
}

// submit is the shared create/update path. Validation failures re-render
// the form with the entered values and never reach the backend.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request, fam *Family, id string) {
	fields, upload, errs := h.collect(r, fam, id == "" && !fam.Singleton)

	if len(errs) > 0 {
		data := formPageData{
			BaseVM:   viewdata.NewBaseVM(r, fam.Title, "/admin/content/"+fam.Slug),
			Family:   *fam,
			Families: Families(),
			IsEdit:   id != "",
			ItemID:   id,
			Values:   fields,
			Errors:   errs,
			Error:    firstError(fam, errs),
		}
		templates.Render(w, r, "manager_form", data)
		return
	}

	rsc := fam.Resource(h.Backend)
	var res backend.Result[backend.Item]
	var done string
	if id == "" {
		res = rsc.Create(r.Context(), fields, upload)
		done = "Created."
		if fam.Singleton {
			done = "Saved."
		}
	} else {
		res = rsc.Update(r.Context(), id, fields, upload)
		done = "Saved."
	}

	if h.Sessions.ExpireIfUnauthorized(w, r, res.Unauthorized) {
		return
	}
	if !res.Success {
		h.Log.Warn("manager: write failed",
			zap.String("family", fam.Slug), zap.String("id", id), zap.String("error", res.Error))
		data := formPageData{
			BaseVM:   viewdata.NewBaseVM(r, fam.Title, "/admin/content/"+fam.Slug),
			Family:   *fam,
			Families: Families(),
			IsEdit:   id != "",
			ItemID:   id,
			Values:   fields,
			Error:    "Save failed: " + res.Error,
		}
		templates.Render(w, r, "manager_form", data)
		return
	}

	dest := "/admin/content/" + fam.Slug + "?ok=" + escape(done)
	if fam.Singleton {
		dest = "/admin/content/" + fam.Slug + "/edit?ok=" + escape(done)
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

// HandleDelete removes one record. A failed delete leaves the list as the
// backend has it and surfaces the error as a flash.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	fam := h.family(w, r)
	if fam == nil {
		return
	}
	id := chi.URLParam(r, "id")
	res := fam.Resource(h.Backend).Delete(r.Context(), id)
	if h.Sessions.ExpireIfUnauthorized(w, r, res.Unauthorized) {
		return
	}
	if !res.Success {
		h.Log.Warn("manager: delete failed",
			zap.String("family", fam.Slug), zap.String("id", id), zap.String("error", res.Error))
		http.Redirect(w, r, "/admin/content/"+fam.Slug+"?err="+
			escape("Delete failed: "+res.Error), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/content/"+fam.Slug+"?ok="+escape("Deleted."), http.StatusSeeOther)
}

// HandleDeleteAll resets the whole family.
func (h *Handler) HandleDeleteAll(w http.ResponseWriter, r *http.Request) {
	fam := h.family(w, r)
	if fam == nil {
		return
	}
	res := fam.Resource(h.Backend).DeleteAll(r.Context())
	if h.Sessions.ExpireIfUnauthorized(w, r, res.Unauthorized) {
		return
	}
	dest := "/admin/content/" + fam.Slug
	if fam.Singleton {
		dest += "/edit"
	}
	if !res.Success {
		h.Log.Warn("manager: delete-all failed",
			zap.String("family", fam.Slug), zap.String("error", res.Error))
		http.Redirect(w, r, dest+"?err="+escape("Reset failed: "+res.Error), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, dest+"?ok="+escape("All records removed."), http.StatusSeeOther)
}

// collect parses the submitted form into backend fields plus an optional
// image upload, and validates required fields. requireImage is true only
// on create; edits keep the stored image when nothing new is supplied.
func (h *Handler) collect(r *http.Request, fam *Family, requireImage bool) (map[string]string, *backend.Upload, map[string]string) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return map[string]string{}, nil, map[string]string{"_form": "Could not read the form."}
		}
	} else if err := r.ParseForm(); err != nil {
		return map[string]string{}, nil, map[string]string{"_form": "Could not read the form."}
	}

	fields := make(map[string]string, len(fam.Fields))
	errs := map[string]string{}
	var upload *backend.Upload

	for _, f := range fam.Fields {
		switch f.Type {
		case FieldCheckbox:
			fields[f.Name] = strconv.FormatBool(r.FormValue(f.Name) != "")

		case FieldImage:
			up, err := readUpload(r, f.Name+"_file")
			if err != nil {
				errs[f.Name] = "Could not read the uploaded file."
				continue
			}
			imageURL := strings.TrimSpace(r.FormValue(f.Name))
			if up != nil {
				upload = up
				fields["useUpload"] = "true"
			} else {
				fields[f.Name] = imageURL
				fields["useUpload"] = "false"
				if f.Required && requireImage && imageURL == "" {
					errs[f.Name] = f.Label + " is required"
				}
			}

		case FieldSelect:
			v := r.FormValue(f.Name)
			if f.Required && v == "" {
				errs[f.Name] = f.Label + " is required"
			} else if v != "" && !contains(f.Options, v) {
				errs[f.Name] = "Choose a valid " + strings.ToLower(f.Label)
			}
			fields[f.Name] = v

		default:
			v := strings.TrimSpace(r.FormValue(f.Name))
			if f.Required && v == "" {
				errs[f.Name] = f.Label + " is required"
			}
			fields[f.Name] = v
		}
	}
	return fields, upload, errs
}

func readUpload(r *http.Request, field string) (*backend.Upload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &backend.Upload{
		Field:       "image",
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// itemValues flattens a record into sticky form values.
func itemValues(fam *Family, it backend.Item) map[string]string {
	vals := make(map[string]string, len(fam.Fields))
	for _, f := range fam.Fields {
		switch f.Type {
		case FieldCheckbox:
			vals[f.Name] = strconv.FormatBool(it.Bool(f.Name))
		case FieldNumber:
			vals[f.Name] = numString(it[f.Name])
		default:
			vals[f.Name] = it.Str(f.Name)
		}
	}
	return vals
}

func numString(v any) string {
	switch n := v.(type) {
	case float64:
		if n == float64(int64(n)) {
			return strconv.FormatInt(int64(n), 10)
		}
		return strconv.FormatFloat(n, 'f', -1, 64)
	case int:
		return strconv.Itoa(n)
	case string:
		return n
	}
	return ""
}

// firstError returns the message for the first field (in form order) that
// failed, so the flash matches what the visitor sees first.
func firstError(fam *Family, errs map[string]string) string {
	if msg, found := errs["_form"]; found {
		return msg
	}
	for _, f := range fam.Fields {
		if msg, found := errs[f.Name]; found {
			return msg
		}
	}
	for _, msg := range errs {
		return msg
	}
	return ""
}

func (f *Family) listColumns() []Field {
	cols := make([]Field, 0, len(f.ListFields))
	for _, name := range f.ListFields {
		if name == "order" {
			cols = append(cols, orderField)
			continue
		}
		if fld := f.Field(name); fld != nil {
			cols = append(cols, *fld)
		}
	}
	return cols
}

func contains(opts []string, v string) bool {
	for _, o := range opts {
		if o == v {
			return true
		}
	}
	return false
}

func escape(s string) string {
	return url.QueryEscape(s)
}
