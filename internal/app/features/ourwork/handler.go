// internal/app/features/ourwork/handler.go
package ourwork

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hopeworks/ngohub/internal/app/system/viewdata"
	"github.com/hopeworks/ngohub/internal/backend"
	"github.com/hopeworks/ngohub/internal/domain/models"
)

// Handler serves the public our-work pages.
type Handler struct {
	Backend *backend.Client
	Log     *zap.Logger
}

func NewHandler(client *backend.Client, logger *zap.Logger) *Handler {
	return &Handler{Backend: client, Log: logger}
}

// ListContent is the project grid page's data.
type ListContent struct {
	Summary  models.WorkSummary
	Projects []models.Project
}

type listPageData struct {
	viewdata.BaseVM
	ListContent
}

type detailPageData struct {
	viewdata.BaseVM
	Project models.Project
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /our-work – summary strip + project grid                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	data := listPageData{
		BaseVM:      viewdata.NewBaseVM(r, "Our Work", "/"),
		ListContent: h.LoadList(r.Context()),
	}

	templates.Render(w, r, "ourwork", data)
}

// LoadList fetches the summary and the project grid with fallbacks.
func (h *Handler) LoadList(ctx context.Context) ListContent {
	c := ListContent{Summary: fallbackSummary()}

	if res := h.Backend.GetWorkSummary(ctx); res.Success && res.Data.Title != "" {
		c.Summary = res.Data
	} else if !res.Success {
		h.Log.Warn("our-work: summary fetch failed", zap.String("error", res.Error))
	}

	if res := h.Backend.ListProjects(ctx); res.Success {
		c.Projects = res.Data
	} else {
		h.Log.Warn("our-work: projects fetch failed", zap.String("error", res.Error))
	}
	return c
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /our-work/{id} – project detail                                         |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res := h.Backend.GetProject(r.Context(), id)
	if !res.Success {
		h.Log.Warn("our-work: project fetch failed",
			zap.String("id", id), zap.String("error", res.Error))
		http.Redirect(w, r, "/our-work", http.StatusSeeOther)
		return
	}

	data := detailPageData{
		BaseVM:  viewdata.NewBaseVM(r, res.Data.Title, "/our-work"),
		Project: res.Data,
	}

	templates.Render(w, r, "ourwork_detail", data)
}

func fallbackSummary() models.WorkSummary {
	return models.WorkSummary{
		Title:       "Our Work",
		Description: "Projects we run with the communities we serve.",
	}
}
