// internal/app/features/aboutus/handler.go
package aboutus

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/hopeworks/ngohub/internal/app/system/viewdata"
	"github.com/hopeworks/ngohub/internal/backend"
	"github.com/hopeworks/ngohub/internal/domain/models"
)

// Handler serves the public about-us page.
type Handler struct {
	Backend *backend.Client
	Log     *zap.Logger
}

func NewHandler(client *backend.Client, logger *zap.Logger) *Handler {
	return &Handler{Backend: client, Log: logger}
}

// Content holds the three about-us sections with their fallbacks applied.
type Content struct {
	Slides  []models.HeroSlide
	Section models.AboutItem
	Areas   []models.Area
}

type pageData struct {
	viewdata.BaseVM
	Content
}

func (h *Handler) ServeAboutUs(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "About Us", "/"),
		Content: h.LoadContent(r.Context()),
	}

	templates.Render(w, r, "aboutus", data)
}

// LoadContent fetches hero, section and focus areas, substituting fallbacks
// for anything the backend cannot serve.
func (h *Handler) LoadContent(ctx context.Context) Content {
	c := Content{
		Section: fallbackSection(),
		Areas:   fallbackAreas(),
	}

	if res := h.Backend.ListHeroSlides(ctx, backend.HeroAboutUs); res.Success && len(res.Data) > 0 {
		c.Slides = res.Data
	} else if !res.Success {
		h.Log.Warn("about-us: hero fetch failed", zap.String("error", res.Error))
	}

	if res := h.Backend.GetAboutSection(ctx); res.Success && res.Data.Title != "" {
		c.Section = res.Data
	} else if !res.Success {
		h.Log.Warn("about-us: section fetch failed", zap.String("error", res.Error))
	}

	if res := h.Backend.ListAreas(ctx); res.Success && len(res.Data) > 0 {
		c.Areas = res.Data
	} else if !res.Success {
		h.Log.Warn("about-us: areas fetch failed", zap.String("error", res.Error))
	}

	return c
}

func fallbackSection() models.AboutItem {
	return models.AboutItem{
		Title: "About our organization",
		Description: "We are a community-led non-profit working alongside rural families " +
			"to improve access to education, healthcare and sustainable livelihoods.",
	}
}

func fallbackAreas() []models.Area {
	return []models.Area{
		{
			Title:       "Education",
			Description: "After-school learning centers and scholarships for first-generation students.",
		},
		{
			Title:       "Health",
			Description: "Mobile clinics and preventive-care camps in remote villages.",
		},
	}
}
