// internal/app/features/visionmission/handler.go
package visionmission

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/hopeworks/ngohub/internal/app/system/viewdata"
	"github.com/hopeworks/ngohub/internal/backend"
	"github.com/hopeworks/ngohub/internal/domain/models"
)

// Handler serves the public vision & mission page.
type Handler struct {
	Backend *backend.Client
	Log     *zap.Logger
}

func NewHandler(client *backend.Client, logger *zap.Logger) *Handler {
	return &Handler{Backend: client, Log: logger}
}

// Section is one typed group of cards on the page.
type Section struct {
	Type    string
	Heading string
	Items   []models.VisionMissionItem
}

// Content is the hero plus the four typed sections in display order.
// Sections with no items are omitted.
type Content struct {
	Hero     models.HeroSlide
	Sections []Section
}

type pageData struct {
	viewdata.BaseVM
	Content
}

var headings = map[string]string{
	models.VMTypeMission: "Our Mission",
	models.VMTypeVision:  "Our Vision",
	models.VMTypeGoal:    "Our Goals",
	models.VMTypeValues:  "Our Values",
}

func (h *Handler) ServeVisionMission(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Vision & Mission", "/"),
		Content: h.LoadContent(r.Context()),
	}

	templates.Render(w, r, "visionmission", data)
}

// LoadContent fetches the singleton hero and all items, then groups the
// items by type in display order. A failed item fetch yields the fallback
// mission/vision pair.
func (h *Handler) LoadContent(ctx context.Context) Content {
	var c Content

	if res := h.Backend.GetVMHero(ctx); res.Success {
		c.Hero = res.Data
	} else {
		h.Log.Warn("vision-mission: hero fetch failed", zap.String("error", res.Error))
		c.Hero = models.HeroSlide{Title: "Vision & Mission"}
	}

	res := h.Backend.ListVMItems(ctx, "")
	items := res.Data
	if !res.Success {
		h.Log.Warn("vision-mission: items fetch failed", zap.String("error", res.Error))
		items = fallbackItems()
	}

	for _, vmType := range models.VMTypes {
		section := Section{Type: vmType, Heading: headings[vmType]}
		for _, it := range items {
			if it.Type == vmType {
				section.Items = append(section.Items, it)
			}
		}
		if len(section.Items) > 0 {
			c.Sections = append(c.Sections, section)
		}
	}
	return c
}

func fallbackItems() []models.VisionMissionItem {
	return []models.VisionMissionItem{
		{
			Type:        models.VMTypeMission,
			Title:       "Empower communities",
			Description: "Work with rural families to build lasting access to education, health and income.",
		},
		{
			Type:        models.VMTypeVision,
			Title:       "A fair start for every child",
			Description: "A society where opportunity does not depend on where you were born.",
		},
	}
}
