// internal/app/features/home/handler.go
package home

import (
	"context"
	"net/http"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/hopeworks/ngohub/internal/app/system/viewdata"
	"github.com/hopeworks/ngohub/internal/backend"
	"github.com/hopeworks/ngohub/internal/domain/models"
)

// Handler serves the public landing page.
type Handler struct {
	Backend *backend.Client
	Log     *zap.Logger
}

func NewHandler(client *backend.Client, logger *zap.Logger) *Handler {
	return &Handler{
		Backend: client,
		Log:     logger,
	}
}

// Content is everything the landing page shows. Each section falls back to
// embedded defaults when the backend cannot serve it, so the public site
// never renders an error page.
type Content struct {
	Slides []models.HeroSlide
	Stats  []models.Stat
	Cards  []models.AboutItem
	Videos []models.VideoItem
}

type pageData struct {
	viewdata.BaseVM
	Content
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeHome(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Home", "/"),
		Content: h.LoadContent(r.Context()),
	}

	templates.Render(w, r, "home", data)
}

// LoadContent fetches the four landing-page sections in parallel. Fetch
// failures are logged and replaced with the fallback dataset for that
// section.
func (h *Handler) LoadContent(ctx context.Context) Content {
	var (
		slides backend.Result[[]models.HeroSlide]
		stats  backend.Result[[]models.Stat]
		cards  backend.Result[[]models.AboutItem]
		videos backend.Result[[]models.VideoItem]
	)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() { defer wg.Done(); slides = h.Backend.ListHeroSlides(ctx, backend.HeroHome) }()
	go func() { defer wg.Done(); stats = h.Backend.ListStats(ctx) }()
	go func() { defer wg.Done(); cards = h.Backend.ListAboutItems(ctx) }()
	go func() { defer wg.Done(); videos = h.Backend.ListVideos(ctx) }()
	wg.Wait()

	c := Content{
		Slides: fallbackSlides(),
		Stats:  fallbackStats(),
		Cards:  fallbackCards(),
		Videos: fallbackVideos(),
	}

	if slides.Success && len(slides.Data) > 0 {
		c.Slides = slides.Data
	} else if !slides.Success {
		h.Log.Warn("home: hero fetch failed", zap.String("error", slides.Error))
	}

	if stats.Success && len(stats.Data) > 0 {
		c.Stats = stats.Data
	} else if !stats.Success {
		h.Log.Warn("home: stats fetch failed", zap.String("error", stats.Error))
	}

	if cards.Success && len(cards.Data) > 0 {
		c.Cards = cards.Data
	} else if !cards.Success {
		h.Log.Warn("home: about cards fetch failed", zap.String("error", cards.Error))
	}

	if videos.Success && len(videos.Data) > 0 {
		c.Videos = videos.Data
	} else if !videos.Success {
		h.Log.Warn("home: videos fetch failed", zap.String("error", videos.Error))
	}

	return c
}
