// internal/app/features/dashboard/handler.go
//
// Package dashboard is the admin landing page: headline numbers, the
// recent-activity feed, and the analytics charts. The backend reads run
// in parallel; a failed read empties its own panel and never blanks the
// page.
package dashboard

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/hopeworks/ngohub/internal/app/system/auth"
	"github.com/hopeworks/ngohub/internal/app/system/format"
	"github.com/hopeworks/ngohub/internal/app/system/viewdata"
	"github.com/hopeworks/ngohub/internal/backend"
	"github.com/hopeworks/ngohub/internal/domain/models"
)

type Handler struct {
	Backend  *backend.Client
	Sessions *auth.SessionManager
	Log      *zap.Logger
}

func NewHandler(client *backend.Client, sessions *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{Backend: client, Sessions: sessions, Log: logger}
}

// Headline is one formatted stat card.
type Headline struct {
	Label  string
	Value  string
	Growth string // signed percent, "" when not applicable
}

// ActivityRow is one feed entry with its display-ready timestamp.
type ActivityRow struct {
	models.ActivityEntry
	When string
}

// Content is everything the dashboard page shows.
type Content struct {
	Headlines []Headline
	Activity  []ActivityRow

	// Standalone chart documents, "" when that read failed or was empty.
	InquiryChart string
	InvoiceChart string
	StatusChart  string
	ContentChart string

	// Unauthorized is set when any read reports the token was revoked
	// server-side. The page must not render; the session gets torn down.
	Unauthorized bool
}

type pageData struct {
	viewdata.BaseVM
	Content
}

// LoadContent runs the five dashboard reads in parallel and assembles the
// page. Each read that fails is logged and leaves its panel empty.
func (h *Handler) LoadContent(ctx context.Context) Content {
	var (
		stats      backend.Result[models.OverviewStats]
		activity   backend.Result[[]models.ActivityEntry]
		inquiry    backend.Result[models.InquiryAnalytics]
		invoice    backend.Result[models.InvoiceAnalytics]
		contentAna backend.Result[models.ContentAnalytics]
	)

	var wg sync.WaitGroup
	wg.Add(5)
	go func() { defer wg.Done(); stats = h.Backend.GetOverviewStats(ctx) }()
	go func() { defer wg.Done(); activity = h.Backend.GetRecentActivity(ctx) }()
	go func() { defer wg.Done(); inquiry = h.Backend.GetInquiryAnalytics(ctx) }()
	go func() { defer wg.Done(); invoice = h.Backend.GetInvoiceAnalytics(ctx) }()
	go func() { defer wg.Done(); contentAna = h.Backend.GetContentAnalytics(ctx) }()
	wg.Wait()

	var content Content
	content.Unauthorized = stats.Unauthorized || activity.Unauthorized ||
		inquiry.Unauthorized || invoice.Unauthorized || contentAna.Unauthorized

	if stats.Success {
		content.Headlines = headlines(stats.Data)
	} else {
		h.Log.Warn("dashboard: overview failed", zap.String("error", stats.Error))
	}

	if activity.Success {
		now := time.Now()
		content.Activity = make([]ActivityRow, 0, len(activity.Data))
		for _, entry := range activity.Data {
			content.Activity = append(content.Activity, ActivityRow{
				ActivityEntry: entry,
				When:          format.RelativeTime(entry.OccurredAt, now),
			})
		}
	} else {
		h.Log.Warn("dashboard: activity failed", zap.String("error", activity.Error))
	}

	if inquiry.Success {
		content.InquiryChart = InquiryChart(inquiry.Data)
		content.StatusChart = StatusChart(inquiry.Data.ByStatus)
	} else {
		h.Log.Warn("dashboard: inquiry analytics failed", zap.String("error", inquiry.Error))
	}

	if invoice.Success {
		content.InvoiceChart = InvoiceChart(invoice.Data)
	} else {
		h.Log.Warn("dashboard: invoice analytics failed", zap.String("error", invoice.Error))
	}

	if contentAna.Success {
		content.ContentChart = ContentChart(contentAna.Data)
	} else {
		h.Log.Warn("dashboard: content analytics failed", zap.String("error", contentAna.Error))
	}

	return content
}

// ServeDashboard renders the admin landing page.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	content := h.LoadContent(r.Context())
	if h.Sessions.ExpireIfUnauthorized(w, r, content.Unauthorized) {
		return
	}
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Dashboard", "/admin"),
		Content: content,
	}
	templates.Render(w, r, "dashboard", data)
}

func headlines(s models.OverviewStats) []Headline {
	return []Headline{
		{
			Label:  "Total inquiries",
			Value:  format.Int(s.TotalInquiries),
			Growth: format.Percent(s.InquiryGrowth),
		},
		{
			Label: "New inquiries",
			Value: format.Int(s.NewInquiries),
		},
		{
			Label:  "Invoice total",
			Value:  format.Currency(s.InvoiceTotal, ""),
			Growth: format.Percent(s.InvoiceGrowth),
		},
		{
			Label: "Content items",
			Value: format.Int(s.ContentItems),
		},
		{
			Label: "Monthly visitors",
			Value: format.Int(s.VisitorsMonthly),
		},
	}
}
