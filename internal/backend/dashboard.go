// internal/backend/dashboard.go
package backend

import (
	"context"

	"github.com/hopeworks/ngohub/internal/domain/models"
)

// Dashboard reads. All aggregation is server-side; these calls only map
// already-computed aggregates into chart-ready shapes.

// GetOverviewStats fetches the headline numbers.
func (c *Client) GetOverviewStats(ctx context.Context) Result[models.OverviewStats] {
	return getOne[models.OverviewStats](c, ctx, "/dashboard/stats", true, "stats", "data")
}

// GetContentCounts fetches per-type record counts.
func (c *Client) GetContentCounts(ctx context.Context) Result[models.ContentAnalytics] {
	return getOne[models.ContentAnalytics](c, ctx, "/dashboard/counts", true, "counts", "data")
}

// GetRecentActivity fetches the recent-activity feed.
func (c *Client) GetRecentActivity(ctx context.Context) Result[[]models.ActivityEntry] {
	res := getList[models.ActivityEntry](c, ctx, "/dashboard/activity", true, "activity", "data")
	if res.Success {
		for i := range res.Data {
			res.Data[i].ResolveID()
		}
	}
	return res
}

// GetInquiryAnalytics fetches the per-day inquiry series.
func (c *Client) GetInquiryAnalytics(ctx context.Context) Result[models.InquiryAnalytics] {
	return getOne[models.InquiryAnalytics](c, ctx, "/dashboard/inquiries/analytics", true, "analytics", "data")
}

// GetInvoiceAnalytics fetches the per-month invoice series.
func (c *Client) GetInvoiceAnalytics(ctx context.Context) Result[models.InvoiceAnalytics] {
	return getOne[models.InvoiceAnalytics](c, ctx, "/dashboard/invoices/analytics", true, "analytics", "data")
}

// ListInvoices fetches the read-only invoice rows the backend surfaces to
// the admin. This app never creates or edits invoices.
func (c *Client) ListInvoices(ctx context.Context) Result[[]models.InvoiceSummary] {
	res := getList[models.InvoiceSummary](c, ctx, "/dashboard/invoices", true, "invoices", "data")
	if res.Success {
		for i := range res.Data {
			res.Data[i].ResolveID()
		}
	}
	return res
}

// GetContentAnalytics fetches the managed-content breakdown.
func (c *Client) GetContentAnalytics(ctx context.Context) Result[models.ContentAnalytics] {
	return getOne[models.ContentAnalytics](c, ctx, "/dashboard/content/analytics", true, "analytics", "data")
}
