// internal/domain/models/dashboard.go
package models

import "time"

// OverviewStats is the already-aggregated headline block for the admin
// dashboard. All aggregation happens in the backend; this app only shapes
// the numbers for display.
type OverviewStats struct {
	TotalInquiries  int     `json:"totalInquiries"`
	NewInquiries    int     `json:"newInquiries"`
	TotalInvoices   int     `json:"totalInvoices"`
	InvoiceTotal    float64 `json:"invoiceTotal"`
	ContentItems    int     `json:"contentItems"`
	InquiryGrowth   float64 `json:"inquiryGrowth"`   // percent vs previous period
	InvoiceGrowth   float64 `json:"invoiceGrowth"`   // percent vs previous period
	VisitorsMonthly int     `json:"visitorsMonthly"` // backend-estimated
}

// ActivityEntry is one row of the recent-activity feed.
type ActivityEntry struct {
	Record

	Kind       string    `json:"kind"` // inquiry|invoice|content
	Summary    string    `json:"summary"`
	OccurredAt time.Time `json:"occurredAt"`
}

// SeriesPoint is one bucket of a backend-computed time series.
type SeriesPoint struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Count int     `json:"count"`
	Total float64 `json:"total"` // invoices only
}

// InquiryAnalytics is the backend's per-day inquiry series plus a status
// breakdown.
type InquiryAnalytics struct {
	Daily    []SeriesPoint  `json:"daily"`
	ByStatus map[string]int `json:"byStatus"`
}

// InvoiceAnalytics is the backend's per-month invoice series.
type InvoiceAnalytics struct {
	Monthly []SeriesPoint `json:"monthly"`
}

// ContentAnalytics counts managed records per content type.
type ContentAnalytics struct {
	ByType map[string]int `json:"byType"`
}

// InvoiceSummary is a read-only invoice row surfaced on the admin side.
type InvoiceSummary struct {
	Record

	Number   string    `json:"number"`
	Donor    string    `json:"donor"`
	Amount   float64   `json:"amount"`
	Currency string    `json:"currency"`
	IssuedAt time.Time `json:"issuedAt"`
	Status   string    `json:"status"`
}
