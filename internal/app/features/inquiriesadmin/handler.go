// internal/app/features/inquiriesadmin/handler.go
//
// Package inquiriesadmin is the admin's inbox for contact-form inquiries,
// plus the read-only invoice listing. Opening an inquiry flips its status
// to Read on the backend side; this app never writes status itself.
package inquiriesadmin

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
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

// InquiryRow is one list entry with its display-ready timestamp.
type InquiryRow struct {
	models.Inquiry
	Received string
}

// InvoiceRow is one read-only invoice line.
type InvoiceRow struct {
	models.InvoiceSummary
	AmountDisplay string
	Issued        string
}

// ListContent is everything the inquiries page shows.
type ListContent struct {
	Inquiries []InquiryRow
	NewCount  int
	Invoices  []InvoiceRow

	// Unauthorized is set when either read reports the token was revoked
	// server-side. The page must not render; the session gets torn down.
	Unauthorized bool
}

type listPageData struct {
	viewdata.BaseVM
	ListContent
	Flash string
	Error string
}

type detailPageData struct {
	viewdata.BaseVM
	Inquiry  models.Inquiry
	Received string
}

// LoadList assembles the inquiry inbox and the invoice lines. Either half
// failing leaves that half empty; the page still renders.
func (h *Handler) LoadList(ctx context.Context) (ListContent, string) {
	var content ListContent
	var errMsg string
	now := time.Now()

	res := h.Backend.ListInquiries(ctx)
	content.Unauthorized = res.Unauthorized
	if res.Success {
		content.Inquiries = make([]InquiryRow, 0, len(res.Data))
		for _, inq := range res.Data {
			content.Inquiries = append(content.Inquiries, InquiryRow{
				Inquiry:  inq,
				Received: format.RelativeTime(inq.ReceivedAt, now),
			})
			if inq.IsNew() {
				content.NewCount++
			}
		}
	} else {
		h.Log.Warn("inquiriesadmin: list failed", zap.String("error", res.Error))
		errMsg = "Could not load inquiries: " + res.Error
	}

	invs := h.Backend.ListInvoices(ctx)
	content.Unauthorized = content.Unauthorized || invs.Unauthorized
	if invs.Success {
		content.Invoices = make([]InvoiceRow, 0, len(invs.Data))
		for _, inv := range invs.Data {
			content.Invoices = append(content.Invoices, InvoiceRow{
				InvoiceSummary: inv,
				AmountDisplay:  format.Currency(inv.Amount, inv.Currency),
				Issued:         inv.IssuedAt.Format("Jan 2, 2006"),
			})
		}
	} else {
		h.Log.Warn("inquiriesadmin: invoices failed", zap.String("error", invs.Error))
	}

	return content, errMsg
}

// ServeList shows the inbox.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	content, errMsg := h.LoadList(r.Context())
	if h.Sessions.ExpireIfUnauthorized(w, r, content.Unauthorized) {
		return
	}
	data := listPageData{
		BaseVM:      viewdata.NewBaseVM(r, "Inquiries", "/admin"),
		ListContent: content,
		Flash:       query.Get(r, "ok"),
		Error:       query.Get(r, "err"),
	}
	if data.Error == "" {
		data.Error = errMsg
	}
	templates.Render(w, r, "inquiries_list", data)
}

// ServeDetail shows one inquiry. The backend marks it Read as a side
// effect of this fetch.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	res := h.Backend.GetInquiry(r.Context(), id)
	if h.Sessions.ExpireIfUnauthorized(w, r, res.Unauthorized) {
		return
	}
	if !res.Success {
		h.Log.Warn("inquiriesadmin: get failed",
			zap.String("id", id), zap.String("error", res.Error))
		http.Redirect(w, r, "/admin/inquiries?err="+
			url.QueryEscape("Could not load the inquiry."), http.StatusSeeOther)
		return
	}

	data := detailPageData{
		BaseVM:   viewdata.NewBaseVM(r, "Inquiry from "+res.Data.Name, "/admin/inquiries"),
		Inquiry:  res.Data,
		Received: format.RelativeTime(res.Data.ReceivedAt, time.Now()),
	}
	templates.Render(w, r, "inquiry_detail", data)
}

// HandleDelete removes one inquiry and returns to the inbox.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	res := h.Backend.DeleteInquiry(r.Context(), id)
	if h.Sessions.ExpireIfUnauthorized(w, r, res.Unauthorized) {
		return
	}
	if !res.Success {
		h.Log.Warn("inquiriesadmin: delete failed",
			zap.String("id", id), zap.String("error", res.Error))
		http.Redirect(w, r, "/admin/inquiries?err="+
			url.QueryEscape("Delete failed: "+res.Error), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/inquiries?ok="+
		url.QueryEscape("Inquiry deleted."), http.StatusSeeOther)
}
