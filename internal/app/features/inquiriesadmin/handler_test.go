package inquiriesadmin_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	"github.com/hopeworks/ngohub/internal/app/features/inquiriesadmin"
	"github.com/hopeworks/ngohub/internal/testutil"
)

func newTestHandler(t *testing.T, backendHandler http.HandlerFunc) *inquiriesadmin.Handler {
	t.Helper()
	return inquiriesadmin.NewHandler(testutil.NewBackendClient(t, backendHandler),
		testutil.SessionManager(t), zap.NewNop())
}

func TestLoadList_CountsNewInquiries(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/inquiries":
			w.Write([]byte(`{"inquiries":[
				{"_id":"i1","name":"Asha","subject":"Volunteering","status":"New"},
				{"_id":"i2","name":"Ravi","subject":"Donation","status":"Read"},
				{"_id":"i3","name":"Meera","subject":"Partnership","status":"New"}
			]}`))
		case "/api/dashboard/invoices":
			w.Write([]byte(`{"invoices":[
				{"_id":"v1","number":"INV-001","donor":"Acme Trust","amount":25000,"currency":"INR","status":"Paid"}
			]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	content, errMsg := h.LoadList(testutil.AuthedContext(t))
	if errMsg != "" {
		t.Fatalf("unexpected error: %s", errMsg)
	}
	if len(content.Inquiries) != 3 {
		t.Fatalf("expected 3 inquiries, got %d", len(content.Inquiries))
	}
	if content.NewCount != 2 {
		t.Errorf("new count: got %d, want 2", content.NewCount)
	}
	if len(content.Invoices) != 1 {
		t.Fatalf("expected 1 invoice, got %d", len(content.Invoices))
	}
	if got := content.Invoices[0].AmountDisplay; !strings.Contains(got, "25,000") {
		t.Errorf("amount display: got %q", got)
	}
}

func TestLoadList_InvoiceFailureKeepsInquiries(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/inquiries":
			w.Write([]byte(`{"inquiries":[{"_id":"i1","name":"Asha","status":"New"}]}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"boom"}`))
		}
	})

	content, errMsg := h.LoadList(testutil.AuthedContext(t))
	if errMsg != "" {
		t.Errorf("inquiry half succeeded, errMsg should be empty, got %q", errMsg)
	}
	if len(content.Inquiries) != 1 {
		t.Errorf("expected 1 inquiry, got %d", len(content.Inquiries))
	}
	if len(content.Invoices) != 0 {
		t.Errorf("expected no invoices after failure, got %d", len(content.Invoices))
	}
}

func TestServeDetail_MissingInquiry_RedirectsWithError(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"not found"}`))
	})

	req := testutil.AuthedRequest(t, httptest.NewRequest("GET", "/i404", nil))
	rec := httptest.NewRecorder()
	inquiriesadmin.Routes(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/admin/inquiries?err=") {
		t.Errorf("redirect: got %q", loc)
	}
}

func TestHandleDelete_Success_Redirects(t *testing.T) {
	var deletes atomic.Int32
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodDelete && r.URL.Path == "/api/inquiries/i1" {
			deletes.Add(1)
		}
		w.Write([]byte(`{"inquiry":{}}`))
	})

	req := testutil.AuthedRequest(t, httptest.NewRequest("POST", "/i1/delete", nil))
	rec := httptest.NewRecorder()
	inquiriesadmin.Routes(h).ServeHTTP(rec, req)

	if deletes.Load() != 1 {
		t.Fatalf("expected 1 delete call, got %d", deletes.Load())
	}
	if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/admin/inquiries?ok=") {
		t.Errorf("redirect: got %q", loc)
	}
}
