package ourwork_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/hopeworks/ngohub/internal/app/features/ourwork"
	"github.com/hopeworks/ngohub/internal/backend"
)

func newTestHandler(t *testing.T, h http.HandlerFunc) *ourwork.Handler {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	client, err := backend.New(backend.Config{
		BaseURL: srv.URL + "/api",
		Logger:  zap.NewNop(),
	})
	if err != nil {
		t.Fatalf("backend.New: %v", err)
	}
	return ourwork.NewHandler(client, zap.NewNop())
}

func TestLoadList_BackendDown_FallbackSummaryEmptyGrid(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	})

	c := handler.LoadList(context.Background())

	if c.Summary.Title != "Our Work" {
		t.Errorf("fallback summary title: got %q", c.Summary.Title)
	}
	if len(c.Projects) != 0 {
		t.Errorf("expected empty project grid, got %d", len(c.Projects))
	}
}

func TestLoadList_BackendData(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/our-work/summary":
			json.NewEncoder(w).Encode(map[string]any{
				"summary": map[string]any{"_id": "s1", "title": "Projects", "description": "d"},
			})
		case "/api/our-work":
			json.NewEncoder(w).Encode([]map[string]any{
				{"_id": "p2", "title": "Clinic", "order": 2},
				{"_id": "p1", "title": "School", "order": 1},
			})
		default:
			http.NotFound(w, r)
		}
	})

	c := handler.LoadList(context.Background())

	if c.Summary.Title != "Projects" {
		t.Errorf("summary title: got %q", c.Summary.Title)
	}
	if len(c.Projects) != 2 || c.Projects[0].Title != "School" {
		t.Errorf("expected sorted projects, got %+v", c.Projects)
	}
}

func TestServeDetail_MissingProject_RedirectsToList(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	router := ourwork.Routes(handler)
	req := httptest.NewRequest("GET", "/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/our-work" {
		t.Errorf("redirect location: got %q", loc)
	}
}
