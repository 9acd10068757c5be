package aboutus_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/hopeworks/ngohub/internal/app/features/aboutus"
	"github.com/hopeworks/ngohub/internal/backend"
)

func newTestHandler(t *testing.T, h http.HandlerFunc) *aboutus.Handler {
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
	return aboutus.NewHandler(client, zap.NewNop())
}

func TestLoadContent_BackendDown_RendersTwoFallbackAreas(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	})

	c := handler.LoadContent(context.Background())

	if len(c.Areas) != 2 {
		t.Fatalf("fallback areas: got %d, want 2", len(c.Areas))
	}
	if c.Section.Title == "" {
		t.Error("fallback section must not be empty")
	}
	if len(c.Slides) != 0 {
		t.Errorf("hero has no fallback, got %d slides", len(c.Slides))
	}
}

func TestLoadContent_BackendData(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/about-us/about":
			json.NewEncoder(w).Encode(map[string]any{
				"about": map[string]any{"_id": "a1", "title": "Our story", "description": "d"},
			})
		case "/api/about-us/areas":
			json.NewEncoder(w).Encode([]map[string]any{
				{"_id": "z", "title": "Water", "order": 3},
				{"_id": "y", "title": "Education", "order": 1},
				{"_id": "x", "title": "Health", "order": 2},
			})
		default:
			http.Error(w, "down", http.StatusInternalServerError)
		}
	})

	c := handler.LoadContent(context.Background())

	if c.Section.Title != "Our story" {
		t.Errorf("section: got %q", c.Section.Title)
	}
	want := []string{"Education", "Health", "Water"}
	if len(c.Areas) != 3 {
		t.Fatalf("areas: got %d, want 3", len(c.Areas))
	}
	for i, title := range want {
		if c.Areas[i].Title != title {
			t.Errorf("areas[%d] = %q, want %q", i, c.Areas[i].Title, title)
		}
	}
}
