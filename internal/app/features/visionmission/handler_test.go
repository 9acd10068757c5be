package visionmission_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/hopeworks/ngohub/internal/app/features/visionmission"
	"github.com/hopeworks/ngohub/internal/backend"
	"github.com/hopeworks/ngohub/internal/domain/models"
)

func newTestHandler(t *testing.T, h http.HandlerFunc) *visionmission.Handler {
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
	return visionmission.NewHandler(client, zap.NewNop())
}

func TestLoadContent_GroupsByTypeInDisplayOrder(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/vm/hero":
			json.NewEncoder(w).Encode(map[string]any{"_id": "h1", "title": "What drives us"})
		case "/api/vm/items":
			json.NewEncoder(w).Encode([]map[string]any{
				{"_id": "1", "type": "values", "title": "Integrity"},
				{"_id": "2", "type": "mission", "title": "Serve"},
				{"_id": "3", "type": "values", "title": "Respect"},
				{"_id": "4", "type": "vision", "title": "Equity"},
			})
		default:
			http.NotFound(w, r)
		}
	})

	c := handler.LoadContent(context.Background())

	if c.Hero.Title != "What drives us" {
		t.Errorf("hero title: got %q", c.Hero.Title)
	}
	// goal has no items and must be omitted; order is mission, vision, values.
	wantTypes := []string{models.VMTypeMission, models.VMTypeVision, models.VMTypeValues}
	if len(c.Sections) != len(wantTypes) {
		t.Fatalf("sections: got %d, want %d", len(c.Sections), len(wantTypes))
	}
	for i, typ := range wantTypes {
		if c.Sections[i].Type != typ {
			t.Errorf("sections[%d].Type = %q, want %q", i, c.Sections[i].Type, typ)
		}
	}
	if len(c.Sections[2].Items) != 2 {
		t.Errorf("values items: got %d, want 2", len(c.Sections[2].Items))
	}
}

func TestLoadContent_BackendDown_FallsBack(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	})

	c := handler.LoadContent(context.Background())

	if c.Hero.Title == "" {
		t.Error("fallback hero title must not be empty")
	}
	if len(c.Sections) != 2 {
		t.Fatalf("fallback sections: got %d, want 2", len(c.Sections))
	}
	if c.Sections[0].Type != models.VMTypeMission || c.Sections[1].Type != models.VMTypeVision {
		t.Errorf("fallback sections out of order: %+v", c.Sections)
	}
}
