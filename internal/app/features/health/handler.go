// internal/app/features/health/handler.go
package health

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/hopeworks/ngohub/internal/app/system/timeouts"
	"github.com/hopeworks/ngohub/internal/backend"
)

// Handler holds dependencies needed for health checks.
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

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "backend":"connected" }
//
// On backend failure: 503 and
//
//	{ "status":"error", "backend":"disconnected", "message":"Backend unavailable", "error":"…"}
//
// The page still serves visitors from fallback content when the backend is
// down, so a 503 here means degraded, not dead.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:  "ok",
		Backend: "connected",
	}

	if err := h.Backend.Ping(ctx); err != nil {
		h.Log.Error("health-check: backend ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Backend = "disconnected"
		resp.Message = "Backend unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	_ = json.NewEncoder(w).Encode(resp)
}
