// Package handler provides HTTP handlers for the dashboard endpoints.
// Handlers read and drive the per-resource views held by view.Dashboard;
// nothing is stored beyond what the views hold in memory.
package handler

import (
	"net/http"
	"time"

	"github.com/albapepper/octofit-dashboard/internal/api/respond"
	"github.com/albapepper/octofit-dashboard/internal/collection"
	"github.com/albapepper/octofit-dashboard/internal/config"
	"github.com/albapepper/octofit-dashboard/internal/view"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	dash *view.Dashboard
	cfg  *config.Config
}

// New creates a Handler with shared dependencies.
func New(dash *view.Dashboard, cfg *config.Config) *Handler {
	return &Handler{dash: dash, cfg: cfg}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns service name, version, status and the remote API it reads from.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":     "OctoFit Dashboard",
		"version":  "1.0.0",
		"status":   "running",
		"docs":     "/docs",
		"upstream": h.cfg.APIBaseURL,
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckViews reports the lifecycle phase of every view. A failed view
// does not make the service unhealthy; failures are isolated per view.
// @Summary View health
// @Description Returns the phase of each collection view.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/views [get]
func (h *Handler) HealthCheckViews(w http.ResponseWriter, r *http.Request) {
	phases := make(map[string]string, len(collection.All()))
	for _, res := range collection.All() {
		v, err := h.dash.View(res)
		if err != nil {
			continue
		}
		phases[string(res)] = string(v.State().Phase)
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"views":     phases,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
