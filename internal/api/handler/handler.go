// Package handler provides HTTP handlers for all API endpoints.
// Stats handlers proxy the upstream rating API and pass raw JSON through;
// injury handlers delegate to the injury service.
package handler

import (
	"net/http"

	"github.com/hoopsight/hoopsight/internal/api/respond"
	"github.com/hoopsight/hoopsight/internal/config"
	"github.com/hoopsight/hoopsight/internal/httpcache"
	"github.com/hoopsight/hoopsight/internal/injury"
	"github.com/hoopsight/hoopsight/internal/kenpom"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	kenpom   *kenpom.Client
	cache    *httpcache.Cache
	injuries injury.Service
	cfg      *config.Config
}

// New creates a Handler with shared dependencies.
func New(kp *kenpom.Client, c *httpcache.Cache, injuries injury.Service, cfg *config.Config) *Handler {
	return &Handler{
		kenpom:   kp,
		cache:    c,
		injuries: injuries,
		cfg:      cfg,
	}
}

// HealthCheck reports service liveness and feature availability.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":          "healthy",
		"injury_analysis": h.injuries.Enabled(),
		"cache":           h.cache.Stats(),
	})
}
