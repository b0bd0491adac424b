// Package api wires the Chi router, middleware stack, and endpoint handlers.
package api

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"

	"github.com/hoopsight/hoopsight/internal/api/handler"
	"github.com/hoopsight/hoopsight/internal/config"
	"github.com/hoopsight/hoopsight/internal/httpcache"
	"github.com/hoopsight/hoopsight/internal/injury"
	"github.com/hoopsight/hoopsight/internal/kenpom"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(kp *kenpom.Client, appCache *httpcache.Cache, injuries injury.Service, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "Link", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(kp, appCache, injuries, cfg)

	// --- Routes ---

	// Dashboard
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, filepath.Join(cfg.StaticDir, "index.html"))
	})

	// Health check
	r.Get("/health", h.HealthCheck)

	// Stats proxy
	r.Route("/api", func(r chi.Router) {
		r.Get("/ratings", h.GetRatings)
		r.Get("/archive", h.GetArchive)
		r.Get("/four-factors", h.GetFourFactors)
		r.Get("/pointdist", h.GetPointDistribution)
		r.Get("/height", h.GetHeight)
		r.Get("/misc-stats", h.GetMiscStats)
		r.Get("/fanmatch", h.GetFanMatch)
		r.Get("/conf-ratings", h.GetConferenceRatings)
		r.Get("/teams", h.GetTeams)
		r.Get("/conferences", h.GetConferences)

		// Injury intelligence
		r.Get("/injuries", h.GetAllInjuries)
		r.Get("/injuries/team", h.GetTeamInjuries)
		r.Get("/injuries/matchup", h.GetMatchupInjuries)
	})

	return r
}
