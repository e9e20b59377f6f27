package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"commentlens/internal/handlers"
	"commentlens/internal/handlers/api"
)

// RegisterRoutes registers all application routes. store may be nil when no
// outcome store is configured.
func (s *Server) RegisterRoutes(analyzer handlers.Analyzer, store handlers.Pinger) {
	// Initialize handlers
	analyzerHandler := handlers.NewAnalyzerHandler(analyzer, s.Cfg, s.Charts)
	probeHandler := handlers.NewProbeHandler(store)
	apiAnalyzeHandler := api.NewAnalyzeHandler(analyzer)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Frontend routes
	s.App.Get("/", analyzerHandler.Index)
	s.App.Post("/analyze", analyzerHandler.Analyze)

	// JSON API
	s.App.Post("/api/analyze", apiAnalyzeHandler.Analyze)
}
