// Package api exposes the activity decoding service over REST.
//
// Uploads are decoded synchronously; only the resulting summary is stored.
// All /api/v1 routes require the X-API-Key header. The /metrics endpoint is
// left open for scraping.
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/ssargent/fitwire/pkg/storage"
)

// StartServer starts the HTTP server with all routes configured
func StartServer(store *storage.ActivityStore, config ServerConfig, log zerolog.Logger) error {
	// Initialize metrics
	metrics := NewMetrics()

	server := NewServer(store, config, metrics)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API key authentication middleware for protected routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(metrics.InstrumentAuthMiddleware(apiKeyMiddleware(config.APIKey)))

		// Health check
		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))

		// Activities
		r.Post("/activities", metrics.InstrumentHandler("POST", "/api/v1/activities", server.handleUploadActivity))
		r.Get("/activities", metrics.InstrumentHandler("GET", "/api/v1/activities", server.handleListActivities))
		r.Get("/activities/{id}", metrics.InstrumentHandler("GET", "/api/v1/activities/{id}", server.handleGetActivity))
		r.Delete("/activities/{id}", metrics.InstrumentHandler("DELETE", "/api/v1/activities/{id}", server.handleDeleteActivity))
	})

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	log.Info().
		Str("addr", addr).
		Bool("strict_crc", config.StrictCRC).
		Msg("starting fitwire REST API server")

	return http.ListenAndServe(addr, r)
}
