package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"tiptime/internal/calculator"
	"tiptime/internal/handlers"
	"tiptime/internal/observability"
)

// Options configures the router.
type Options struct {
	// MetricsPath is where the Prometheus handler is mounted. Defaults to /metrics.
	MetricsPath string
	// AllowedOrigins lists CORS origins allowed to call the API from a browser.
	AllowedOrigins []string
	// Tip serves the /tip routes.
	Tip *calculator.Handler
}

func NewRouter(opts Options) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Accept-Language", "Content-Type", observability.RequestIDHeader},
		ExposedHeaders: []string{observability.RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	metricsPath := opts.MetricsPath
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	r.Handle(metricsPath, observability.PrometheusHandler())

	if opts.Tip != nil {
		opts.Tip.RegisterRoutes(r)
	}

	return r
}
