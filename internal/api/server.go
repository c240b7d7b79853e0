package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/albapepper/octofit-dashboard/internal/api/handler"
	"github.com/albapepper/octofit-dashboard/internal/config"
	"github.com/albapepper/octofit-dashboard/internal/view"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(dash *view.Dashboard, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	if logger == nil {
		logger = slog.Default()
	}
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(dash, cfg)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/views", h.HealthCheckViews)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/resources", h.ListResources)

		// Leaderboard
		r.Put("/leaderboard/metric", h.SetMetric)
		r.Get("/leaderboard/top", h.GetTopPerformers)

		// Views
		r.Route("/views/{resource}", func(r chi.Router) {
			r.Get("/", h.GetView)
			r.Post("/refresh", h.RefreshView)
			r.Post("/retry", h.RetryView)
			r.Put("/selection/{index}", h.SelectRecord)
			r.Delete("/selection", h.ClearSelection)
		})
	})

	return r
}
