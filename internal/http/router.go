package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/scorebug-service/internal/http/handlers"
	"github.com/preston-bernstein/scorebug-service/internal/http/middleware"
	"github.com/preston-bernstein/scorebug-service/internal/http/overlay"
	"github.com/preston-bernstein/scorebug-service/internal/metrics"
)

// RouterConfig collects everything the router mounts. Admin and Overlay are optional.
type RouterConfig struct {
	Handler        *handlers.Handler
	Admin          *handlers.AdminHandler
	Overlay        *overlay.Handler
	Logger         *slog.Logger
	Metrics        *metrics.Recorder
	AllowedOrigins []string
}

// NewRouter registers HTTP routes on a chi router.
func NewRouter(cfg RouterConfig) nethttp.Handler {
	h := cfg.Handler
	r := chi.NewRouter()

	r.Use(func(next nethttp.Handler) nethttp.Handler {
		return middleware.LoggingMiddleware(cfg.Logger, cfg.Metrics, next)
	})
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/teams", h.Teams)
		r.Get("/teams/{key}", h.TeamByKey)

		r.Post("/validate", h.Validate)
		r.Post("/validate/state", h.ValidateState)
		r.Post("/format", h.Format)

		r.Get("/scoreboard", h.Scoreboard)
		r.Post("/scoreboard/events", h.ScoreboardEvent)

		r.Route("/demo", func(r chi.Router) {
			r.Get("/scenarios", h.Scenarios)
			r.Get("/scenarios/{id}", h.Scenario)
			r.Get("/scenarios/{id}/state", h.ScenarioState)
			if cfg.Overlay != nil {
				r.Get("/scenarios/{id}/stream", cfg.Overlay.Stream)
			}
			r.Get("/sessions", h.Sessions)
		})
	})

	if cfg.Admin != nil {
		r.Post("/admin/scenarios/reload", cfg.Admin.ReloadScenarios)
	}
	return r
}
