package handlers

import (
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/scorebug-service/internal/app/scoreboard"
	"github.com/preston-bernstein/scorebug-service/internal/app/teams"
	"github.com/preston-bernstein/scorebug-service/internal/demo"
	"github.com/preston-bernstein/scorebug-service/internal/playback"
)

// Handler wires HTTP routes to the application services.
type Handler struct {
	teams    *teams.Service
	board    *scoreboard.Service
	catalog  *demo.Catalog
	sessions *playback.Registry
	logger   *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(teamSvc *teams.Service, boardSvc *scoreboard.Service, catalog *demo.Catalog, sessions *playback.Registry, logger *slog.Logger) *Handler {
	return &Handler{
		teams:    teamSvc,
		board:    boardSvc,
		catalog:  catalog,
		sessions: sessions,
		logger:   logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic: the team catalog and at least one demo scenario are loaded.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch {
	case len(h.teams.Teams()) == 0:
		writeError(w, r, nethttp.StatusServiceUnavailable, "team catalog empty", h.logger)
	case h.catalog.Len() == 0:
		writeError(w, r, nethttp.StatusServiceUnavailable, "no demo scenarios loaded", h.logger)
	default:
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
	}
}
