package overlay

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/preston-bernstein/scorebug-service/internal/demo"
	"github.com/preston-bernstein/scorebug-service/internal/logging"
	"github.com/preston-bernstein/scorebug-service/internal/playback"
)

// Handler upgrades overlay connections and binds each one to a playback session.
type Handler struct {
	catalog  *demo.Catalog
	sessions *playback.Registry
	logger   *slog.Logger
	upgrader websocket.Upgrader
	// ctx outlives individual requests so pumps stop on server shutdown, not when ServeHTTP returns.
	ctx context.Context
}

// NewHandler constructs a Handler. allowedOrigins containing "*" accepts any origin.
func NewHandler(ctx context.Context, catalog *demo.Catalog, sessions *playback.Registry, allowedOrigins []string, logger *slog.Logger) *Handler {
	return &Handler{
		catalog:  catalog,
		sessions: sessions,
		logger:   logger,
		ctx:      ctx,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

// Stream serves GET /api/v1/demo/scenarios/{id}/stream.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context(), h.logger)
	scenario, err := h.catalog.Get(chi.URLParam(r, "id"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, demo.ErrScenarioNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		logging.Warn(logger, "overlay upgrade failed", logging.FieldScenarioID, scenario.ID, "error", err)
		return
	}

	client := NewClient(conn, logger)
	session := h.sessions.Open(scenario, client.PublishFrame)
	client.Attach(session, h.sessions.Close)

	client.TrySend(Message{Type: MessageSession, SessionID: session.ID()})
	session.Start()

	logging.Info(logger, "overlay stream opened",
		logging.FieldSessionID, session.ID(),
		logging.FieldScenarioID, scenario.ID,
	)

	go client.WritePump(h.ctx)
	go client.ReadPump(h.ctx)
}

func originChecker(allowed []string) func(*http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}
