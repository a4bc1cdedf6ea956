package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/scorebug-service/internal/demo"
	"github.com/preston-bernstein/scorebug-service/internal/http/requestutil"
	"github.com/preston-bernstein/scorebug-service/internal/logging"
)

// LoadCatalogFunc reads a scenario catalog from disk.
type LoadCatalogFunc func(path string) (*demo.Catalog, error)

// AdminHandler exposes admin-only endpoints (scenario catalog reload).
type AdminHandler struct {
	catalog      *demo.Catalog
	scenarioFile string
	load         LoadCatalogFunc
	token        string
	logger       *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. An empty token rejects every request.
func NewAdminHandler(catalog *demo.Catalog, scenarioFile, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		catalog:      catalog,
		scenarioFile: scenarioFile,
		load:         demo.LoadCatalog,
		token:        token,
		logger:       logger,
	}
}

// ReloadScenarios re-reads DEMO_SCENARIO_FILE and swaps it into the live catalog.
// Open overlay sessions keep the scenario they started with.
func (h *AdminHandler) ReloadScenarios(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	if !h.authorize(r) {
		logging.Warn(logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", logger)
		return
	}
	if h.scenarioFile == "" {
		writeError(w, r, http.StatusConflict, "no scenario file configured", logger)
		return
	}

	loaded, err := h.load(h.scenarioFile)
	if err != nil {
		logging.Warn(logger, "admin scenario reload failed",
			slog.String("file", h.scenarioFile),
			slog.Any("err", err),
		)
		writeError(w, r, http.StatusUnprocessableEntity, err.Error(), logger)
		return
	}
	h.catalog.Replace(loaded)

	writeJSON(w, http.StatusOK, map[string]any{
		"scenarios": h.catalog.Len(),
		"status":    "ok",
	}, logger)
	logging.Info(logger, "admin scenarios reloaded",
		slog.String("file", h.scenarioFile),
		slog.Int(logging.FieldCount, h.catalog.Len()),
	)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	want := []byte("Bearer " + h.token)
	return subtle.ConstantTimeCompare([]byte(r.Header.Get("Authorization")), want) == 1
}
