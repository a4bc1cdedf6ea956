package handlers

import (
	"errors"
	"math"
	nethttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/scorebug-service/internal/demo"
	"github.com/preston-bernstein/scorebug-service/internal/logging"
)

// Scenarios lists the demo catalog.
func (h *Handler) Scenarios(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.catalog.List(), h.logger)
}

// Scenario returns one demo scenario.
func (h *Handler) Scenario(w nethttp.ResponseWriter, r *nethttp.Request) {
	s, ok := h.scenario(w, r)
	if !ok {
		return
	}
	writeJSON(w, nethttp.StatusOK, s, h.logger)
}

// ScenarioState returns the scoreboard for ?t=<seconds> of video (default 0).
func (h *Handler) ScenarioState(w nethttp.ResponseWriter, r *nethttp.Request) {
	s, ok := h.scenario(w, r)
	if !ok {
		return
	}
	t := 0.0
	if raw := r.URL.Query().Get("t"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			writeError(w, r, nethttp.StatusBadRequest, "t must be a number of seconds", h.logger)
			return
		}
		t = parsed
	}
	logging.Info(loggerFromContext(r, h.logger), "served demo state",
		logging.FieldScenarioID, s.ID,
		logging.FieldVideoTime, t,
	)
	writeJSON(w, nethttp.StatusOK, demo.StateAtTime(s, t), h.logger)
}

// Sessions lists live overlay playback sessions.
func (h *Handler) Sessions(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.sessions.List(), h.logger)
}

func (h *Handler) scenario(w nethttp.ResponseWriter, r *nethttp.Request) (demo.Scenario, bool) {
	s, err := h.catalog.Get(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, demo.ErrScenarioNotFound) {
			writeError(w, r, nethttp.StatusNotFound, "scenario not found", h.logger)
		} else {
			writeError(w, r, nethttp.StatusInternalServerError, "failed to load scenario", h.logger)
		}
		return demo.Scenario{}, false
	}
	return s, true
}
