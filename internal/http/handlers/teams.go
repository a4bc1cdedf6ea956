package handlers

import (
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
)

// Teams lists the team catalog.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.teams.Teams(), h.logger)
}

// TeamByKey returns one team, including its logo URL.
func (h *Handler) TeamByKey(w nethttp.ResponseWriter, r *nethttp.Request) {
	key := chi.URLParam(r, "key")
	team, ok := h.teams.TeamByKey(key)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "team not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, team, h.logger)
}
