package handlers

import (
	"errors"
	nethttp "net/http"

	domain "github.com/preston-bernstein/scorebug-service/internal/domain/scoreboard"
	"github.com/preston-bernstein/scorebug-service/internal/editor"
)

type eventResponse struct {
	editor.Board
	Error string `json:"error,omitempty"`
}

// Scoreboard returns the live board.
func (h *Handler) Scoreboard(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.board.Board(), h.logger)
}

// ScoreboardEvent applies one editor event to the live board.
func (h *Handler) ScoreboardEvent(w nethttp.ResponseWriter, r *nethttp.Request) {
	var ev editor.Event
	if err := decodeJSON(r, &ev); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}

	board, err := h.board.Apply(r.Context(), ev)
	switch {
	case err == nil:
		writeJSON(w, nethttp.StatusOK, board, h.logger)
	case errors.Is(err, editor.ErrDraftInvalid):
		writeJSON(w, nethttp.StatusUnprocessableEntity, eventResponse{Board: board, Error: err.Error()}, h.logger)
	case errors.Is(err, editor.ErrInvalidTransition):
		writeError(w, r, nethttp.StatusConflict, err.Error(), h.logger)
	case errors.Is(err, editor.ErrUnknownEvent), errors.Is(err, domain.ErrUnknownField):
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
	default:
		writeError(w, r, nethttp.StatusInternalServerError, "failed to apply event", h.logger)
	}
}
