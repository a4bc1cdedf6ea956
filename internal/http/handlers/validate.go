package handlers

import (
	"encoding/json"
	"errors"
	"math"
	nethttp "net/http"
	"strconv"
	"strings"

	"github.com/preston-bernstein/scorebug-service/internal/clockfmt"
	domain "github.com/preston-bernstein/scorebug-service/internal/domain/scoreboard"
)

type validateRequest struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

// Format kinds accepted by POST /api/v1/format.
const (
	formatShotClock = "shotClock"
	formatGameClock = "gameClock"
	formatTenths    = "tenths"
)

type formatRequest struct {
	Kind  string `json:"kind"`
	Value any    `json:"value"`
	Mode  string `json:"mode,omitempty"`
}

type formatResponse struct {
	Value string `json:"value"`
}

// Validate classifies one raw field value. Invalid input is a 200 with valid=false;
// only malformed requests are errors.
func (h *Handler) Validate(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req validateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	field, err := domain.ParseField(req.Field)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, h.board.Validate(field, req.Value), h.logger)
}

// ValidateState classifies every field of a full scoreboard.
func (h *Handler) ValidateState(w nethttp.ResponseWriter, r *nethttp.Request) {
	var state domain.State
	if err := decodeJSON(r, &state); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, h.board.ValidateState(state), h.logger)
}

// Format renders a clock value in canonical display form.
func (h *Handler) Format(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req formatRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}

	mode := h.board.Mode()
	if req.Mode != "" {
		parsed, ok := clockfmt.ParseMode(req.Mode)
		if !ok {
			writeError(w, r, nethttp.StatusBadRequest, "mode must be strict or lenient", h.logger)
			return
		}
		mode = parsed
	}

	var out string
	switch req.Kind {
	case formatShotClock:
		out = clockfmt.FormatShotClock(clockText(req.Value))
	case formatGameClock:
		out = clockfmt.FormatGameClock(clockText(req.Value), mode)
	case formatTenths:
		seconds, err := seconds(req.Value)
		if err != nil {
			writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
			return
		}
		out = clockfmt.FormatTenths(seconds)
	default:
		writeError(w, r, nethttp.StatusBadRequest, "kind must be shotClock, gameClock or tenths", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, formatResponse{Value: out}, h.logger)
}

func clockText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	}
	return ""
}

var errSecondsValue = errors.New("value must be a number of seconds")

func seconds(v any) (float64, error) {
	var (
		f   float64
		err error
	)
	switch t := v.(type) {
	case json.Number:
		f, err = t.Float64()
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(t), 64)
	default:
		return 0, errSecondsValue
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errSecondsValue
	}
	return f, nil
}
