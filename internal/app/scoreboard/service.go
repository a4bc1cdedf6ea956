package scoreboard

import (
	"context"
	"errors"
	"log/slog"

	"github.com/preston-bernstein/scorebug-service/internal/clockfmt"
	domain "github.com/preston-bernstein/scorebug-service/internal/domain/scoreboard"
	"github.com/preston-bernstein/scorebug-service/internal/editor"
	"github.com/preston-bernstein/scorebug-service/internal/logging"
	"github.com/preston-bernstein/scorebug-service/internal/metrics"
	"github.com/preston-bernstein/scorebug-service/internal/validation"
)

// Store holds the live board.
type Store interface {
	Board() editor.Board
	UpdateBoard(fn func(editor.Board) (editor.Board, error)) (editor.Board, error)
}

// Service applies editor transitions to the live board and exposes the validator.
type Service struct {
	store     Store
	validator *validation.Validator
	metrics   *metrics.Recorder
	logger    *slog.Logger
}

// NewService constructs a Service. metrics and logger may be nil.
func NewService(store Store, validator *validation.Validator, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	return &Service{
		store:     store,
		validator: validator,
		metrics:   recorder,
		logger:    logger,
	}
}

// Board returns the live board.
func (s *Service) Board() editor.Board {
	return s.store.Board()
}

// Mode reports the game clock mode the validator runs in.
func (s *Service) Mode() clockfmt.Mode {
	return s.validator.Mode()
}

// Apply runs ev against the live board atomically. On ErrDraftInvalid the returned
// board carries the inline errors that blocked the save.
func (s *Service) Apply(ctx context.Context, ev editor.Event) (editor.Board, error) {
	logger := logging.FromContext(ctx, s.logger)

	board, err := s.store.UpdateBoard(func(b editor.Board) (editor.Board, error) {
		return editor.Transition(b, ev, s.validator)
	})
	s.metrics.RecordTransition(string(ev.Kind), err)

	if ev.Kind == editor.EventSetField && err == nil {
		_, failed := board.Errors[ev.Field]
		s.metrics.RecordValidation(string(ev.Field), !failed)
	}

	switch {
	case err == nil:
		logging.Info(logger, "board transition",
			logging.FieldEvent, ev.Kind,
			logging.FieldMode, board.Mode,
		)
	case errors.Is(err, editor.ErrDraftInvalid):
		logging.Warn(logger, "save blocked by validation errors",
			logging.FieldEvent, ev.Kind,
			logging.FieldCount, len(board.Errors),
		)
	default:
		logging.Warn(logger, "board transition rejected",
			logging.FieldEvent, ev.Kind,
			logging.FieldMode, board.Mode,
			"error", err,
		)
	}
	return board, err
}

// Validate classifies a single raw field value.
func (s *Service) Validate(field domain.Field, raw any) validation.Result {
	res := s.validator.Validate(field, raw)
	s.metrics.RecordValidation(string(field), res.Valid)
	return res
}

// ValidateState classifies every field of state.
func (s *Service) ValidateState(state domain.State) validation.StateResult {
	res := s.validator.ValidateState(state)
	for _, f := range domain.Fields {
		_, failed := res.Errors[f]
		s.metrics.RecordValidation(string(f), !failed)
	}
	return res
}
