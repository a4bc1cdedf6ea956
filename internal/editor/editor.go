// Package editor models the scorebug's viewing, editing and demo modes as a pure state machine.
package editor

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/scorebug-service/internal/clockfmt"
	"github.com/preston-bernstein/scorebug-service/internal/domain/scoreboard"
	"github.com/preston-bernstein/scorebug-service/internal/validation"
)

var (
	ErrInvalidTransition = errors.New("transition not allowed in current mode")
	ErrDraftInvalid      = errors.New("draft has validation errors")
	ErrUnknownEvent      = errors.New("unknown board event")
)

// Mode is the board's current interaction mode.
type Mode string

const (
	ModeViewing     Mode = "viewing"
	ModeEditing     Mode = "editing"
	ModeDemoPlaying Mode = "demo-playing"
)

// EventKind names a board transition.
type EventKind string

const (
	EventEnterEdit EventKind = "enter-edit"
	EventSetField  EventKind = "set-field"
	EventSave      EventKind = "save"
	EventCancel    EventKind = "cancel"
	EventEnterDemo EventKind = "enter-demo"
	EventExitDemo  EventKind = "exit-demo"
)

// Event is a transition request. Field and Value are only read for set-field.
type Event struct {
	Kind  EventKind        `json:"event"`
	Field scoreboard.Field `json:"field,omitempty"`
	Value any              `json:"value,omitempty"`
}

// Board is the whole of the editor's state: the saved snapshot, the working draft
// and any inline errors against the draft. Draft and Errors are only meaningful while editing.
type Board struct {
	Mode    Mode                        `json:"mode"`
	Current scoreboard.State            `json:"current"`
	Draft   scoreboard.State            `json:"draft"`
	Errors  map[scoreboard.Field]string `json:"errors,omitempty"`
}

// NewBoard starts in viewing mode showing initial.
func NewBoard(initial scoreboard.State) Board {
	return Board{Mode: ModeViewing, Current: initial, Draft: initial}
}

// HasErrors reports whether save is currently blocked.
func (b Board) HasErrors() bool {
	return len(b.Errors) > 0
}

// Transition applies ev to b and returns the next board. b is never modified; on error
// the returned board is b unchanged.
func Transition(b Board, ev Event, v *validation.Validator) (Board, error) {
	switch ev.Kind {
	case EventEnterEdit:
		if b.Mode != ModeViewing {
			return b, invalid(b, ev)
		}
		return Board{Mode: ModeEditing, Current: b.Current, Draft: b.Current}, nil

	case EventSetField:
		if b.Mode != ModeEditing {
			return b, invalid(b, ev)
		}
		return setField(b, ev.Field, ev.Value, v)

	case EventSave:
		if b.Mode != ModeEditing {
			return b, invalid(b, ev)
		}
		if b.HasErrors() {
			return b, ErrDraftInvalid
		}
		saved := normalize(b.Draft, v.Mode())
		if res := v.ValidateState(saved); !res.Valid {
			next := b
			next.Errors = res.Errors
			return next, ErrDraftInvalid
		}
		return Board{Mode: ModeViewing, Current: saved, Draft: saved}, nil

	case EventCancel:
		if b.Mode != ModeEditing {
			return b, invalid(b, ev)
		}
		return Board{Mode: ModeViewing, Current: b.Current, Draft: b.Current}, nil

	case EventEnterDemo:
		if b.Mode != ModeViewing {
			return b, invalid(b, ev)
		}
		return Board{Mode: ModeDemoPlaying, Current: b.Current, Draft: b.Current}, nil

	case EventExitDemo:
		if b.Mode != ModeDemoPlaying {
			return b, invalid(b, ev)
		}
		return Board{Mode: ModeViewing, Current: b.Current, Draft: b.Current}, nil
	}
	return b, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Kind)
}

func setField(b Board, field scoreboard.Field, raw any, v *validation.Validator) (Board, error) {
	if _, err := scoreboard.ParseField(string(field)); err != nil {
		return b, fmt.Errorf("%w: %q", err, field)
	}

	next := b
	next.Errors = copyErrors(b.Errors)
	delete(next.Errors, field)

	if res := v.Validate(field, raw); !res.Valid {
		next.Errors[field] = res.Error
		return next, nil
	}

	var err error
	if scoreboard.IsScore(field) {
		score, _ := validation.ParseScore(raw)
		next.Draft, err = b.Draft.WithScore(field, score)
	} else {
		next.Draft, err = b.Draft.WithText(field, validation.Text(raw))
	}
	if err != nil {
		return b, err
	}
	if len(next.Errors) == 0 {
		next.Errors = nil
	}
	return next, nil
}

// normalize renders accepted loose clock input in canonical display form.
func normalize(s scoreboard.State, mode clockfmt.Mode) scoreboard.State {
	s.ShotClock = clockfmt.FormatShotClock(s.ShotClock)
	s.GameClock = clockfmt.FormatGameClock(s.GameClock, mode)
	return s
}

func copyErrors(in map[scoreboard.Field]string) map[scoreboard.Field]string {
	out := make(map[scoreboard.Field]string, len(in)+1)
	for k, v := range in {
		out[k] = v
	}
	return out
}

func invalid(b Board, ev Event) error {
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, ev.Kind, b.Mode)
}
