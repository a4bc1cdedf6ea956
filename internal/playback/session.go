// Package playback turns video time-source events into throttled scoreboard frames.
package playback

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/preston-bernstein/scorebug-service/internal/demo"
	"github.com/preston-bernstein/scorebug-service/internal/domain/scoreboard"
	"github.com/preston-bernstein/scorebug-service/internal/logging"
	"github.com/preston-bernstein/scorebug-service/internal/metrics"
)

var (
	ErrUnknownEvent    = errors.New("unknown playback event")
	ErrInvalidTime     = errors.New("video time must be a finite number")
	ErrSessionNotFound = errors.New("playback session not found")
	ErrSessionClosed   = errors.New("playback session closed")
)

// EventKind mirrors the media element events a video player emits.
type EventKind string

const (
	EventTimeUpdate     EventKind = "timeupdate"
	EventLoadedMetadata EventKind = "loadedmetadata"
	EventPlay           EventKind = "play"
	EventPause          EventKind = "pause"
	EventEnded          EventKind = "ended"
	EventSeeked         EventKind = "seeked"
)

// Event is one time-source notification. CurrentTime is read by timeupdate and
// seeked, Duration by loadedmetadata.
type Event struct {
	Kind        EventKind `json:"type"`
	CurrentTime float64   `json:"currentTime"`
	Duration    float64   `json:"duration,omitempty"`
}

// Frame is a scoreboard snapshot derived for a moment of video.
type Frame struct {
	SessionID string           `json:"sessionId"`
	VideoTime float64          `json:"videoTime"`
	State     scoreboard.State `json:"state"`
}

// PublishFunc receives frames. It is called with the session lock held and must not block.
type PublishFunc func(Frame)

// Status describes a session's player state.
type Status struct {
	SessionID       string    `json:"sessionId"`
	ScenarioID      string    `json:"scenarioId"`
	Playing         bool      `json:"playing"`
	CurrentTime     float64   `json:"currentTime"`
	Duration        float64   `json:"duration"`
	FramesPublished int       `json:"framesPublished"`
	FramesThrottled int       `json:"framesThrottled"`
	StartedAt       time.Time `json:"startedAt"`
}

// Session follows one viewer's video and publishes the matching scoreboard.
type Session struct {
	id       string
	scenario demo.Scenario
	publish  PublishFunc
	throttle *Throttle
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time

	startOnce sync.Once
	closeOnce sync.Once

	mu     sync.Mutex
	closed bool
	status Status
}

// NewSession constructs a session; nothing is published until Start.
func NewSession(id string, scenario demo.Scenario, publish PublishFunc, interval time.Duration, logger *slog.Logger, recorder *metrics.Recorder) *Session {
	if publish == nil {
		publish = func(Frame) {}
	}
	return &Session{
		id:       id,
		scenario: scenario,
		publish:  publish,
		throttle: NewThrottle(interval),
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
		status:   Status{SessionID: id, ScenarioID: scenario.ID},
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Start publishes the frame for t = 0. Later calls are no-ops.
func (s *Session) Start() {
	s.startOnce.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.status.StartedAt = s.now()
		s.throttle.Mark()
		s.emit(0)
		logging.Info(s.logger, "playback session started",
			logging.FieldSessionID, s.id,
			logging.FieldScenarioID, s.scenario.ID,
		)
	})
}

// Handle applies one time-source event.
func (s *Session) Handle(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}

	switch ev.Kind {
	case EventTimeUpdate:
		t, err := videoTime(ev.CurrentTime)
		if err != nil {
			return err
		}
		s.status.CurrentTime = t
		if !s.throttle.Allow() {
			s.status.FramesThrottled++
			s.metrics.RecordFrame(true)
			return nil
		}
		s.emit(t)
	case EventSeeked:
		t, err := videoTime(ev.CurrentTime)
		if err != nil {
			return err
		}
		s.status.CurrentTime = t
		s.throttle.Mark()
		s.emit(t)
	case EventLoadedMetadata:
		d, err := videoTime(ev.Duration)
		if err != nil {
			return err
		}
		s.status.Duration = d
	case EventPlay:
		s.status.Playing = true
	case EventPause, EventEnded:
		s.status.Playing = false
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Kind)
	}
	return nil
}

// Status returns a snapshot of the player state.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Close stops the session; subsequent events are rejected.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		frames := s.status.FramesPublished
		s.mu.Unlock()
		logging.Info(s.logger, "playback session closed",
			logging.FieldSessionID, s.id,
			logging.FieldCount, frames,
		)
	})
}

func (s *Session) emit(t float64) {
	s.status.FramesPublished++
	s.metrics.RecordFrame(false)
	s.publish(Frame{
		SessionID: s.id,
		VideoTime: t,
		State:     demo.StateAtTime(s.scenario, t),
	})
}

// videoTime rejects non-finite values and clamps negatives to zero.
func videoTime(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidTime
	}
	return math.Max(v, 0), nil
}
