package metrics

import (
	"sync"
	"time"
)

type counterStats struct {
	total    int
	failures int
}

type playbackStats struct {
	frames         int
	throttled      int
	activeSessions int
}

// Recorder captures lightweight, in-memory metrics about validation, board transitions
// and demo playback, and forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu          sync.Mutex
	validations map[string]*counterStats
	transitions map[string]*counterStats
	playback    playbackStats
	otel        *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		validations: make(map[string]*counterStats),
		transitions: make(map[string]*counterStats),
		otel:        otel,
	}
}

// RecordValidation counts a field validation and whether it failed.
func (r *Recorder) RecordValidation(field string, valid bool) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := ensure(r.validations, field)
	stats.total++
	if !valid {
		stats.failures++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordValidation(field, valid)
	}
}

// RecordTransition counts a board state machine event and whether it was rejected.
func (r *Recorder) RecordTransition(event string, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := ensure(r.transitions, event)
	stats.total++
	if err != nil {
		stats.failures++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordTransition(event, err)
	}
}

// RecordFrame counts a demo frame, published or dropped by the throttle.
func (r *Recorder) RecordFrame(throttled bool) {
	if r == nil {
		return
	}
	r.mu.Lock()
	if throttled {
		r.playback.throttled++
	} else {
		r.playback.frames++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordFrame(throttled)
	}
}

// RecordSession tracks playback sessions opening (delta 1) and closing (delta -1).
func (r *Recorder) RecordSession(delta int) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.playback.activeSessions += delta
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordSession(int64(delta))
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a point-in-time copy of the in-memory counters.
type Snapshot struct {
	Validations        int
	ValidationFailures int
	Transitions        int
	TransitionErrors   int
	Frames             int
	FramesThrottled    int
	ActiveSessions     int
}

// FieldSnapshot returns validation counts for one field plus playback totals.
func (r *Recorder) FieldSnapshot(field string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := r.playbackSnapshot()
	if stats, ok := r.validations[field]; ok {
		snap.Validations = stats.total
		snap.ValidationFailures = stats.failures
	}
	return snap
}

// EventSnapshot returns transition counts for one event plus playback totals.
func (r *Recorder) EventSnapshot(event string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := r.playbackSnapshot()
	if stats, ok := r.transitions[event]; ok {
		snap.Transitions = stats.total
		snap.TransitionErrors = stats.failures
	}
	return snap
}

// Playback returns frame and session totals.
func (r *Recorder) Playback() Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.playbackSnapshot()
}

func (r *Recorder) playbackSnapshot() Snapshot {
	return Snapshot{
		Frames:          r.playback.frames,
		FramesThrottled: r.playback.throttled,
		ActiveSessions:  r.playback.activeSessions,
	}
}

func ensure(m map[string]*counterStats, key string) *counterStats {
	stats, ok := m[key]
	if !ok {
		stats = &counterStats{}
		m[key] = stats
	}
	return stats
}
