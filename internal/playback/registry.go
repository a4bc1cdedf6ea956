package playback

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/scorebug-service/internal/demo"
	"github.com/preston-bernstein/scorebug-service/internal/metrics"
)

// Registry tracks live sessions by ID.
type Registry struct {
	interval time.Duration
	logger   *slog.Logger
	metrics  *metrics.Recorder
	newID    func() string

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry builds a registry whose sessions throttle at interval.
func NewRegistry(interval time.Duration, logger *slog.Logger, recorder *metrics.Recorder) *Registry {
	return &Registry{
		interval: interval,
		logger:   logger,
		metrics:  recorder,
		newID:    uuid.NewString,
		sessions: make(map[string]*Session),
	}
}

// Open registers a new session for scenario. The caller starts it.
func (r *Registry) Open(scenario demo.Scenario, publish PublishFunc) *Session {
	s := NewSession(r.newID(), scenario, publish, r.interval, r.logger, r.metrics)

	r.mu.Lock()
	r.sessions[s.ID()] = s
	r.mu.Unlock()

	r.metrics.RecordSession(1)
	return s
}

// Get looks up a live session.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Close closes and forgets a session.
func (r *Registry) Close(id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	s.Close()
	r.metrics.RecordSession(-1)
	return nil
}

// CloseAll closes every live session; used on shutdown.
func (r *Registry) CloseAll() {
	r.mu.RLock()
	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	for _, id := range ids {
		_ = r.Close(id)
	}
}

// List returns the status of every live session, oldest first.
func (r *Registry) List() []Status {
	r.mu.RLock()
	out := make([]Status, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s.Status())
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].SessionID < out[j].SessionID
		}
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out
}
