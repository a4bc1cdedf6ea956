package playback

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/scorebug-service/internal/demo"
	"github.com/preston-bernstein/scorebug-service/internal/metrics"
	"github.com/preston-bernstein/scorebug-service/internal/testutil"
)

type frameSink struct {
	frames []Frame
}

func (s *frameSink) publish(f Frame) { s.frames = append(s.frames, f) }

func newTestSession(t *testing.T) (*Session, *frameSink, *testutil.Clock, *metrics.Recorder) {
	t.Helper()
	clock := newFakeClock()
	sink := &frameSink{}
	rec := metrics.NewRecorder()
	s := NewSession("s-1", demo.CelticsBulls(), sink.publish, 33*time.Millisecond, nil, rec)
	s.now = clock.Now
	s.throttle.now = clock.Now
	return s, sink, clock, rec
}

func TestSessionStartPublishesInitialFrameOnce(t *testing.T) {
	s, sink, _, _ := newTestSession(t)

	s.Start()
	s.Start()

	require.Len(t, sink.frames, 1)
	f := sink.frames[0]
	assert.Equal(t, "s-1", f.SessionID)
	assert.Equal(t, 0.0, f.VideoTime)
	assert.Equal(t, ":14.2", f.State.GameClock)
	assert.Equal(t, 111, f.State.HomeScore)
	assert.False(t, s.Status().StartedAt.IsZero())
}

func TestSessionThrottlesTimeUpdates(t *testing.T) {
	s, sink, clock, rec := newTestSession(t)
	s.Start()

	clock.Advance(10 * time.Millisecond)
	require.NoError(t, s.Handle(Event{Kind: EventTimeUpdate, CurrentTime: 4}))
	assert.Len(t, sink.frames, 1, "update inside the interval is dropped")
	assert.Equal(t, 4.0, s.Status().CurrentTime, "current time still tracks every update")

	clock.Advance(40 * time.Millisecond)
	require.NoError(t, s.Handle(Event{Kind: EventTimeUpdate, CurrentTime: 5}))
	require.Len(t, sink.frames, 2)
	assert.Equal(t, ":12.2", sink.frames[1].State.GameClock)

	st := s.Status()
	assert.Equal(t, 2, st.FramesPublished)
	assert.Equal(t, 1, st.FramesThrottled)
	snap := rec.Playback()
	assert.Equal(t, 2, snap.Frames)
	assert.Equal(t, 1, snap.FramesThrottled)
}

func TestSessionSeekBypassesThrottle(t *testing.T) {
	s, sink, _, _ := newTestSession(t)
	s.Start()

	require.NoError(t, s.Handle(Event{Kind: EventSeeked, CurrentTime: 20}))
	require.Len(t, sink.frames, 2)
	assert.Equal(t, 114, sink.frames[1].State.HomeScore)
	assert.Equal(t, ":00.2", sink.frames[1].State.GameClock)

	// seeking backwards restores the pre-shot score
	require.NoError(t, s.Handle(Event{Kind: EventSeeked, CurrentTime: 1}))
	require.Len(t, sink.frames, 3)
	assert.Equal(t, 111, sink.frames[2].State.HomeScore)
	assert.Equal(t, 1.0, s.Status().CurrentTime)
}

func TestSessionPlayerState(t *testing.T) {
	s, _, _, _ := newTestSession(t)

	require.NoError(t, s.Handle(Event{Kind: EventLoadedMetadata, Duration: 24.5}))
	require.NoError(t, s.Handle(Event{Kind: EventPlay}))
	assert.True(t, s.Status().Playing)
	require.NoError(t, s.Handle(Event{Kind: EventPause}))
	assert.False(t, s.Status().Playing)
	require.NoError(t, s.Handle(Event{Kind: EventPlay}))
	require.NoError(t, s.Handle(Event{Kind: EventEnded}))

	st := s.Status()
	assert.False(t, st.Playing)
	assert.Equal(t, 24.5, st.Duration)
	assert.Equal(t, "celtics-bulls-game-winner", st.ScenarioID)
}

func TestSessionRejectsBadEvents(t *testing.T) {
	s, sink, _, _ := newTestSession(t)

	err := s.Handle(Event{Kind: "volumechange"})
	assert.True(t, errors.Is(err, ErrUnknownEvent))

	err = s.Handle(Event{Kind: EventSeeked, CurrentTime: math.NaN()})
	assert.True(t, errors.Is(err, ErrInvalidTime))
	assert.Empty(t, sink.frames)

	require.NoError(t, s.Handle(Event{Kind: EventSeeked, CurrentTime: -3}))
	assert.Equal(t, 0.0, sink.frames[0].VideoTime)
}

func TestSessionClosedRejectsEvents(t *testing.T) {
	s, _, _, _ := newTestSession(t)
	s.Close()
	s.Close()

	err := s.Handle(Event{Kind: EventPlay})
	assert.True(t, errors.Is(err, ErrSessionClosed))
}
