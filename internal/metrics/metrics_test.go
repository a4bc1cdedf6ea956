package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksValidations(t *testing.T) {
	rec := NewRecorder()
	rec.RecordValidation("shotClock", true)
	rec.RecordValidation("shotClock", false)
	rec.RecordValidation("quarter", false)

	snap := rec.FieldSnapshot("shotClock")
	if snap.Validations != 2 || snap.ValidationFailures != 1 {
		t.Fatalf("unexpected shot clock snapshot %+v", snap)
	}
	if got := rec.FieldSnapshot("quarter").ValidationFailures; got != 1 {
		t.Fatalf("expected 1 quarter failure, got %d", got)
	}
	if got := rec.FieldSnapshot("gameClock").Validations; got != 0 {
		t.Fatalf("expected untouched field to be zero, got %d", got)
	}
}

func TestRecorderTracksTransitions(t *testing.T) {
	rec := NewRecorder()
	rec.RecordTransition("save", nil)
	rec.RecordTransition("save", errors.New("draft invalid"))

	snap := rec.EventSnapshot("save")
	if snap.Transitions != 2 || snap.TransitionErrors != 1 {
		t.Fatalf("unexpected transition snapshot %+v", snap)
	}
}

func TestRecorderTracksPlayback(t *testing.T) {
	rec := NewRecorder()
	rec.RecordSession(1)
	rec.RecordFrame(false)
	rec.RecordFrame(false)
	rec.RecordFrame(true)
	rec.RecordSession(1)
	rec.RecordSession(-1)

	snap := rec.Playback()
	if snap.Frames != 2 || snap.FramesThrottled != 1 || snap.ActiveSessions != 1 {
		t.Fatalf("unexpected playback snapshot %+v", snap)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordValidation("quarter", true)
	rec.RecordTransition("save", nil)
	rec.RecordFrame(true)
	rec.RecordSession(1)
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	if rec.Playback() != (Snapshot{}) || rec.FieldSnapshot("x") != (Snapshot{}) || rec.EventSnapshot("x") != (Snapshot{}) {
		t.Fatalf("expected zero snapshots from nil recorder")
	}
}
