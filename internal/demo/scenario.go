// Package demo maps video playback time onto scripted scoreboard snapshots.
package demo

import (
	"errors"
	"fmt"
	"math"

	"github.com/preston-bernstein/scorebug-service/internal/clockfmt"
	"github.com/preston-bernstein/scorebug-service/internal/domain/scoreboard"
	"github.com/preston-bernstein/scorebug-service/internal/domain/teams"
	"github.com/preston-bernstein/scorebug-service/internal/validation"
)

var (
	ErrScenarioNotFound = errors.New("demo scenario not found")
	ErrInvalidScenario  = errors.New("invalid demo scenario")
)

// Scenario scripts a single clip: the clock starts counting down at ClockStartTime
// and a scoring play lands at EventTime with the clock frozen at EventGameClockSeconds.
// All times are seconds of video; clock values are seconds remaining in the period.
type Scenario struct {
	ID                      string           `json:"id" yaml:"id"`
	Name                    string           `json:"name" yaml:"name"`
	VideoFile               string           `json:"videoFile" yaml:"videoFile"`
	ClockStartTime          float64          `json:"clockStartTime" yaml:"clockStartTime"`
	InitialGameClockSeconds float64          `json:"initialGameClockSeconds" yaml:"initialGameClockSeconds"`
	EventTime               float64          `json:"eventTime" yaml:"eventTime"`
	EventGameClockSeconds   float64          `json:"eventGameClockSeconds" yaml:"eventGameClockSeconds"`
	Initial                 scoreboard.State `json:"initial" yaml:"initial"`
	FinalHomeScore          int              `json:"finalHomeScore" yaml:"finalHomeScore"`
	FinalAwayScore          int              `json:"finalAwayScore" yaml:"finalAwayScore"`
}

// StateAtTime derives the scoreboard shown at videoTime. It keeps no state, so seeking
// backwards or delivering the same time twice always yields the same snapshot.
func StateAtTime(s Scenario, videoTime float64) scoreboard.State {
	state := s.Initial
	if videoTime < s.ClockStartTime {
		state.GameClock = clockfmt.FormatTenths(s.InitialGameClockSeconds)
		return state
	}

	elapsed := videoTime - s.ClockStartTime
	remaining := math.Max(s.EventGameClockSeconds, s.InitialGameClockSeconds-elapsed)
	state.GameClock = clockfmt.FormatTenths(remaining)

	if videoTime >= s.EventTime {
		state.HomeScore = s.FinalHomeScore
		state.AwayScore = s.FinalAwayScore
	}
	return state
}

// Validate checks the scenario's timeline is internally consistent and that every
// snapshot StateAtTime can produce is a legal scoreboard. The game clock is exempt
// because it is always rendered from the numeric clock fields in tenths.
func (s Scenario) Validate() error {
	if err := s.validateTimeline(); err != nil {
		return err
	}
	return s.validateBoard()
}

func (s Scenario) validateTimeline() error {
	switch {
	case s.ID == "":
		return fmt.Errorf("%w: missing id", ErrInvalidScenario)
	case s.ClockStartTime < 0 || s.EventTime < 0:
		return fmt.Errorf("%w: %s: video times must be non-negative", ErrInvalidScenario, s.ID)
	case s.EventTime < s.ClockStartTime:
		return fmt.Errorf("%w: %s: eventTime precedes clockStartTime", ErrInvalidScenario, s.ID)
	case s.EventGameClockSeconds < 0 || s.InitialGameClockSeconds < 0:
		return fmt.Errorf("%w: %s: game clock values must be non-negative", ErrInvalidScenario, s.ID)
	case s.EventGameClockSeconds > s.InitialGameClockSeconds:
		return fmt.Errorf("%w: %s: event clock exceeds initial clock", ErrInvalidScenario, s.ID)
	}
	return nil
}

type boardCheck struct {
	name string
	res  validation.Result
}

func (s Scenario) validateBoard() error {
	initial := s.Initial
	checks := []boardCheck{
		{string(scoreboard.FieldHomeTeam), validation.ValidateTeam(knownTeams, initial.HomeTeam)},
		{string(scoreboard.FieldAwayTeam), validation.ValidateTeam(knownTeams, initial.AwayTeam)},
		{string(scoreboard.FieldHomeScore), validation.ValidateScore(initial.HomeScore)},
		{string(scoreboard.FieldAwayScore), validation.ValidateScore(initial.AwayScore)},
		{"finalHomeScore", validation.ValidateScore(s.FinalHomeScore)},
		{"finalAwayScore", validation.ValidateScore(s.FinalAwayScore)},
		{string(scoreboard.FieldHomeRecord), validation.ValidateRecord(initial.HomeRecord)},
		{string(scoreboard.FieldAwayRecord), validation.ValidateRecord(initial.AwayRecord)},
		{string(scoreboard.FieldQuarter), validation.ValidateQuarter(initial.Quarter)},
	}
	// An empty shot clock means the clip hides it.
	if initial.ShotClock != "" {
		checks = append(checks, boardCheck{string(scoreboard.FieldShotClock), validation.ValidateShotClock(initial.ShotClock)})
	}
	for _, c := range checks {
		if !c.res.Valid {
			return fmt.Errorf("%w: %s: %s: %s", ErrInvalidScenario, s.ID, c.name, c.res.Error)
		}
	}
	return nil
}

type teamSet map[string]struct{}

func (t teamSet) HasTeam(key string) bool {
	_, ok := t[key]
	return ok
}

var knownTeams = func() teamSet {
	set := make(teamSet)
	for _, team := range teams.NBA() {
		set[team.Key] = struct{}{}
	}
	return set
}()

// CelticsBulls is the built-in game winner clip.
func CelticsBulls() Scenario {
	return Scenario{
		ID:                      "celtics-bulls-game-winner",
		Name:                    "Bulls vs Celtics - Game Winner",
		VideoFile:               "/videos/bulls-celtics.mp4",
		ClockStartTime:          3,
		InitialGameClockSeconds: 14.2,
		EventTime:               18,
		EventGameClockSeconds:   0.2,
		Initial: scoreboard.State{
			HomeTeam:   "bulls",
			AwayTeam:   "celtics",
			HomeScore:  111,
			AwayScore:  111,
			HomeRecord: "(44-38)",
			AwayRecord: "(52-30)",
			Quarter:    "4th",
			GameClock:  ":14.2",
			ShotClock:  "",
		},
		FinalHomeScore: 114,
		FinalAwayScore: 111,
	}
}
