package scoreboard

import "errors"

// ErrUnknownField is returned when a field identifier does not name a scoreboard field.
var ErrUnknownField = errors.New("unknown scoreboard field")

// Field identifies a single editable scoreboard value.
type Field string

const (
	FieldHomeTeam   Field = "homeTeam"
	FieldAwayTeam   Field = "awayTeam"
	FieldHomeScore  Field = "homeScore"
	FieldAwayScore  Field = "awayScore"
	FieldHomeRecord Field = "homeRecord"
	FieldAwayRecord Field = "awayRecord"
	FieldQuarter    Field = "quarter"
	FieldGameClock  Field = "gameClock"
	FieldShotClock  Field = "shotClock"
)

// Fields lists every field in display order.
var Fields = []Field{
	FieldAwayTeam,
	FieldAwayRecord,
	FieldAwayScore,
	FieldHomeTeam,
	FieldHomeRecord,
	FieldHomeScore,
	FieldQuarter,
	FieldGameClock,
	FieldShotClock,
}

// ParseField resolves a field identifier.
func ParseField(raw string) (Field, error) {
	for _, f := range Fields {
		if string(f) == raw {
			return f, nil
		}
	}
	return "", ErrUnknownField
}

// Quarters is the fixed set of accepted period labels.
var Quarters = []string{"1st", "2nd", "3rd", "4th", "OT", "OT1", "OT2", "OT3", "OT4", "OT5"}

// SeasonGames is the number of regular season games a record must add up to.
const SeasonGames = 82

// State is a complete scorebug snapshot. It is a value type; updates replace the whole struct.
type State struct {
	HomeTeam   string `json:"homeTeam" yaml:"homeTeam"`
	AwayTeam   string `json:"awayTeam" yaml:"awayTeam"`
	HomeScore  int    `json:"homeScore" yaml:"homeScore"`
	AwayScore  int    `json:"awayScore" yaml:"awayScore"`
	HomeRecord string `json:"homeRecord" yaml:"homeRecord"`
	AwayRecord string `json:"awayRecord" yaml:"awayRecord"`
	Quarter    string `json:"quarter" yaml:"quarter"`
	GameClock  string `json:"gameClock" yaml:"gameClock"`
	ShotClock  string `json:"shotClock" yaml:"shotClock"`
}

// Value returns the field's current value: an int for scores, a string otherwise.
func (s State) Value(f Field) any {
	switch f {
	case FieldHomeTeam:
		return s.HomeTeam
	case FieldAwayTeam:
		return s.AwayTeam
	case FieldHomeScore:
		return s.HomeScore
	case FieldAwayScore:
		return s.AwayScore
	case FieldHomeRecord:
		return s.HomeRecord
	case FieldAwayRecord:
		return s.AwayRecord
	case FieldQuarter:
		return s.Quarter
	case FieldGameClock:
		return s.GameClock
	case FieldShotClock:
		return s.ShotClock
	}
	return nil
}

// WithText returns a copy of s with a string field replaced.
func (s State) WithText(f Field, value string) (State, error) {
	switch f {
	case FieldHomeTeam:
		s.HomeTeam = value
	case FieldAwayTeam:
		s.AwayTeam = value
	case FieldHomeRecord:
		s.HomeRecord = value
	case FieldAwayRecord:
		s.AwayRecord = value
	case FieldQuarter:
		s.Quarter = value
	case FieldGameClock:
		s.GameClock = value
	case FieldShotClock:
		s.ShotClock = value
	default:
		return s, ErrUnknownField
	}
	return s, nil
}

// WithScore returns a copy of s with a score field replaced.
func (s State) WithScore(f Field, value int) (State, error) {
	switch f {
	case FieldHomeScore:
		s.HomeScore = value
	case FieldAwayScore:
		s.AwayScore = value
	default:
		return s, ErrUnknownField
	}
	return s, nil
}

// IsScore reports whether f holds a numeric score.
func IsScore(f Field) bool {
	return f == FieldHomeScore || f == FieldAwayScore
}

// Default is the tip-off board shown before anyone edits it.
func Default() State {
	return State{
		HomeTeam:   "bulls",
		AwayTeam:   "celtics",
		HomeRecord: "(41-41)",
		AwayRecord: "(50-32)",
		Quarter:    "1st",
		GameClock:  "12:00",
		ShotClock:  ":24",
	}
}
