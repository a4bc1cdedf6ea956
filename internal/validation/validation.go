// Package validation classifies raw scoreboard input. It never normalizes; see clockfmt for that.
package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/preston-bernstein/scorebug-service/internal/clockfmt"
	"github.com/preston-bernstein/scorebug-service/internal/domain/scoreboard"
)

const (
	MaxShotClock = 24
	MaxMinutes   = 12
	MaxSeconds   = 59
	MaxScore     = 999
)

// Result is the outcome of validating one field. Error is empty when Valid.
type Result struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// StateResult aggregates per-field results for a whole scoreboard.
type StateResult struct {
	Valid  bool                        `json:"valid"`
	Errors map[scoreboard.Field]string `json:"errors,omitempty"`
}

// TeamLookup answers whether a team key exists in the team catalog.
type TeamLookup interface {
	HasTeam(key string) bool
}

var (
	valid = Result{Valid: true}

	shotClockPattern = regexp.MustCompile(`^:?\d{1,2}$`)
	recordPattern    = regexp.MustCompile(`^\((\d{2})-(\d{2})\)$`)

	quarterList = strings.Join(scoreboard.Quarters, ", ")
)

func fail(msg string) Result {
	return Result{Valid: false, Error: msg}
}

// Validator dispatches field validation. The game clock mode is fixed at construction.
type Validator struct {
	teams TeamLookup
	mode  clockfmt.Mode
}

// New builds a Validator. An unknown mode falls back to lenient.
func New(teams TeamLookup, mode clockfmt.Mode) *Validator {
	if _, known := clockfmt.ParseMode(string(mode)); !known {
		mode = clockfmt.ModeLenient
	}
	return &Validator{teams: teams, mode: mode}
}

// Mode reports the game clock mode in use.
func (v *Validator) Mode() clockfmt.Mode {
	return v.mode
}

// Validate classifies raw for field. raw may be a string or a number.
func (v *Validator) Validate(field scoreboard.Field, raw any) Result {
	switch field {
	case scoreboard.FieldShotClock:
		return ValidateShotClock(Text(raw))
	case scoreboard.FieldGameClock:
		return ValidateGameClock(Text(raw), v.mode)
	case scoreboard.FieldQuarter:
		return ValidateQuarter(Text(raw))
	case scoreboard.FieldHomeTeam, scoreboard.FieldAwayTeam:
		return ValidateTeam(v.teams, Text(raw))
	case scoreboard.FieldHomeScore, scoreboard.FieldAwayScore:
		return ValidateScore(raw)
	case scoreboard.FieldHomeRecord, scoreboard.FieldAwayRecord:
		return ValidateRecord(Text(raw))
	}
	return fail(scoreboard.ErrUnknownField.Error())
}

// ValidateState runs every field validator against s.
func (v *Validator) ValidateState(s scoreboard.State) StateResult {
	res := StateResult{Valid: true}
	for _, f := range scoreboard.Fields {
		r := v.Validate(f, s.Value(f))
		if r.Valid {
			continue
		}
		if res.Errors == nil {
			res.Errors = make(map[scoreboard.Field]string)
		}
		res.Valid = false
		res.Errors[f] = r.Error
	}
	return res
}

// ValidateShotClock accepts ":SS" or "SS" within 0-24.
func ValidateShotClock(value string) Result {
	if hasLetter(value) {
		return fail("Shot clock cannot contain letters")
	}
	if !shotClockPattern.MatchString(value) {
		return fail("Shot clock format: :00 to :24")
	}
	seconds, err := strconv.Atoi(strings.TrimPrefix(value, ":"))
	if err != nil {
		return fail("Shot clock must be a number (0-24)")
	}
	if seconds < 0 || seconds > MaxShotClock {
		return fail("Shot clock must be 0-24")
	}
	return valid
}

// ValidateGameClock accepts the surface forms allowed by mode, capped at 12:00.
func ValidateGameClock(value string, mode clockfmt.Mode) Result {
	if hasLetter(value) {
		return fail("Game clock cannot contain letters")
	}
	clock, parsed := clockfmt.ParseGameClock(value, mode)
	if !parsed {
		if mode == clockfmt.ModeStrict {
			return fail("Enter MM:SS like '5:42' or ':30'")
		}
		return fail("Enter MM:SS like '5:42' or just '5' for 5:00")
	}
	if clock.Minutes > MaxMinutes || (clock.Minutes == MaxMinutes && clock.Seconds > 0) {
		return fail("Game clock cannot exceed 12:00")
	}
	if clock.Seconds > MaxSeconds {
		return fail("Seconds must be 0-59")
	}
	return valid
}

// ValidateQuarter accepts only the fixed period labels.
func ValidateQuarter(value string) Result {
	for _, q := range scoreboard.Quarters {
		if q == value {
			return valid
		}
	}
	return fail("Quarter must be one of: " + quarterList)
}

// ValidateTeam checks membership in the team lookup.
func ValidateTeam(teams TeamLookup, key string) Result {
	if teams != nil && teams.HasTeam(key) {
		return valid
	}
	return fail("Invalid team selection")
}

// ValidateScore accepts native numbers or numeric strings within 0-999.
func ValidateScore(raw any) Result {
	score, parsed, whole := scoreValue(raw)
	if !parsed {
		return fail("Score must be a number")
	}
	if !whole {
		return fail("Score must be a whole number")
	}
	if score < 0 {
		return fail("Score cannot be negative")
	}
	if score > MaxScore {
		return fail("Score cannot exceed 999")
	}
	return valid
}

// ValidateRecord accepts "(WW-LL)" where WW+LL is a full season.
func ValidateRecord(value string) Result {
	if hasLetter(value) {
		return fail("No letters allowed")
	}
	m := recordPattern.FindStringSubmatch(value)
	if m == nil {
		return fail("Format: (XX-XX)")
	}
	wins, _ := strconv.Atoi(m[1])
	losses, _ := strconv.Atoi(m[2])
	if total := wins + losses; total != scoreboard.SeasonGames {
		return fail(fmt.Sprintf("W+L must equal %d (currently %d)", scoreboard.SeasonGames, total))
	}
	return valid
}

// ParseScore converts a score that already passed ValidateScore into an int.
func ParseScore(raw any) (int, bool) {
	score, parsed, whole := scoreValue(raw)
	if !parsed || !whole {
		return 0, false
	}
	return int(score), true
}

// scoreValue reports the numeric value, whether it parsed, and whether it is integral.
func scoreValue(raw any) (float64, bool, bool) {
	switch v := raw.(type) {
	case int:
		return float64(v), true, true
	case int64:
		return float64(v), true, true
	case int32:
		return float64(v), true, true
	case float64:
		return floatScore(v)
	case float32:
		return floatScore(float64(v))
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return float64(n), true, true
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false, false
		}
		return floatScore(f)
	case string:
		n, parsed := clockfmt.LeadingInt(v)
		return float64(n), parsed, parsed
	}
	return 0, false, false
}

func floatScore(f float64) (float64, bool, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false, false
	}
	return f, true, f == math.Trunc(f)
}

// Text renders raw input as the string a user would have typed. Validators judge
// this rendering, so callers storing accepted input must store the same text.
func Text(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	}
	return fmt.Sprint(raw)
}

func hasLetter(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return true
		}
	}
	return false
}
