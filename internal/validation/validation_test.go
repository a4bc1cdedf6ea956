package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/scorebug-service/internal/clockfmt"
	"github.com/preston-bernstein/scorebug-service/internal/domain/scoreboard"
	"github.com/preston-bernstein/scorebug-service/internal/domain/teams"
)

type teamSet map[string]bool

func (s teamSet) HasTeam(key string) bool { return s[key] }

func validState() scoreboard.State {
	return scoreboard.State{
		HomeTeam:   "bulls",
		AwayTeam:   "celtics",
		HomeScore:  111,
		AwayScore:  108,
		HomeRecord: "(41-41)",
		AwayRecord: "(50-32)",
		Quarter:    "4th",
		GameClock:  "1:05",
		ShotClock:  ":14",
	}
}

func TestShotClockAcceptsWholeRange(t *testing.T) {
	for s := 0; s <= MaxShotClock; s++ {
		assert.True(t, ValidateShotClock(fmt.Sprintf(":%02d", s)).Valid, "second %d", s)
		assert.True(t, ValidateShotClock(fmt.Sprintf("%d", s)).Valid, "bare second %d", s)
	}
}

func TestShotClockErrors(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"letters", ":2a", "Shot clock cannot contain letters"},
		{"three digits", ":100", "Shot clock format: :00 to :24"},
		{"empty", "", "Shot clock format: :00 to :24"},
		{"negative", "-1", "Shot clock format: :00 to :24"},
		{"double colon", "::1", "Shot clock format: :00 to :24"},
		{"above range", ":25", "Shot clock must be 0-24"},
		{"far above range", "99", "Shot clock must be 0-24"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateShotClock(tt.value)
			assert.False(t, res.Valid)
			assert.Equal(t, tt.want, res.Error)
		})
	}
}

func TestGameClockAcceptsRegulationRange(t *testing.T) {
	for m := 0; m <= 11; m++ {
		for s := 0; s <= 59; s++ {
			v := fmt.Sprintf("%d:%02d", m, s)
			require.True(t, ValidateGameClock(v, clockfmt.ModeLenient).Valid, v)
			require.True(t, ValidateGameClock(v, clockfmt.ModeStrict).Valid, v)
		}
	}
	assert.True(t, ValidateGameClock("12:00", clockfmt.ModeLenient).Valid)
	assert.True(t, ValidateGameClock("12:00", clockfmt.ModeStrict).Valid)
}

func TestGameClockRejectsAboveTwelve(t *testing.T) {
	for s := 1; s <= 59; s++ {
		res := ValidateGameClock(fmt.Sprintf("12:%02d", s), clockfmt.ModeLenient)
		require.False(t, res.Valid)
		require.Equal(t, "Game clock cannot exceed 12:00", res.Error)
	}
	for _, v := range []string{"13:00", "13", "20:30", "99:1"} {
		res := ValidateGameClock(v, clockfmt.ModeLenient)
		assert.False(t, res.Valid, v)
		assert.Equal(t, "Game clock cannot exceed 12:00", res.Error, v)
	}
}

func TestGameClockLenientForms(t *testing.T) {
	tests := []struct {
		value string
		valid bool
		err   string
	}{
		{"5", true, ""},
		{"12", true, ""},
		{":30", true, ""},
		{"5:1", true, ""},
		{"5:42", true, ""},
		{"5:6", false, "Seconds must be 0-59"},
		{"5:60", false, "Seconds must be 0-59"},
		{":75", false, "Seconds must be 0-59"},
		{"5:4x", false, "Game clock cannot contain letters"},
		{"1:2:3", false, "Enter MM:SS like '5:42' or just '5' for 5:00"},
		{"", false, "Enter MM:SS like '5:42' or just '5' for 5:00"},
		{"123", false, "Enter MM:SS like '5:42' or just '5' for 5:00"},
	}
	for _, tt := range tests {
		res := ValidateGameClock(tt.value, clockfmt.ModeLenient)
		assert.Equal(t, tt.valid, res.Valid, tt.value)
		assert.Equal(t, tt.err, res.Error, tt.value)
	}
}

func TestGameClockStrictForms(t *testing.T) {
	for _, v := range []string{"5", "5:1"} {
		res := ValidateGameClock(v, clockfmt.ModeStrict)
		assert.False(t, res.Valid, v)
		assert.Equal(t, "Enter MM:SS like '5:42' or ':30'", res.Error, v)
	}
	assert.True(t, ValidateGameClock(":30", clockfmt.ModeStrict).Valid)
}

func TestQuarter(t *testing.T) {
	for _, q := range scoreboard.Quarters {
		assert.True(t, ValidateQuarter(q).Valid, q)
	}
	for _, q := range []string{"5th", "ot", "OT6", "", "1ST"} {
		res := ValidateQuarter(q)
		assert.False(t, res.Valid, q)
		assert.Equal(t, "Quarter must be one of: 1st, 2nd, 3rd, 4th, OT, OT1, OT2, OT3, OT4, OT5", res.Error)
	}
}

func TestTeam(t *testing.T) {
	teams := teamSet{"bulls": true}
	assert.True(t, ValidateTeam(teams, "bulls").Valid)
	assert.Equal(t, Result{Error: "Invalid team selection"}, ValidateTeam(teams, "sonics"))
	assert.False(t, ValidateTeam(nil, "bulls").Valid)
}

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want Result
	}{
		{"zero", 0, Result{Valid: true}},
		{"max", 999, Result{Valid: true}},
		{"string max", "999", Result{Valid: true}},
		{"json float", float64(42), Result{Valid: true}},
		{"json number", json.Number("7"), Result{Valid: true}},
		{"negative", -1, Result{Error: "Score cannot be negative"}},
		{"string negative", "-1", Result{Error: "Score cannot be negative"}},
		{"too high", 1000, Result{Error: "Score cannot exceed 999"}},
		{"string too high", "1000", Result{Error: "Score cannot exceed 999"}},
		{"string beyond int range", "99999999999999999999", Result{Error: "Score cannot exceed 999"}},
		{"string below int range", "-99999999999999999999", Result{Error: "Score cannot be negative"}},
		{"json number beyond int range", json.Number("99999999999999999999"), Result{Error: "Score cannot exceed 999"}},
		{"letters", "abc", Result{Error: "Score must be a number"}},
		{"empty", "", Result{Error: "Score must be a number"}},
		{"nan", math.NaN(), Result{Error: "Score must be a number"}},
		{"nil", nil, Result{Error: "Score must be a number"}},
		{"fraction", 10.5, Result{Error: "Score must be a whole number"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateScore(tt.raw))
		})
	}
}

func TestRecord(t *testing.T) {
	tests := []struct {
		value string
		want  Result
	}{
		{"(41-41)", Result{Valid: true}},
		{"(00-82)", Result{Valid: true}},
		{"(82-00)", Result{Valid: true}},
		{"(50-31)", Result{Error: "W+L must equal 82 (currently 81)"}},
		{"(99-99)", Result{Error: "W+L must equal 82 (currently 198)"}},
		{"(9-73)", Result{Error: "Format: (XX-XX)"}},
		{"41-41", Result{Error: "Format: (XX-XX)"}},
		{"(041-41)", Result{Error: "Format: (XX-XX)"}},
		{"(41-41", Result{Error: "Format: (XX-XX)"}},
		{"", Result{Error: "Format: (XX-XX)"}},
		{"(4a-41)", Result{Error: "No letters allowed"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidateRecord(tt.value), tt.value)
	}
}

func TestValidatorDispatch(t *testing.T) {
	v := New(teamSet{"bulls": true}, clockfmt.ModeLenient)

	assert.True(t, v.Validate(scoreboard.FieldHomeTeam, "bulls").Valid)
	assert.False(t, v.Validate(scoreboard.FieldAwayTeam, "sonics").Valid)
	assert.True(t, v.Validate(scoreboard.FieldGameClock, float64(5)).Valid)
	assert.True(t, v.Validate(scoreboard.FieldShotClock, 24).Valid)
	assert.True(t, v.Validate(scoreboard.FieldHomeScore, "12").Valid)
	assert.False(t, v.Validate(scoreboard.FieldAwayRecord, "(1-81)").Valid)

	res := v.Validate(scoreboard.Field("period"), "1st")
	assert.False(t, res.Valid)
	assert.Equal(t, scoreboard.ErrUnknownField.Error(), res.Error)
}

func TestValidatorIsDeterministic(t *testing.T) {
	v := New(teamSet{}, clockfmt.ModeLenient)
	first := v.Validate(scoreboard.FieldHomeRecord, "(50-31)")
	second := v.Validate(scoreboard.FieldHomeRecord, "(50-31)")
	assert.Equal(t, first, second)
}

func TestNewFallsBackToLenient(t *testing.T) {
	v := New(nil, clockfmt.Mode("sloppy"))
	assert.Equal(t, clockfmt.ModeLenient, v.Mode())
	assert.Equal(t, clockfmt.ModeStrict, New(nil, clockfmt.ModeStrict).Mode())
}

func TestValidateState(t *testing.T) {
	v := New(teamSet{"bulls": true, "celtics": true}, clockfmt.ModeLenient)

	res := v.ValidateState(validState())
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)

	bad := validState()
	bad.HomeScore = 1000
	bad.Quarter = "5th"
	bad.AwayRecord = "(50-31)"
	res = v.ValidateState(bad)
	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 3)
	assert.Equal(t, "Score cannot exceed 999", res.Errors[scoreboard.FieldHomeScore])
	assert.Equal(t, "W+L must equal 82 (currently 81)", res.Errors[scoreboard.FieldAwayRecord])
	assert.Contains(t, res.Errors, scoreboard.FieldQuarter)
}

func TestDefaultBoardIsValidInBothModes(t *testing.T) {
	catalog := teamSet{}
	for _, team := range teams.NBA() {
		catalog[team.Key] = true
	}
	for _, mode := range []clockfmt.Mode{clockfmt.ModeLenient, clockfmt.ModeStrict} {
		res := New(catalog, mode).ValidateState(scoreboard.Default())
		assert.True(t, res.Valid, "mode %s: %v", mode, res.Errors)
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		raw  any
		want string
	}{
		{nil, ""},
		{":14", ":14"},
		{json.Number("12"), "12"},
		{float64(7), "7"},
		{float64(1e21), "1000000000000000000000"},
		{float32(2.5), "2.5"},
		{42, "42"},
		{int64(-3), "-3"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Text(tt.raw), "%#v", tt.raw)
	}
}

func TestParseScore(t *testing.T) {
	n, ok := ParseScore("42")
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	n, ok = ParseScore(float64(7))
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	_, ok = ParseScore(7.5)
	assert.False(t, ok)
	_, ok = ParseScore("x")
	assert.False(t, ok)
}
