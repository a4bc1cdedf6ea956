package clockfmt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		raw    string
		want   Mode
		wantOK bool
	}{
		{"strict", ModeStrict, true},
		{" Lenient ", ModeLenient, true},
		{"loose", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseMode(tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
		assert.Equal(t, tt.wantOK, ok, tt.raw)
	}
}

func TestParseGameClock(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		mode   Mode
		want   GameClock
		wantOK bool
	}{
		{"bare minutes", "5", ModeLenient, GameClock{Minutes: 5}, true},
		{"bare seconds", ":30", ModeLenient, GameClock{Seconds: 30}, true},
		{"single seconds digit is tens", "5:1", ModeLenient, GameClock{Minutes: 5, Seconds: 10}, true},
		{"full clock", "11:42", ModeLenient, GameClock{Minutes: 11, Seconds: 42}, true},
		{"three digit seconds", "5:421", ModeLenient, GameClock{}, false},
		{"empty", "", ModeLenient, GameClock{}, false},
		{"strict rejects bare minutes", "5", ModeStrict, GameClock{}, false},
		{"strict rejects partial seconds", "5:1", ModeStrict, GameClock{}, false},
		{"strict accepts bare seconds", ":05", ModeStrict, GameClock{Seconds: 5}, true},
		{"strict accepts full clock", "0:59", ModeStrict, GameClock{Seconds: 59}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseGameClock(tt.value, tt.mode)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatShotClock(t *testing.T) {
	tests := map[string]string{
		":24":  ":24",
		"24":   ":24",
		"5":    ":05",
		":0":   ":00",
		"abc":  DefaultShotClock,
		"":     DefaultShotClock,
		"12ab": ":12",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatShotClock(in), in)
	}
}

func TestFormatGameClockLenient(t *testing.T) {
	tests := map[string]string{
		"12:00": "12:00",
		"5:42":  "5:42",
		"5":     "5:00",
		"12":    "12:00",
		":30":   "0:30",
		":5":    "0:05",
		"5:1":   "5:10",
		"5:4":   "5:40",
		"abc":   DefaultGameClock,
		"":      DefaultGameClock,
		"1:2:3": DefaultGameClock,
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatGameClock(in, ModeLenient), in)
	}
}

func TestFormatGameClockStrict(t *testing.T) {
	tests := map[string]string{
		"5:42": "5:42",
		":30":  "0:30",
		":7":   "0:07",
		"5":    DefaultGameClock,
		"5:1":  DefaultGameClock,
		"junk": DefaultGameClock,
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatGameClock(in, ModeStrict), in)
	}
}

func TestFormatGameClockIsIdempotent(t *testing.T) {
	inputs := []string{"", "5", "12", ":3", ":30", "5:1", "05:4", "5:42", "99:99", "x", "1:2:3", "-1"}
	for _, mode := range []Mode{ModeLenient, ModeStrict} {
		for _, in := range inputs {
			once := FormatGameClock(in, mode)
			assert.Equal(t, once, FormatGameClock(once, mode), "mode=%s input=%q", mode, in)
		}
	}
}

func TestFormatTenths(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, ":00.0"},
		{-5, ":00.0"},
		{65.34, "1:05.3"},
		{14.2, ":14.2"},
		{0.2, ":00.2"},
		{5.39, ":05.3"},
		{59.99, ":59.9"},
		{60, "1:00.0"},
		{720, "12:00.0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTenths(tt.in), "input %v", tt.in)
	}
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"42", 42, true},
		{" 7", 7, true},
		{"-3", -3, true},
		{"12abc", 12, true},
		{"3.9", 3, true},
		{"99999999999999999999", math.MaxInt, true},
		{"-99999999999999999999", math.MinInt, true},
		{"abc", 0, false},
		{"-", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := LeadingInt(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
