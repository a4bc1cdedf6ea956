// Package clockfmt parses loosely typed clock input and renders canonical scorebug clock strings.
package clockfmt

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Mode selects how permissive game clock parsing is.
type Mode string

const (
	// ModeStrict accepts only MM:SS and :SS.
	ModeStrict Mode = "strict"
	// ModeLenient also accepts bare minutes and a single trailing tens-of-seconds digit.
	ModeLenient Mode = "lenient"
)

// ParseMode resolves a mode name, case-insensitively.
func ParseMode(raw string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case ModeStrict:
		return ModeStrict, true
	case ModeLenient:
		return ModeLenient, true
	}
	return "", false
}

const (
	// DefaultShotClock is emitted when a shot clock value cannot be parsed.
	DefaultShotClock = ":24"
	// DefaultGameClock is emitted when a game clock value is unrecognized.
	DefaultGameClock = "12:00"
	// ZeroTenths is the floor value of the tenths formatter.
	ZeroTenths = ":00.0"
)

var (
	bareMinutes    = regexp.MustCompile(`^\d{1,2}$`)
	bareSeconds    = regexp.MustCompile(`^:\d{1,2}$`)
	partialSeconds = regexp.MustCompile(`^\d{1,2}:\d$`)
	fullClock      = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
)

// GameClock is a parsed minutes/seconds pair. Values are not range checked.
type GameClock struct {
	Minutes int
	Seconds int
}

// ParseGameClock recognizes the surface forms allowed by mode.
//
// Lenient: "5" -> 5:00, ":30" -> 0:30, "5:1" -> 5:10, "5:42" -> 5:42.
// Strict: only ":30" and "5:42".
func ParseGameClock(value string, mode Mode) (GameClock, bool) {
	switch {
	case mode != ModeStrict && bareMinutes.MatchString(value):
		return GameClock{Minutes: atoi(value)}, true
	case bareSeconds.MatchString(value):
		return GameClock{Seconds: atoi(value[1:])}, true
	case mode != ModeStrict && partialSeconds.MatchString(value):
		mins, secs, _ := strings.Cut(value, ":")
		return GameClock{Minutes: atoi(mins), Seconds: atoi(secs) * 10}, true
	case fullClock.MatchString(value):
		mins, secs, _ := strings.Cut(value, ":")
		return GameClock{Minutes: atoi(mins), Seconds: atoi(secs)}, true
	}
	return GameClock{}, false
}

// FormatShotClock renders a shot clock as ":SS".
func FormatShotClock(value string) string {
	seconds, ok := LeadingInt(strings.TrimPrefix(value, ":"))
	if !ok {
		return DefaultShotClock
	}
	return fmt.Sprintf(":%02d", seconds)
}

// FormatGameClock renders a game clock as "M:SS", falling back to 12:00.
// Canonical MM:SS input is returned untouched in both modes.
func FormatGameClock(value string, mode Mode) string {
	if fullClock.MatchString(value) {
		return value
	}
	if bareSeconds.MatchString(value) {
		return fmt.Sprintf("0:%02d", atoi(value[1:]))
	}
	if mode == ModeStrict {
		return DefaultGameClock
	}
	if bareMinutes.MatchString(value) {
		return value + ":00"
	}
	if partialSeconds.MatchString(value) {
		mins, secs, _ := strings.Cut(value, ":")
		return fmt.Sprintf("%s:%02d", mins, atoi(secs)*10)
	}
	return DefaultGameClock
}

// tenthsEpsilon absorbs binary representation error (14.2*10 is not exactly 142)
// so that truncation does not drop a tenth the caller actually supplied.
const tenthsEpsilon = 1e-6

const maxTenthsSeconds = 1e9

// FormatTenths renders a fractional seconds value as "M:SS.T" or ":SS.T".
// Tenths are truncated, not rounded. Non-positive input yields ":00.0".
func FormatTenths(seconds float64) string {
	if seconds <= 0 || math.IsNaN(seconds) {
		return ZeroTenths
	}
	if seconds > maxTenthsSeconds {
		seconds = maxTenthsSeconds
	}
	total := int64(math.Floor(seconds*10 + tenthsEpsilon))
	mins := total / 600
	secs := (total % 600) / 10
	tenths := total % 10
	if mins > 0 {
		return fmt.Sprintf("%d:%02d.%d", mins, secs, tenths)
	}
	return fmt.Sprintf(":%02d.%d", secs, tenths)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// LeadingInt parses leading whitespace, an optional sign and leading digits,
// ignoring any trailing text ("12abc" -> 12). Values beyond the int range saturate.
func LeadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	// Atoi saturates to the int bounds on overflow, which keeps the sign for range checks.
	n, err := strconv.Atoi(s[:end])
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return n, true
}
