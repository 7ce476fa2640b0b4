package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidTimeFormat is returned when a wall-clock string is not a valid "HH:MM" value
var ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

// TimeOfDay represents a wall-clock time as minutes since midnight (0-1439).
// It carries no date and no timezone; all comparisons are plain integer ones.
type TimeOfDay int

// ParseTimeOfDay parses a "HH:MM" string into a TimeOfDay.
// The format is strict: two digits, a colon, two digits, hours 00-23, minutes 00-59.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hours, ok := parseTwoDigits(s[0], s[1])
	if !ok || hours > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	minutes, ok := parseTwoDigits(s[3], s[4])
	if !ok || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return TimeOfDay(hours*60 + minutes), nil
}

// MustTimeOfDay parses a "HH:MM" string and panics on failure.
// Intended for compile-time constants and tests only.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func parseTwoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// Add returns the time shifted forward by the given number of minutes.
// There is no wraparound: a result past 23:59 is representable and comparable,
// so that an overrunning slot end can still be detected downstream.
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

// Before reports whether t is strictly earlier than other
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

// After reports whether t is strictly later than other
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t > other
}

// String renders the time as "HH:MM"
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Interval is a half-open wall-clock window [Start, End).
// Invariant: Start < End.
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// ErrInvalidInterval is returned when an interval's start is not before its end
var ErrInvalidInterval = errors.New("interval start must be before end")

// NewInterval builds an interval, enforcing Start < End
func NewInterval(start, end TimeOfDay) (Interval, error) {
	if start >= end {
		return Interval{}, fmt.Errorf("%w: %s-%s", ErrInvalidInterval, start, end)
	}
	return Interval{Start: start, End: end}, nil
}

// ParseInterval parses a pair of "HH:MM" strings into an interval
func ParseInterval(start, end string) (Interval, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(s, e)
}

// Overlaps reports whether two half-open intervals share any time.
// Touching endpoints (a.End == b.Start) do NOT overlap.
func (a Interval) Overlaps(b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}

// Contains reports whether a point falls inside the half-open interval:
// the start is included, the end is not.
func (a Interval) Contains(point TimeOfDay) bool {
	return point >= a.Start && point < a.End
}

// Minutes returns the interval length in minutes
func (a Interval) Minutes() int {
	return int(a.End - a.Start)
}

// String renders the interval as "HH:MM-HH:MM"
func (a Interval) String() string {
	return a.Start.String() + "-" + a.End.String()
}
