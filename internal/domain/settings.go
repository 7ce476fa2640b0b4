package domain

import "strconv"

// Recognized workshop setting keys.
// Anything else in the settings store is ignored by the resolver.
const (
	SettingBusinessHoursStart  = "business_hours_start"
	SettingBusinessHoursEnd    = "business_hours_end"
	SettingLunchBreakStart     = "lunch_break_start"
	SettingLunchBreakEnd       = "lunch_break_end"
	SettingSlotDurationMinutes = "slot_duration_minutes"
	SettingMaxBookingsPerSlot  = "max_bookings_per_slot"
)

// RecognizedSettingKeys lists every key the resolver understands,
// in the order they are reported by the settings API.
var RecognizedSettingKeys = []string{
	SettingBusinessHoursStart,
	SettingBusinessHoursEnd,
	SettingLunchBreakStart,
	SettingLunchBreakEnd,
	SettingSlotDurationMinutes,
	SettingMaxBookingsPerSlot,
}

// WorkshopDefaults is the fully resolved workshop-wide configuration.
// It is built fresh per request and never mutated by the engine.
type WorkshopDefaults struct {
	BusinessHours       Interval
	LunchBreak          Interval
	SlotDurationMinutes int
	MaxBookingsPerSlot  int
}

// ResolveWorkshopDefaults merges raw key/value settings with the hard-coded
// fallbacks. Each field is defaulted independently: a missing or malformed
// value falls back for that field only and never fails the whole resolution.
func ResolveWorkshopDefaults(raw map[string]string) WorkshopDefaults {
	businessHours := resolveInterval(raw,
		SettingBusinessHoursStart, SettingBusinessHoursEnd,
		DefaultBusinessHoursStart, DefaultBusinessHoursEnd)

	lunchBreak := resolveInterval(raw,
		SettingLunchBreakStart, SettingLunchBreakEnd,
		DefaultLunchBreakStart, DefaultLunchBreakEnd)

	slotDuration := resolvePositiveInt(raw, SettingSlotDurationMinutes, DefaultSlotDurationMinutes)

	maxPerSlot := resolvePositiveInt(raw, SettingMaxBookingsPerSlot, DefaultMaxBookingsPerSlot)

	return WorkshopDefaults{
		BusinessHours:       businessHours,
		LunchBreak:          lunchBreak,
		SlotDurationMinutes: slotDuration,
		MaxBookingsPerSlot:  maxPerSlot,
	}
}

// resolveInterval resolves a start/end key pair. Each key is defaulted
// independently: a missing or malformed half falls back to its own default
// while the other half's stored value is kept. Only when the resolved pair
// inverts (start >= end) does the whole interval fall back, since a
// degenerate interval would break every downstream computation.
func resolveInterval(raw map[string]string, startKey, endKey, defStart, defEnd string) Interval {
	start, err := ParseTimeOfDay(raw[startKey])
	if err != nil {
		start = MustTimeOfDay(defStart)
	}

	end, err := ParseTimeOfDay(raw[endKey])
	if err != nil {
		end = MustTimeOfDay(defEnd)
	}

	if interval, err := NewInterval(start, end); err == nil {
		return interval
	}

	fallback, err := ParseInterval(defStart, defEnd)
	if err != nil {
		// Package defaults are compile-time constants; this cannot happen.
		panic(err)
	}
	return fallback
}

func resolvePositiveInt(raw map[string]string, key string, def int) int {
	value, err := strconv.Atoi(raw[key])
	if err != nil || value <= 0 {
		return def
	}
	return value
}
