package domain

import "time"

// ExceptionType classifies a date-specific override of a technician's weekly template
type ExceptionType string

const (
	ExceptionUnavailable ExceptionType = "unavailable"
	ExceptionHoliday     ExceptionType = "holiday"
	ExceptionSick        ExceptionType = "sick"
	// ExceptionAvailable overrides the working hours for one date (custom hours)
	ExceptionAvailable ExceptionType = "available"
)

// DateException is a single-date override of the weekly template.
// An exception always wins over the template for its date.
type DateException struct {
	Date time.Time
	Type ExceptionType
	// OverrideInterval replaces the template working hours for
	// ExceptionAvailable; nil for the not-working exception types.
	OverrideInterval *Interval
}

// IsNotWorking reports whether the exception removes the technician
// from the roster for its date
func (e *DateException) IsNotWorking() bool {
	return e.Type == ExceptionUnavailable || e.Type == ExceptionHoliday || e.Type == ExceptionSick
}

// WeeklyTemplate describes a technician's normal working week.
// A weekday with no entry means the technician does not work that day.
// Breaks apply to every working day; there is no per-date break override.
type WeeklyTemplate struct {
	WorkingHours map[time.Weekday]Interval
	Breaks       []Interval
}

// HoursFor returns the template working interval for a weekday,
// or false if the technician does not work that day.
func (t *WeeklyTemplate) HoursFor(day time.Weekday) (Interval, bool) {
	if t.WorkingHours == nil {
		return Interval{}, false
	}
	interval, ok := t.WorkingHours[day]
	return interval, ok
}

// Technician represents a workshop technician and their schedule data
type Technician struct {
	ID         int64
	Name       string
	Email      string
	IsActive   bool
	Template   WeeklyTemplate
	Exceptions []DateException
}

// ExceptionFor returns the technician's exception for a date, if any.
// When several rows exist for one date the first one wins; the storage
// layer keeps at most one per date.
func (t *Technician) ExceptionFor(date time.Time) *DateException {
	y, m, d := date.Date()
	for i := range t.Exceptions {
		ey, em, ed := t.Exceptions[i].Date.Date()
		if ey == y && em == m && ed == d {
			return &t.Exceptions[i]
		}
	}
	return nil
}
