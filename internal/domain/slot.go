package domain

import "time"

// Reasons a slot is reported unavailable.
// A conflicted slot always reports ReasonTechnicianBusy even when the
// capacity cap is also exhausted.
const (
	ReasonTechnicianBusy = "Technician busy"
	ReasonSlotFull       = "Slot full"
	ReasonPastClosing    = "Past closing time"
	ReasonOverlapsBreak  = "Overlaps break"
)

// Slot is a candidate bookable window of the requested service duration.
// Slots are derived per request and never persisted.
type Slot struct {
	Start           TimeOfDay
	End             TimeOfDay
	Available       bool
	ConflictCount   int
	ConcurrentCount int
	// Reason is empty for available slots
	Reason string
}

// Interval returns the slot window as a half-open interval.
// The end may run past the working interval; the evaluator flags that case.
func (s *Slot) Interval() Interval {
	return Interval{Start: s.Start, End: s.End}
}

// TechnicianAvailability is one technician's computed slot set for one date
type TechnicianAvailability struct {
	Technician      Technician
	Date            time.Time
	WorkingInterval Interval
	Breaks          []Interval
	Slots           []Slot
	TotalSlots      int
	AvailableSlots  int
}
