package domain

// Workshop-wide fallback defaults, used when a setting is missing or malformed
const (
	DefaultBusinessHoursStart     = "08:00"
	DefaultBusinessHoursEnd       = "17:00"
	DefaultLunchBreakStart        = "12:00"
	DefaultLunchBreakEnd          = "13:00"
	DefaultSlotDurationMinutes    = 30
	DefaultMaxBookingsPerSlot     = 3
	DefaultServiceDurationMinutes = 60
)

// Business validation constants
const (
	MinSlotDurationMinutes      = 5
	MaxSlotDurationMinutes      = 480 // 8 hours
	MinBookingsPerSlot          = 1
	MaxBookingsPerSlot          = 100
	MinServiceDurationMinutes   = 5
	MaxServiceDurationMinutes   = 480
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses lists booking statuses that do not occupy a slot.
// Used when filtering bookings for availability computation.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusCompleted,
	StatusNoShow,
}

// ActiveStatuses lists booking statuses that still occupy a slot
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
}
