package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
	StatusNoShow     BookingStatus = "no_show"
)

// Booking represents a workshop booking assigned to a technician
type Booking struct {
	ID              int64
	TechnicianID    int64
	CustomerID      int64
	ServiceTypeID   *int64
	BookingDate     time.Time
	StartTime       TimeOfDay
	DurationMinutes int
	Status          BookingStatus

	// Denormalized vehicle data for history
	VehicleReg   *string
	VehicleMake  *string
	VehicleModel *string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the booked window as a half-open interval
func (b *Booking) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.StartTime.Add(b.DurationMinutes)}
}

// IsActive reports whether the booking still occupies its slot.
// Cancelled, completed and no-show bookings never count as conflicts.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled &&
		b.Status != StatusCompleted &&
		b.Status != StatusNoShow
}

// CanBeCancelled reports whether the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled reports whether the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// TechnicianBookingsFilter narrows a technician's booking listing
type TechnicianBookingsFilter struct {
	TechnicianID    int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *BookingStatus
	IncludeInactive bool
}
