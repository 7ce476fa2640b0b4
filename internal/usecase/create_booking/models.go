package create_booking

import (
	"time"

	"github.com/garage-ms/availability-service/internal/domain"
)

// Request is the booking-creation command
type Request struct {
	CustomerID      int64
	TechnicianID    int64
	ServiceTypeID   *int64
	Date            time.Time
	StartTime       domain.TimeOfDay
	DurationMinutes int // 0 means "resolve from service type or default"

	VehicleReg   *string
	VehicleMake  *string
	VehicleModel *string
	Notes        *string
}

// Response is the created booking
type Response struct {
	ID              int64
	CustomerID      int64
	TechnicianID    int64
	ServiceTypeID   *int64
	BookingDate     time.Time
	StartTime       domain.TimeOfDay
	DurationMinutes int
	Status          string

	VehicleReg   *string
	VehicleMake  *string
	VehicleModel *string
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func fromDomainBooking(booking *domain.Booking) *Response {
	return &Response{
		ID:              booking.ID,
		CustomerID:      booking.CustomerID,
		TechnicianID:    booking.TechnicianID,
		ServiceTypeID:   booking.ServiceTypeID,
		BookingDate:     booking.BookingDate,
		StartTime:       booking.StartTime,
		DurationMinutes: booking.DurationMinutes,
		Status:          string(booking.Status),
		VehicleReg:      booking.VehicleReg,
		VehicleMake:     booking.VehicleMake,
		VehicleModel:    booking.VehicleModel,
		Notes:           booking.Notes,
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}
