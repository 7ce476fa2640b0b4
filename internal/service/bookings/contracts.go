package bookings

import (
	"context"

	"github.com/garage-ms/availability-service/internal/domain"
)

// BookingRepository is the bookings storage interface used by the service
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByTechnicianWithFilter(ctx context.Context, filter domain.TechnicianBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// Logger is the logging interface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
