package get_technician_bookings

import (
	"context"

	"github.com/garage-ms/availability-service/internal/service/bookings/models"
)

// BookingsService is the service interface used by the handler
type BookingsService interface {
	GetTechnicianBookings(ctx context.Context, req *models.GetTechnicianBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
