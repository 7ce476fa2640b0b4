package get_booking

import (
	"context"

	"github.com/garage-ms/availability-service/internal/service/bookings/models"
)

// BookingsService is the service interface used by the handler
type BookingsService interface {
	GetByID(ctx context.Context, id int64, customerID int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
