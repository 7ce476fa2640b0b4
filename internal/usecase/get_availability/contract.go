package get_availability

import (
	"context"
	"time"

	"github.com/garage-ms/availability-service/internal/domain"
	"github.com/garage-ms/availability-service/internal/integrations/servicecatalog"
)

// TechnicianRepository supplies the roster snapshot for one date
type TechnicianRepository interface {
	// ListActiveForDate returns all active technicians with their weekly
	// template, breaks, and any exception for the given date
	ListActiveForDate(ctx context.Context, date time.Time) ([]*domain.Technician, error)
}

// BookingRepository supplies the existing-bookings snapshot for one date
type BookingRepository interface {
	// GetByDate returns all active bookings across the workshop for the date
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// SettingsRepository supplies the raw workshop settings
type SettingsRepository interface {
	GetAll(ctx context.Context) (map[string]string, error)
}

// ServiceCatalogClient resolves a service type to its duration
type ServiceCatalogClient interface {
	GetServiceTypeWithGracefulDegradation(ctx context.Context, id int64) (*servicecatalog.ServiceType, error)
}

// TransactionManager runs the settings, roster and booking reads inside
// one read-only transaction so the report describes a single instant
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface used by the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
