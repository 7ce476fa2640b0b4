package create_booking

import (
	"context"
	"time"

	"github.com/garage-ms/availability-service/internal/domain"
	"github.com/garage-ms/availability-service/internal/integrations/servicecatalog"
)

// BookingRepository persists bookings
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetByDate returns all active bookings for the date; inside a
	// transaction the rows are locked for the duration of the re-check.
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// TechnicianRepository supplies the technician with schedule data for one date
type TechnicianRepository interface {
	GetForDate(ctx context.Context, id int64, date time.Time) (*domain.Technician, error)
}

// SettingsRepository supplies the raw workshop settings
type SettingsRepository interface {
	GetAll(ctx context.Context) (map[string]string, error)
}

// ServiceCatalogClient resolves a service type to its duration
type ServiceCatalogClient interface {
	GetServiceTypeWithGracefulDegradation(ctx context.Context, id int64) (*servicecatalog.ServiceType, error)
}

// TransactionManager runs the availability re-check and the insert as one
// serializable transaction
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker serializes booking creation per technician and date across
// service instances. May be nil when the lock store is disabled.
type Locker interface {
	Lock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
}

// Logger is the logging interface used by the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
