package get_availability

import (
	"time"

	"github.com/garage-ms/availability-service/internal/domain"
)

// Request is the availability query.
// DurationMinutes is ignored when ServiceTypeID resolves to a duration.
type Request struct {
	Date            time.Time
	DurationMinutes int    // 0 means "use the default service duration"
	ServiceTypeID   *int64 // optional: resolves the duration via the catalog
	TechnicianID    *int64 // optional: restrict the roster to one technician
}

// ServiceTypeInfo echoes the resolved service type back to the caller
type ServiceTypeInfo struct {
	ID              int64
	Name            string
	DurationMinutes int
}

// Summary holds the overall counts across all reported technicians
type Summary struct {
	TotalTechnicians int
	TotalSlots       int
	AvailableSlots   int
}

// Response is the full availability report for one date
type Response struct {
	Date              time.Time
	ServiceType       *ServiceTypeInfo // nil when no service type was requested
	RequestedDuration int
	Settings          domain.WorkshopDefaults
	Availability      []domain.TechnicianAvailability
	Summary           Summary
}
