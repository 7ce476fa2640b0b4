package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/garage-ms/availability-service/internal/domain"
	"github.com/garage-ms/availability-service/internal/integrations/servicecatalog"
)

// UseCase computes per-technician booking availability for one date.
// The computation itself is a pure function of the snapshots supplied by
// the repositories; the use case performs no writes and keeps no state, so
// concurrent invocations need no locking. A slot reported available here
// may still be taken by the time a booking is created; create_booking
// re-validates inside a transaction.
type UseCase struct {
	technicianRepo TechnicianRepository
	bookingRepo    BookingRepository
	settingsRepo   SettingsRepository
	catalogClient  ServiceCatalogClient
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase creates the availability use case
func NewUseCase(
	technicianRepo TechnicianRepository,
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	catalogClient ServiceCatalogClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		technicianRepo: technicianRepo,
		bookingRepo:    bookingRepo,
		settingsRepo:   settingsRepo,
		catalogClient:  catalogClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute runs the availability query
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s, duration=%d, serviceType=%v, technician=%v",
		req.Date.Format(domain.DateFormat), req.DurationMinutes, req.ServiceTypeID, req.TechnicianID)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the requested service duration (HTTP call, kept outside
	// the snapshot transaction)
	duration, serviceType, err := uc.resolveDuration(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Read the settings, roster and booking snapshots inside one
	// read-only transaction so they describe the same instant
	var (
		defaults domain.WorkshopDefaults
		roster   []*domain.Technician
		bookings []*domain.Booking
	)
	err = uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		rawSettings, err := uc.settingsRepo.GetAll(txCtx)
		if err != nil {
			uc.logger.Error("GetAvailability: failed to load settings: %v", err)
			return fmt.Errorf("%w: failed to load settings: %v", ErrInternal, err)
		}
		defaults = domain.ResolveWorkshopDefaults(rawSettings)

		roster, err = uc.technicianRepo.ListActiveForDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("GetAvailability: failed to load technicians: %v", err)
			return fmt.Errorf("%w: failed to load technicians: %v", ErrInternal, err)
		}
		if req.TechnicianID != nil {
			roster = filterRoster(roster, *req.TechnicianID)
			if len(roster) == 0 {
				uc.logger.Warn("GetAvailability: technician id=%d not found in active roster", *req.TechnicianID)
				return ErrTechnicianNotFound
			}
		}

		bookings, err = uc.bookingRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("GetAvailability: failed to load bookings: %v", err)
			return fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	bookingsByTechnician := groupBookingsByTechnician(bookings)

	// 4. Compute availability per technician
	availability := make([]domain.TechnicianAvailability, 0, len(roster))
	for _, tech := range roster {
		result, ok := uc.computeForTechnician(tech, req.Date, defaults, duration, bookingsByTechnician[tech.ID])
		if !ok {
			continue
		}
		availability = append(availability, result)
	}

	// 5. Build the overall summary
	summary := Summary{TotalTechnicians: len(availability)}
	for i := range availability {
		summary.TotalSlots += availability[i].TotalSlots
		summary.AvailableSlots += availability[i].AvailableSlots
	}

	uc.logger.Info("GetAvailability: date=%s, technicians=%d, slots=%d, available=%d",
		req.Date.Format(domain.DateFormat), summary.TotalTechnicians, summary.TotalSlots, summary.AvailableSlots)

	return &Response{
		Date:              req.Date,
		ServiceType:       serviceType,
		RequestedDuration: duration,
		Settings:          defaults,
		Availability:      availability,
		Summary:           summary,
	}, nil
}

// resolveDuration picks the requested service duration: the catalog wins
// when a service type is named, then the explicit duration, then the
// workshop default. A degraded catalog falls back rather than failing.
func (uc *UseCase) resolveDuration(ctx context.Context, req *Request) (int, *ServiceTypeInfo, error) {
	if req.ServiceTypeID == nil {
		if req.DurationMinutes > 0 {
			return req.DurationMinutes, nil, nil
		}
		return domain.DefaultServiceDurationMinutes, nil, nil
	}

	serviceType, err := uc.catalogClient.GetServiceTypeWithGracefulDegradation(ctx, *req.ServiceTypeID)
	if err != nil {
		if errors.Is(err, servicecatalog.ErrServiceTypeNotFound) {
			return 0, nil, ErrServiceTypeNotFound
		}
		if errors.Is(err, servicecatalog.ErrServiceDegraded) {
			fallback := req.DurationMinutes
			if fallback <= 0 {
				fallback = domain.DefaultServiceDurationMinutes
			}
			uc.logger.Warn("GetAvailability: catalog degraded, falling back to duration=%d for service_type_id=%d",
				fallback, *req.ServiceTypeID)
			return fallback, nil, nil
		}
		uc.logger.Error("GetAvailability: failed to resolve service type id=%d: %v", *req.ServiceTypeID, err)
		return 0, nil, fmt.Errorf("%w: failed to resolve service type: %v", ErrInternal, err)
	}

	info := &ServiceTypeInfo{
		ID:              serviceType.ID,
		Name:            serviceType.Name,
		DurationMinutes: serviceType.DurationMinutes,
	}
	return serviceType.DurationMinutes, info, nil
}

// computeForTechnician resolves the day schedule, generates candidate
// slots and evaluates each against the technician's bookings. A failure
// here never aborts the other technicians: panics are recovered and the
// technician is omitted from the report.
func (uc *UseCase) computeForTechnician(
	tech *domain.Technician,
	date time.Time,
	defaults domain.WorkshopDefaults,
	duration int,
	technicianBookings []*domain.Booking,
) (result domain.TechnicianAvailability, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			uc.logger.Error("GetAvailability: computation panicked for technician id=%d: %v", tech.ID, r)
			ok = false
		}
	}()

	schedule := resolveDaySchedule(tech, date, defaults)
	if !schedule.Working {
		return domain.TechnicianAvailability{}, false
	}

	slots := generateCandidateSlots(schedule.Hours, schedule.Breaks, defaults.SlotDurationMinutes, duration)

	availableCount := 0
	for i := range slots {
		// Both the conflict check and the capacity cap are scoped to the
		// technician's own bookings.
		evaluateSlot(&slots[i], schedule.Hours, schedule.Breaks,
			technicianBookings, technicianBookings, defaults.MaxBookingsPerSlot)
		if slots[i].Available {
			availableCount++
		}
	}

	return domain.TechnicianAvailability{
		Technician:      *tech,
		Date:            date,
		WorkingInterval: schedule.Hours,
		Breaks:          schedule.Breaks,
		Slots:           slots,
		TotalSlots:      len(slots),
		AvailableSlots:  availableCount,
	}, true
}

func filterRoster(roster []*domain.Technician, technicianID int64) []*domain.Technician {
	filtered := make([]*domain.Technician, 0, 1)
	for _, tech := range roster {
		if tech.ID == technicianID {
			filtered = append(filtered, tech)
		}
	}
	return filtered
}

func groupBookingsByTechnician(bookings []*domain.Booking) map[int64][]*domain.Booking {
	grouped := make(map[int64][]*domain.Booking)
	for _, booking := range bookings {
		grouped[booking.TechnicianID] = append(grouped[booking.TechnicianID], booking)
	}
	return grouped
}
