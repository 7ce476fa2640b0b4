package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/garage-ms/availability-service/internal/domain"
	technicianRepo "github.com/garage-ms/availability-service/internal/infra/storage/technician"
	"github.com/garage-ms/availability-service/internal/integrations/servicecatalog"
	"github.com/garage-ms/availability-service/internal/lock"
)

// lockTTL bounds how long a crashed request can hold the booking lock
const lockTTL = 10 * time.Second

// UseCase creates a booking. The availability report is advisory only:
// between the report and this call another request may take the slot, so
// the slot is re-validated here inside a serializable transaction, with a
// per-technician-and-date lock shortening the race window across instances.
type UseCase struct {
	bookingRepo    BookingRepository
	technicianRepo TechnicianRepository
	settingsRepo   SettingsRepository
	catalogClient  ServiceCatalogClient
	txManager      TransactionManager
	locker         Locker
	logger         Logger
}

// NewUseCase creates the booking-creation use case. locker may be nil.
func NewUseCase(
	bookingRepo BookingRepository,
	technicianRepo TechnicianRepository,
	settingsRepo SettingsRepository,
	catalogClient ServiceCatalogClient,
	txManager TransactionManager,
	locker Locker,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		technicianRepo: technicianRepo,
		settingsRepo:   settingsRepo,
		catalogClient:  catalogClient,
		txManager:      txManager,
		locker:         locker,
		logger:         logger,
	}
}

// Execute runs the booking-creation command
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, technician=%d, date=%s, time=%s",
		req.CustomerID, req.TechnicianID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the service duration
	duration, err := uc.resolveDuration(ctx, req)
	if err != nil {
		return nil, err
	}
	requestedSlot, err := domain.NewInterval(req.StartTime, req.StartTime.Add(duration))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Serialize creation for this technician's day across instances
	if uc.locker != nil {
		key := lock.BookingKey(req.TechnicianID, req.Date)
		acquired, err := uc.locker.Lock(ctx, key, lockTTL)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to acquire lock %s: %v", key, err)
			return nil, fmt.Errorf("%w: failed to acquire lock: %v", ErrInternal, err)
		}
		if !acquired {
			uc.logger.Warn("CreateBooking: lock busy for technician=%d date=%s",
				req.TechnicianID, req.Date.Format(domain.DateFormat))
			return nil, ErrLockBusy
		}
		defer func() {
			if err := uc.locker.Unlock(ctx, key); err != nil {
				uc.logger.Error("CreateBooking: failed to release lock %s: %v", key, err)
			}
		}()
	}

	// 4. Re-check the slot and insert, all inside one serializable transaction
	var result *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		rawSettings, err := uc.settingsRepo.GetAll(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to load settings: %v", err)
			return fmt.Errorf("%w: failed to load settings: %v", ErrInternal, err)
		}
		defaults := domain.ResolveWorkshopDefaults(rawSettings)

		tech, err := uc.technicianRepo.GetForDate(txCtx, req.TechnicianID, req.Date)
		if err != nil {
			if errors.Is(err, technicianRepo.ErrTechnicianNotFound) {
				uc.logger.Warn("CreateBooking: technician id=%d not found", req.TechnicianID)
				return ErrTechnicianNotFound
			}
			uc.logger.Error("CreateBooking: failed to get technician id=%d: %v", req.TechnicianID, err)
			return fmt.Errorf("%w: failed to get technician: %v", ErrInternal, err)
		}
		if !tech.IsActive {
			uc.logger.Warn("CreateBooking: technician id=%d is inactive", req.TechnicianID)
			return ErrTechnicianNotFound
		}

		schedule := resolveEffectiveSchedule(tech, req.Date, defaults)
		if !schedule.Working {
			uc.logger.Warn("CreateBooking: technician id=%d is not working on %s",
				req.TechnicianID, req.Date.Format(domain.DateFormat))
			return ErrTechnicianNotWorking
		}

		if err := validateSlotWithinSchedule(requestedSlot, schedule.Hours, schedule.Breaks); err != nil {
			uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
			return err
		}

		// Row-locked snapshot of the day's bookings
		bookings, err := uc.bookingRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		if conflicts := countOverlappingBookings(requestedSlot, req.TechnicianID, bookings); conflicts > 0 {
			uc.logger.Warn("CreateBooking: slot %s conflicts with %d existing booking(s) for technician=%d",
				requestedSlot, conflicts, req.TechnicianID)
			return ErrSlotNotAvailable
		}

		concurrent := countConcurrentBookings(req.StartTime, req.TechnicianID, bookings)
		if concurrent >= defaults.MaxBookingsPerSlot {
			uc.logger.Warn("CreateBooking: slot %s full, %d/%d bookings for technician=%d",
				requestedSlot, concurrent, defaults.MaxBookingsPerSlot, req.TechnicianID)
			return ErrSlotNotAvailable
		}

		booking := &domain.Booking{
			CustomerID:      req.CustomerID,
			TechnicianID:    req.TechnicianID,
			ServiceTypeID:   req.ServiceTypeID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: duration,
			Status:          domain.StatusConfirmed,
			VehicleReg:      req.VehicleReg,
			VehicleMake:     req.VehicleMake,
			VehicleModel:    req.VehicleModel,
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d for technician=%d at %s %s",
		result.ID, result.TechnicianID, result.BookingDate.Format(domain.DateFormat), result.StartTime)

	return fromDomainBooking(result), nil
}

// resolveDuration picks the booking duration: the catalog wins when a
// service type is named, then the explicit duration, then the default.
func (uc *UseCase) resolveDuration(ctx context.Context, req *Request) (int, error) {
	if req.ServiceTypeID == nil {
		if req.DurationMinutes > 0 {
			return req.DurationMinutes, nil
		}
		return domain.DefaultServiceDurationMinutes, nil
	}

	serviceType, err := uc.catalogClient.GetServiceTypeWithGracefulDegradation(ctx, *req.ServiceTypeID)
	if err != nil {
		if errors.Is(err, servicecatalog.ErrServiceTypeNotFound) {
			uc.logger.Warn("CreateBooking: service type id=%d not found", *req.ServiceTypeID)
			return 0, ErrServiceTypeNotFound
		}
		if errors.Is(err, servicecatalog.ErrServiceDegraded) {
			fallback := req.DurationMinutes
			if fallback <= 0 {
				fallback = domain.DefaultServiceDurationMinutes
			}
			uc.logger.Warn("CreateBooking: catalog degraded, falling back to duration=%d", fallback)
			return fallback, nil
		}
		uc.logger.Error("CreateBooking: failed to resolve service type id=%d: %v", *req.ServiceTypeID, err)
		return 0, fmt.Errorf("%w: failed to resolve service type: %v", ErrInternal, err)
	}

	return serviceType.DurationMinutes, nil
}
