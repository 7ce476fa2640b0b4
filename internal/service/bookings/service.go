package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/garage-ms/availability-service/internal/infra/storage/booking"
	"github.com/garage-ms/availability-service/internal/service/bookings/models"
)

// Service handles booking reads, cancellation and status transitions
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService creates the bookings service
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID fetches one booking. A customer may only see their own booking;
// staff requests pass customerID = 0 and skip the ownership check.
func (s *Service) GetByID(ctx context.Context, id int64, customerID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for customer=%d", id, customerID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if customerID != 0 && booking.CustomerID != customerID {
		s.logger.Warn("GetByID: access denied for customer=%d to booking id=%d", customerID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetTechnicianBookings lists a technician's bookings with optional
// date-range and status filtering
func (s *Service) GetTechnicianBookings(ctx context.Context, req *models.GetTechnicianBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetTechnicianBookings: technician=%d, status=%v, includeInactive=%v",
		req.TechnicianID, req.Status, req.IncludeInactive)

	if req.TechnicianID <= 0 {
		return nil, fmt.Errorf("%w: technicianID must be positive", ErrInvalidInput)
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("%w: endDate before startDate", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetTechnicianBookings: invalid status=%v for technician=%d", req.Status, req.TechnicianID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	list, err := s.bookingRepo.GetByTechnicianWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetTechnicianBookings: repository error for technician=%d: %v", req.TechnicianID, err)
		return nil, fmt.Errorf("%w: GetTechnicianBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetTechnicianBookings: fetched %d bookings for technician=%d", len(list), req.TechnicianID)
	return models.FromDomainBookingList(list), nil
}

// Cancel cancels a booking on behalf of its customer.
// Only pending and confirmed bookings can be cancelled.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d for customer=%d", id, req.CustomerID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if req.CustomerID != 0 && booking.CustomerID != req.CustomerID {
		s.logger.Warn("Cancel: access denied for customer=%d to booking id=%d", req.CustomerID, id)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d in status %s cannot be cancelled", id, booking.Status)
		return nil, ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, id, req.CancellationReason); err != nil {
		s.logger.Error("Cancel: failed to cancel booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	cancelled, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Cancel: failed to re-fetch booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%d cancelled", id)
	return models.FromDomainBooking(cancelled), nil
}
