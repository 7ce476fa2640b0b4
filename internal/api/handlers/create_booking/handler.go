package create_booking

import (
	"errors"
	"net/http"

	"github.com/garage-ms/availability-service/internal/api/handlers"
	"github.com/garage-ms/availability-service/internal/api/middleware"
	createBooking "github.com/garage-ms/availability-service/internal/usecase/create_booking"
)

const (
	msgInvalidBody          = "invalid request body"
	msgInvalidDateOrTime    = "invalid date or time, expected date=YYYY-MM-DD and startTime=HH:MM"
	msgInvalidInput         = "invalid input data"
	msgTechnicianNotFound   = "technician not found"
	msgTechnicianNotWorking = "technician is not working on this date"
	msgServiceTypeNotFound  = "service type not found"
	msgInvalidTimeSlot      = "requested time slot is outside working hours"
	msgSlotNotAvailable     = "requested time slot is not available"
	msgLockBusy             = "another booking for this technician is in progress, retry shortly"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	customerID := middleware.UserIDFromContext(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrTechnicianNotFound):
			h.logger.Warn("POST /bookings - Technician not found: technician_id=%d", req.TechnicianID)
			handlers.RespondNotFound(w, msgTechnicianNotFound)

		case errors.Is(err, createBooking.ErrServiceTypeNotFound):
			h.logger.Warn("POST /bookings - Service type not found: service_type_id=%v", req.ServiceTypeID)
			handlers.RespondNotFound(w, msgServiceTypeNotFound)

		case errors.Is(err, createBooking.ErrTechnicianNotWorking):
			h.logger.Warn("POST /bookings - Technician not working: technician_id=%d, date=%s", req.TechnicianID, req.Date)
			handlers.RespondConflict(w, msgTechnicianNotWorking)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Slot outside working hours: technician_id=%d, start=%s", req.TechnicianID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: technician_id=%d, date=%s, start=%s",
				req.TechnicianID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrLockBusy):
			h.logger.Warn("POST /bookings - Booking lock busy: technician_id=%d, date=%s", req.TechnicianID, req.Date)
			handlers.RespondConflict(w, msgLockBusy)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer_id=%d, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, technician_id=%d, date=%s, start=%s",
		result.ID, result.TechnicianID, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
