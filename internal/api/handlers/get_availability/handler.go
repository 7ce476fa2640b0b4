package get_availability

import (
	"errors"
	"net/http"

	"github.com/garage-ms/availability-service/internal/api/handlers"
	getAvailability "github.com/garage-ms/availability-service/internal/usecase/get_availability"
)

const (
	msgMissingDate         = "date is required"
	msgInvalidParams       = "invalid query parameters, expected date=YYYY-MM-DD and numeric duration/serviceTypeId/technicianId"
	msgInvalidInput        = "invalid input data"
	msgTechnicianNotFound  = "technician not found"
	msgServiceTypeNotFound = "service type not found"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (required, YYYY-MM-DD), duration (minutes, optional),
// serviceTypeId (optional), technicianId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, query.Get("duration"), query.Get("serviceTypeId"), query.Get("technicianId"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid query parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailability.ErrTechnicianNotFound):
			h.logger.Warn("GET /availability - Technician not found: technician_id=%v", useCaseReq.TechnicianID)
			handlers.RespondNotFound(w, msgTechnicianNotFound)

		case errors.Is(err, getAvailability.ErrServiceTypeNotFound):
			h.logger.Warn("GET /availability - Service type not found: service_type_id=%v", useCaseReq.ServiceTypeID)
			handlers.RespondNotFound(w, msgServiceTypeNotFound)

		default:
			h.logger.Error("GET /availability - Failed to compute availability: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Report computed: date=%s, technicians=%d, available=%d/%d",
		dateStr, result.Summary.TotalTechnicians, result.Summary.AvailableSlots, result.Summary.TotalSlots)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
