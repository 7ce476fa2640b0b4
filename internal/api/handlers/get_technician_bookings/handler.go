package get_technician_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/garage-ms/availability-service/internal/api/handlers"
	"github.com/garage-ms/availability-service/internal/service/bookings"
)

const (
	msgInvalidTechnicianID = "invalid technician id"
	msgInvalidParams       = "invalid query parameters, expected startDate/endDate=YYYY-MM-DD, boolean includeInactive and a known status"
	msgInvalidInput        = "invalid input data"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/technicians/{technicianId}/bookings
// Query params: startDate, endDate (YYYY-MM-DD), status, includeInactive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	technicianID, err := strconv.ParseInt(mux.Vars(r)["technicianId"], 10, 64)
	if err != nil || technicianID <= 0 {
		h.logger.Warn("GET /technicians/{id}/bookings - Invalid technician id: %v", mux.Vars(r)["technicianId"])
		handlers.RespondBadRequest(w, msgInvalidTechnicianID)
		return
	}

	serviceReq, err := ToServiceRequest(technicianID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /technicians/{id}/bookings - Invalid query parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetTechnicianBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /technicians/{id}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /technicians/{id}/bookings - Failed to fetch bookings: technician_id=%d, error=%v", technicianID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /technicians/{id}/bookings - Fetched %d bookings: technician_id=%d", len(result.Bookings), technicianID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
