package get_technician_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/garage-ms/availability-service/internal/domain"
	"github.com/garage-ms/availability-service/internal/service/bookings/models"
)

// ToServiceRequest builds the service request from the path technician ID
// and the optional query parameters startDate, endDate, status and
// includeInactive
func ToServiceRequest(technicianID int64, query url.Values) (*models.GetTechnicianBookingsRequest, error) {
	req := &models.GetTechnicianBookingsRequest{
		TechnicianID: technicianID,
	}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	if raw := query.Get("includeInactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
