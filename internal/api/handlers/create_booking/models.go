package create_booking

import (
	"time"

	"github.com/garage-ms/availability-service/internal/domain"
	createBooking "github.com/garage-ms/availability-service/internal/usecase/create_booking"
)

// CreateBookingRequest is the HTTP request body
type CreateBookingRequest struct {
	TechnicianID    int64   `json:"technicianId"`
	ServiceTypeID   *int64  `json:"serviceTypeId,omitempty"`
	Date            string  `json:"date"`      // "2025-10-15"
	StartTime       string  `json:"startTime"` // "10:00"
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	VehicleReg      *string `json:"vehicleReg,omitempty"`
	VehicleMake     *string `json:"vehicleMake,omitempty"`
	VehicleModel    *string `json:"vehicleModel,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// BookingResponse is the HTTP response body
type BookingResponse struct {
	ID              int64   `json:"id"`
	CustomerID      int64   `json:"customerId"`
	TechnicianID    int64   `json:"technicianId"`
	ServiceTypeID   *int64  `json:"serviceTypeId,omitempty"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	VehicleReg      *string `json:"vehicleReg,omitempty"`
	VehicleMake     *string `json:"vehicleMake,omitempty"`
	VehicleModel    *string `json:"vehicleModel,omitempty"`
	Notes           *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case request
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := domain.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID:      customerID,
		TechnicianID:    r.TechnicianID,
		ServiceTypeID:   r.ServiceTypeID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		VehicleReg:      r.VehicleReg,
		VehicleMake:     r.VehicleMake,
		VehicleModel:    r.VehicleModel,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		CustomerID:      resp.CustomerID,
		TechnicianID:    resp.TechnicianID,
		ServiceTypeID:   resp.ServiceTypeID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.StartTime.Add(resp.DurationMinutes).String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		VehicleReg:      resp.VehicleReg,
		VehicleMake:     resp.VehicleMake,
		VehicleModel:    resp.VehicleModel,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt,
		UpdatedAt:       resp.UpdatedAt,
	}
}
