package cancel_booking

import "github.com/garage-ms/availability-service/internal/service/bookings/models"

// CancelBookingRequest is the HTTP request body
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// ToServiceRequest converts the HTTP request into the service request
func (r *CancelBookingRequest) ToServiceRequest(customerID int64) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		CustomerID:         customerID,
		CancellationReason: r.CancellationReason,
	}
}
