package get_availability

import (
	"strconv"
	"time"

	"github.com/garage-ms/availability-service/internal/domain"
	getAvailability "github.com/garage-ms/availability-service/internal/usecase/get_availability"
)

// AvailabilityResponse is the HTTP response for the availability report
type AvailabilityResponse struct {
	Date              string                   `json:"date"`
	ServiceType       *ServiceTypeDTO          `json:"serviceType,omitempty"`
	RequestedDuration int                      `json:"requestedDuration"`
	Settings          SettingsDTO              `json:"settings"`
	Availability      []TechnicianAvailability `json:"availability"`
	Summary           SummaryDTO               `json:"summary"`
}

// ServiceTypeDTO echoes the resolved service type
type ServiceTypeDTO struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
}

// SettingsDTO is the resolved workshop configuration used for the report
type SettingsDTO struct {
	BusinessHours      IntervalDTO `json:"businessHours"`
	LunchBreak         IntervalDTO `json:"lunchBreak"`
	SlotDuration       int         `json:"slotDuration"`
	MaxBookingsPerSlot int         `json:"maxBookingsPerSlot"`
}

// IntervalDTO is a start/end pair rendered as "HH:MM"
type IntervalDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TechnicianDTO identifies a technician in the report
type TechnicianDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// WorkingHoursDTO is the effective working window plus breaks
type WorkingHoursDTO struct {
	Start  string        `json:"start"`
	End    string        `json:"end"`
	Breaks []IntervalDTO `json:"breaks"`
}

// SlotDTO is one candidate slot
type SlotDTO struct {
	Time               string  `json:"time"`
	EndTime            string  `json:"endTime"`
	Available          bool    `json:"available"`
	Conflicts          int     `json:"conflicts"`
	ConcurrentBookings int     `json:"concurrentBookings"`
	Reason             *string `json:"reason,omitempty"`
}

// TechnicianAvailability is one technician's slot set
type TechnicianAvailability struct {
	Technician     TechnicianDTO   `json:"technician"`
	Date           string          `json:"date"`
	WorkingHours   WorkingHoursDTO `json:"workingHours"`
	Slots          []SlotDTO       `json:"slots"`
	TotalSlots     int             `json:"totalSlots"`
	AvailableSlots int             `json:"availableSlots"`
}

// SummaryDTO is the overall availability summary
type SummaryDTO struct {
	TotalTechnicians int `json:"totalTechnicians"`
	TotalSlots       int `json:"totalSlots"`
	AvailableSlots   int `json:"availableSlots"`
}

// ToUseCaseRequest builds the use case request from query parameters
func ToUseCaseRequest(dateStr, durationStr, serviceTypeStr, technicianStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailability.Request{Date: date}

	if durationStr != "" {
		duration, err := strconv.Atoi(durationStr)
		if err != nil {
			return nil, err
		}
		req.DurationMinutes = duration
	}

	if serviceTypeStr != "" {
		serviceTypeID, err := strconv.ParseInt(serviceTypeStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ServiceTypeID = &serviceTypeID
	}

	if technicianStr != "" {
		technicianID, err := strconv.ParseInt(technicianStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.TechnicianID = &technicianID
	}

	return req, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	availability := make([]TechnicianAvailability, len(resp.Availability))
	for i := range resp.Availability {
		availability[i] = fromTechnicianAvailability(&resp.Availability[i])
	}

	out := &AvailabilityResponse{
		Date:              resp.Date.Format(domain.DateFormat),
		RequestedDuration: resp.RequestedDuration,
		Settings: SettingsDTO{
			BusinessHours:      fromInterval(resp.Settings.BusinessHours),
			LunchBreak:         fromInterval(resp.Settings.LunchBreak),
			SlotDuration:       resp.Settings.SlotDurationMinutes,
			MaxBookingsPerSlot: resp.Settings.MaxBookingsPerSlot,
		},
		Availability: availability,
		Summary: SummaryDTO{
			TotalTechnicians: resp.Summary.TotalTechnicians,
			TotalSlots:       resp.Summary.TotalSlots,
			AvailableSlots:   resp.Summary.AvailableSlots,
		},
	}

	if resp.ServiceType != nil {
		out.ServiceType = &ServiceTypeDTO{
			ID:              resp.ServiceType.ID,
			Name:            resp.ServiceType.Name,
			DurationMinutes: resp.ServiceType.DurationMinutes,
		}
	}

	return out
}

func fromTechnicianAvailability(ta *domain.TechnicianAvailability) TechnicianAvailability {
	breaks := make([]IntervalDTO, len(ta.Breaks))
	for i, brk := range ta.Breaks {
		breaks[i] = fromInterval(brk)
	}

	slots := make([]SlotDTO, len(ta.Slots))
	for i, slot := range ta.Slots {
		slots[i] = SlotDTO{
			Time:               slot.Start.String(),
			EndTime:            slot.End.String(),
			Available:          slot.Available,
			Conflicts:          slot.ConflictCount,
			ConcurrentBookings: slot.ConcurrentCount,
		}
		if slot.Reason != "" {
			reason := slot.Reason
			slots[i].Reason = &reason
		}
	}

	return TechnicianAvailability{
		Technician: TechnicianDTO{
			ID:    ta.Technician.ID,
			Name:  ta.Technician.Name,
			Email: ta.Technician.Email,
		},
		Date: ta.Date.Format(domain.DateFormat),
		WorkingHours: WorkingHoursDTO{
			Start:  ta.WorkingInterval.Start.String(),
			End:    ta.WorkingInterval.End.String(),
			Breaks: breaks,
		},
		Slots:          slots,
		TotalSlots:     ta.TotalSlots,
		AvailableSlots: ta.AvailableSlots,
	}
}

func fromInterval(interval domain.Interval) IntervalDTO {
	return IntervalDTO{Start: interval.Start.String(), End: interval.End.String()}
}
