package models

import "github.com/garage-ms/availability-service/internal/domain"

// UpdateSettingsRequest carries one or more setting values to store.
// Only recognized keys are accepted.
type UpdateSettingsRequest struct {
	Values map[string]string `json:"values"`
}

// SettingsResponse is the resolved workshop configuration plus the raw
// stored values that produced it
type SettingsResponse struct {
	BusinessHours      IntervalDTO       `json:"businessHours"`
	LunchBreak         IntervalDTO       `json:"lunchBreak"`
	SlotDuration       int               `json:"slotDuration"`
	MaxBookingsPerSlot int               `json:"maxBookingsPerSlot"`
	RawValues          map[string]string `json:"rawValues"`
}

// IntervalDTO is a start/end pair rendered as "HH:MM"
type IntervalDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FromDefaults builds the response from resolved defaults and raw values
func FromDefaults(defaults domain.WorkshopDefaults, raw map[string]string) *SettingsResponse {
	return &SettingsResponse{
		BusinessHours: IntervalDTO{
			Start: defaults.BusinessHours.Start.String(),
			End:   defaults.BusinessHours.End.String(),
		},
		LunchBreak: IntervalDTO{
			Start: defaults.LunchBreak.Start.String(),
			End:   defaults.LunchBreak.End.String(),
		},
		SlotDuration:       defaults.SlotDurationMinutes,
		MaxBookingsPerSlot: defaults.MaxBookingsPerSlot,
		RawValues:          raw,
	}
}
