package servicecatalog

// ServiceType describes one bookable service offered by the workshop,
// as returned by the catalog service.
type ServiceType struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	IsActive        bool    `json:"isActive"`
}
