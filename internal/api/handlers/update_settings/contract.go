package update_settings

import (
	"context"

	"github.com/garage-ms/availability-service/internal/service/settings/models"
)

// SettingsService is the service interface used by the handler
type SettingsService interface {
	Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
