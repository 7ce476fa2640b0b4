package get_settings

import (
	"context"

	"github.com/garage-ms/availability-service/internal/service/settings/models"
)

// SettingsService is the service interface used by the handler
type SettingsService interface {
	Get(ctx context.Context) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
