package update_settings

import (
	"errors"
	"net/http"

	"github.com/garage-ms/availability-service/internal/api/handlers"
	"github.com/garage-ms/availability-service/internal/service/settings"
	"github.com/garage-ms/availability-service/internal/service/settings/models"
)

const (
	msgInvalidBody    = "invalid request body"
	msgInvalidInput   = "invalid input data"
	msgUnknownSetting = "unknown setting key"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /settings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, settings.ErrUnknownSetting):
			h.logger.Warn("PUT /settings - Unknown setting key: %v", err)
			handlers.RespondBadRequest(w, msgUnknownSetting)

		default:
			h.logger.Error("PUT /settings - Failed to update settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings - Settings updated: %d value(s)", len(req.Values))
	handlers.RespondJSON(w, http.StatusOK, result)
}
