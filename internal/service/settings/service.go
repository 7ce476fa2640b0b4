package settings

import (
	"context"
	"fmt"

	"github.com/garage-ms/availability-service/internal/domain"
	"github.com/garage-ms/availability-service/internal/service/settings/models"
)

// Service reads and updates workshop settings.
// Reads always succeed with a fully resolved configuration: missing or
// malformed values fall back per field, never as a whole.
type Service struct {
	settingsRepo SettingsRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService creates the settings service
func NewService(settingsRepo SettingsRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Get returns the resolved workshop configuration along with the raw
// stored values
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	raw, err := s.settingsRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Get: failed to load settings: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	defaults := domain.ResolveWorkshopDefaults(raw)
	return models.FromDefaults(defaults, raw), nil
}

// Update stores the supplied setting values. Every key must be a
// recognized workshop setting; values are stored as-is and validated at
// resolution time, where a malformed value falls back to its default.
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating %d setting(s)", len(req.Values))

	if len(req.Values) == 0 {
		return nil, fmt.Errorf("%w: no values supplied", ErrInvalidInput)
	}

	for key := range req.Values {
		if !isRecognizedKey(key) {
			s.logger.Warn("Update: unknown setting key %q", key)
			return nil, fmt.Errorf("%w: %q", ErrUnknownSetting, key)
		}
	}

	// All keys land together or not at all
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		for key, value := range req.Values {
			if err := s.settingsRepo.Upsert(txCtx, key, value); err != nil {
				s.logger.Error("Update: failed to store %q: %v", key, err)
				return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: stored %d setting(s)", len(req.Values))
	return s.Get(ctx)
}

func isRecognizedKey(key string) bool {
	for _, known := range domain.RecognizedSettingKeys {
		if key == known {
			return true
		}
	}
	return false
}
