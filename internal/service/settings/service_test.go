package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garage-ms/availability-service/internal/domain"
	"github.com/garage-ms/availability-service/internal/service/settings/models"
)

type fakeRepo struct {
	values map[string]string
}

func (f *fakeRepo) GetAll(_ context.Context) (map[string]string, error) {
	return f.values, nil
}

func (f *fakeRepo) Upsert(_ context.Context, key, value string) error {
	f.values[key] = value
	return nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_Get(t *testing.T) {
	t.Run("empty store resolves to defaults", func(t *testing.T) {
		svc := NewService(&fakeRepo{values: map[string]string{}}, &fakeTxManager{}, nopLogger{})

		resp, err := svc.Get(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "08:00", resp.BusinessHours.Start)
		assert.Equal(t, "17:00", resp.BusinessHours.End)
		assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.SlotDuration)
		assert.Empty(t, resp.RawValues)
	})

	t.Run("stored values are resolved and echoed raw", func(t *testing.T) {
		svc := NewService(&fakeRepo{values: map[string]string{
			domain.SettingBusinessHoursStart: "07:30",
			domain.SettingMaxBookingsPerSlot: "broken",
		}}, &fakeTxManager{}, nopLogger{})

		resp, err := svc.Get(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "07:30", resp.BusinessHours.Start)
		// A malformed value resolves to its default but still shows up raw.
		assert.Equal(t, domain.DefaultMaxBookingsPerSlot, resp.MaxBookingsPerSlot)
		assert.Equal(t, "broken", resp.RawValues[domain.SettingMaxBookingsPerSlot])
	})
}

func TestService_Update(t *testing.T) {
	t.Run("stores recognized keys and returns the new resolution", func(t *testing.T) {
		repo := &fakeRepo{values: map[string]string{}}
		tx := &fakeTxManager{}
		svc := NewService(repo, tx, nopLogger{})

		resp, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
			Values: map[string]string{
				domain.SettingSlotDurationMinutes: "15",
				domain.SettingMaxBookingsPerSlot:  "2",
			},
		})
		require.NoError(t, err)

		assert.Equal(t, 15, resp.SlotDuration)
		assert.Equal(t, 2, resp.MaxBookingsPerSlot)
		assert.Equal(t, "15", repo.values[domain.SettingSlotDurationMinutes])
		assert.Equal(t, 1, tx.calls, "all upserts share one transaction")
	})

	t.Run("rejects an unknown key without storing anything", func(t *testing.T) {
		repo := &fakeRepo{values: map[string]string{}}
		svc := NewService(repo, &fakeTxManager{}, nopLogger{})

		_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
			Values: map[string]string{
				domain.SettingSlotDurationMinutes: "15",
				"favourite_color":                 "blue",
			},
		})

		assert.ErrorIs(t, err, ErrUnknownSetting)
		assert.Empty(t, repo.values)
	})

	t.Run("rejects an empty update", func(t *testing.T) {
		svc := NewService(&fakeRepo{values: map[string]string{}}, &fakeTxManager{}, nopLogger{})

		_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
