package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveWorkshopDefaults(t *testing.T) {
	t.Run("empty store resolves to the package defaults", func(t *testing.T) {
		defaults := ResolveWorkshopDefaults(map[string]string{})

		assert.Equal(t, MustTimeOfDay("08:00"), defaults.BusinessHours.Start)
		assert.Equal(t, MustTimeOfDay("17:00"), defaults.BusinessHours.End)
		assert.Equal(t, MustTimeOfDay("12:00"), defaults.LunchBreak.Start)
		assert.Equal(t, MustTimeOfDay("13:00"), defaults.LunchBreak.End)
		assert.Equal(t, DefaultSlotDurationMinutes, defaults.SlotDurationMinutes)
		assert.Equal(t, DefaultMaxBookingsPerSlot, defaults.MaxBookingsPerSlot)
	})

	t.Run("stored values win", func(t *testing.T) {
		defaults := ResolveWorkshopDefaults(map[string]string{
			SettingBusinessHoursStart:  "07:00",
			SettingBusinessHoursEnd:    "19:00",
			SettingLunchBreakStart:     "13:00",
			SettingLunchBreakEnd:       "14:00",
			SettingSlotDurationMinutes: "15",
			SettingMaxBookingsPerSlot:  "2",
		})

		assert.Equal(t, MustTimeOfDay("07:00"), defaults.BusinessHours.Start)
		assert.Equal(t, MustTimeOfDay("19:00"), defaults.BusinessHours.End)
		assert.Equal(t, MustTimeOfDay("13:00"), defaults.LunchBreak.Start)
		assert.Equal(t, 15, defaults.SlotDurationMinutes)
		assert.Equal(t, 2, defaults.MaxBookingsPerSlot)
	})

	t.Run("each field falls back independently", func(t *testing.T) {
		defaults := ResolveWorkshopDefaults(map[string]string{
			SettingBusinessHoursStart:  "garbage",
			SettingBusinessHoursEnd:    "19:00",
			SettingSlotDurationMinutes: "45",
		})

		// Only the malformed half falls back; its valid partner is kept.
		assert.Equal(t, MustTimeOfDay("08:00"), defaults.BusinessHours.Start)
		assert.Equal(t, MustTimeOfDay("19:00"), defaults.BusinessHours.End)
		assert.Equal(t, 45, defaults.SlotDurationMinutes)
		assert.Equal(t, DefaultMaxBookingsPerSlot, defaults.MaxBookingsPerSlot)
	})

	t.Run("malformed end keeps a valid start", func(t *testing.T) {
		defaults := ResolveWorkshopDefaults(map[string]string{
			SettingLunchBreakStart: "11:30",
			SettingLunchBreakEnd:   "25:00",
		})

		assert.Equal(t, MustTimeOfDay("11:30"), defaults.LunchBreak.Start)
		assert.Equal(t, MustTimeOfDay("13:00"), defaults.LunchBreak.End)
	})

	t.Run("inverted interval falls back as a pair", func(t *testing.T) {
		defaults := ResolveWorkshopDefaults(map[string]string{
			SettingLunchBreakStart: "14:00",
			SettingLunchBreakEnd:   "13:00",
		})

		assert.Equal(t, MustTimeOfDay("12:00"), defaults.LunchBreak.Start)
		assert.Equal(t, MustTimeOfDay("13:00"), defaults.LunchBreak.End)
	})

	t.Run("stored value inverting against the other half's default falls back as a pair", func(t *testing.T) {
		// Only the end is stored, and it precedes the default start.
		defaults := ResolveWorkshopDefaults(map[string]string{
			SettingBusinessHoursEnd: "07:00",
		})

		assert.Equal(t, MustTimeOfDay("08:00"), defaults.BusinessHours.Start)
		assert.Equal(t, MustTimeOfDay("17:00"), defaults.BusinessHours.End)
	})

	t.Run("non-positive counts fall back", func(t *testing.T) {
		defaults := ResolveWorkshopDefaults(map[string]string{
			SettingSlotDurationMinutes: "0",
			SettingMaxBookingsPerSlot:  "-1",
		})

		assert.Equal(t, DefaultSlotDurationMinutes, defaults.SlotDurationMinutes)
		assert.Equal(t, DefaultMaxBookingsPerSlot, defaults.MaxBookingsPerSlot)
	})
}
