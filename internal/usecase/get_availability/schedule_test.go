package get_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garage-ms/availability-service/internal/domain"
)

// Monday 2026-09-07
var testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func defaultSettings() domain.WorkshopDefaults {
	return domain.ResolveWorkshopDefaults(nil)
}

func mkInterval(t *testing.T, start, end string) domain.Interval {
	t.Helper()
	interval, err := domain.ParseInterval(start, end)
	require.NoError(t, err)
	return interval
}

func weekdayTechnician(t *testing.T, hours domain.Interval, days ...time.Weekday) *domain.Technician {
	t.Helper()
	working := make(map[time.Weekday]domain.Interval, len(days))
	for _, day := range days {
		working[day] = hours
	}
	return &domain.Technician{
		ID:       1,
		Name:     "Alice",
		IsActive: true,
		Template: domain.WeeklyTemplate{WorkingHours: working},
	}
}

func TestResolveDaySchedule_Template(t *testing.T) {
	hours := mkInterval(t, "09:00", "17:00")

	t.Run("working weekday uses template hours", func(t *testing.T) {
		tech := weekdayTechnician(t, hours, time.Monday)

		schedule := resolveDaySchedule(tech, testDate, defaultSettings())

		require.True(t, schedule.Working)
		assert.Equal(t, hours, schedule.Hours)
	})

	t.Run("weekday absent from template means not working", func(t *testing.T) {
		tech := weekdayTechnician(t, hours, time.Tuesday)

		schedule := resolveDaySchedule(tech, testDate, defaultSettings())

		assert.False(t, schedule.Working)
	})

	t.Run("empty template means never working", func(t *testing.T) {
		tech := &domain.Technician{ID: 1}

		schedule := resolveDaySchedule(tech, testDate, defaultSettings())

		assert.False(t, schedule.Working)
	})
}

func TestResolveDaySchedule_Breaks(t *testing.T) {
	hours := mkInterval(t, "09:00", "17:00")

	t.Run("technician breaks win over the workshop lunch", func(t *testing.T) {
		tech := weekdayTechnician(t, hours, time.Monday)
		tech.Template.Breaks = []domain.Interval{mkInterval(t, "11:00", "11:30")}

		schedule := resolveDaySchedule(tech, testDate, defaultSettings())

		require.True(t, schedule.Working)
		assert.Equal(t, []domain.Interval{mkInterval(t, "11:00", "11:30")}, schedule.Breaks)
	})

	t.Run("no technician breaks falls back to the workshop lunch", func(t *testing.T) {
		tech := weekdayTechnician(t, hours, time.Monday)

		schedule := resolveDaySchedule(tech, testDate, defaultSettings())

		require.True(t, schedule.Working)
		assert.Equal(t, []domain.Interval{defaultSettings().LunchBreak}, schedule.Breaks)
	})
}

func TestResolveDaySchedule_Exceptions(t *testing.T) {
	hours := mkInterval(t, "09:00", "17:00")

	notWorkingTypes := []domain.ExceptionType{
		domain.ExceptionUnavailable,
		domain.ExceptionHoliday,
		domain.ExceptionSick,
	}
	for _, excType := range notWorkingTypes {
		t.Run(string(excType)+" removes a working day", func(t *testing.T) {
			tech := weekdayTechnician(t, hours, time.Monday)
			tech.Exceptions = []domain.DateException{{Date: testDate, Type: excType}}

			schedule := resolveDaySchedule(tech, testDate, defaultSettings())

			assert.False(t, schedule.Working)
		})
	}

	t.Run("available exception replaces hours for the date only", func(t *testing.T) {
		tech := weekdayTechnician(t, hours, time.Monday)
		override := mkInterval(t, "10:00", "14:00")
		tech.Exceptions = []domain.DateException{{
			Date:             testDate,
			Type:             domain.ExceptionAvailable,
			OverrideInterval: &override,
		}}

		schedule := resolveDaySchedule(tech, testDate, defaultSettings())

		require.True(t, schedule.Working)
		assert.Equal(t, override, schedule.Hours)
		// Breaks still come from the template side.
		assert.Equal(t, []domain.Interval{defaultSettings().LunchBreak}, schedule.Breaks)
	})

	t.Run("available exception without override keeps template hours", func(t *testing.T) {
		tech := weekdayTechnician(t, hours, time.Monday)
		tech.Exceptions = []domain.DateException{{Date: testDate, Type: domain.ExceptionAvailable}}

		schedule := resolveDaySchedule(tech, testDate, defaultSettings())

		require.True(t, schedule.Working)
		assert.Equal(t, hours, schedule.Hours)
	})

	t.Run("available exception cannot add a non-template day", func(t *testing.T) {
		// Template covers Tuesday only; the exception targets Monday.
		tech := weekdayTechnician(t, hours, time.Tuesday)
		override := mkInterval(t, "10:00", "14:00")
		tech.Exceptions = []domain.DateException{{
			Date:             testDate,
			Type:             domain.ExceptionAvailable,
			OverrideInterval: &override,
		}}

		schedule := resolveDaySchedule(tech, testDate, defaultSettings())

		assert.False(t, schedule.Working)
	})

	t.Run("exception on another date changes nothing", func(t *testing.T) {
		tech := weekdayTechnician(t, hours, time.Monday)
		tech.Exceptions = []domain.DateException{{
			Date: testDate.AddDate(0, 0, 1),
			Type: domain.ExceptionSick,
		}}

		schedule := resolveDaySchedule(tech, testDate, defaultSettings())

		require.True(t, schedule.Working)
		assert.Equal(t, hours, schedule.Hours)
	})
}
