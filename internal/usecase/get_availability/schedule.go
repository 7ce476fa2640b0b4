package get_availability

import (
	"time"

	"github.com/garage-ms/availability-service/internal/domain"
)

// daySchedule is the resolved working window for one technician and one
// date: either not working at all, or a working interval plus breaks.
type daySchedule struct {
	Working bool
	Hours   domain.Interval
	Breaks  []domain.Interval
}

var notWorking = daySchedule{}

// resolveDaySchedule determines a technician's effective working interval
// and break list for one date.
//
// The weekly template is consulted first: a weekday without an entry means
// the technician does not work that day. A date exception then overrides
// the template result: unavailable/holiday/sick removes the technician for
// the date, and an available exception with override hours replaces the
// working interval for the date only. Breaks are never exception-level;
// they come from the template, falling back to the workshop lunch break
// when the technician defines none.
func resolveDaySchedule(tech *domain.Technician, date time.Time, defaults domain.WorkshopDefaults) daySchedule {
	templateHours, worksToday := tech.Template.HoursFor(date.Weekday())
	if !worksToday {
		return notWorking
	}

	breaks := tech.Template.Breaks
	if len(breaks) == 0 {
		breaks = []domain.Interval{defaults.LunchBreak}
	}

	exception := tech.ExceptionFor(date)
	if exception == nil {
		return daySchedule{Working: true, Hours: templateHours, Breaks: breaks}
	}

	if exception.IsNotWorking() {
		return notWorking
	}

	if exception.Type == domain.ExceptionAvailable && exception.OverrideInterval != nil {
		return daySchedule{Working: true, Hours: *exception.OverrideInterval, Breaks: breaks}
	}

	// An available exception without override hours changes nothing.
	return daySchedule{Working: true, Hours: templateHours, Breaks: breaks}
}
