package calendar

import (
	"time"

	"stayops/internal/domain/shared/daterange"
)

type HolidayType string

const (
	HolidayNational HolidayType = "NATIONAL"
	HolidayRegional HolidayType = "REGIONAL"
	HolidayOptional HolidayType = "OPTIONAL"
)

// Holiday is one row of the external holiday table; read-only input.
type Holiday struct {
	Date time.Time
	Name string
	Type HolidayType
}

// IndexHolidays keys holidays by calendar date for O(1) lookup during
// assembly. Later duplicates for the same date are ignored.
func IndexHolidays(holidays []Holiday) map[string]Holiday {
	out := make(map[string]Holiday, len(holidays))
	for _, h := range holidays {
		key := daterange.DayKey(h.Date)
		if _, ok := out[key]; ok {
			continue
		}
		out[key] = h
	}
	return out
}
