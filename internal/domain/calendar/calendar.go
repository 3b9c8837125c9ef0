package calendar

import (
	"errors"
	"time"

	"stayops/internal/domain/pricing"
	"stayops/internal/domain/property"
	"stayops/internal/domain/reservation"
	"stayops/internal/domain/shared/daterange"
)

var ErrInvalidMonth = errors.New("calendar: month must be between 1 and 12")

// CalendarDay is the derived per-day record of the month grid. It is
// recomputed on every request and never persisted.
type CalendarDay struct {
	Date        time.Time
	DayOfWeek   time.Weekday
	Price       int64
	PriceType   PriceType
	PriceReason string
	IsHoliday   bool
	HolidayName string
	IsWeekend   bool
	Occupancy   []reservation.Marker
	Available   bool
}

// BuildMonthCalendar assembles the ordered day grid for one property and
// month: resolver classification merged with reservation occupancy. The
// config must already validate; no partial grid is produced otherwise.
func BuildMonthCalendar(
	id property.PropertyID,
	year int,
	month time.Month,
	cfg pricing.Config,
	holidays []Holiday,
	reservations []reservation.Reservation,
) ([]CalendarDay, error) {
	if month < time.January || month > time.December {
		return nil, ErrInvalidMonth
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	index := IndexHolidays(holidays)
	occupancy := reservation.MapOccupancy(reservations)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := make([]CalendarDay, 0, 31)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		resolved := ResolveDayPricing(d, index, cfg)
		key := daterange.DayKey(d)
		days = append(days, CalendarDay{
			Date:        d,
			DayOfWeek:   d.Weekday(),
			Price:       resolved.Price,
			PriceType:   resolved.Type,
			PriceReason: resolved.Reason,
			IsHoliday:   resolved.IsHoliday,
			HolidayName: resolved.HolidayName,
			IsWeekend:   resolved.IsWeekend,
			Occupancy:   occupancy[key],
			Available:   !occupancy.Blocks(key),
		})
	}
	return days, nil
}
