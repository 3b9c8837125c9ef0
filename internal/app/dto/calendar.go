package dto

import (
	"time"

	"stayops/internal/domain/calendar"
	"stayops/internal/domain/property"
)

type OccupancyMarker struct {
	ReservationID string `json:"reservation_id"`
	Role          string `json:"role"`
	GuestName     string `json:"guest_name,omitempty"`
}

type CalendarDay struct {
	Date        string            `json:"date"`
	DayOfWeek   string            `json:"day_of_week"`
	Price       int64             `json:"price"`
	PriceType   string            `json:"price_type"`
	PriceReason string            `json:"price_reason"`
	IsHoliday   bool              `json:"is_holiday"`
	HolidayName string            `json:"holiday_name,omitempty"`
	IsWeekend   bool              `json:"is_weekend"`
	Available   bool              `json:"available"`
	Occupancy   []OccupancyMarker `json:"occupancy,omitempty"`
}

type MonthCalendar struct {
	PropertyID string        `json:"property_id"`
	Year       int           `json:"year"`
	Month      int           `json:"month"`
	Days       []CalendarDay `json:"days"`
}

type AvailableDates struct {
	PropertyID string   `json:"property_id"`
	Year       int      `json:"year"`
	Month      int      `json:"month"`
	Dates      []string `json:"dates"`
}

func MapMonthCalendar(id property.PropertyID, year int, month time.Month, days []calendar.CalendarDay) MonthCalendar {
	out := MonthCalendar{
		PropertyID: string(id),
		Year:       year,
		Month:      int(month),
		Days:       make([]CalendarDay, 0, len(days)),
	}
	for _, d := range days {
		day := CalendarDay{
			Date:        d.Date.Format("2006-01-02"),
			DayOfWeek:   d.DayOfWeek.String(),
			Price:       d.Price,
			PriceType:   string(d.PriceType),
			PriceReason: d.PriceReason,
			IsHoliday:   d.IsHoliday,
			HolidayName: d.HolidayName,
			IsWeekend:   d.IsWeekend,
			Available:   d.Available,
		}
		for _, m := range d.Occupancy {
			day.Occupancy = append(day.Occupancy, OccupancyMarker{
				ReservationID: m.ReservationID,
				Role:          string(m.Role),
				GuestName:     m.GuestName,
			})
		}
		out.Days = append(out.Days, day)
	}
	return out
}
