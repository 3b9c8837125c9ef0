package calendarapp

import (
	"context"
	"time"

	"stayops/internal/app/dto"
	"stayops/internal/app/queries"
	"stayops/internal/domain/property"
)

const getMonthCalendarKey = "calendar.month"

type GetMonthCalendarQuery struct {
	PropertyID string
	Year       int
	Month      time.Month
}

func (q GetMonthCalendarQuery) Key() string { return getMonthCalendarKey }

type GetMonthCalendarHandler struct {
	Assembler
}

func (h *GetMonthCalendarHandler) Handle(ctx context.Context, q GetMonthCalendarQuery) (dto.MonthCalendar, error) {
	days, _, err := h.assemble(ctx, q.PropertyID, q.Year, q.Month)
	if err != nil {
		return dto.MonthCalendar{}, err
	}
	return dto.MapMonthCalendar(property.PropertyID(q.PropertyID), q.Year, q.Month, days), nil
}

var _ queries.Handler[GetMonthCalendarQuery, dto.MonthCalendar] = (*GetMonthCalendarHandler)(nil)
