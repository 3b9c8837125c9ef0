package calendarapp

import (
	"context"
	"time"

	"stayops/internal/app/dto"
	"stayops/internal/app/queries"
)

const availableDatesKey = "calendar.available_dates"

type AvailableDatesQuery struct {
	PropertyID string
	Year       int
	Month      time.Month
}

func (q AvailableDatesQuery) Key() string { return availableDatesKey }

// AvailableDatesHandler lists the month's dates carrying no checkin or stay
// marker; a checkout-only date still counts as available.
type AvailableDatesHandler struct {
	Assembler
}

func (h *AvailableDatesHandler) Handle(ctx context.Context, q AvailableDatesQuery) (dto.AvailableDates, error) {
	days, _, err := h.assemble(ctx, q.PropertyID, q.Year, q.Month)
	if err != nil {
		return dto.AvailableDates{}, err
	}
	out := dto.AvailableDates{
		PropertyID: q.PropertyID,
		Year:       q.Year,
		Month:      int(q.Month),
		Dates:      make([]string, 0, len(days)),
	}
	for _, d := range days {
		if d.Available {
			out.Dates = append(out.Dates, d.Date.Format("2006-01-02"))
		}
	}
	return out, nil
}

var _ queries.Handler[AvailableDatesQuery, dto.AvailableDates] = (*AvailableDatesHandler)(nil)
