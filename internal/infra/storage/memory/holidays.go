package memory

import (
	"context"
	"sync"

	"stayops/internal/app/policies"
	"stayops/internal/domain/calendar"
)

// HolidayTable is a static in-memory holiday source for local runs.
type HolidayTable struct {
	mu   sync.RWMutex
	rows []calendar.Holiday
}

func NewHolidayTable(rows []calendar.Holiday) *HolidayTable {
	return &HolidayTable{rows: rows}
}

func (t *HolidayTable) Holidays(ctx context.Context, startYear, endYear int) ([]calendar.Holiday, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var out []calendar.Holiday
	for _, h := range t.rows {
		year := h.Date.Year()
		if year >= startYear && year <= endYear {
			out = append(out, h)
		}
	}
	return out, nil
}

func (t *HolidayTable) Add(rows ...calendar.Holiday) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = append(t.rows, rows...)
}

var _ policies.HolidaySource = (*HolidayTable)(nil)
