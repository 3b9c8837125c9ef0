package policies

import (
	"context"

	"stayops/internal/domain/calendar"
)

// HolidaySource is the port to the external holiday-data collaborator.
// Implementations return whatever they have; the calling layer treats a
// failure as an empty table rather than an error (degraded mode).
type HolidaySource interface {
	Holidays(ctx context.Context, startYear, endYear int) ([]calendar.Holiday, error)
}
