package reservation

import (
	"context"
	"time"

	"stayops/internal/domain/property"
	"stayops/internal/domain/shared/daterange"
)

// Reservation is a confirmed stay with a half-open [checkIn, checkOut) span.
// The mapper assumes the span is valid; repositories must not hand out rows
// with checkout on or before checkin.
type Reservation struct {
	ID         string
	PropertyID property.PropertyID
	Range      daterange.DateRange
	GuestName  string
	Source     string
}

type Repository interface {
	ForRange(ctx context.Context, id property.PropertyID, from, to time.Time) ([]Reservation, error)
	Save(ctx context.Context, r *Reservation) error
}
