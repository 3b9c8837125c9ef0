package memory

import (
	"context"
	"sync"
	"time"

	"stayops/internal/domain/property"
	"stayops/internal/domain/reservation"
	"stayops/internal/domain/shared/daterange"
)

type ReservationRepository struct {
	mu           sync.RWMutex
	reservations map[string]reservation.Reservation
}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{reservations: make(map[string]reservation.Reservation)}
}

func (r *ReservationRepository) ForRange(ctx context.Context, id property.PropertyID, from, to time.Time) ([]reservation.Reservation, error) {
	window := daterange.DateRange{CheckIn: from.UTC(), CheckOut: to.UTC()}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []reservation.Reservation
	for _, res := range r.reservations {
		if res.PropertyID != id {
			continue
		}
		if res.Range.Validate() != nil {
			continue
		}
		if res.Range.Overlaps(window) {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *ReservationRepository) Save(ctx context.Context, res *reservation.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reservations[res.ID] = *res
	return nil
}

var _ reservation.Repository = (*ReservationRepository)(nil)
