package reservation

import "stayops/internal/domain/shared/daterange"

type Role string

const (
	RoleCheckin  Role = "CHECKIN"
	RoleStay     Role = "STAY"
	RoleCheckout Role = "CHECKOUT"
)

// Marker tags a single calendar date with one reservation's role on it.
type Marker struct {
	ReservationID string
	PropertyID    string
	Role          Role
	GuestName     string
}

// OccupancyMap holds markers keyed by daterange.DayKey date strings.
type OccupancyMap map[string][]Marker

// MapOccupancy expands each reservation span into per-date markers: checkin
// on the first date, checkout on the checkout date, stay strictly between.
// Markers stack; a back-to-back turnover leaves both a checkout and a
// checkin on the same date, and flagging that is the caller's concern.
func MapOccupancy(reservations []Reservation) OccupancyMap {
	out := make(OccupancyMap, len(reservations)*2)
	for _, r := range reservations {
		mark := func(key string, role Role) {
			out[key] = append(out[key], Marker{
				ReservationID: r.ID,
				PropertyID:    string(r.PropertyID),
				Role:          role,
				GuestName:     r.GuestName,
			})
		}
		days := r.Range.Days()
		if len(days) == 0 {
			continue
		}
		mark(daterange.DayKey(days[0]), RoleCheckin)
		for _, d := range days[1:] {
			mark(daterange.DayKey(d), RoleStay)
		}
		mark(daterange.DayKey(r.Range.CheckOut), RoleCheckout)
	}
	return out
}

// Blocks reports whether the date carries a checkin or stay marker. A bare
// checkout does not block; the unit can be relet the same night.
func (m OccupancyMap) Blocks(key string) bool {
	for _, marker := range m[key] {
		if marker.Role == RoleCheckin || marker.Role == RoleStay {
			return true
		}
	}
	return false
}
