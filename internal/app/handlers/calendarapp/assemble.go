package calendarapp

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"stayops/internal/app/policies"
	"stayops/internal/domain/calendar"
	"stayops/internal/domain/pricing"
	"stayops/internal/domain/property"
	"stayops/internal/domain/reservation"
)

var ErrPropertyIDRequired = errors.New("calendar: property id is required")

// Assembler gathers the engine inputs from the collaborator ports and
// runs the assembly. The three reads are independent; order does not matter
// beyond read-before-compute.
type Assembler struct {
	Configs      pricing.Repository
	Holidays     policies.HolidaySource
	Reservations reservation.Repository
	Logger       *slog.Logger
}

func (a Assembler) assemble(ctx context.Context, rawID string, year int, month time.Month) ([]calendar.CalendarDay, pricing.Config, error) {
	if strings.TrimSpace(rawID) == "" {
		return nil, pricing.Config{}, ErrPropertyIDRequired
	}
	id := property.PropertyID(rawID)

	cfg, err := a.Configs.Config(ctx, id)
	if errors.Is(err, pricing.ErrConfigNotFound) {
		// The property has never been priced; assemble on defaults rather
		// than failing the whole screen.
		cfg = pricing.DefaultConfig(id)
	} else if err != nil {
		return nil, pricing.Config{}, err
	}

	var holidays []calendar.Holiday
	if a.Holidays != nil {
		holidays, err = a.Holidays.Holidays(ctx, year, year)
		if err != nil {
			// Degraded mode: classify without holiday overrides.
			if a.Logger != nil {
				a.Logger.Warn("holiday source failed, assembling without holidays", "error", err, "property_id", rawID)
			}
			holidays = nil
		}
	}

	var reservations []reservation.Reservation
	if a.Reservations != nil {
		from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, 0)
		reservations, err = a.Reservations.ForRange(ctx, id, from, to)
		if err != nil {
			return nil, pricing.Config{}, err
		}
	}

	days, err := calendar.BuildMonthCalendar(id, year, month, cfg, holidays, reservations)
	if err != nil {
		return nil, pricing.Config{}, err
	}
	return days, cfg, nil
}
