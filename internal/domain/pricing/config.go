package pricing

import (
	"context"
	"errors"
	"time"

	"stayops/internal/domain/property"
)

var (
	ErrInvalidBaseValues = errors.New("pricing: base values must be strictly positive")
	ErrConfigNotFound    = errors.New("pricing: config not found")
	ErrConcurrentUpdate  = errors.New("pricing: concurrent update detected")
)

// DefaultHolidayMultiplier is applied when a property is first configured;
// the evaluator itself never substitutes it.
const DefaultHolidayMultiplier = 1.5

// CustomSeason is a recurring month/day range with its own price multiplier.
// The range carries no year and may wrap across the year boundary.
type CustomSeason struct {
	Name       string
	StartMonth int
	StartDay   int
	EndMonth   int
	EndDay     int
	Multiplier float64
}

// Contains reports whether the date falls inside the recurring range,
// ignoring the year. A wrapped range (start after end) matches dates on or
// after the start or on or before the end.
func (s CustomSeason) Contains(date time.Time) bool {
	m, d := int(date.Month()), date.Day()
	afterStart := m > s.StartMonth || (m == s.StartMonth && d >= s.StartDay)
	beforeEnd := m < s.EndMonth || (m == s.EndMonth && d <= s.EndDay)
	wraps := s.StartMonth > s.EndMonth || (s.StartMonth == s.EndMonth && s.StartDay > s.EndDay)
	if wraps {
		return afterStart || beforeEnd
	}
	return afterStart && beforeEnd
}

// Config holds the per-property pricing rules. It is a value: the evaluator
// returns adjusted copies and never mutates a stored record in place.
type Config struct {
	PropertyID property.PropertyID

	// Base nightly rates in currency minor units.
	MinValue     int64
	WeekdayValue int64
	WeekendValue int64

	// HolidayValueManual overrides the computed holiday rate when > 0.
	HolidayValueManual int64
	HolidayMultiplier  float64

	AnnualAdjustmentPercent     float64
	ApplyMonthlyAdjustment      bool
	ApplyMonthlyCostsToCalendar bool
	LastAdjustmentAppliedAt     time.Time

	CustomSeasons []CustomSeason

	Version int64
}

// DefaultConfig seeds a freshly configured property.
func DefaultConfig(id property.PropertyID) Config {
	return Config{
		PropertyID:        id,
		MinValue:          10_000,
		WeekdayValue:      20_000,
		WeekendValue:      25_000,
		HolidayMultiplier: DefaultHolidayMultiplier,
	}
}

// Validate enforces the invariant calendar assembly depends on: all three
// base values strictly positive. Invalid configs are surfaced, never healed.
func (c Config) Validate() error {
	if c.MinValue <= 0 || c.WeekdayValue <= 0 || c.WeekendValue <= 0 {
		return ErrInvalidBaseValues
	}
	return nil
}

// Copy returns a deep copy so callers can adjust without aliasing the
// stored season slice.
func (c Config) Copy() Config {
	clone := c
	clone.CustomSeasons = append([]CustomSeason(nil), c.CustomSeasons...)
	return clone
}

// Repository persists pricing configs. Save must apply optimistic
// concurrency on Version so adjustment sweeps stay idempotent under races.
type Repository interface {
	Config(ctx context.Context, id property.PropertyID) (Config, error)
	All(ctx context.Context) ([]Config, error)
	Save(ctx context.Context, cfg Config) error
}
