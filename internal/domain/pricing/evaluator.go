package pricing

import (
	"math"
	"time"
)

// EffectiveHolidayValue resolves the nightly rate used on declared holidays:
// the manual override when set, otherwise the weekday rate scaled by the
// holiday multiplier.
func EffectiveHolidayValue(cfg Config) int64 {
	if cfg.HolidayValueManual > 0 {
		return RoundCurrency(float64(cfg.HolidayValueManual))
	}
	return RoundCurrency(float64(cfg.WeekdayValue) * cfg.HolidayMultiplier)
}

// ApplyAnnualAdjustment inflates the base rates by the configured percentage,
// compounding monthly or applying once per calendar year. It returns the
// adjusted copy and whether anything changed; persistence is the caller's
// job. Calling it again inside the same period is a no-op, which is the
// contract the scheduled sweep relies on.
func ApplyAnnualAdjustment(cfg Config, now time.Time) (Config, bool) {
	if cfg.AnnualAdjustmentPercent <= 0 {
		return cfg, false
	}
	now = now.UTC()
	last := cfg.LastAdjustmentAppliedAt

	if cfg.ApplyMonthlyAdjustment {
		if !last.IsZero() && monthsBetween(last, now) < 1 {
			return cfg, false
		}
		factor := math.Pow(1+cfg.AnnualAdjustmentPercent/100, 1.0/12.0)
		return adjusted(cfg, factor, now), true
	}

	// Annual cadence is keyed on the calendar year, not a rolling window;
	// a Dec 31 application followed by a Jan 1 one applies twice.
	if !last.IsZero() && last.UTC().Year() == now.Year() {
		return cfg, false
	}
	factor := 1 + cfg.AnnualAdjustmentPercent/100
	return adjusted(cfg, factor, now), true
}

func adjusted(cfg Config, factor float64, now time.Time) Config {
	out := cfg.Copy()
	out.MinValue = RoundCurrency(float64(cfg.MinValue) * factor)
	out.WeekdayValue = RoundCurrency(float64(cfg.WeekdayValue) * factor)
	out.WeekendValue = RoundCurrency(float64(cfg.WeekendValue) * factor)
	if cfg.HolidayValueManual > 0 {
		out.HolidayValueManual = RoundCurrency(float64(cfg.HolidayValueManual) * factor)
	}
	out.LastAdjustmentAppliedAt = now
	return out
}

// monthsBetween counts elapsed whole calendar months using year*12+month
// arithmetic, not elapsed days.
func monthsBetween(from, to time.Time) int {
	from, to = from.UTC(), to.UTC()
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}
