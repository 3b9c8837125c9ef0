package dto

import (
	"time"

	"stayops/internal/domain/pricing"
	"stayops/internal/domain/property"
)

const (
	PriceLevelBelowMarket = "below_market"
	PriceLevelFair        = "fair"
	PriceLevelAboveMarket = "above_market"
)

type CustomSeason struct {
	Name       string  `json:"name"`
	StartMonth int     `json:"start_month"`
	StartDay   int     `json:"start_day"`
	EndMonth   int     `json:"end_month"`
	EndDay     int     `json:"end_day"`
	Multiplier float64 `json:"multiplier"`
}

type PricingConfig struct {
	PropertyID                  string         `json:"property_id"`
	MinValue                    int64          `json:"min_value"`
	WeekdayValue                int64          `json:"weekday_value"`
	WeekendValue                int64          `json:"weekend_value"`
	HolidayValueManual          int64          `json:"holiday_value_manual,omitempty"`
	HolidayMultiplier           float64        `json:"holiday_multiplier"`
	AnnualAdjustmentPercent     float64        `json:"annual_adjustment_percent"`
	ApplyMonthlyAdjustment      bool           `json:"apply_monthly_adjustment"`
	ApplyMonthlyCostsToCalendar bool           `json:"apply_monthly_costs_to_calendar"`
	LastAdjustmentAppliedAt     *time.Time     `json:"last_adjustment_applied_at,omitempty"`
	CustomSeasons               []CustomSeason `json:"custom_seasons,omitempty"`
}

type PriceSuggestion struct {
	PropertyID      string  `json:"property_id"`
	SuggestedPrice  int64   `json:"suggested_price"`
	CurrentPrice    int64   `json:"current_price"`
	PriceLevel      string  `json:"price_level"`
	PriceGapPercent float64 `json:"price_gap_percent"`
	Message         string  `json:"message"`
	Year            int     `json:"year"`
	Month           int     `json:"month"`
}

type AdjustmentRun struct {
	Checked  int    `json:"checked"`
	Adjusted int    `json:"adjusted"`
	RanAt    string `json:"ran_at"`
}

func MapPricingConfig(cfg pricing.Config) PricingConfig {
	out := PricingConfig{
		PropertyID:                  string(cfg.PropertyID),
		MinValue:                    cfg.MinValue,
		WeekdayValue:                cfg.WeekdayValue,
		WeekendValue:                cfg.WeekendValue,
		HolidayValueManual:          cfg.HolidayValueManual,
		HolidayMultiplier:           cfg.HolidayMultiplier,
		AnnualAdjustmentPercent:     cfg.AnnualAdjustmentPercent,
		ApplyMonthlyAdjustment:      cfg.ApplyMonthlyAdjustment,
		ApplyMonthlyCostsToCalendar: cfg.ApplyMonthlyCostsToCalendar,
	}
	if !cfg.LastAdjustmentAppliedAt.IsZero() {
		at := cfg.LastAdjustmentAppliedAt
		out.LastAdjustmentAppliedAt = &at
	}
	for _, s := range cfg.CustomSeasons {
		out.CustomSeasons = append(out.CustomSeasons, CustomSeason(s))
	}
	return out
}

// ToDomain rebuilds the whole config value; updates are never partial.
func (p PricingConfig) ToDomain(version int64) pricing.Config {
	cfg := pricing.Config{
		PropertyID:                  property.PropertyID(p.PropertyID),
		MinValue:                    p.MinValue,
		WeekdayValue:                p.WeekdayValue,
		WeekendValue:                p.WeekendValue,
		HolidayValueManual:          p.HolidayValueManual,
		HolidayMultiplier:           p.HolidayMultiplier,
		AnnualAdjustmentPercent:     p.AnnualAdjustmentPercent,
		ApplyMonthlyAdjustment:      p.ApplyMonthlyAdjustment,
		ApplyMonthlyCostsToCalendar: p.ApplyMonthlyCostsToCalendar,
		Version:                     version,
	}
	if p.LastAdjustmentAppliedAt != nil {
		cfg.LastAdjustmentAppliedAt = p.LastAdjustmentAppliedAt.UTC()
	}
	if p.HolidayMultiplier <= 0 {
		cfg.HolidayMultiplier = pricing.DefaultHolidayMultiplier
	}
	for _, s := range p.CustomSeasons {
		cfg.CustomSeasons = append(cfg.CustomSeasons, pricing.CustomSeason(s))
	}
	return cfg
}
