package calendarapp

import (
	"context"
	"time"

	"stayops/internal/app/dto"
	"stayops/internal/app/queries"
	"stayops/internal/domain/pricing"
)

const suggestedPriceKey = "calendar.suggested_price"

type SuggestedPriceQuery struct {
	PropertyID string
	Year       int
	Month      time.Month
}

func (q SuggestedPriceQuery) Key() string { return suggestedPriceKey }

// SuggestedPriceHandler derives a nightly asking price from the assembled
// month: the mean resolved price across still-available days, compared
// against the configured weekday base.
type SuggestedPriceHandler struct {
	Assembler
}

func (h *SuggestedPriceHandler) Handle(ctx context.Context, q SuggestedPriceQuery) (dto.PriceSuggestion, error) {
	days, cfg, err := h.assemble(ctx, q.PropertyID, q.Year, q.Month)
	if err != nil {
		return dto.PriceSuggestion{}, err
	}

	var sum int64
	var count int64
	for _, d := range days {
		if !d.Available {
			continue
		}
		sum += d.Price
		count++
	}
	suggested := cfg.WeekdayValue
	if count > 0 {
		suggested = pricing.RoundCurrency(float64(sum) / float64(count))
	}

	level := priceLevelFor(cfg.WeekdayValue, suggested)
	return dto.PriceSuggestion{
		PropertyID:      q.PropertyID,
		SuggestedPrice:  suggested,
		CurrentPrice:    cfg.WeekdayValue,
		PriceLevel:      level,
		PriceGapPercent: priceGapPercent(cfg.WeekdayValue, suggested),
		Message:         priceMessage(level),
		Year:            q.Year,
		Month:           int(q.Month),
	}, nil
}

func priceLevelFor(current, suggested int64) string {
	if suggested == 0 {
		return dto.PriceLevelFair
	}
	diff := float64(current-suggested) / float64(suggested)
	if diff <= -0.1 {
		return dto.PriceLevelBelowMarket
	}
	if diff >= 0.1 {
		return dto.PriceLevelAboveMarket
	}
	return dto.PriceLevelFair
}

func priceGapPercent(current, suggested int64) float64 {
	if suggested == 0 {
		return 0
	}
	return float64(current-suggested) / float64(suggested) * 100
}

func priceMessage(level string) string {
	switch level {
	case dto.PriceLevelBelowMarket:
		return "Your weekday base sits below what this month resolves to; consider raising it."
	case dto.PriceLevelAboveMarket:
		return "Your weekday base sits above what this month resolves to; consider lowering it."
	default:
		return "Your weekday base is in line with this month's resolved prices."
	}
}

var _ queries.Handler[SuggestedPriceQuery, dto.PriceSuggestion] = (*SuggestedPriceHandler)(nil)
