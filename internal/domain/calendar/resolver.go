package calendar

import (
	"fmt"
	"time"

	"stayops/internal/domain/pricing"
	"stayops/internal/domain/shared/daterange"
)

type PriceType string

const (
	PriceHoliday    PriceType = "HOLIDAY"
	PriceHighSeason PriceType = "HIGH_SEASON"
	PriceWeekend    PriceType = "WEEKEND"
	PriceWeekday    PriceType = "WEEKDAY"
)

// DayPricing is the resolved classification for a single date. Exactly one
// PriceType applies; IsWeekend is reported independently of it.
type DayPricing struct {
	Type        PriceType
	Price       int64
	Reason      string
	IsHoliday   bool
	HolidayName string
	IsWeekend   bool
}

// ResolveDayPricing classifies a date with first-match-wins precedence:
// holiday, then custom season (in list order), then weekend, then weekday.
func ResolveDayPricing(date time.Time, holidays map[string]Holiday, cfg pricing.Config) DayPricing {
	weekend := isWeekend(date)

	if h, ok := holidays[daterange.DayKey(date)]; ok {
		return DayPricing{
			Type:        PriceHoliday,
			Price:       pricing.EffectiveHolidayValue(cfg),
			Reason:      fmt.Sprintf("holiday: %s", h.Name),
			IsHoliday:   true,
			HolidayName: h.Name,
			IsWeekend:   weekend,
		}
	}

	for _, season := range cfg.CustomSeasons {
		if !season.Contains(date) {
			continue
		}
		base := cfg.WeekdayValue
		if weekend {
			base = cfg.WeekendValue
		}
		return DayPricing{
			Type:      PriceHighSeason,
			Price:     pricing.RoundCurrency(float64(base) * season.Multiplier),
			Reason:    fmt.Sprintf("high season: %s", season.Name),
			IsWeekend: weekend,
		}
	}

	if weekend {
		return DayPricing{
			Type:      PriceWeekend,
			Price:     cfg.WeekendValue,
			Reason:    "weekend rate",
			IsWeekend: true,
		}
	}
	return DayPricing{
		Type:   PriceWeekday,
		Price:  cfg.WeekdayValue,
		Reason: "weekday rate",
	}
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
