package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stayops/internal/domain/pricing"
)

func resolverConfig() pricing.Config {
	return pricing.Config{
		PropertyID:        "prop-1",
		MinValue:          100,
		WeekdayValue:      200,
		WeekendValue:      300,
		HolidayMultiplier: 1.5,
	}
}

func TestResolveDayPricing_HolidayBeatsWeekend(t *testing.T) {
	// 2025-07-05 is a Saturday.
	date := time.Date(2025, time.July, 5, 0, 0, 0, 0, time.UTC)
	index := IndexHolidays([]Holiday{{Date: date, Name: "Saturday Holiday", Type: HolidayNational}})

	got := ResolveDayPricing(date, index, resolverConfig())

	assert.Equal(t, PriceHoliday, got.Type)
	assert.Equal(t, int64(300), got.Price)
	assert.True(t, got.IsHoliday)
	assert.Equal(t, "Saturday Holiday", got.HolidayName)
	assert.True(t, got.IsWeekend, "weekend reported independently of price type")
}

func TestResolveDayPricing_HolidayUsesManualOverride(t *testing.T) {
	date := time.Date(2025, time.July, 4, 0, 0, 0, 0, time.UTC)
	index := IndexHolidays([]Holiday{{Date: date, Name: "Independence Day"}})
	cfg := resolverConfig()
	cfg.HolidayValueManual = 500

	got := ResolveDayPricing(date, index, cfg)

	assert.Equal(t, PriceHoliday, got.Type)
	assert.Equal(t, int64(500), got.Price)
}

func TestResolveDayPricing_SeasonBeatsWeekend(t *testing.T) {
	cfg := resolverConfig()
	cfg.CustomSeasons = []pricing.CustomSeason{
		{Name: "summer peak", StartMonth: 7, StartDay: 1, EndMonth: 7, EndDay: 31, Multiplier: 2},
	}

	// Saturday inside the season scales the weekend base.
	sat := ResolveDayPricing(time.Date(2025, time.July, 12, 0, 0, 0, 0, time.UTC), nil, cfg)
	assert.Equal(t, PriceHighSeason, sat.Type)
	assert.Equal(t, int64(600), sat.Price)
	assert.True(t, sat.IsWeekend)

	// Tuesday inside the season scales the weekday base.
	tue := ResolveDayPricing(time.Date(2025, time.July, 8, 0, 0, 0, 0, time.UTC), nil, cfg)
	assert.Equal(t, PriceHighSeason, tue.Type)
	assert.Equal(t, int64(400), tue.Price)
	assert.False(t, tue.IsWeekend)
}

func TestResolveDayPricing_OverlappingSeasonsFirstListedWins(t *testing.T) {
	cfg := resolverConfig()
	cfg.CustomSeasons = []pricing.CustomSeason{
		{Name: "carnival", StartMonth: 7, StartDay: 1, EndMonth: 7, EndDay: 15, Multiplier: 2},
		{Name: "festival", StartMonth: 7, StartDay: 10, EndMonth: 7, EndDay: 20, Multiplier: 5},
	}

	got := ResolveDayPricing(time.Date(2025, time.July, 11, 0, 0, 0, 0, time.UTC), nil, cfg)

	assert.Equal(t, "high season: carnival", got.Reason)
	assert.Equal(t, int64(400), got.Price)
}

func TestResolveDayPricing_WeekendAndWeekdayFallbacks(t *testing.T) {
	cfg := resolverConfig()

	sun := ResolveDayPricing(time.Date(2025, time.July, 6, 0, 0, 0, 0, time.UTC), nil, cfg)
	assert.Equal(t, PriceWeekend, sun.Type)
	assert.Equal(t, int64(300), sun.Price)
	assert.True(t, sun.IsWeekend)

	mon := ResolveDayPricing(time.Date(2025, time.July, 7, 0, 0, 0, 0, time.UTC), nil, cfg)
	assert.Equal(t, PriceWeekday, mon.Type)
	assert.Equal(t, int64(200), mon.Price)
	assert.False(t, mon.IsWeekend)
	assert.False(t, mon.IsHoliday)
}

func TestIndexHolidays_FirstEntryWinsOnDuplicateDate(t *testing.T) {
	date := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	index := IndexHolidays([]Holiday{
		{Date: date, Name: "Labour Day"},
		{Date: date, Name: "Shadow Entry"},
	})

	assert.Len(t, index, 1)
	assert.Equal(t, "Labour Day", index["2025-05-01"].Name)
}
