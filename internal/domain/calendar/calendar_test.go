package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayops/internal/domain/pricing"
	"stayops/internal/domain/reservation"
	"stayops/internal/domain/shared/daterange"
)

func TestBuildMonthCalendar_JulyScenario(t *testing.T) {
	cfg := pricing.Config{
		PropertyID:        "prop-1",
		MinValue:          100,
		WeekdayValue:      200,
		WeekendValue:      300,
		HolidayMultiplier: 2,
	}
	holidays := []Holiday{{
		Date: time.Date(2025, time.July, 4, 0, 0, 0, 0, time.UTC), // a Friday
		Name: "Independence Day",
		Type: HolidayNational,
	}}

	days, err := BuildMonthCalendar("prop-1", 2025, time.July, cfg, holidays, nil)
	require.NoError(t, err)
	require.Len(t, days, 31)

	for i, d := range days {
		assert.Equal(t, i+1, d.Date.Day(), "ascending date order")
		assert.True(t, d.Available, "no reservations, every day available")

		switch {
		case d.Date.Day() == 4:
			assert.Equal(t, PriceHoliday, d.PriceType)
			assert.Equal(t, int64(400), d.Price)
			assert.Equal(t, "Independence Day", d.HolidayName)
		case d.IsWeekend:
			assert.Equal(t, PriceWeekend, d.PriceType)
			assert.Equal(t, int64(300), d.Price)
		default:
			assert.Equal(t, PriceWeekday, d.PriceType)
			assert.Equal(t, int64(200), d.Price)
		}
	}

	// Spot-check the first weekend after the holiday.
	assert.Equal(t, PriceWeekend, days[4].PriceType) // Jul 5, Saturday
	assert.Equal(t, PriceWeekend, days[5].PriceType) // Jul 6, Sunday
}

func TestBuildMonthCalendar_MergesOccupancy(t *testing.T) {
	cfg := pricing.Config{
		PropertyID:        "prop-1",
		MinValue:          100,
		WeekdayValue:      200,
		WeekendValue:      300,
		HolidayMultiplier: 1.5,
	}
	dr, err := daterange.New(
		time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.July, 13, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	reservations := []reservation.Reservation{{ID: "res-1", PropertyID: "prop-1", Range: dr}}

	days, err := BuildMonthCalendar("prop-1", 2025, time.July, cfg, nil, reservations)
	require.NoError(t, err)

	byDay := func(d int) CalendarDay { return days[d-1] }

	assert.False(t, byDay(10).Available)
	assert.False(t, byDay(11).Available)
	assert.False(t, byDay(12).Available)
	assert.True(t, byDay(13).Available, "checkout-only day can be relet")
	assert.True(t, byDay(9).Available)

	require.Len(t, byDay(13).Occupancy, 1)
	assert.Equal(t, reservation.RoleCheckout, byDay(13).Occupancy[0].Role)
}

func TestBuildMonthCalendar_RejectsInvalidConfig(t *testing.T) {
	cfg := pricing.Config{PropertyID: "prop-1", WeekdayValue: 200, WeekendValue: 300}

	days, err := BuildMonthCalendar("prop-1", 2025, time.July, cfg, nil, nil)

	assert.ErrorIs(t, err, pricing.ErrInvalidBaseValues)
	assert.Nil(t, days, "no partial grid on invalid config")
}

func TestBuildMonthCalendar_RejectsInvalidMonth(t *testing.T) {
	cfg := pricing.DefaultConfig("prop-1")

	_, err := BuildMonthCalendar("prop-1", 2025, time.Month(13), cfg, nil, nil)

	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestBuildMonthCalendar_FebruaryLeapYear(t *testing.T) {
	cfg := pricing.DefaultConfig("prop-1")

	days, err := BuildMonthCalendar("prop-1", 2024, time.February, cfg, nil, nil)
	require.NoError(t, err)
	assert.Len(t, days, 29)
}
