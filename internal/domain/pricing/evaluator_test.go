package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		PropertyID:        "prop-1",
		MinValue:          100,
		WeekdayValue:      200,
		WeekendValue:      300,
		HolidayMultiplier: 1.5,
	}
}

func TestEffectiveHolidayValue_ComputedFromMultiplier(t *testing.T) {
	cfg := testConfig()
	assert.Equal(t, int64(300), EffectiveHolidayValue(cfg))

	cfg.WeekdayValue = 333
	cfg.HolidayMultiplier = 1.25
	assert.Equal(t, int64(416), EffectiveHolidayValue(cfg)) // 416.25 rounds down
}

func TestEffectiveHolidayValue_ManualOverrideWins(t *testing.T) {
	cfg := testConfig()
	cfg.HolidayValueManual = 500
	assert.Equal(t, int64(500), EffectiveHolidayValue(cfg))
}

func TestApplyAnnualAdjustment_ZeroPercentIsNoop(t *testing.T) {
	cfg := testConfig()
	out, changed := ApplyAnnualAdjustment(cfg, time.Now())
	assert.False(t, changed)
	assert.Equal(t, cfg, out)
}

func TestApplyAnnualAdjustment_AnnualCadence(t *testing.T) {
	cfg := testConfig()
	cfg.AnnualAdjustmentPercent = 10
	cfg.HolidayValueManual = 500
	now := time.Date(2025, time.March, 1, 8, 0, 0, 0, time.UTC)

	out, changed := ApplyAnnualAdjustment(cfg, now)
	require.True(t, changed)
	assert.Equal(t, int64(110), out.MinValue)
	assert.Equal(t, int64(220), out.WeekdayValue)
	assert.Equal(t, int64(330), out.WeekendValue)
	assert.Equal(t, int64(550), out.HolidayValueManual)
	assert.Equal(t, now, out.LastAdjustmentAppliedAt)

	// Second application within the same calendar year must not change anything.
	again, changed := ApplyAnnualAdjustment(out, now.AddDate(0, 5, 0))
	assert.False(t, changed)
	assert.Equal(t, out, again)
}

func TestApplyAnnualAdjustment_AnnualYearBoundaryAppliesTwice(t *testing.T) {
	// Idempotence is keyed on calendar year, so Dec 31 followed by Jan 1
	// applies twice one day apart. Preserved behavior.
	cfg := testConfig()
	cfg.AnnualAdjustmentPercent = 10
	dec31 := time.Date(2024, time.December, 31, 12, 0, 0, 0, time.UTC)
	jan1 := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)

	first, changed := ApplyAnnualAdjustment(cfg, dec31)
	require.True(t, changed)
	second, changed := ApplyAnnualAdjustment(first, jan1)
	require.True(t, changed)
	assert.Equal(t, int64(242), second.WeekdayValue) // 200 * 1.1 * 1.1
}

func TestApplyAnnualAdjustment_MonthlyCadenceSameMonthIsNoop(t *testing.T) {
	cfg := testConfig()
	cfg.AnnualAdjustmentPercent = 12
	cfg.ApplyMonthlyAdjustment = true
	cfg.LastAdjustmentAppliedAt = time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	out, changed := ApplyAnnualAdjustment(cfg, time.Date(2025, time.June, 28, 0, 0, 0, 0, time.UTC))
	assert.False(t, changed)
	assert.Equal(t, cfg, out)
}

func TestApplyAnnualAdjustment_MonthlyCompoundingConverges(t *testing.T) {
	cfg := testConfig()
	cfg.MinValue = 100_000
	cfg.WeekdayValue = 200_000
	cfg.WeekendValue = 300_000
	cfg.AnnualAdjustmentPercent = 12
	cfg.ApplyMonthlyAdjustment = true
	cfg.LastAdjustmentAppliedAt = time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC)

	now := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		var changed bool
		cfg, changed = ApplyAnnualAdjustment(cfg, now)
		require.True(t, changed, "month %d", i)
		now = now.AddDate(0, 1, 0)
	}

	// Twelve monthly applications of (1.12)^(1/12) approximate a flat 12%
	// annual increase within rounding tolerance.
	assert.InDelta(t, 224_000, cfg.WeekdayValue, 10)
	assert.InDelta(t, 112_000, cfg.MinValue, 10)
	assert.InDelta(t, 336_000, cfg.WeekendValue, 10)
}

func TestApplyAnnualAdjustment_DoesNotMutateInput(t *testing.T) {
	cfg := testConfig()
	cfg.AnnualAdjustmentPercent = 10
	snapshot := cfg

	_, changed := ApplyAnnualAdjustment(cfg, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC))
	require.True(t, changed)
	assert.Equal(t, snapshot, cfg)
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid", func(*Config) {}, nil},
		{"zero min", func(c *Config) { c.MinValue = 0 }, ErrInvalidBaseValues},
		{"negative weekday", func(c *Config) { c.WeekdayValue = -1 }, ErrInvalidBaseValues},
		{"zero weekend", func(c *Config) { c.WeekendValue = 0 }, ErrInvalidBaseValues},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("prop-9")
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultHolidayMultiplier, cfg.HolidayMultiplier)
}

func TestCustomSeasonContains(t *testing.T) {
	wrapped := CustomSeason{Name: "year end", StartMonth: 12, StartDay: 26, EndMonth: 1, EndDay: 5, Multiplier: 2}
	plain := CustomSeason{Name: "summer", StartMonth: 6, StartDay: 15, EndMonth: 8, EndDay: 31, Multiplier: 1.5}

	cases := []struct {
		name   string
		season CustomSeason
		date   time.Time
		want   bool
	}{
		{"wrapped dec inside", wrapped, time.Date(2025, time.December, 28, 0, 0, 0, 0, time.UTC), true},
		{"wrapped jan inside", wrapped, time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC), true},
		{"wrapped start boundary", wrapped, time.Date(2025, time.December, 26, 0, 0, 0, 0, time.UTC), true},
		{"wrapped end boundary", wrapped, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC), true},
		{"wrapped outside", wrapped, time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC), false},
		{"plain inside", plain, time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC), true},
		{"plain before", plain, time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC), false},
		{"plain after", plain, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.season.Contains(tc.date))
		})
	}
}
