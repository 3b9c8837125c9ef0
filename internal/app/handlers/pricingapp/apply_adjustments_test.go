package pricingapp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayops/internal/domain/pricing"
	"stayops/internal/infra/storage/memory"
)

type captureNotifier struct {
	sent []string
}

func (n *captureNotifier) Notify(_ context.Context, recipient, template string, _ map[string]string) error {
	n.sent = append(n.sent, recipient+"/"+template)
	return nil
}

func TestApplyAdjustmentsHandler_SweepsAndEmitsEvents(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPricingConfigRepository()
	box := memory.NewOutbox()

	annual := pricing.DefaultConfig("prop-annual")
	annual.AnnualAdjustmentPercent = 10
	require.NoError(t, repo.Save(ctx, annual))

	monthly := pricing.DefaultConfig("prop-monthly")
	monthly.AnnualAdjustmentPercent = 12
	monthly.ApplyMonthlyAdjustment = true
	require.NoError(t, repo.Save(ctx, monthly))

	idle := pricing.DefaultConfig("prop-idle")
	require.NoError(t, repo.Save(ctx, idle))

	notifier := &captureNotifier{}
	handler := &ApplyAdjustmentsHandler{Configs: repo, Outbox: box, Notify: notifier}
	now := time.Date(2025, time.April, 1, 6, 0, 0, 0, time.UTC)

	run, err := handler.Handle(ctx, ApplyAdjustmentsCommand{Now: now})
	require.NoError(t, err)
	assert.Equal(t, 3, run.Checked)
	assert.Equal(t, 2, run.Adjusted)

	assert.ElementsMatch(t,
		[]string{"prop-annual/rates_adjusted", "prop-monthly/rates_adjusted"},
		notifier.sent)

	// One rates event per adjusted config, plus the monthly cost record for
	// the monthly-cadence property.
	records := box.Records()
	names := make(map[string]int)
	for _, r := range records {
		names[r.Name]++
	}
	assert.Equal(t, 2, names["pricing.rates_adjusted"])
	assert.Equal(t, 1, names["pricing.monthly_cost_recorded"])

	stored, err := repo.Config(ctx, "prop-annual")
	require.NoError(t, err)
	assert.Equal(t, int64(22_000), stored.WeekdayValue)
	assert.Equal(t, now, stored.LastAdjustmentAppliedAt)
}

func TestApplyAdjustmentsHandler_SecondRunInPeriodIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPricingConfigRepository()
	box := memory.NewOutbox()

	cfg := pricing.DefaultConfig("prop-1")
	cfg.AnnualAdjustmentPercent = 10
	require.NoError(t, repo.Save(ctx, cfg))

	handler := &ApplyAdjustmentsHandler{Configs: repo, Outbox: box}
	now := time.Date(2025, time.April, 1, 6, 0, 0, 0, time.UTC)

	first, err := handler.Handle(ctx, ApplyAdjustmentsCommand{Now: now})
	require.NoError(t, err)
	require.Equal(t, 1, first.Adjusted)

	second, err := handler.Handle(ctx, ApplyAdjustmentsCommand{Now: now.AddDate(0, 2, 0)})
	require.NoError(t, err)
	assert.Equal(t, 0, second.Adjusted, "same calendar year, nothing to do")
	assert.Len(t, box.Records(), 1)
}

func TestUpdateConfigHandler_ReplacesWholeDocument(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPricingConfigRepository()
	require.NoError(t, repo.Save(ctx, pricing.DefaultConfig("prop-1")))

	handler := &UpdateConfigHandler{Configs: repo}
	cmd := UpdateConfigCommand{PropertyID: "prop-1"}
	cmd.Config.MinValue = 150
	cmd.Config.WeekdayValue = 250
	cmd.Config.WeekendValue = 350
	cmd.Config.HolidayMultiplier = 2

	out, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(250), out.WeekdayValue)

	stored, err := repo.Config(ctx, "prop-1")
	require.NoError(t, err)
	assert.Equal(t, int64(350), stored.WeekendValue)
	assert.Empty(t, stored.CustomSeasons)
}

func TestUpdateConfigHandler_RejectsInvalidBaseValues(t *testing.T) {
	handler := &UpdateConfigHandler{Configs: memory.NewPricingConfigRepository()}
	cmd := UpdateConfigCommand{PropertyID: "prop-1"}
	cmd.Config.WeekdayValue = 250 // min and weekend missing

	_, err := handler.Handle(context.Background(), cmd)
	assert.ErrorIs(t, err, pricing.ErrInvalidBaseValues)
}

func TestGetConfigHandler_NotFound(t *testing.T) {
	handler := &GetConfigHandler{Configs: memory.NewPricingConfigRepository()}

	_, err := handler.Handle(context.Background(), GetConfigQuery{PropertyID: "ghost"})
	assert.ErrorIs(t, err, pricing.ErrConfigNotFound)
}
