package pricingapp

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"stayops/internal/app/commands"
	"stayops/internal/app/dto"
	appoutbox "stayops/internal/app/outbox"
	"stayops/internal/app/policies"
	"stayops/internal/domain/pricing"
	"stayops/internal/domain/shared/events"
)

const applyAdjustmentsKey = "pricing.adjustments.apply"

// ApplyAdjustmentsCommand sweeps every pricing config and applies any due
// rate adjustment. Now is explicit so the sweep is deterministic in tests.
type ApplyAdjustmentsCommand struct {
	Now time.Time
}

func (c ApplyAdjustmentsCommand) Key() string { return applyAdjustmentsKey }

type ApplyAdjustmentsHandler struct {
	Configs pricing.Repository
	Outbox  appoutbox.Outbox
	Encoder appoutbox.EventEncoder
	Notify  policies.Notifier
	Logger  *slog.Logger
}

func (h *ApplyAdjustmentsHandler) Handle(ctx context.Context, cmd ApplyAdjustmentsCommand) (dto.AdjustmentRun, error) {
	now := cmd.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = now.UTC()

	configs, err := h.Configs.All(ctx)
	if err != nil {
		return dto.AdjustmentRun{}, err
	}

	run := dto.AdjustmentRun{Checked: len(configs), RanAt: now.Format(time.RFC3339)}
	for _, cfg := range configs {
		adjusted, changed := pricing.ApplyAnnualAdjustment(cfg, now)
		if !changed {
			continue
		}
		if err := h.Configs.Save(ctx, adjusted); err != nil {
			if errors.Is(err, pricing.ErrConcurrentUpdate) {
				// Another writer applied this period's adjustment first;
				// skipping keeps the application idempotent.
				if h.Logger != nil {
					h.Logger.Info("adjustment already applied concurrently", "property_id", cfg.PropertyID)
				}
				continue
			}
			return run, err
		}

		evs := []events.DomainEvent{pricing.RatesAdjustedEvent(cfg.PropertyID, adjusted, now)}
		if adjusted.ApplyMonthlyAdjustment {
			evs = append(evs, pricing.MonthlyCostRecordedEvent(cfg.PropertyID, now))
		}
		if err := appoutbox.RecordDomainEvents(ctx, h.Outbox, h.Encoder, evs); err != nil {
			return run, err
		}

		if h.Notify != nil {
			payload := map[string]string{
				"percent": strconv.FormatFloat(adjusted.AnnualAdjustmentPercent, 'f', -1, 64),
				"month":   now.Format("2006-01"),
			}
			if err := h.Notify.Notify(ctx, string(cfg.PropertyID), "rates_adjusted", payload); err != nil && h.Logger != nil {
				// Notification is best effort; the adjustment already stuck.
				h.Logger.Warn("host notification failed", "error", err, "property_id", cfg.PropertyID)
			}
		}

		run.Adjusted++
		if h.Logger != nil {
			h.Logger.Info("rates adjusted",
				"property_id", cfg.PropertyID,
				"monthly", adjusted.ApplyMonthlyAdjustment,
				"percent", adjusted.AnnualAdjustmentPercent)
		}
	}
	return run, nil
}

var _ commands.Handler[ApplyAdjustmentsCommand, dto.AdjustmentRun] = (*ApplyAdjustmentsHandler)(nil)
