package schedule

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"stayops/internal/app/commands"
	"stayops/internal/app/dto"
	"stayops/internal/app/handlers/pricingapp"
)

var ErrSweeperNotConfigured = errors.New("schedule: sweeper missing dependencies")

// AdjustmentSweeper dispatches the rate-adjustment command on a fixed
// interval. The engine's idempotence makes over-frequent runs harmless.
type AdjustmentSweeper struct {
	Commands commands.Bus
	Interval time.Duration
	Logger   *slog.Logger
}

func (s *AdjustmentSweeper) Run(ctx context.Context) error {
	if s.Commands == nil {
		return ErrSweeperNotConfigured
	}
	ticker := time.NewTicker(s.interval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *AdjustmentSweeper) sweep(ctx context.Context) {
	cmd := pricingapp.ApplyAdjustmentsCommand{Now: time.Now().UTC()}
	run, err := commands.Dispatch[pricingapp.ApplyAdjustmentsCommand, dto.AdjustmentRun](ctx, s.Commands, cmd)
	if err != nil {
		if s.Logger != nil {
			s.Logger.Error("adjustment sweep failed", "error", err)
		}
		return
	}
	if s.Logger != nil && run.Adjusted > 0 {
		s.Logger.Info("adjustment sweep finished", "checked", run.Checked, "adjusted", run.Adjusted)
	}
}

func (s *AdjustmentSweeper) interval() time.Duration {
	if s.Interval <= 0 {
		return 24 * time.Hour
	}
	return s.Interval
}
