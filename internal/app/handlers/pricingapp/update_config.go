package pricingapp

import (
	"context"
	"errors"
	"strings"

	"stayops/internal/app/commands"
	"stayops/internal/app/dto"
	"stayops/internal/domain/pricing"
	"stayops/internal/domain/property"
)

const updateConfigKey = "pricing.config.update"

type UpdateConfigCommand struct {
	PropertyID string
	Config     dto.PricingConfig
}

func (c UpdateConfigCommand) Key() string { return updateConfigKey }

// UpdateConfigHandler replaces the whole config document. The lifecycle
// contract forbids partial updates, so the submitted value must validate on
// its own.
type UpdateConfigHandler struct {
	Configs pricing.Repository
}

func (h *UpdateConfigHandler) Handle(ctx context.Context, cmd UpdateConfigCommand) (dto.PricingConfig, error) {
	if strings.TrimSpace(cmd.PropertyID) == "" {
		return dto.PricingConfig{}, ErrPropertyIDRequired
	}
	id := property.PropertyID(cmd.PropertyID)

	var version int64
	existing, err := h.Configs.Config(ctx, id)
	switch {
	case err == nil:
		version = existing.Version
	case errors.Is(err, pricing.ErrConfigNotFound):
		version = 0
	default:
		return dto.PricingConfig{}, err
	}

	cmd.Config.PropertyID = cmd.PropertyID
	cfg := cmd.Config.ToDomain(version)
	if err := cfg.Validate(); err != nil {
		return dto.PricingConfig{}, err
	}
	if err := h.Configs.Save(ctx, cfg); err != nil {
		return dto.PricingConfig{}, err
	}
	return dto.MapPricingConfig(cfg), nil
}

var _ commands.Handler[UpdateConfigCommand, dto.PricingConfig] = (*UpdateConfigHandler)(nil)
