package pricingapp

import (
	"context"
	"errors"
	"strings"

	"stayops/internal/app/dto"
	"stayops/internal/app/queries"
	"stayops/internal/domain/pricing"
	"stayops/internal/domain/property"
)

const getConfigKey = "pricing.config.get"

var ErrPropertyIDRequired = errors.New("pricing: property id is required")

type GetConfigQuery struct {
	PropertyID string
}

func (q GetConfigQuery) Key() string { return getConfigKey }

type GetConfigHandler struct {
	Configs pricing.Repository
}

func (h *GetConfigHandler) Handle(ctx context.Context, q GetConfigQuery) (dto.PricingConfig, error) {
	if strings.TrimSpace(q.PropertyID) == "" {
		return dto.PricingConfig{}, ErrPropertyIDRequired
	}
	cfg, err := h.Configs.Config(ctx, property.PropertyID(q.PropertyID))
	if err != nil {
		return dto.PricingConfig{}, err
	}
	return dto.MapPricingConfig(cfg), nil
}

var _ queries.Handler[GetConfigQuery, dto.PricingConfig] = (*GetConfigHandler)(nil)
