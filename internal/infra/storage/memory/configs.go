package memory

import (
	"context"
	"sync"

	"stayops/internal/domain/pricing"
	"stayops/internal/domain/property"
)

// PricingConfigRepository keeps configs in memory for local runs and tests.
// Save enforces the same version check as the mongo implementation so the
// sweep's concurrency behavior is exercised everywhere.
type PricingConfigRepository struct {
	mu      sync.RWMutex
	configs map[property.PropertyID]pricing.Config
}

func NewPricingConfigRepository() *PricingConfigRepository {
	return &PricingConfigRepository{configs: make(map[property.PropertyID]pricing.Config)}
}

func (r *PricingConfigRepository) Config(ctx context.Context, id property.PropertyID) (pricing.Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.configs[id]
	if !ok {
		return pricing.Config{}, pricing.ErrConfigNotFound
	}
	return cfg.Copy(), nil
}

func (r *PricingConfigRepository) All(ctx context.Context) ([]pricing.Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]pricing.Config, 0, len(r.configs))
	for _, cfg := range r.configs {
		out = append(out, cfg.Copy())
	}
	return out, nil
}

func (r *PricingConfigRepository) Save(ctx context.Context, cfg pricing.Config) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.configs[cfg.PropertyID]
	if ok && current.Version != cfg.Version {
		return pricing.ErrConcurrentUpdate
	}
	stored := cfg.Copy()
	stored.Version = cfg.Version + 1
	r.configs[cfg.PropertyID] = stored
	return nil
}

var _ pricing.Repository = (*PricingConfigRepository)(nil)
