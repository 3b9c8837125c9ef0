package pricing

import (
	"time"

	"stayops/internal/domain/property"
)

type Cadence string

const (
	CadenceAnnual  Cadence = "ANNUAL"
	CadenceMonthly Cadence = "MONTHLY"
)

// RatesAdjusted records that a scheduled adjustment changed a property's rates.
type RatesAdjusted struct {
	PropertyID string    `json:"property_id"`
	Cadence    Cadence   `json:"cadence"`
	Percent    float64   `json:"percent"`
	At         time.Time `json:"at"`
}

func (e RatesAdjusted) EventName() string     { return "pricing.rates_adjusted" }
func (e RatesAdjusted) AggregateID() string   { return e.PropertyID }
func (e RatesAdjusted) OccurredAt() time.Time { return e.At }

// MonthlyCostRecorded is the audit signal emitted when a monthly-cadence
// adjustment fires; downstream bookkeeping keys recurring costs off it.
type MonthlyCostRecorded struct {
	PropertyID string    `json:"property_id"`
	Month      string    `json:"month"` // YYYY-MM
	CreatedAt  time.Time `json:"created_at"`
}

func (e MonthlyCostRecorded) EventName() string     { return "pricing.monthly_cost_recorded" }
func (e MonthlyCostRecorded) AggregateID() string   { return e.PropertyID }
func (e MonthlyCostRecorded) OccurredAt() time.Time { return e.CreatedAt }

func RatesAdjustedEvent(id property.PropertyID, cfg Config, at time.Time) RatesAdjusted {
	cadence := CadenceAnnual
	if cfg.ApplyMonthlyAdjustment {
		cadence = CadenceMonthly
	}
	return RatesAdjusted{
		PropertyID: string(id),
		Cadence:    cadence,
		Percent:    cfg.AnnualAdjustmentPercent,
		At:         at,
	}
}

func MonthlyCostRecordedEvent(id property.PropertyID, at time.Time) MonthlyCostRecorded {
	return MonthlyCostRecorded{
		PropertyID: string(id),
		Month:      at.UTC().Format("2006-01"),
		CreatedAt:  at.UTC(),
	}
}
