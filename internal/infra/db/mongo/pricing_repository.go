package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainpricing "stayops/internal/domain/pricing"
	"stayops/internal/domain/property"
)

// PricingConfigRepository stores one config document per property and
// guards adjustment sweeps with optimistic concurrency on the version field.
type PricingConfigRepository struct {
	col *mongo.Collection
}

func NewPricingConfigRepository(db *mongo.Database) *PricingConfigRepository {
	return &PricingConfigRepository{col: db.Collection("pricing_configs")}
}

func (r *PricingConfigRepository) Config(ctx context.Context, id property.PropertyID) (domainpricing.Config, error) {
	var doc pricingConfigDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": string(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domainpricing.Config{}, domainpricing.ErrConfigNotFound
		}
		return domainpricing.Config{}, err
	}
	return doc.toDomain(), nil
}

func (r *PricingConfigRepository) All(ctx context.Context) ([]domainpricing.Config, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []domainpricing.Config
	for cursor.Next(ctx) {
		var doc pricingConfigDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toDomain())
	}
	return out, cursor.Err()
}

func (r *PricingConfigRepository) Save(ctx context.Context, cfg domainpricing.Config) error {
	doc := newPricingConfigDocument(cfg)
	filter := bson.M{"_id": doc.ID, "version": cfg.Version}
	doc.Version = cfg.Version + 1
	update := bson.M{"$set": doc}
	opts := options.Update().SetUpsert(true)
	res, err := r.col.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainpricing.ErrConcurrentUpdate
		}
		return err
	}
	if res.MatchedCount == 0 && res.UpsertedCount == 0 {
		return domainpricing.ErrConcurrentUpdate
	}
	return nil
}

type customSeasonDocument struct {
	Name       string  `bson:"name"`
	StartMonth int     `bson:"start_month"`
	StartDay   int     `bson:"start_day"`
	EndMonth   int     `bson:"end_month"`
	EndDay     int     `bson:"end_day"`
	Multiplier float64 `bson:"multiplier"`
}

type pricingConfigDocument struct {
	ID                          string                 `bson:"_id"`
	MinValue                    int64                  `bson:"min_value"`
	WeekdayValue                int64                  `bson:"weekday_value"`
	WeekendValue                int64                  `bson:"weekend_value"`
	HolidayValueManual          int64                  `bson:"holiday_value_manual"`
	HolidayMultiplier           float64                `bson:"holiday_multiplier"`
	AnnualAdjustmentPercent     float64                `bson:"annual_adjustment_percent"`
	ApplyMonthlyAdjustment      bool                   `bson:"apply_monthly_adjustment"`
	ApplyMonthlyCostsToCalendar bool                   `bson:"apply_monthly_costs_to_calendar"`
	LastAdjustmentAppliedAt     int64                  `bson:"last_adjustment_applied_at"`
	CustomSeasons               []customSeasonDocument `bson:"custom_seasons"`
	UpdatedAt                   int64                  `bson:"updated_at"`
	Version                     int64                  `bson:"version"`
}

func newPricingConfigDocument(cfg domainpricing.Config) pricingConfigDocument {
	doc := pricingConfigDocument{
		ID:                          string(cfg.PropertyID),
		MinValue:                    cfg.MinValue,
		WeekdayValue:                cfg.WeekdayValue,
		WeekendValue:                cfg.WeekendValue,
		HolidayValueManual:          cfg.HolidayValueManual,
		HolidayMultiplier:           cfg.HolidayMultiplier,
		AnnualAdjustmentPercent:     cfg.AnnualAdjustmentPercent,
		ApplyMonthlyAdjustment:      cfg.ApplyMonthlyAdjustment,
		ApplyMonthlyCostsToCalendar: cfg.ApplyMonthlyCostsToCalendar,
		UpdatedAt:                   time.Now().UnixMilli(),
		Version:                     cfg.Version,
	}
	if !cfg.LastAdjustmentAppliedAt.IsZero() {
		doc.LastAdjustmentAppliedAt = cfg.LastAdjustmentAppliedAt.UnixMilli()
	}
	for _, s := range cfg.CustomSeasons {
		doc.CustomSeasons = append(doc.CustomSeasons, customSeasonDocument(s))
	}
	return doc
}

func (d pricingConfigDocument) toDomain() domainpricing.Config {
	cfg := domainpricing.Config{
		PropertyID:                  property.PropertyID(d.ID),
		MinValue:                    d.MinValue,
		WeekdayValue:                d.WeekdayValue,
		WeekendValue:                d.WeekendValue,
		HolidayValueManual:          d.HolidayValueManual,
		HolidayMultiplier:           d.HolidayMultiplier,
		AnnualAdjustmentPercent:     d.AnnualAdjustmentPercent,
		ApplyMonthlyAdjustment:      d.ApplyMonthlyAdjustment,
		ApplyMonthlyCostsToCalendar: d.ApplyMonthlyCostsToCalendar,
		Version:                     d.Version,
	}
	if d.LastAdjustmentAppliedAt > 0 {
		cfg.LastAdjustmentAppliedAt = timestampToTime(d.LastAdjustmentAppliedAt)
	}
	for _, s := range d.CustomSeasons {
		cfg.CustomSeasons = append(cfg.CustomSeasons, domainpricing.CustomSeason(s))
	}
	return cfg
}

func timestampToTime(millis int64) time.Time {
	return time.UnixMilli(millis).UTC()
}

var _ domainpricing.Repository = (*PricingConfigRepository)(nil)
