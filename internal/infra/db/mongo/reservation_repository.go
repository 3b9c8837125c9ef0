package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"stayops/internal/domain/property"
	"stayops/internal/domain/reservation"
	"stayops/internal/domain/shared/daterange"
)

type ReservationRepository struct {
	col *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{col: db.Collection("reservations")}
}

// ForRange returns reservations overlapping [from, to). Rows with a
// malformed span (checkout on or before checkin) are filtered out here so
// the occupancy mapper only ever sees valid spans.
func (r *ReservationRepository) ForRange(ctx context.Context, id property.PropertyID, from, to time.Time) ([]reservation.Reservation, error) {
	filter := bson.M{
		"property_id": string(id),
		"checkin":     bson.M{"$lt": to.UnixMilli()},
		"checkout":    bson.M{"$gt": from.UnixMilli()},
	}
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []reservation.Reservation
	for cursor.Next(ctx) {
		var doc reservationDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		if doc.Checkout <= doc.Checkin {
			continue
		}
		out = append(out, doc.toDomain())
	}
	return out, cursor.Err()
}

func (r *ReservationRepository) Save(ctx context.Context, res *reservation.Reservation) error {
	doc := reservationDocument{
		ID:         res.ID,
		PropertyID: string(res.PropertyID),
		Checkin:    res.Range.CheckIn.UnixMilli(),
		Checkout:   res.Range.CheckOut.UnixMilli(),
		GuestName:  res.GuestName,
		Source:     res.Source,
	}
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	return err
}

type reservationDocument struct {
	ID         string `bson:"_id"`
	PropertyID string `bson:"property_id"`
	Checkin    int64  `bson:"checkin"`
	Checkout   int64  `bson:"checkout"`
	GuestName  string `bson:"guest_name"`
	Source     string `bson:"source"`
}

func (d reservationDocument) toDomain() reservation.Reservation {
	return reservation.Reservation{
		ID:         d.ID,
		PropertyID: property.PropertyID(d.PropertyID),
		Range: daterange.DateRange{
			CheckIn:  timestampToTime(d.Checkin),
			CheckOut: timestampToTime(d.Checkout),
		},
		GuestName: d.GuestName,
		Source:    d.Source,
	}
}

var _ reservation.Repository = (*ReservationRepository)(nil)
