package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/dinein/app/models"
	"github.com/shashiranjanraj/dinein/pkg/metrics"
)

// BookingRepository persists table bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
}

type MongoBookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(col *mongo.Collection) *MongoBookingRepository {
	return &MongoBookingRepository{col: col}
}

func (r *MongoBookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	defer metrics.ObserveDBQuery("bookings.insert", time.Now())

	res, err := r.col.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("bookings: insert: %w", translate(err))
	}
	booking.ID = insertedID(res)
	return nil
}

func insertedID(res *mongo.InsertOneResult) primitive.ObjectID {
	if res == nil {
		return primitive.NilObjectID
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id
}
