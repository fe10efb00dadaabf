package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/dinein/app/models"
	"github.com/shashiranjanraj/dinein/pkg/metrics"
)

// CartRepository persists cart items. Ids are ObjectID hex strings.
type CartRepository interface {
	Create(ctx context.Context, item *models.CartItem) error
	FindByUser(ctx context.Context, userID string) ([]models.CartItem, error)
	FindByID(ctx context.Context, id string) (*models.CartItem, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) (*models.CartItem, error)
	Delete(ctx context.Context, id string) (*models.CartItem, error)
}

type MongoCartRepository struct {
	col *mongo.Collection
}

func NewCartRepository(col *mongo.Collection) *MongoCartRepository {
	return &MongoCartRepository{col: col}
}

func (r *MongoCartRepository) Create(ctx context.Context, item *models.CartItem) error {
	defer metrics.ObserveDBQuery("cartitems.insert", time.Now())

	res, err := r.col.InsertOne(ctx, item)
	if err != nil {
		return fmt.Errorf("cartitems: insert: %w", translate(err))
	}
	item.ID = insertedID(res)
	return nil
}

// FindByUser returns the user's items in insertion order.
func (r *MongoCartRepository) FindByUser(ctx context.Context, userID string) ([]models.CartItem, error) {
	defer metrics.ObserveDBQuery("cartitems.list", time.Now())

	cur, err := r.col.Find(ctx,
		bson.D{{Key: "userId", Value: userID}},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("cartitems: list: %w", err)
	}
	items := []models.CartItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("cartitems: decode: %w", err)
	}
	return items, nil
}

func (r *MongoCartRepository) FindByID(ctx context.Context, id string) (*models.CartItem, error) {
	defer metrics.ObserveDBQuery("cartitems.find", time.Now())

	oid, err := objectID(id)
	if err != nil {
		return nil, fmt.Errorf("cartitems: find: %w", err)
	}
	var item models.CartItem
	if err := r.col.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&item); err != nil {
		return nil, fmt.Errorf("cartitems: find: %w", translate(err))
	}
	return &item, nil
}

// UpdateQuantity sets quantity and returns the updated item.
func (r *MongoCartRepository) UpdateQuantity(ctx context.Context, id string, quantity int) (*models.CartItem, error) {
	defer metrics.ObserveDBQuery("cartitems.update", time.Now())

	oid, err := objectID(id)
	if err != nil {
		return nil, fmt.Errorf("cartitems: update: %w", err)
	}
	var item models.CartItem
	err = r.col.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "quantity", Value: quantity}}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&item)
	if err != nil {
		return nil, fmt.Errorf("cartitems: update: %w", translate(err))
	}
	return &item, nil
}

// Delete removes the item and returns what was removed.
func (r *MongoCartRepository) Delete(ctx context.Context, id string) (*models.CartItem, error) {
	defer metrics.ObserveDBQuery("cartitems.delete", time.Now())

	oid, err := objectID(id)
	if err != nil {
		return nil, fmt.Errorf("cartitems: delete: %w", err)
	}
	var item models.CartItem
	if err := r.col.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&item); err != nil {
		return nil, fmt.Errorf("cartitems: delete: %w", translate(err))
	}
	return &item, nil
}
