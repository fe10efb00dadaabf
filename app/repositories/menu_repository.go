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

// MenuRepository reads the menu. Upsert is used by the seeder only.
type MenuRepository interface {
	FindByName(ctx context.Context, foodName string) (*models.MenuItem, error)
	All(ctx context.Context) ([]models.MenuItem, error)
	Upsert(ctx context.Context, item *models.MenuItem) error
}

type MongoMenuRepository struct {
	col *mongo.Collection
}

func NewMenuRepository(col *mongo.Collection) *MongoMenuRepository {
	return &MongoMenuRepository{col: col}
}

func (r *MongoMenuRepository) FindByName(ctx context.Context, foodName string) (*models.MenuItem, error) {
	defer metrics.ObserveDBQuery("menuitems.find", time.Now())

	var item models.MenuItem
	err := r.col.FindOne(ctx, bson.D{{Key: "foodName", Value: foodName}}).Decode(&item)
	if err != nil {
		return nil, fmt.Errorf("menuitems: find: %w", translate(err))
	}
	return &item, nil
}

// All returns the whole menu ordered by name.
func (r *MongoMenuRepository) All(ctx context.Context) ([]models.MenuItem, error) {
	defer metrics.ObserveDBQuery("menuitems.list", time.Now())

	cur, err := r.col.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "foodName", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("menuitems: list: %w", err)
	}
	items := []models.MenuItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("menuitems: decode: %w", err)
	}
	return items, nil
}

// Upsert sets the price for item.FoodName, inserting it when missing.
func (r *MongoMenuRepository) Upsert(ctx context.Context, item *models.MenuItem) error {
	defer metrics.ObserveDBQuery("menuitems.upsert", time.Now())

	_, err := r.col.UpdateOne(ctx,
		bson.D{{Key: "foodName", Value: item.FoodName}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "price", Value: item.Price}}}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("menuitems: upsert %q: %w", item.FoodName, translate(err))
	}
	return nil
}
