package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/dinein/app/models"
	"github.com/shashiranjanraj/dinein/pkg/metrics"
)

// UserRepository persists users.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// MongoUserRepository is the MongoDB-backed UserRepository.
type MongoUserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(col *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{col: col}
}

// Create inserts user and sets its ObjectID. Returns ErrDuplicate when the
// email or id is already taken.
func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	defer metrics.ObserveDBQuery("users.insert", time.Now())

	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("users: insert: %w", translate(err))
	}
	user.ObjectID = insertedID(res)
	return nil
}

// FindByEmail looks up a user by their email address.
func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

// FindByID looks up a user by public UUID.
func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, bson.D{{Key: "id", Value: id}})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.D) (*models.User, error) {
	defer metrics.ObserveDBQuery("users.find", time.Now())

	var user models.User
	if err := r.col.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, fmt.Errorf("users: find: %w", translate(err))
	}
	return &user, nil
}
