// Package database owns the process-wide MongoDB connection. It is opened
// once at startup, handed to repositories explicitly, and closed on shutdown.
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/shashiranjanraj/dinein/config"
)

// Collection names. They match the names Mongoose pluralised,
// so existing data stays readable.
const (
	Users     = "users"
	Bookings  = "bookings"
	MenuItems = "menuitems"
	CartItems = "cartitems"
)

// DB bundles the client with the application database handle.
type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Connect dials MongoDB and verifies the connection with a ping. It returns
// an error instead of exiting so the caller can shut down gracefully.
func Connect(ctx context.Context, uri, name string) (*DB, error) {
	ctx, cancel := context.WithTimeout(ctx, config.MongoTimeout())
	defer cancel()

	clientOpts := options.Client().ApplyURI(uri).
		SetAppName("dinein").
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(50)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("database: connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	return &DB{Client: client, Database: client.Database(name)}, nil
}

// ConnectDefault connects using MONGO_URI and MONGO_DATABASE.
func ConnectDefault(ctx context.Context) (*DB, error) {
	return Connect(ctx, config.MongoURI(), config.MongoDatabase())
}

// Collection returns a handle to the named collection.
func (d *DB) Collection(name string) *mongo.Collection {
	return d.Database.Collection(name)
}

// Ping reports whether the primary is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (d *DB) Close(ctx context.Context) error {
	if d == nil || d.Client == nil {
		return nil
	}
	return d.Client.Disconnect(ctx)
}

// Index describes one unique index the application relies on.
type Index struct {
	Collection string
	Field      string
}

// UniqueIndexes backs the uniqueness constraints of the data model.
var UniqueIndexes = []Index{
	{Collection: Users, Field: "email"},
	{Collection: Users, Field: "id"},
	{Collection: MenuItems, Field: "foodName"},
}

// EnsureIndexes creates the unique indexes and a lookup index on
// cartitems.userId. Creating an index that already exists is a no-op.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, config.MongoTimeout())
	defer cancel()

	var errs []error
	for _, idx := range UniqueIndexes {
		_, err := d.Collection(idx.Collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: idx.Field, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.%s: %w", idx.Collection, idx.Field, err))
		}
	}

	_, err := d.Collection(CartItems).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
	})
	if err != nil {
		errs = append(errs, fmt.Errorf("%s.userId: %w", CartItems, err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("database: ensure indexes: %w", errors.Join(errs...))
	}
	return nil
}
