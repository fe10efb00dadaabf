package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/shashiranjanraj/dinein/app/repositories"
	"github.com/shashiranjanraj/dinein/app/routes"
	"github.com/shashiranjanraj/dinein/config"
	"github.com/shashiranjanraj/dinein/database/seeders"
	"github.com/shashiranjanraj/dinein/pkg/auth"
	"github.com/shashiranjanraj/dinein/pkg/database"
	"github.com/shashiranjanraj/dinein/pkg/logger"
)

// app is everything a command needs once storage is up. close releases it in
// reverse order of acquisition.
type app struct {
	deps  routes.Deps
	close func(context.Context)
}

// bootDB loads config and connects to MongoDB.
func bootDB(ctx context.Context) (*database.DB, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}
	return database.ConnectDefault(ctx)
}

// bootMongo wires every repository to MongoDB and, when LOG_TO_MONGO is set,
// copies log records into the log collection.
func bootMongo(ctx context.Context) (*app, error) {
	db, err := bootDB(ctx)
	if err != nil {
		return nil, err
	}
	if err := db.EnsureIndexes(ctx); err != nil {
		_ = db.Close(ctx)
		return nil, err
	}

	restore := func() {}
	var sink *logger.MongoHandler
	if config.LogToMongo() {
		sink = logger.NewMongoHandler(db.Collection(config.LogCollection()), slog.LevelInfo)
		restore = logger.Tee(sink)
	}

	return &app{
		deps: routes.Deps{
			Users:    repositories.NewUserRepository(db.Collection(database.Users)),
			Bookings: repositories.NewBookingRepository(db.Collection(database.Bookings)),
			Menu:     repositories.NewMenuRepository(db.Collection(database.MenuItems)),
			Cart:     repositories.NewCartRepository(db.Collection(database.CartItems)),
			Hasher:   auth.NewHasher(config.BcryptCost()),
			Health:   db,
		},
		close: func(ctx context.Context) {
			restore()
			if sink != nil {
				sink.Close()
			}
			if err := db.Close(ctx); err != nil {
				logger.Warn("mongo disconnect failed", "error", err)
			}
		},
	}, nil
}

// bootMemory wires every repository to a process-local store populated by the
// seeders. Nothing survives a restart.
func bootMemory(ctx context.Context) (*app, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}
	store := repositories.NewMemoryStore()
	if err := seeders.RunAll(ctx, seeders.Target{Menu: store.Menu()}, io.Discard); err != nil {
		return nil, err
	}
	return &app{
		deps: routes.Deps{
			Users:    store.Users(),
			Bookings: store.Bookings(),
			Menu:     store.Menu(),
			Cart:     store.Cart(),
			Hasher:   auth.NewHasher(config.BcryptCost()),
			Health:   alwaysUp{},
		},
		close: func(context.Context) {},
	}, nil
}

type alwaysUp struct{}

func (alwaysUp) Ping(context.Context) error { return nil }
