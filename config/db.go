package config

import (
	"context"
	"fmt"

	"GardenTrack/store"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ConnectDB connects to MongoDB and pings it, both bounded by MongoTimeout.
func ConnectDB(ctx context.Context, cfg *Config, logger *zap.Logger) (*mongo.Database, error) {
	logger.Info("Connecting to MongoDB", zap.String("database", cfg.MongoDB))

	ctx, cancel := context.WithTimeout(ctx, cfg.MongoTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("MongoDB ping failed: %w", err)
	}

	logger.Info("Connected to MongoDB")
	return client.Database(cfg.MongoDB), nil
}

// OpenStore returns the store selected by cfg.StoreDriver.
func OpenStore(ctx context.Context, cfg *Config, logger *zap.Logger) (store.Store, error) {
	switch cfg.StoreDriver {
	case DriverSQLite:
		logger.Info("Opening SQLite store", zap.String("path", cfg.SQLitePath))
		return store.OpenSQLite(ctx, cfg.SQLitePath)
	case DriverMongo:
		db, err := ConnectDB(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return store.NewMongoStore(db), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
