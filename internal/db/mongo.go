package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/movilfix/repairshop-api/internal/config"
	"github.com/movilfix/repairshop-api/internal/logger"
)

const (
	CustomersCollection = "customers"
	PartsCollection     = "parts"
	RepairsCollection   = "repairs"
	UsersCollection     = "users"
	AuditLogsCollection = "auditlogs"
)

// NewDatabase connects, pings the primary and ensures the unique indexes the
// duplicate-key checks rely on. Fails fast: without a store there is nothing
// to serve.
func NewDatabase(ctx context.Context, cfg *config.Config) (*mongo.Client, *mongo.Database) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.L().Fatal("failed to create mongodb client", logger.ErrorF(err))
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.L().Fatal("failed to ping database", logger.ErrorF(err))
	}

	database := client.Database(cfg.MongoDatabase)
	if err := ensureIndexes(ctx, database); err != nil {
		logger.L().Fatal("failed to ensure indexes", logger.ErrorF(err))
	}

	return client, database
}

func ensureIndexes(ctx context.Context, database *mongo.Database) error {
	_, err := database.Collection(CustomersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}, options.CreateIndexes())
	if err != nil {
		return err
	}

	_, err = database.Collection(PartsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "sku", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "type", Value: 1}}},
	}, options.CreateIndexes())
	if err != nil {
		return err
	}

	_, err = database.Collection(RepairsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "customer", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}, options.CreateIndexes())
	if err != nil {
		return err
	}

	_, err = database.Collection(UsersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}, options.CreateIndexes())
	return err
}
