// Package mongo contains the concrete implementation of the persistence
// layer using the official MongoDB driver.
package mongo

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"

	"github.com/EhsanulSakib/wool-e-commerce-backend/config"
)

const (
	collUsers      = "users"
	collOrders     = "orders"
	collDeliveries = "deliveries"
	collProducts   = "products"
	collAttributes = "attributes"
	collVariants   = "variants"
	collReviews    = "reviews"

	connectTimeout = 10 * time.Second
)

// Params holds dependencies for the Mongo database handle, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to MongoDB, ensures the unique natural-key indexes and
// returns the database handle. Disconnect is registered on shutdown.
func New(params Params) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongo")
	}

	database := client.Database(params.Config.Mongo.Database)

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping mongo")
			}
			if err := ensureIndexes(ctx, database); err != nil {
				return errors.Wrap(err, "failed to ensure indexes")
			}
			params.Logger.Info("Connected to mongo", slog.String("database", params.Config.Mongo.Database))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return errors.Wrap(client.Disconnect(ctx), "failed to disconnect mongo")
		},
	})

	return database, nil
}

// ensureIndexes creates the unique indexes backing the application-level
// natural keys. The uid/cid/email columns are the only keys the store
// enforces; cross-collection references stay application-validated.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		collUsers: {
			{Keys: bson.D{{Key: "cid", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		collOrders:     {{Keys: bson.D{{Key: "uid", Value: 1}}, Options: unique}},
		collDeliveries: {{Keys: bson.D{{Key: "uid", Value: 1}}, Options: unique}},
		collProducts:   {{Keys: bson.D{{Key: "uid", Value: 1}}, Options: unique}},
		collAttributes: {
			{Keys: bson.D{{Key: "uid", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		},
		collVariants: {
			{Keys: bson.D{{Key: "uid", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		},
		collReviews: {{Keys: bson.D{{Key: "uid", Value: 1}}, Options: unique}},
	}

	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "failed to create indexes for %s", coll)
		}
	}

	return nil
}
