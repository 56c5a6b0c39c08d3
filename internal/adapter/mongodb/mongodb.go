package mongodb

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"time"

	"github.com/niksmo/emporium/pkg/retry"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	categoriesCollection = "categories"
	productsCollection   = "products"
	customersCollection  = "customers"
	ordersCollection     = "orders"
	reviewsCollection    = "reviews"
)

type Config struct {
	URI              string
	Database         string
	OperationTimeout time.Duration

	// TLS is optional.
	TLS *tls.Config
}

// A DB owns the client connection shared by all repositories.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects and waits until the deployment answers a ping.
func New(ctx context.Context, cfg Config) (DB, error) {
	const op = "mongodb.New"
	log := slog.With("op", op)

	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.OperationTimeout > 0 {
		opts.SetTimeout(cfg.OperationTimeout)
	}
	if cfg.TLS != nil {
		opts.SetTLSConfig(cfg.TLS)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return DB{}, fmt.Errorf("%s: %w", op, err)
	}

	retryCfg := retry.RetryConfig{
		MaxAttempts: 5,
		Backoff:     retry.ExponentialBackoff(200 * time.Millisecond),
	}
	err = retry.Do(ctx, retryCfg, func() error {
		return client.Ping(ctx, nil)
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return DB{}, fmt.Errorf("%s: database is unavailable: %w", op, err)
	}

	log.Info("database is available", "database", cfg.Database)
	return DB{client: client, db: client.Database(cfg.Database)}, nil
}

func (d DB) Database() *mongo.Database {
	return d.db
}

// EnsureIndexes creates the unique indexes the store relies on.
func (d DB) EnsureIndexes(ctx context.Context) error {
	const op = "DB.EnsureIndexes"

	unique := map[string]string{
		productsCollection:  "sku",
		customersCollection: "email",
	}
	for coll, field := range unique {
		_, err := d.db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("%s: %s.%s: %w", op, coll, field, err)
		}
	}

	_, err := d.db.Collection(reviewsCollection).Indexes().CreateOne(
		ctx, mongo.IndexModel{Keys: bson.D{{Key: "product", Value: 1}}},
	)
	if err != nil {
		return fmt.Errorf("%s: reviews.product: %w", op, err)
	}
	return nil
}

// Reset removes every document from the store collections.
func (d DB) Reset(ctx context.Context) error {
	const op = "DB.Reset"

	for _, coll := range []string{
		categoriesCollection, productsCollection, customersCollection,
		ordersCollection, reviewsCollection,
	} {
		if _, err := d.db.Collection(coll).DeleteMany(ctx, bson.D{}); err != nil {
			return fmt.Errorf("%s: %s: %w", op, coll, err)
		}
	}
	return nil
}

func (d DB) Close(ctx context.Context) {
	const op = "DB.Close"
	log := slog.With("op", op)

	log.Info("closing database connection...")

	if err := d.client.Disconnect(ctx); err != nil {
		log.Error("failed to disconnect", "err", err)
		return
	}
	log.Info("database connection is closed")
}
