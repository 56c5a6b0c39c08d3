package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/niksmo/emporium/config"
	"github.com/niksmo/emporium/internal/adapter"
	"github.com/niksmo/emporium/internal/adapter/mongodb"
	"github.com/niksmo/emporium/pkg/sigctx"
)

const closeTimeout = 5 * time.Second

func main() {
	sigCtx, cancel := sigctx.NotifyContext()
	defer cancel()

	cfg := config.Load()

	db, err := connect(sigCtx, cfg)
	if err != nil {
		printFail(err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		db.Close(ctx)
	}()

	start := time.Now()
	fmt.Printf("seeding %q...\n", cfg.Mongo.Database)

	if err := db.Reset(sigCtx); err != nil {
		printFail(err)
		return
	}
	if err := db.EnsureIndexes(sigCtx); err != nil {
		printFail(err)
		return
	}

	database := db.Database()
	s := seeder{
		categories: mongodb.NewCategoriesRepository(database),
		products:   mongodb.NewProductsRepository(database),
		customers:  mongodb.NewCustomersRepository(database),
		orders:     mongodb.NewOrdersRepository(database),
		reviews:    mongodb.NewReviewsRepository(database),
		hash:       bcryptHash,
	}
	sum, err := s.seed(sigCtx)
	if err != nil {
		printFail(err)
		return
	}

	fmt.Printf(`created:
	- %d categories
	- %d products
	- %d customers
	- %d orders
	- %d reviews

complete in %s
`,
		sum.Categories, sum.Products, sum.Customers, sum.Orders, sum.Reviews,
		time.Since(start),
	)
}

func connect(ctx context.Context, cfg config.Config) (mongodb.DB, error) {
	mongoCfg := mongodb.Config{
		URI:              cfg.Mongo.URI,
		Database:         cfg.Mongo.Database,
		OperationTimeout: cfg.Mongo.OperationTimeout,
	}
	if files := cfg.Mongo.TLS; files.Enabled() {
		tlsCfg, err := adapter.MakeTLSConfig(files.CA, files.Cert, files.Key)
		if err != nil {
			return mongodb.DB{}, err
		}
		mongoCfg.TLS = tlsCfg
	}
	return mongodb.New(ctx, mongoCfg)
}

func printFail(err error) {
	fmt.Printf("failed to seed data: \n%s\n", err)
}
