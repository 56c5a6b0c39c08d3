package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/niksmo/emporium/config"
	"github.com/niksmo/emporium/internal/adapter"
	"github.com/niksmo/emporium/internal/adapter/httphandler"
	"github.com/niksmo/emporium/internal/adapter/kafka"
	"github.com/niksmo/emporium/internal/adapter/mongodb"
	"github.com/niksmo/emporium/internal/core/port"
	"github.com/niksmo/emporium/internal/core/service"
	"github.com/niksmo/emporium/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type serdes struct {
	orderEvent  schema.Serde
	reviewEvent schema.Serde
}

// broker holds the event adapters. It is nil when the broker is
// disabled.
type broker struct {
	serdes       serdes
	orderEvents  kafka.OrderEventsProducer
	reviewEvents kafka.ReviewEventsProducer
	ratingProc   *kafka.ProductRatingProcessor
	ratingView   kafka.ProductRatingView
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	db         mongodb.DB
	broker     *broker
	service    service.Service
	httpServer httphandler.HTTPServer
	wg         *sync.WaitGroup
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg, wg: &sync.WaitGroup{}}

	app.initLogger()
	app.initStorage()
	if app.cfg.Broker.Enabled {
		app.initBroker()
	}
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initStorage() {
	const op = "App.initStorage"

	mongoCfg := mongodb.Config{
		URI:              app.cfg.Mongo.URI,
		Database:         app.cfg.Mongo.Database,
		OperationTimeout: app.cfg.Mongo.OperationTimeout,
	}
	if files := app.cfg.Mongo.TLS; files.Enabled() {
		tlsCfg, err := adapter.MakeTLSConfig(files.CA, files.Cert, files.Key)
		if err != nil {
			app.fallDown(op, err)
		}
		mongoCfg.TLS = tlsCfg
	}

	db, err := mongodb.New(app.ctx, mongoCfg)
	if err != nil {
		app.fallDown(op, err)
	}
	if err := db.EnsureIndexes(app.ctx); err != nil {
		app.fallDown(op, err)
	}
	app.db = db
}

func (app *App) initBroker() {
	app.broker = &broker{}
	app.initSerdes()
	app.initProducers()
	app.initRatingAggregate()
}

func (app *App) initSerdes() {
	const op = "App.initSerdes"
	ctx := app.ctx
	topics := app.cfg.Broker.Topics

	srClient, err := sr.NewClient(sr.URLs(app.cfg.Broker.SchemaRegistryURLs...))
	if err != nil {
		app.fallDown(op, err)
	}

	schemaCreater := schema.NewSchemaCreater(srClient)

	orderEventSerde, err := schema.NewSerdeOrderEventV1(
		ctx,
		schema.SubjectOpt(topics.OrderEvents+"-value"),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	reviewEventSerde, err := schema.NewSerdeReviewEventV1(
		ctx,
		schema.SubjectOpt(topics.ReviewEvents+"-value"),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.broker.serdes = serdes{
		orderEvent:  orderEventSerde,
		reviewEvent: reviewEventSerde,
	}
}

func (app *App) initProducers() {
	const op = "App.initProducers"
	ctx := app.ctx
	seedBrokers := app.cfg.Broker.SeedBrokers
	topics := app.cfg.Broker.Topics

	orderEvents, err := kafka.NewOrderEventsProducer(
		kafka.ProducerClientOpt(ctx, seedBrokers, topics.OrderEvents),
		kafka.ProducerEncoderOpt(app.broker.serdes.orderEvent),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	reviewEvents, err := kafka.NewReviewEventsProducer(
		kafka.ProducerClientOpt(ctx, seedBrokers, topics.ReviewEvents),
		kafka.ProducerEncoderOpt(app.broker.serdes.reviewEvent),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.broker.orderEvents = orderEvents
	app.broker.reviewEvents = reviewEvents
}

func (app *App) initRatingAggregate() {
	const op = "App.initRatingAggregate"
	seedBrokers := app.cfg.Broker.SeedBrokers
	group := app.cfg.Broker.Consumers.ProductRatingGroup

	proc, err := kafka.NewProductRatingProc(kafka.ProductRatingProcConfig{
		SeedBrokers:       seedBrokers,
		ReviewEventsTopic: app.cfg.Broker.Topics.ReviewEvents,
		Group:             group,
		ReviewEventSerde:  app.broker.serdes.reviewEvent,
	})
	if err != nil {
		app.fallDown(op, err)
	}

	view, err := kafka.NewProductRatingView(kafka.ProductRatingViewConfig{
		SeedBrokers: seedBrokers,
		Group:       group,
	})
	if err != nil {
		app.fallDown(op, err)
	}

	app.broker.ratingProc = proc
	app.broker.ratingView = view
}

func (app *App) initCoreService() {
	database := app.db.Database()

	cfg := service.Config{
		Products:   mongodb.NewProductsRepository(database),
		Orders:     mongodb.NewOrdersRepository(database),
		Reviews:    mongodb.NewReviewsRepository(database),
		Customers:  mongodb.NewCustomersRepository(database),
		Categories: mongodb.NewCategoriesRepository(database),
	}

	if app.broker != nil {
		cfg.Ratings = app.broker.ratingView
		cfg.OrderEvents = app.broker.orderEvents
		cfg.ReviewEvents = app.broker.reviewEvents
	} else {
		cfg.Ratings = mongodb.NewRatingsAggregator(database)
	}

	app.service = service.New(cfg)
}

func (app *App) initInboundAdapters() {
	const op = "App.initInboundAdapters"

	var s interface {
		port.ProductsManager
		port.OrdersManager
		port.ReviewsManager
		port.CatalogReader
	} = app.service

	router := httphandler.NewRouter(httphandler.RouterConfig{
		Products:       s,
		Orders:         s,
		Reviews:        s,
		Catalog:        s,
		Metrics:        httphandler.NewMetrics(),
		RequestTimeout: app.cfg.RequestTimeout,
	})

	httpServer, err := httphandler.NewHTTPServer(
		app.cfg.HTTPServerAddr, router, app.cfg.RequestTimeout,
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.httpServer = httpServer
}

// Run starts the rating aggregate, when enabled, and then serves HTTP.
// stopFn is called when any of them stops unexpectedly.
func (app *App) Run(stopFn context.CancelFunc) {
	if app.broker != nil {
		app.broker.ratingProc.Run(app.ctx, stopFn, app.wg)

		app.wg.Add(1)
		go func() {
			defer app.wg.Done()
			app.broker.ratingView.Run(app.ctx)
		}()
	}

	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)

	if app.broker != nil {
		app.broker.ratingProc.Close()
		app.wg.Wait()
		app.broker.orderEvents.Close()
		app.broker.reviewEvents.Close()
	}

	app.db.Close(ctx)

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
