package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/niksmo/emporium/internal/core/domain"
	"github.com/niksmo/emporium/internal/core/port"
)

var _ port.ProductsManager = (*Service)(nil)
var _ port.OrdersManager = (*Service)(nil)
var _ port.ReviewsManager = (*Service)(nil)
var _ port.CatalogReader = (*Service)(nil)

// A Config used for setup [Service].
//
// Storage fields and Ratings are required. Nil event producers disable
// the corresponding events.
type Config struct {
	Products     port.ProductsStorage
	Orders       port.OrdersStorage
	Reviews      port.ReviewsStorage
	Customers    port.CustomersStorage
	Categories   port.CategoriesStorage
	Ratings      port.RatingsReader
	OrderEvents  port.OrderEventsProducer
	ReviewEvents port.ReviewEventsProducer
}

type Service struct {
	products     port.ProductsStorage
	orders       port.OrdersStorage
	reviews      port.ReviewsStorage
	customers    port.CustomersStorage
	categories   port.CategoriesStorage
	ratings      port.RatingsReader
	orderEvents  port.OrderEventsProducer
	reviewEvents port.ReviewEventsProducer
	resolver     resolver
	now          func() time.Time
}

func New(config Config) Service {
	return Service{
		products:     config.Products,
		orders:       config.Orders,
		reviews:      config.Reviews,
		customers:    config.Customers,
		categories:   config.Categories,
		ratings:      config.Ratings,
		orderEvents:  config.OrderEvents,
		reviewEvents: config.ReviewEvents,
		resolver: resolver{
			products:  config.Products,
			customers: config.Customers,
		},
		now: time.Now,
	}
}

// Events are produced after the write is stored, so a failure here
// is logged and never fails the request.

func (s Service) publishOrderEvent(
	ctx context.Context, t domain.OrderEventType, o domain.Order,
) {
	const op = "Service.publishOrderEvent"

	if s.orderEvents == nil {
		return
	}

	evt := domain.OrderEvent{Type: t, Order: o, OccurredAt: s.now()}
	if err := s.orderEvents.ProduceOrderEvent(ctx, evt); err != nil {
		slog.Warn(
			"failed to produce order event",
			"op", op, "type", t, "orderID", o.ID, "err", err,
		)
	}
}

func (s Service) publishReviewEvent(
	ctx context.Context, evt domain.ReviewEvent,
) {
	const op = "Service.publishReviewEvent"

	if s.reviewEvents == nil {
		return
	}

	evt.OccurredAt = s.now()
	if err := s.reviewEvents.ProduceReviewEvent(ctx, evt); err != nil {
		slog.Warn(
			"failed to produce review event",
			"op", op, "type", evt.Type, "reviewID", evt.Review.ID, "err", err,
		)
	}
}
