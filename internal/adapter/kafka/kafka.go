package kafka

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/lovoo/goka"
	"github.com/niksmo/emporium/internal/core/domain"
	"github.com/niksmo/emporium/pkg/retry"
	"github.com/niksmo/emporium/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var (
	ErrTooFewOpts       = errors.New("too few options")
	ErrInvalidValueType = errors.New("invalid value type")
)

type ProducerOpt func(*producerOpts) error

type producerOpts struct {
	cl      ProducerClient
	encoder Encoder
}

func (po *producerOpts) apply(opts ...ProducerOpt) error {
	for _, opt := range opts {
		if err := opt(po); err != nil {
			return err
		}
	}
	if po.cl == nil || po.encoder == nil {
		return ErrTooFewOpts
	}
	return nil
}

// ProducerClientOpt creates a client producing to topic and waits until
// one of the seed brokers answers.
func ProducerClientOpt(
	ctx context.Context, seedBrokers []string, topic string,
) ProducerOpt {
	return func(opts *producerOpts) error {
		cl, err := kgo.NewClient(
			kgo.SeedBrokers(seedBrokers...),
			kgo.DefaultProduceTopicAlways(),
			kgo.DefaultProduceTopic(topic),
			kgo.RequiredAcks(kgo.AllISRAcks()),
		)
		if err != nil {
			return err
		}

		retryCfg := retry.RetryConfig{
			MaxAttempts: 5,
			Backoff:     retry.ExponentialBackoff(200 * time.Millisecond),
		}
		if err := retry.Do(ctx, retryCfg, func() error {
			return cl.Ping(ctx)
		}); err != nil {
			cl.Close()
			return err
		}
		opts.cl = cl
		return nil
	}
}

// ProducerClientInstanceOpt uses an already configured client.
func ProducerClientInstanceOpt(cl ProducerClient) ProducerOpt {
	return func(opts *producerOpts) error {
		if cl == nil {
			return errors.New("producer client is nil")
		}
		opts.cl = cl
		return nil
	}
}

func ProducerEncoderOpt(encoder Encoder) ProducerOpt {
	return func(opts *producerOpts) error {
		if encoder == nil {
			return errors.New("encoder is nil")
		}
		opts.encoder = encoder
		return nil
	}
}

type ProducerClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type Encoder interface {
	Encode(v any) ([]byte, error)
}

type Decoder interface {
	Decode(b []byte, v any) error
}

type Serde interface {
	Encoder
	Decoder
}

func withNoLogProcOpt() goka.ProcessorOption {
	return goka.WithLogger(log.New(io.Discard, "", 0))
}

func makeOp(s ...string) string {
	return strings.Join(s, ".")
}

func opErr(err error, op ...string) error {
	return fmt.Errorf("%s: %w", makeOp(op...), err)
}

func orderEventToSchemaV1(e domain.OrderEvent) (s schema.OrderEventV1) {
	s.EventType = string(e.Type)
	s.OccurredAt = e.OccurredAt.UTC()
	s.OrderID = e.Order.ID
	s.CustomerID = e.Order.CustomerID
	s.Status = string(e.Order.Status)
	s.TotalCents = int64(e.Order.Total)

	s.Items = make([]schema.OrderItemV1, len(e.Order.Items))
	for i, item := range e.Order.Items {
		s.Items[i].ProductID = item.ProductID
		s.Items[i].Quantity = item.Quantity
		s.Items[i].PriceCents = int64(item.Price)
	}
	return
}

func reviewEventToSchemaV1(e domain.ReviewEvent) (s schema.ReviewEventV1) {
	s.EventType = string(e.Type)
	s.OccurredAt = e.OccurredAt.UTC()
	s.ReviewID = e.Review.ID
	s.ProductID = e.Review.ProductID
	s.CustomerID = e.Review.CustomerID
	s.Rating = e.Review.Rating
	s.PreviousRating = e.PreviousRating
	return
}

func reviewEventFromSchemaV1(s schema.ReviewEventV1) domain.ReviewEvent {
	return domain.ReviewEvent{
		Type: domain.ReviewEventType(s.EventType),
		Review: domain.Review{
			ID:         s.ReviewID,
			ProductID:  s.ProductID,
			CustomerID: s.CustomerID,
			Rating:     s.Rating,
		},
		PreviousRating: s.PreviousRating,
		OccurredAt:     s.OccurredAt,
	}
}

func ratingFromSchemaV1(s schema.RatingSummaryV1) domain.RatingSummary {
	return domain.RatingSummary{
		ProductID: s.ProductID,
		Count:     s.Count,
		Sum:       s.Sum,
	}
}

func ratingToSchemaV1(r domain.RatingSummary) schema.RatingSummaryV1 {
	return schema.RatingSummaryV1{
		ProductID: r.ProductID,
		Count:     r.Count,
		Sum:       r.Sum,
	}
}
