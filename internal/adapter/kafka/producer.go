package kafka

import (
	"context"
	"log/slog"

	"github.com/niksmo/emporium/internal/core/domain"
	"github.com/niksmo/emporium/internal/core/port"
	"github.com/twmb/franz-go/pkg/kgo"
)

var (
	_ port.OrderEventsProducer  = (*OrderEventsProducer)(nil)
	_ port.ReviewEventsProducer = (*ReviewEventsProducer)(nil)
)

// A producer is used for composition.
//
// Encoding values, producing records to kafka broker and closing
// underlying [kgo.Client].
type producer struct {
	opPrefix string
	cl       ProducerClient
	encoder  Encoder
}

func newProducer(opPrefix string, opts ...ProducerOpt) (producer, error) {
	var options producerOpts
	if err := options.apply(opts...); err != nil {
		return producer{}, err
	}
	return producer{
		opPrefix: opPrefix,
		cl:       options.cl,
		encoder:  options.encoder,
	}, nil
}

func (p producer) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p producer) produce(ctx context.Context, key string, v any) error {
	const op = "produce"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	b, err := p.encoder.Encode(v)
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	r := &kgo.Record{Key: []byte(key), Value: b}
	res := p.cl.ProduceSync(ctx, r)
	if err := res.FirstErr(); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

// An OrderEventsProducer publishes order lifecycle events keyed by
// order id.
type OrderEventsProducer struct {
	producer producer
}

func NewOrderEventsProducer(opts ...ProducerOpt) (OrderEventsProducer, error) {
	const op = "NewOrderEventsProducer"

	p, err := newProducer("OrderEventsProducer", opts...)
	if err != nil {
		return OrderEventsProducer{}, opErr(err, op)
	}
	return OrderEventsProducer{p}, nil
}

func (p OrderEventsProducer) Close() {
	p.producer.close()
}

func (p OrderEventsProducer) ProduceOrderEvent(
	ctx context.Context, e domain.OrderEvent,
) error {
	return p.producer.produce(ctx, e.Order.ID, orderEventToSchemaV1(e))
}

// A ReviewEventsProducer publishes review events keyed by product id,
// so every event of one product lands in one partition in order.
type ReviewEventsProducer struct {
	producer producer
}

func NewReviewEventsProducer(opts ...ProducerOpt) (ReviewEventsProducer, error) {
	const op = "NewReviewEventsProducer"

	p, err := newProducer("ReviewEventsProducer", opts...)
	if err != nil {
		return ReviewEventsProducer{}, opErr(err, op)
	}
	return ReviewEventsProducer{p}, nil
}

func (p ReviewEventsProducer) Close() {
	p.producer.close()
}

func (p ReviewEventsProducer) ProduceReviewEvent(
	ctx context.Context, e domain.ReviewEvent,
) error {
	return p.producer.produce(
		ctx, e.Review.ProductID, reviewEventToSchemaV1(e),
	)
}
