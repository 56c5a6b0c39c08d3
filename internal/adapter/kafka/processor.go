package kafka

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/lovoo/goka"
	"github.com/niksmo/emporium/pkg/schema"
)

// A processor is used for composition.
//
// Running and closing the underlying [goka.Processor]
type processor struct {
	opPrefix string
	gp       *goka.Processor
}

// run starts the processor in the background and returns when it is
// ready or ctx is done. stopFn is called once the processor stops.
func (p processor) run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	const op = "run"
	log := slog.With("op", makeOp(p.opPrefix, op))

	wg.Add(1)
	go func() {
		defer wg.Done()
		p.runProc(ctx, stopFn)
	}()

	log.Info("preparing...")
	if p.waitForReady(ctx) {
		log.Info("running")
	}
}

func (p processor) runProc(ctx context.Context, stopFn context.CancelFunc) {
	const op = "runProc"
	log := slog.With("op", makeOp(p.opPrefix, op))

	defer stopFn()

	err := p.gp.Run(ctx)
	if err != nil {
		log.Error("stopped", "err", err)
		return
	}
	log.Info("stopped")
}

func (p processor) waitForReady(ctx context.Context) bool {
	const op = "waitForReady"
	log := slog.With("op", makeOp(p.opPrefix, op))

	err := p.gp.WaitForReadyContext(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Error("fall down while preparing", "err", err)
		}
		return false
	}
	return true
}

func (p processor) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))

	log.Info("closing processor...")
	p.gp.Stop()
	log.Info("processor is closed")
}

// A reviewEventCodec used for serde [schema.ReviewEventV1]
type reviewEventCodec struct {
	serde Serde
}

func newReviewEventCodec(s Serde) reviewEventCodec {
	return reviewEventCodec{s}
}

func (c reviewEventCodec) Encode(v any) ([]byte, error) {
	const op = "reviewEventCodec.Encode"
	if _, ok := v.(schema.ReviewEventV1); !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return c.serde.Encode(v)
}

func (c reviewEventCodec) Decode(data []byte) (any, error) {
	const op = "reviewEventCodec.Decode"
	var s schema.ReviewEventV1
	if err := c.serde.Decode(data, &s); err != nil {
		return nil, opErr(err, op)
	}
	return s, nil
}

// A ProductRatingProcConfig used for setup [ProductRatingProcessor].
//
// All fields are required.
type ProductRatingProcConfig struct {
	SeedBrokers       []string
	ReviewEventsTopic string
	Group             string
	ReviewEventSerde  Serde
}

// A ProductRatingProcessor folds review events from the input stream
// into a rating summary per product kept in the group table.
type ProductRatingProcessor struct {
	opPrefix string
	proc     processor
}

func NewProductRatingProc(
	config ProductRatingProcConfig, opts ...goka.ProcessorOption,
) (*ProductRatingProcessor, error) {
	const op = "NewProductRatingProc"

	p := &ProductRatingProcessor{opPrefix: "ProductRatingProcessor"}

	gg := goka.DefineGroup(goka.Group(config.Group),
		goka.Input(
			goka.Stream(config.ReviewEventsTopic),
			newReviewEventCodec(config.ReviewEventSerde),
			p.processFn,
		),
		goka.Persist(schema.RatingSummaryCodec{}),
	)

	opts = append([]goka.ProcessorOption{withNoLogProcOpt()}, opts...)
	gp, err := goka.NewProcessor(config.SeedBrokers, gg, opts...)
	if err != nil {
		return nil, opErr(err, op)
	}

	p.proc = processor{opPrefix: p.opPrefix, gp: gp}
	return p, nil
}

func (p *ProductRatingProcessor) Run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	p.proc.run(ctx, stopFn, wg)
}

func (p *ProductRatingProcessor) Close() {
	p.proc.close()
}

func (p *ProductRatingProcessor) processFn(ctx goka.Context, msg any) {
	const op = "processFn"
	log := slog.With("op", makeOp(p.opPrefix, op), "productID", ctx.Key())

	event, ok := msg.(schema.ReviewEventV1)
	if !ok {
		log.Error("unexpected message", "err", ErrInvalidValueType)
		return
	}

	current, _ := ctx.Value().(schema.RatingSummaryV1)
	next := foldRating(current, event)
	ctx.SetValue(next)
	log.Debug(
		"rating updated",
		"event", event.EventType, "count", next.Count, "sum", next.Sum,
	)
}

func foldRating(
	current schema.RatingSummaryV1, event schema.ReviewEventV1,
) schema.RatingSummaryV1 {
	summary := ratingFromSchemaV1(current)
	return ratingToSchemaV1(summary.Fold(reviewEventFromSchemaV1(event)))
}
