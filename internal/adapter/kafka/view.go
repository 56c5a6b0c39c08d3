package kafka

import (
	"context"
	"log/slog"

	"github.com/lovoo/goka"
	"github.com/niksmo/emporium/internal/core/domain"
	"github.com/niksmo/emporium/internal/core/port"
	"github.com/niksmo/emporium/pkg/schema"
)

var _ port.RatingsReader = (*ProductRatingView)(nil)

// A ProductRatingViewConfig used for setup [ProductRatingView].
//
// All fields are required.
type ProductRatingViewConfig struct {
	SeedBrokers []string
	Group       string
}

// A ProductRatingView serves rating summaries from a local copy of the
// [ProductRatingProcessor] group table.
type ProductRatingView struct {
	gv *goka.View
}

func NewProductRatingView(
	config ProductRatingViewConfig, opts ...goka.ViewOption,
) (ProductRatingView, error) {
	const op = "NewProductRatingView"

	gv, err := goka.NewView(
		config.SeedBrokers,
		goka.GroupTable(goka.Group(config.Group)),
		schema.RatingSummaryCodec{},
		opts...,
	)
	if err != nil {
		return ProductRatingView{}, opErr(err, op)
	}
	return ProductRatingView{gv}, nil
}

// Run blocks until ctx is done or the view fails.
func (v ProductRatingView) Run(ctx context.Context) {
	const op = "ProductRatingView.Run"
	log := slog.With("op", op)

	if err := v.gv.Run(ctx); err != nil {
		log.Error("unexpected fail on run", "err", err)
	}
}

// ReadRating returns an empty summary for a product nobody reviewed.
func (v ProductRatingView) ReadRating(
	ctx context.Context, productID string,
) (domain.RatingSummary, error) {
	const op = "ProductRatingView.ReadRating"

	if err := ctx.Err(); err != nil {
		return domain.RatingSummary{}, opErr(err, op)
	}

	value, err := v.gv.Get(productID)
	if err != nil {
		return domain.RatingSummary{}, opErr(err, op)
	}

	if value == nil {
		return domain.RatingSummary{ProductID: productID}, nil
	}

	s, ok := value.(schema.RatingSummaryV1)
	if !ok {
		return domain.RatingSummary{}, opErr(ErrInvalidValueType, op)
	}
	return ratingFromSchemaV1(s), nil
}
