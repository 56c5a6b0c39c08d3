package mongodb

import (
	"context"
	"fmt"

	"github.com/niksmo/emporium/internal/core/domain"
	"github.com/niksmo/emporium/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ port.RatingsReader = (*RatingsAggregator)(nil)

// A RatingsAggregator computes rating summaries straight from the
// reviews collection.
type RatingsAggregator struct {
	coll *mongo.Collection
}

func NewRatingsAggregator(db *mongo.Database) RatingsAggregator {
	return RatingsAggregator{db.Collection(reviewsCollection)}
}

func (a RatingsAggregator) ReadRating(
	ctx context.Context, productID string,
) (domain.RatingSummary, error) {
	const op = "RatingsAggregator.ReadRating"

	summary := domain.RatingSummary{ProductID: productID}
	oid, ok := parseID(productID)
	if !ok {
		return summary, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "product", Value: oid}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$product"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "sum", Value: bson.D{{Key: "$sum", Value: "$rating"}}},
		}}},
	}

	cur, err := a.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return summary, fmt.Errorf("%s: %w", op, err)
	}

	var rows []struct {
		Count int64 `bson:"count"`
		Sum   int64 `bson:"sum"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return summary, fmt.Errorf("%s: %w", op, err)
	}

	if len(rows) > 0 {
		summary.Count = rows[0].Count
		summary.Sum = rows[0].Sum
	}
	return summary, nil
}
