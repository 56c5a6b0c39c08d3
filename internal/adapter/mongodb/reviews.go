package mongodb

import (
	"context"
	"fmt"

	"github.com/niksmo/emporium/internal/core/domain"
	"github.com/niksmo/emporium/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ port.ReviewsStorage = (*ReviewsRepository)(nil)

type ReviewsRepository struct {
	coll *mongo.Collection
}

func NewReviewsRepository(db *mongo.Database) ReviewsRepository {
	return ReviewsRepository{db.Collection(reviewsCollection)}
}

func (r ReviewsRepository) CreateReview(
	ctx context.Context, v domain.Review,
) (domain.Review, error) {
	const op = "ReviewsRepository.CreateReview"

	doc, err := toReviewDoc(v)
	if err != nil {
		return domain.Review{}, fmt.Errorf("%s: %w", op, err)
	}
	doc.CreatedAt = now()
	doc.UpdatedAt = doc.CreatedAt

	doc.ID, err = insertOne(ctx, r.coll, doc)
	if err != nil {
		return domain.Review{}, fmt.Errorf("%s: %w", op, err)
	}
	return doc.toDomain(), nil
}

func (r ReviewsRepository) ReadReview(
	ctx context.Context, id string,
) (domain.Review, error) {
	const op = "ReviewsRepository.ReadReview"

	doc, err := findOne[reviewDoc](ctx, r.coll, domain.EntityReview, id)
	if err != nil {
		return domain.Review{}, fmt.Errorf("%s: %w", op, err)
	}
	return doc.toDomain(), nil
}

// ReadReviews returns no reviews for a malformed product id.
func (r ReviewsRepository) ReadReviews(
	ctx context.Context, f domain.ReviewFilter,
) ([]domain.Review, error) {
	const op = "ReviewsRepository.ReadReviews"

	filter := bson.M{}
	if f.ProductID != "" {
		oid, ok := parseID(f.ProductID)
		if !ok {
			return []domain.Review{}, nil
		}
		filter["product"] = oid
	}

	docs, err := findAll[reviewDoc](
		ctx, r.coll, filter, options.Find().SetSort(byInsertion),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reviews := make([]domain.Review, len(docs))
	for i, doc := range docs {
		reviews[i] = doc.toDomain()
	}
	return reviews, nil
}

func (r ReviewsRepository) UpdateReview(
	ctx context.Context, id string, patch domain.ReviewPatch,
) (domain.Review, error) {
	const op = "ReviewsRepository.UpdateReview"

	var set bson.D
	if patch.Rating != nil {
		set = append(set, bson.E{Key: "rating", Value: *patch.Rating})
	}
	if patch.Comment != nil {
		set = append(set, bson.E{Key: "comment", Value: *patch.Comment})
	}

	doc, err := updateOne[reviewDoc](ctx, r.coll, domain.EntityReview, id, set)
	if err != nil {
		return domain.Review{}, fmt.Errorf("%s: %w", op, err)
	}
	return doc.toDomain(), nil
}

func (r ReviewsRepository) DeleteReview(
	ctx context.Context, id string,
) (domain.Review, error) {
	const op = "ReviewsRepository.DeleteReview"

	doc, err := deleteOne[reviewDoc](ctx, r.coll, domain.EntityReview, id)
	if err != nil {
		return domain.Review{}, fmt.Errorf("%s: %w", op, err)
	}
	return doc.toDomain(), nil
}
