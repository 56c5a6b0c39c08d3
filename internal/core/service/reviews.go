package service

import (
	"context"
	"fmt"

	"github.com/niksmo/emporium/internal/core/domain"
)

// PostReview stores r once its product exists, its rating is in range
// and its customer exists, checked in that order.
func (s Service) PostReview(
	ctx context.Context, r domain.Review,
) (domain.Review, error) {
	const op = "Service.PostReview"

	if err := ctx.Err(); err != nil {
		return domain.Review{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.ValidateProduct(); err != nil {
		return domain.Review{}, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.products.ReadProduct(ctx, r.ProductID); err != nil {
		err = referenceErr(err, domain.EntityProduct, r.ProductID)
		return domain.Review{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.Validate(); err != nil {
		return domain.Review{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.ensureCustomer(ctx, r.CustomerID); err != nil {
		return domain.Review{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.reviews.CreateReview(ctx, r)
	if err != nil {
		return domain.Review{}, fmt.Errorf("%s: %w", op, err)
	}

	s.publishReviewEvent(ctx, domain.ReviewEvent{
		Type:   domain.ReviewPosted,
		Review: created,
	})
	return created, nil
}

func (s Service) GetReview(
	ctx context.Context, id string,
) (domain.ReviewView, error) {
	const op = "Service.GetReview"

	r, err := s.reviews.ReadReview(ctx, id)
	if err != nil {
		return domain.ReviewView{}, fmt.Errorf("%s: %w", op, err)
	}

	views, err := s.expandReviews(ctx, []domain.Review{r}, true)
	if err != nil {
		return domain.ReviewView{}, fmt.Errorf("%s: %w", op, err)
	}
	return views[0], nil
}

func (s Service) ListReviews(ctx context.Context) ([]domain.ReviewView, error) {
	const op = "Service.ListReviews"

	rs, err := s.reviews.ReadReviews(ctx, domain.ReviewFilter{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	views, err := s.expandReviews(ctx, rs, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return views, nil
}

func (s Service) ListProductReviews(
	ctx context.Context, productID string,
) ([]domain.ReviewView, error) {
	const op = "Service.ListProductReviews"

	rs, err := s.reviews.ReadReviews(
		ctx, domain.ReviewFilter{ProductID: productID},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	views, err := s.expandReviews(ctx, rs, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return views, nil
}

func (s Service) UpdateReview(
	ctx context.Context, id string, patch domain.ReviewPatch,
) (domain.Review, error) {
	const op = "Service.UpdateReview"

	current, err := s.reviews.ReadReview(ctx, id)
	if err != nil {
		return domain.Review{}, fmt.Errorf("%s: %w", op, err)
	}

	if patch.IsEmpty() {
		return current, nil
	}

	if err := patch.Apply(current).Validate(); err != nil {
		return domain.Review{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.reviews.UpdateReview(ctx, id, patch)
	if err != nil {
		return domain.Review{}, fmt.Errorf("%s: %w", op, err)
	}

	if updated.Rating != current.Rating {
		s.publishReviewEvent(ctx, domain.ReviewEvent{
			Type:           domain.ReviewRevised,
			Review:         updated,
			PreviousRating: current.Rating,
		})
	}
	return updated, nil
}

func (s Service) DeleteReview(ctx context.Context, id string) error {
	const op = "Service.DeleteReview"

	deleted, err := s.reviews.DeleteReview(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.publishReviewEvent(ctx, domain.ReviewEvent{
		Type:   domain.ReviewRemoved,
		Review: deleted,
	})
	return nil
}
