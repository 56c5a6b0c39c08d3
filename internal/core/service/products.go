package service

import (
	"context"
	"fmt"

	"github.com/niksmo/emporium/internal/core/domain"
)

func (s Service) CreateProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	const op = "Service.CreateProduct"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := p.Validate(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.products.CreateProduct(ctx, p)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

func (s Service) GetProduct(
	ctx context.Context, id string,
) (domain.Product, error) {
	const op = "Service.GetProduct"

	p, err := s.products.ReadProduct(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "Service.ListProducts"

	ps, err := s.products.ReadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

// UpdateProduct validates the patched product before writing only the
// patched fields.
func (s Service) UpdateProduct(
	ctx context.Context, id string, patch domain.ProductPatch,
) (domain.Product, error) {
	const op = "Service.UpdateProduct"

	current, err := s.products.ReadProduct(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	if patch.IsEmpty() {
		return current, nil
	}

	if err := patch.Apply(current).Validate(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.products.UpdateProduct(ctx, id, patch)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

func (s Service) DeleteProduct(ctx context.Context, id string) error {
	const op = "Service.DeleteProduct"

	if err := s.products.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s Service) GetProductRating(
	ctx context.Context, productID string,
) (domain.RatingSummary, error) {
	const op = "Service.GetProductRating"

	if _, err := s.products.ReadProduct(ctx, productID); err != nil {
		return domain.RatingSummary{}, fmt.Errorf("%s: %w", op, err)
	}

	summary, err := s.ratings.ReadRating(ctx, productID)
	if err != nil {
		return domain.RatingSummary{}, fmt.Errorf("%s: %w", op, err)
	}
	summary.ProductID = productID
	return summary, nil
}
