package service

import (
	"context"
	"fmt"

	"github.com/niksmo/emporium/internal/core/domain"
)

// Categories and customers are read-only here; nothing in the service
// writes them.

func (s Service) GetCategory(
	ctx context.Context, id string,
) (domain.Category, error) {
	const op = "Service.GetCategory"

	c, err := s.categories.ReadCategory(ctx, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func (s Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "Service.ListCategories"

	cs, err := s.categories.ReadCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cs, nil
}

func (s Service) GetCustomer(
	ctx context.Context, id string,
) (domain.Customer, error) {
	const op = "Service.GetCustomer"

	c, err := s.customers.ReadCustomer(ctx, id)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func (s Service) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	const op = "Service.ListCustomers"

	cs, err := s.customers.ReadCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cs, nil
}
