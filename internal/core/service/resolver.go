package service

import (
	"context"
	"fmt"

	"github.com/niksmo/emporium/internal/core/domain"
	"github.com/niksmo/emporium/internal/core/port"
)

// A resolver expands stored references with one batched lookup per
// entity kind. References to deleted records come back unresolved.
type resolver struct {
	products  port.ProductsStorage
	customers port.CustomersStorage
}

func (r resolver) customersByID(
	ctx context.Context, ids []string, p domain.Projection,
) (map[string]domain.Customer, error) {
	const op = "resolver.customersByID"

	if len(ids) == 0 {
		return nil, nil
	}

	vs, err := r.customers.ReadCustomersByIDs(ctx, distinct(ids), p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	m := make(map[string]domain.Customer, len(vs))
	for _, v := range vs {
		m[v.ID] = v
	}
	return m, nil
}

func (r resolver) productsByID(
	ctx context.Context, ids []string, p domain.Projection,
) (map[string]domain.Product, error) {
	const op = "resolver.productsByID"

	if len(ids) == 0 {
		return nil, nil
	}

	vs, err := r.products.ReadProductsByIDs(ctx, distinct(ids), p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	m := make(map[string]domain.Product, len(vs))
	for _, v := range vs {
		m[v.ID] = v
	}
	return m, nil
}

func resolve[T any](id string, found map[string]T) domain.Resolved[T] {
	v, ok := found[id]
	if !ok {
		return domain.Resolved[T]{ID: id}
	}
	return domain.Resolved[T]{ID: id, Entity: &v}
}

func distinct(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// expandOrders resolves each order's customer to contact fields and,
// when withProducts is set, every line item's product in full.
func (s Service) expandOrders(
	ctx context.Context, orders []domain.Order, withProducts bool,
) ([]domain.OrderView, error) {
	const op = "Service.expandOrders"

	customerIDs := make([]string, 0, len(orders))
	var productIDs []string
	for _, o := range orders {
		customerIDs = append(customerIDs, o.CustomerID)
		if withProducts {
			productIDs = append(productIDs, o.ProductIDs()...)
		}
	}

	customers, err := s.resolver.customersByID(
		ctx, customerIDs, domain.CustomerContact,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	products, err := s.resolver.productsByID(ctx, productIDs, domain.FullEntity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	views := make([]domain.OrderView, len(orders))
	for i, o := range orders {
		views[i] = domain.OrderView{
			Order:    o,
			Customer: resolve(o.CustomerID, customers),
		}
		if !withProducts {
			continue
		}
		views[i].Products = make([]domain.Resolved[domain.Product], len(o.Items))
		for j, item := range o.Items {
			views[i].Products[j] = resolve(item.ProductID, products)
		}
	}
	return views, nil
}

// expandReviews resolves each review's customer to name fields and,
// when withProduct is set, the product to its name.
func (s Service) expandReviews(
	ctx context.Context, reviews []domain.Review, withProduct bool,
) ([]domain.ReviewView, error) {
	const op = "Service.expandReviews"

	customerIDs := make([]string, 0, len(reviews))
	var productIDs []string
	for _, r := range reviews {
		customerIDs = append(customerIDs, r.CustomerID)
		if withProduct {
			productIDs = append(productIDs, r.ProductID)
		}
	}

	customers, err := s.resolver.customersByID(
		ctx, customerIDs, domain.CustomerName,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	products, err := s.resolver.productsByID(ctx, productIDs, domain.ProductName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	views := make([]domain.ReviewView, len(reviews))
	for i, r := range reviews {
		views[i] = domain.ReviewView{
			Review:   r,
			Customer: resolve(r.CustomerID, customers),
		}
		if withProduct {
			product := resolve(r.ProductID, products)
			views[i].Product = &product
		}
	}
	return views, nil
}
