package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/niksmo/emporium/internal/core/domain"
)

// PlaceOrder prices every line from the current product documents and
// stores the order only when the claimed total matches to the cent.
// A missing product fails the order before any other field is checked.
//
// Product reads and the order write are separate operations: a price may
// change between them and the order keeps the price that was read.
func (s Service) PlaceOrder(
	ctx context.Context, req domain.PlaceOrder,
) (domain.Order, error) {
	const op = "Service.PlaceOrder"

	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := req.ValidateLines(); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	items, err := s.priceLines(ctx, req.Lines)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := req.Validate(); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.ensureCustomer(ctx, req.CustomerID); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	calculated, err := domain.OrderTotal(items)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	if calculated != req.ClaimedTotal {
		err := domain.TotalMismatchError{
			Calculated: calculated,
			Claimed:    req.ClaimedTotal,
		}
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	order := domain.Order{
		CustomerID:      req.CustomerID,
		Items:           items,
		Total:           calculated,
		Status:          domain.OrderPending,
		ShippingAddress: req.ShippingAddress,
	}
	if err := order.Validate(); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.orders.CreateOrder(ctx, order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	s.publishOrderEvent(ctx, domain.OrderPlaced, created)
	return created, nil
}

// priceLines stops at the first missing product.
func (s Service) priceLines(
	ctx context.Context, lines []domain.OrderLine,
) ([]domain.OrderItem, error) {
	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		product, err := s.products.ReadProduct(ctx, line.ProductID)
		if err != nil {
			return nil, referenceErr(err, domain.EntityProduct, line.ProductID)
		}
		items = append(items, domain.OrderItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			Price:     product.Price,
		})
	}
	return items, nil
}

func (s Service) ensureCustomer(ctx context.Context, id string) error {
	_, err := s.customers.ReadCustomer(ctx, id)
	if err != nil {
		return referenceErr(err, domain.EntityCustomer, id)
	}
	return nil
}

// referenceErr turns a lookup miss into a [domain.ReferenceError].
func referenceErr(err error, entity domain.Entity, id string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ReferenceError{Entity: entity, ID: id}
	}
	return err
}

func (s Service) GetOrder(
	ctx context.Context, id string,
) (domain.OrderView, error) {
	const op = "Service.GetOrder"

	o, err := s.orders.ReadOrder(ctx, id)
	if err != nil {
		return domain.OrderView{}, fmt.Errorf("%s: %w", op, err)
	}

	views, err := s.expandOrders(ctx, []domain.Order{o}, true)
	if err != nil {
		return domain.OrderView{}, fmt.Errorf("%s: %w", op, err)
	}
	return views[0], nil
}

func (s Service) ListOrders(ctx context.Context) ([]domain.OrderView, error) {
	const op = "Service.ListOrders"

	orders, err := s.orders.ReadOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	views, err := s.expandOrders(ctx, orders, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return views, nil
}

func (s Service) UpdateOrder(
	ctx context.Context, id string, patch domain.OrderPatch,
) (domain.Order, error) {
	const op = "Service.UpdateOrder"

	current, err := s.orders.ReadOrder(ctx, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	if patch.IsEmpty() {
		return current, nil
	}

	if _, err := patch.Apply(current); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.orders.UpdateOrder(ctx, id, patch)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	if updated.Status != current.Status {
		s.publishOrderEvent(ctx, domain.OrderStatusChanged, updated)
	}
	return updated, nil
}

func (s Service) DeleteOrder(ctx context.Context, id string) error {
	const op = "Service.DeleteOrder"

	deleted, err := s.orders.DeleteOrder(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.publishOrderEvent(ctx, domain.OrderDeleted, deleted)
	return nil
}
