package domain

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderShipped   OrderStatus = "Shipped"
	OrderDelivered OrderStatus = "Delivered"
)

var orderStatuses = []OrderStatus{OrderPending, OrderShipped, OrderDelivered}

var orderStatusRank = map[OrderStatus]int{
	OrderPending:   0,
	OrderShipped:   1,
	OrderDelivered: 2,
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatusRank[s]
	return ok
}

// CanMoveTo reports whether next does not precede s in the
// Pending → Shipped → Delivered lifecycle.
func (s OrderStatus) CanMoveTo(next OrderStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	return orderStatusRank[next] >= orderStatusRank[s]
}

// Predecessors returns the statuses that may move to s, in lifecycle order.
func (s OrderStatus) Predecessors() []OrderStatus {
	var from []OrderStatus
	for _, status := range orderStatuses {
		if status.CanMoveTo(s) {
			from = append(from, status)
		}
	}
	return from
}

// StatusMoveError rejects a move from an order's status to an earlier one.
func StatusMoveError(from, to OrderStatus) ValidationError {
	return ValidationError{
		Field:  "status",
		Reason: fmt.Sprintf("cannot move from %s back to %s", from, to),
	}
}

// An OrderItem carries the product price captured when the order was placed.
type OrderItem struct {
	ProductID string `field:"product" validate:"required"`
	Quantity  int    `field:"quantity" validate:"gte=1"`
	Price     Money  `field:"price" validate:"gte=0"`
}

type Order struct {
	ID              string
	CustomerID      string      `field:"customerId" validate:"required"`
	Items           []OrderItem `field:"products" validate:"required,min=1,dive"`
	Total           Money       `field:"totalAmount" validate:"gte=0"`
	Status          OrderStatus `field:"status" validate:"oneof=Pending Shipped Delivered"`
	ShippingAddress Address
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (o Order) Validate() error {
	return validateStruct(o)
}

// ProductIDs returns the distinct product references in item order.
func (o Order) ProductIDs() []string {
	seen := make(map[string]struct{}, len(o.Items))
	ids := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}

// An OrderLine is a requested line item before prices are looked up.
type OrderLine struct {
	ProductID string `field:"product" validate:"required"`
	Quantity  int    `field:"quantity" validate:"gte=1"`
}

// A PlaceOrder is an inbound order request.
type PlaceOrder struct {
	CustomerID      string      `field:"customerId" validate:"required"`
	Lines           []OrderLine `field:"products" validate:"required,min=1,dive"`
	ClaimedTotal    Money       `field:"totalAmount" validate:"gte=0"`
	ShippingAddress Address
}

func (p PlaceOrder) Validate() error {
	return validateStruct(p)
}

// ValidateLines checks only that there is at least one line and that every
// line names a product, so that product lookups can run before the rest
// of the request is validated.
func (p PlaceOrder) ValidateLines() error {
	if len(p.Lines) == 0 {
		return ValidationError{
			Field: "products", Reason: "must contain at least 1 item(s)",
		}
	}
	for i, line := range p.Lines {
		if line.ProductID == "" {
			return ValidationError{
				Field: fmt.Sprintf("products[%d].product", i), Reason: "is required",
			}
		}
	}
	return nil
}

// OrderTotal sums price times quantity over items. A total that does not
// fit in Money fails on the quantity of the line that overflows it.
func OrderTotal(items []OrderItem) (Money, error) {
	var total Money
	for i, item := range items {
		amount, ok := item.Price.Times(item.Quantity)
		if ok {
			total, ok = total.Add(amount)
		}
		if !ok {
			return 0, ValidationError{
				Field:  fmt.Sprintf("products[%d].quantity", i),
				Reason: "makes the order total too large",
			}
		}
	}
	return total, nil
}

type OrderPatch struct {
	Status          *OrderStatus
	ShippingAddress *Address
}

func (p OrderPatch) IsEmpty() bool {
	return p == OrderPatch{}
}

// Apply returns v with the patch applied. Status may only move forward.
func (p OrderPatch) Apply(v Order) (Order, error) {
	if p.Status != nil {
		next := *p.Status
		if !next.Valid() {
			return Order{}, ValidationError{
				Field:  "status",
				Reason: "must be one of: Pending, Shipped, Delivered",
			}
		}
		if !v.Status.CanMoveTo(next) {
			return Order{}, StatusMoveError(v.Status, next)
		}
		v.Status = next
	}
	if p.ShippingAddress != nil {
		v.ShippingAddress = *p.ShippingAddress
	}
	return v, nil
}
