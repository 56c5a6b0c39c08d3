package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrValidation     = errors.New("validation failed")
	ErrReference      = errors.New("referenced entity not found")
	ErrTotalMismatch  = errors.New("total amount does not match product prices")
	ErrNotImplemented = errors.New("not implemented")
)

// An Entity names a kind of persisted record.
type Entity string

const (
	EntityCategory Entity = "category"
	EntityProduct  Entity = "product"
	EntityCustomer Entity = "customer"
	EntityOrder    Entity = "order"
	EntityReview   Entity = "review"
)

type NotFoundError struct {
	Entity Entity
	ID     string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func (NotFoundError) Unwrap() error {
	return ErrNotFound
}

// A ValidationError reports a required, unique or range violation
// on a single field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

func (ValidationError) Unwrap() error {
	return ErrValidation
}

// A ReferenceError reports a stored identifier pointing to an absent entity.
type ReferenceError struct {
	Entity Entity
	ID     string
}

func (e ReferenceError) Error() string {
	return fmt.Sprintf("referenced %s %q not found", e.Entity, e.ID)
}

func (ReferenceError) Unwrap() error {
	return ErrReference
}

type TotalMismatchError struct {
	Calculated Money
	Claimed    Money
}

func (e TotalMismatchError) Error() string {
	return fmt.Sprintf(
		"total amount %s does not match product prices %s",
		e.Claimed, e.Calculated,
	)
}

func (TotalMismatchError) Unwrap() error {
	return ErrTotalMismatch
}
