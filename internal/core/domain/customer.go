package domain

import "time"

// A Customer is read-only through the API. Password holds whatever the
// writer stored and is never rendered.
type Customer struct {
	ID        string
	FirstName string `field:"firstName" validate:"required"`
	LastName  string `field:"lastName" validate:"required"`
	Email     string `field:"email" validate:"required,email"`
	Password  string `field:"password" validate:"required"`
	Address   Address
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c Customer) Validate() error {
	return validateStruct(c)
}
