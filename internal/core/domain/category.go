package domain

import "time"

type Category struct {
	ID          string
	Name        string `field:"name" validate:"required"`
	Description string
	ParentID    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c Category) Validate() error {
	return validateStruct(c)
}
