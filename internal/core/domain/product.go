package domain

import "time"

type Product struct {
	ID          string
	Name        string `field:"name" validate:"required"`
	SKU         string `field:"sku" validate:"required"`
	Description string
	Price       Money `field:"price" validate:"gte=0"`
	CategoryID  string
	Sizes       []string
	Colors      []string
	InStock     bool
	Images      []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p Product) Validate() error {
	return validateStruct(p)
}

// A ProductPatch holds the fields present in an update request.
// A nil field is left untouched.
type ProductPatch struct {
	Name        *string
	SKU         *string
	Description *string
	Price       *Money
	CategoryID  *string
	Sizes       *[]string
	Colors      *[]string
	InStock     *bool
	Images      *[]string
}

func (p ProductPatch) IsEmpty() bool {
	return p == ProductPatch{}
}

func (p ProductPatch) Apply(v Product) Product {
	if p.Name != nil {
		v.Name = *p.Name
	}
	if p.SKU != nil {
		v.SKU = *p.SKU
	}
	if p.Description != nil {
		v.Description = *p.Description
	}
	if p.Price != nil {
		v.Price = *p.Price
	}
	if p.CategoryID != nil {
		v.CategoryID = *p.CategoryID
	}
	if p.Sizes != nil {
		v.Sizes = *p.Sizes
	}
	if p.Colors != nil {
		v.Colors = *p.Colors
	}
	if p.InStock != nil {
		v.InStock = *p.InStock
	}
	if p.Images != nil {
		v.Images = *p.Images
	}
	return v
}
