package domain

import "time"

type Review struct {
	ID         string
	ProductID  string `field:"product" validate:"required"`
	CustomerID string `field:"customer" validate:"required"`
	Rating     int    `field:"rating" validate:"gte=1,lte=5"`
	Comment    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (r Review) Validate() error {
	return validateStruct(r)
}

// ValidateProduct checks only that r names a product.
func (r Review) ValidateProduct() error {
	if r.ProductID == "" {
		return ValidationError{Field: "product", Reason: "is required"}
	}
	return nil
}

type ReviewPatch struct {
	Rating  *int
	Comment *string
}

func (p ReviewPatch) IsEmpty() bool {
	return p == ReviewPatch{}
}

func (p ReviewPatch) Apply(v Review) Review {
	if p.Rating != nil {
		v.Rating = *p.Rating
	}
	if p.Comment != nil {
		v.Comment = *p.Comment
	}
	return v
}

type ReviewFilter struct {
	ProductID string
}
