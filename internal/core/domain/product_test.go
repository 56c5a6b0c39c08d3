package domain_test

import (
	"testing"

	"github.com/niksmo/emporium/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductValidate(t *testing.T) {
	valid := domain.Product{Name: "Leather Belt", SKU: "LB001", Price: 2999}

	t.Run("Valid", func(t *testing.T) {
		require.NoError(t, valid.Validate())
	})

	t.Run("MissingSKU", func(t *testing.T) {
		p := valid
		p.SKU = ""
		var vErr domain.ValidationError
		require.ErrorAs(t, p.Validate(), &vErr)
		assert.Equal(t, "sku", vErr.Field)
		assert.Equal(t, "is required", vErr.Reason)
	})

	t.Run("NegativePrice", func(t *testing.T) {
		p := valid
		p.Price = -1
		var vErr domain.ValidationError
		require.ErrorAs(t, p.Validate(), &vErr)
		assert.Equal(t, "price", vErr.Field)
	})
}

func TestProductPatchApply(t *testing.T) {
	before := domain.Product{
		ID: "p1", Name: "Classic White Shirt", SKU: "CWS001", Price: 4999,
		Sizes: []string{"S", "M"}, InStock: true,
	}
	price := domain.Money(3999)
	inStock := false
	var noSizes []string

	after := domain.ProductPatch{
		Price: &price, InStock: &inStock, Sizes: &noSizes,
	}.Apply(before)

	assert.Equal(t, price, after.Price)
	assert.False(t, after.InStock)
	assert.Empty(t, after.Sizes)
	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, before.SKU, after.SKU)
	assert.True(t, domain.ProductPatch{}.IsEmpty())
}

func TestCustomerValidate(t *testing.T) {
	c := domain.Customer{
		FirstName: "John", LastName: "Doe", Email: "john@", Password: "x",
	}
	var vErr domain.ValidationError
	require.ErrorAs(t, c.Validate(), &vErr)
	assert.Equal(t, "email", vErr.Field)
}
