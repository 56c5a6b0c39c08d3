package domain_test

import (
	"math"
	"testing"

	"github.com/niksmo/emporium/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrder() domain.Order {
	return domain.Order{
		CustomerID: "c1",
		Items: []domain.OrderItem{
			{ProductID: "p1", Quantity: 1, Price: 4999},
			{ProductID: "p2", Quantity: 2, Price: 2999},
			{ProductID: "p1", Quantity: 1, Price: 4999},
		},
		Total:  15996,
		Status: domain.OrderPending,
		ShippingAddress: domain.Address{
			Street: "123 Main St", City: "Anytown", Country: "USA",
		},
	}
}

func TestOrderStatusCanMoveTo(t *testing.T) {
	tests := []struct {
		from, to domain.OrderStatus
		want     bool
	}{
		{domain.OrderPending, domain.OrderPending, true},
		{domain.OrderPending, domain.OrderShipped, true},
		{domain.OrderPending, domain.OrderDelivered, true},
		{domain.OrderShipped, domain.OrderDelivered, true},
		{domain.OrderShipped, domain.OrderPending, false},
		{domain.OrderDelivered, domain.OrderPending, false},
		{domain.OrderDelivered, domain.OrderShipped, false},
		{domain.OrderPending, "Cancelled", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"To"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanMoveTo(tt.to))
		})
	}
}

func TestOrderStatusPredecessors(t *testing.T) {
	assert.Equal(t,
		[]domain.OrderStatus{domain.OrderPending},
		domain.OrderPending.Predecessors(),
	)
	assert.Equal(t,
		[]domain.OrderStatus{domain.OrderPending, domain.OrderShipped},
		domain.OrderShipped.Predecessors(),
	)
	assert.Equal(t,
		[]domain.OrderStatus{
			domain.OrderPending, domain.OrderShipped, domain.OrderDelivered,
		},
		domain.OrderDelivered.Predecessors(),
	)
}

func TestOrderTotal(t *testing.T) {
	t.Run("SumsLines", func(t *testing.T) {
		total, err := domain.OrderTotal(validOrder().Items)
		require.NoError(t, err)
		assert.Equal(t, domain.Money(15996), total)
	})

	t.Run("QuantityOverflow", func(t *testing.T) {
		_, err := domain.OrderTotal([]domain.OrderItem{
			{ProductID: "p1", Quantity: 1, Price: 4999},
			{ProductID: "p2", Quantity: 4611686018427387905, Price: 4},
		})
		require.ErrorIs(t, err, domain.ErrValidation)
		var vErr domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "products[1].quantity", vErr.Field)
	})

	t.Run("SumOverflow", func(t *testing.T) {
		_, err := domain.OrderTotal([]domain.OrderItem{
			{ProductID: "p1", Quantity: 1, Price: math.MaxInt64},
			{ProductID: "p2", Quantity: 1, Price: 1},
		})
		var vErr domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "products[1].quantity", vErr.Field)
	})
}

func TestPlaceOrderValidateLines(t *testing.T) {
	t.Run("NoLines", func(t *testing.T) {
		err := domain.PlaceOrder{CustomerID: "c1"}.ValidateLines()
		var vErr domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "products", vErr.Field)
	})

	t.Run("MissingProduct", func(t *testing.T) {
		err := domain.PlaceOrder{Lines: []domain.OrderLine{
			{ProductID: "p1", Quantity: 1},
			{Quantity: 1},
		}}.ValidateLines()
		var vErr domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "products[1].product", vErr.Field)
	})

	t.Run("IgnoresOtherFields", func(t *testing.T) {
		err := domain.PlaceOrder{Lines: []domain.OrderLine{
			{ProductID: "p1", Quantity: 0},
		}}.ValidateLines()
		require.NoError(t, err)
	})
}

func TestOrderValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		require.NoError(t, validOrder().Validate())
	})

	t.Run("NoItems", func(t *testing.T) {
		o := validOrder()
		o.Items = nil
		err := o.Validate()
		require.ErrorIs(t, err, domain.ErrValidation)
		var vErr domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "products", vErr.Field)
	})

	t.Run("ZeroQuantity", func(t *testing.T) {
		o := validOrder()
		o.Items[1].Quantity = 0
		var vErr domain.ValidationError
		require.ErrorAs(t, o.Validate(), &vErr)
		assert.Equal(t, "products[1].quantity", vErr.Field)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		o := validOrder()
		o.Status = "Lost"
		var vErr domain.ValidationError
		require.ErrorAs(t, o.Validate(), &vErr)
		assert.Equal(t, "status", vErr.Field)
	})
}

func TestOrderProductIDs(t *testing.T) {
	assert.Equal(t, []string{"p1", "p2"}, validOrder().ProductIDs())
}

func TestOrderPatchApply(t *testing.T) {
	t.Run("StatusOnly", func(t *testing.T) {
		before := validOrder()
		shipped := domain.OrderShipped

		after, err := domain.OrderPatch{Status: &shipped}.Apply(before)
		require.NoError(t, err)

		assert.Equal(t, domain.OrderShipped, after.Status)
		after.Status = before.Status
		assert.Equal(t, before, after)
	})

	t.Run("BackwardTransition", func(t *testing.T) {
		o := validOrder()
		o.Status = domain.OrderDelivered
		pending := domain.OrderPending

		_, err := domain.OrderPatch{Status: &pending}.Apply(o)
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		status := domain.OrderStatus("Returned")
		_, err := domain.OrderPatch{Status: &status}.Apply(validOrder())
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("ShippingAddress", func(t *testing.T) {
		addr := domain.Address{Street: "456 Elm St", City: "Otherville"}
		after, err := domain.OrderPatch{ShippingAddress: &addr}.Apply(validOrder())
		require.NoError(t, err)
		assert.Equal(t, addr, after.ShippingAddress)
		assert.Equal(t, domain.OrderPending, after.Status)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.True(t, domain.OrderPatch{}.IsEmpty())
	})
}
