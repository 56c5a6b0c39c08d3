package domain_test

import (
	"math"
	"testing"

	"github.com/niksmo/emporium/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFromDecimal(t *testing.T) {
	t.Run("TwoFractionalDigits", func(t *testing.T) {
		m, err := domain.MoneyFromDecimal(decimal.RequireFromString("49.99"))
		require.NoError(t, err)
		assert.Equal(t, domain.Money(4999), m)
	})

	t.Run("Integer", func(t *testing.T) {
		m, err := domain.MoneyFromDecimal(decimal.NewFromInt(30))
		require.NoError(t, err)
		assert.Equal(t, domain.Money(3000), m)
	})

	t.Run("FromFloat", func(t *testing.T) {
		m, err := domain.MoneyFromDecimal(decimal.NewFromFloat(79.98))
		require.NoError(t, err)
		assert.Equal(t, domain.Money(7998), m)
	})

	t.Run("SubCent", func(t *testing.T) {
		_, err := domain.MoneyFromDecimal(decimal.RequireFromString("0.005"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrSubCent)
	})
}

func TestMoneyArithmetic(t *testing.T) {
	price := domain.Money(4999)
	amount, ok := price.Times(3)
	require.True(t, ok)
	assert.Equal(t, domain.Money(14997), amount)
	sum, ok := amount.Add(price)
	require.True(t, ok)
	assert.Equal(t, domain.Money(19996), sum)
	assert.Equal(t, "49.99", price.String())
	assert.Equal(t, "0.05", domain.Money(5).String())
	assert.True(t, decimal.RequireFromString("49.99").Equal(price.Decimal()))
}

func TestMoneyOverflow(t *testing.T) {
	_, ok := domain.Money(4).Times(4611686018427387905)
	assert.False(t, ok, "wraps to 4 cents without the check")

	_, ok = domain.Money(math.MaxInt64).Times(2)
	assert.False(t, ok)

	_, ok = domain.Money(1).Times(-1)
	assert.False(t, ok)

	_, ok = domain.Money(math.MaxInt64).Add(1)
	assert.False(t, ok)

	largest, ok := domain.Money(math.MaxInt64).Times(1)
	require.True(t, ok)
	assert.Equal(t, domain.Money(math.MaxInt64), largest)
}
