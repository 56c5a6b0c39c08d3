package domain

import (
	"errors"
	"math"
	"math/bits"

	"github.com/shopspring/decimal"
)

var ErrSubCent = errors.New("amount has more than two fractional digits")

// A Money is an amount in cents.
type Money int64

// MoneyFromDecimal converts d to cents. Fractions of a cent are rejected
// rather than rounded.
func MoneyFromDecimal(d decimal.Decimal) (Money, error) {
	cents := d.Shift(2)
	if !cents.IsInteger() {
		return 0, ErrSubCent
	}
	return Money(cents.IntPart()), nil
}

func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

// Times reports false when m or quantity is negative or the product
// does not fit in Money.
func (m Money) Times(quantity int) (Money, bool) {
	if m < 0 || quantity < 0 {
		return 0, false
	}
	hi, lo := bits.Mul64(uint64(m), uint64(quantity))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}
	return Money(lo), true
}

// Add reports false on overflow.
func (m Money) Add(n Money) (Money, bool) {
	sum := m + n
	if (n > 0 && sum < m) || (n < 0 && sum > m) {
		return 0, false
	}
	return sum, true
}

func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}
