// Package money holds exact decimal amounts backed by big.Rat.
//
// Prices, coupon values and cart totals are parsed once into Money and only
// converted to float64 or a two-decimal string at the response edge.
package money

import (
	"fmt"
	"math/big"
	"strings"
)

// Money is an immutable exact amount.
type Money struct {
	rat *big.Rat
}

// Zero returns 0.
func Zero() *Money {
	return &Money{rat: new(big.Rat)}
}

// FromRat copies r into a Money. A nil r yields zero.
func FromRat(r *big.Rat) *Money {
	if r == nil {
		return Zero()
	}
	return &Money{rat: new(big.Rat).Set(r)}
}

// FromInt returns n as Money.
func FromInt(n int64) *Money {
	return &Money{rat: new(big.Rat).SetInt64(n)}
}

// Parse reads a decimal string such as "19.99", "-2" or "1e3".
func Parse(s string) (*Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty amount")
	}
	// big.Rat also reads "a/b"; amounts are decimal only.
	if strings.ContainsRune(s, '/') {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	return &Money{rat: r}, nil
}

// FromFloat converts a float64 decoded from JSON.
func FromFloat(f float64) (*Money, error) {
	r := new(big.Rat)
	if r.SetFloat64(f) == nil {
		return nil, fmt.Errorf("invalid amount %v", f)
	}
	return &Money{rat: r}, nil
}

// Rat returns a copy of the underlying rational.
func (m *Money) Rat() *big.Rat {
	return new(big.Rat).Set(m.rat)
}

// Add returns m + other.
func (m *Money) Add(other *Money) *Money {
	return &Money{rat: new(big.Rat).Add(m.rat, other.rat)}
}

// Sub returns m - other.
func (m *Money) Sub(other *Money) *Money {
	return &Money{rat: new(big.Rat).Sub(m.rat, other.rat)}
}

// Percent returns m × pct / 100.
func (m *Money) Percent(pct *Money) *Money {
	r := new(big.Rat).Mul(m.rat, pct.rat)
	return &Money{rat: r.Quo(r, big.NewRat(100, 1))}
}

// ClampZero returns m, or zero when m is negative.
func (m *Money) ClampZero() *Money {
	if m.IsNegative() {
		return Zero()
	}
	return m
}

// IsZero reports m == 0.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative reports m < 0.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// IsPositive reports m > 0.
func (m *Money) IsPositive() bool {
	return m.rat.Sign() > 0
}

// Equals reports m == other.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Float64 is for display only.
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String renders two decimals, halves rounded away from zero.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}
