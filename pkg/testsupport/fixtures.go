// Package testsupport holds shared test helpers: go-cmp options for the
// arbitrary-precision bound types and small constructors for pointer-heavy
// envelope fixtures.
package testsupport

import (
	"math/big"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

// CmpOptions returns the comparison options envelope diffs need: big.Int and
// decimal.Decimal compare by value, not by unexported representation.
func CmpOptions() []cmp.Option {
	return []cmp.Option{
		cmp.Comparer(func(a, b *big.Int) bool {
			if a == nil || b == nil {
				return a == b
			}
			return a.Cmp(b) == 0
		}),
		cmp.Comparer(func(a, b decimal.Decimal) bool {
			return a.Equal(b)
		}),
	}
}

// Diff compares two values with the envelope-aware options and returns a
// human-readable diff, empty when equal.
func Diff(want, got any) string {
	return cmp.Diff(want, got, CmpOptions()...)
}

// BigInt parses a decimal string into a big integer, panicking on malformed
// fixtures to keep tests concise.
func BigInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("testsupport: malformed big integer fixture: " + s)
	}
	return v
}

// Dec parses a decimal fixture string, panicking when malformed.
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DecRef returns a pointer to a parsed decimal fixture.
func DecRef(s string) *decimal.Decimal {
	v := Dec(s)
	return &v
}

// IntRef returns a pointer to the supplied int.
func IntRef(v int) *int {
	return &v
}
