package constraint

import (
	"math"

	"github.com/shopspring/decimal"
)

// DefaultSizeMax is the upper bound a Size constraint carries when the
// declaration omits one, mirroring the unbounded default of the source
// vocabularies (OpenAPI maxLength/maxItems absent, jakarta Size.max).
const DefaultSizeMax = math.MaxInt32

// Constraint is a single tagged validity fact attached to one property.
// The set of implementations is closed; compilers match exhaustively.
type Constraint interface {
	constraint()
}

// NotNull requires a present, non-nil value.
type NotNull struct{}

// NotBlank requires a string with at least one non-whitespace character.
type NotBlank struct{}

// NotEmpty requires a non-empty string or container.
type NotEmpty struct{}

// Size bounds a string length or container element count. Max is
// DefaultSizeMax when the declaration left it open.
type Size struct {
	Min int
	Max int
}

// Pattern carries a regular expression the generated string must match.
// The compiler carries it opaquely; it never validates the expression
// against the compiled length bounds.
type Pattern struct {
	Regexp string
	Flags  []string
}

// Email requires a well-formed email address.
type Email struct{}

// Digits bounds the number of integer and fraction digits of a numeric
// value, or caps the length of a numeric string.
type Digits struct {
	Integer  int
	Fraction int
}

// Min is an inclusive integral lower bound.
type Min struct {
	Value int64
}

// Max is an inclusive integral upper bound.
type Max struct {
	Value int64
}

// DecimalMin is a decimal lower bound with explicit inclusivity.
type DecimalMin struct {
	Value     decimal.Decimal
	Inclusive bool
}

// DecimalMax is a decimal upper bound with explicit inclusivity.
type DecimalMax struct {
	Value     decimal.Decimal
	Inclusive bool
}

// Positive requires a strictly positive value.
type Positive struct{}

// PositiveOrZero requires a non-negative value.
type PositiveOrZero struct{}

// Negative requires a strictly negative value.
type Negative struct{}

// NegativeOrZero requires a non-positive value.
type NegativeOrZero struct{}

// Future requires an instant strictly after generation time.
type Future struct{}

// FutureOrPresent requires an instant at or after generation time.
type FutureOrPresent struct{}

// Past requires an instant strictly before generation time.
type Past struct{}

// PastOrPresent requires an instant at or before generation time.
type PastOrPresent struct{}

func (NotNull) constraint()         {}
func (NotBlank) constraint()        {}
func (NotEmpty) constraint()        {}
func (Size) constraint()            {}
func (Pattern) constraint()         {}
func (Email) constraint()           {}
func (Digits) constraint()          {}
func (Min) constraint()             {}
func (Max) constraint()             {}
func (DecimalMin) constraint()      {}
func (DecimalMax) constraint()      {}
func (Positive) constraint()        {}
func (PositiveOrZero) constraint()  {}
func (Negative) constraint()        {}
func (NegativeOrZero) constraint()  {}
func (Future) constraint()          {}
func (FutureOrPresent) constraint() {}
func (Past) constraint()            {}
func (PastOrPresent) constraint()   {}

// Set is the ordered collection of constraints declared on one property.
// Declaration order is not significant; each compiler applies its own fixed
// evaluation order.
type Set []Constraint

// Find returns the first constraint of type T in the set.
func Find[T Constraint](s Set) (T, bool) {
	for _, c := range s {
		if v, ok := c.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Has reports whether the set contains a constraint of type T.
func Has[T Constraint](s Set) bool {
	_, ok := Find[T](s)
	return ok
}
