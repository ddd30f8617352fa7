package compile

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/goliatone/go-fixturegen/pkg/constraint"
	"github.com/goliatone/go-fixturegen/pkg/envelope"
)

// Decimal compiles decimal-kind constraints. Min/Max merge first as
// inclusive bounds, DecimalMin/DecimalMax override only when strictly
// tighter (exclusive beats inclusive at equal value), sign-only constraints
// pin a zero boundary with the matching inclusivity, and Digits tightens
// both sides with its symmetric nines bound. The merged single range is then
// routed into the sign-split slot pairs; a range straddling zero is split so
// the negative side ends exclusively at zero, keeping the partition
// disjoint.
func Decimal(set constraint.Set) *envelope.Decimal {
	var min, max *decimal.Decimal
	var minInclusive, maxInclusive bool
	var scale *int32

	if m, ok := constraint.Find[constraint.Min](set); ok {
		v := decimal.NewFromInt(m.Value)
		min, minInclusive = &v, true
	}
	if decimalMin, ok := constraint.Find[constraint.DecimalMin](set); ok {
		v := decimalMin.Value
		if min == nil || v.GreaterThan(*min) || (v.Equal(*min) && !decimalMin.Inclusive) {
			min, minInclusive = &v, decimalMin.Inclusive
		}
	}

	if m, ok := constraint.Find[constraint.Max](set); ok {
		v := decimal.NewFromInt(m.Value)
		max, maxInclusive = &v, true
	}
	if decimalMax, ok := constraint.Find[constraint.DecimalMax](set); ok {
		v := decimalMax.Value
		if max == nil || v.LessThan(*max) || (v.Equal(*max) && !decimalMax.Inclusive) {
			max, maxInclusive = &v, decimalMax.Inclusive
		}
	}

	if constraint.Has[constraint.Positive](set) {
		if min == nil || min.IsNegative() || (min.IsZero() && minInclusive) {
			zero := decimal.Zero
			min, minInclusive = &zero, false
		}
	}
	if constraint.Has[constraint.PositiveOrZero](set) {
		if min == nil || min.IsNegative() {
			zero := decimal.Zero
			min, minInclusive = &zero, true
		}
	}
	if constraint.Has[constraint.Negative](set) {
		if max == nil || max.IsPositive() || (max.IsZero() && maxInclusive) {
			zero := decimal.Zero
			max, maxInclusive = &zero, false
		}
	}
	if constraint.Has[constraint.NegativeOrZero](set) {
		if max == nil || max.IsPositive() {
			zero := decimal.Zero
			max, maxInclusive = &zero, true
		}
	}

	if digits, ok := constraint.Find[constraint.Digits](set); ok {
		digitsMax := ninesBound(digits.Integer, digits.Fraction)
		digitsMin := digitsMax.Neg()
		if max == nil || digitsMax.LessThan(*max) {
			max, maxInclusive = &digitsMax, true
		}
		if min == nil || digitsMin.GreaterThan(*min) {
			min, minInclusive = &digitsMin, true
		}
		fraction := int32(digits.Fraction)
		scale = &fraction
	}

	if min == nil && max == nil {
		return nil
	}

	isPositiveMin := min != nil && min.Sign() >= 0
	isPositiveMax := max != nil && max.Sign() >= 0
	isNegativeMin := min != nil && min.Sign() < 0
	isNegativeMax := max != nil && max.Sign() < 0

	// Non-negative max of exactly zero collapses the domain to the
	// non-positive side: keep the original negative min, pin the upper
	// bound at zero with the merged inclusivity.
	if isPositiveMax && max.IsZero() {
		pinned := decimal.Zero
		env := &envelope.Decimal{
			NegativeMax:          &pinned,
			NegativeMaxInclusive: maxInclusive,
			Scale:                scale,
		}
		if isNegativeMin {
			env.NegativeMin = min
			env.NegativeMinInclusive = minInclusive
		}
		return env
	}

	// A domain straddling zero splits into [0, max] and [min, 0), the
	// negative side exclusive at zero so the two sides stay disjoint.
	if isNegativeMin && isPositiveMax {
		positiveFloor := decimal.Zero
		negativeCeil := decimal.Zero
		return &envelope.Decimal{
			PositiveMin:          &positiveFloor,
			PositiveMinInclusive: true,
			PositiveMax:          max,
			PositiveMaxInclusive: maxInclusive,
			NegativeMin:          min,
			NegativeMinInclusive: minInclusive,
			NegativeMax:          &negativeCeil,
			NegativeMaxInclusive: false,
			Scale:                scale,
		}
	}

	env := &envelope.Decimal{Scale: scale}
	if isPositiveMin {
		env.PositiveMin = min
		env.PositiveMinInclusive = minInclusive
	}
	if isPositiveMax {
		env.PositiveMax = max
		env.PositiveMaxInclusive = maxInclusive
	}
	if isNegativeMin {
		env.NegativeMin = min
		env.NegativeMinInclusive = minInclusive
	}
	if isNegativeMax {
		env.NegativeMax = max
		env.NegativeMaxInclusive = maxInclusive
	}
	return env
}

// ninesBound builds the largest decimal with the given digit counts, e.g.
// (3, 2) -> 999.99.
func ninesBound(integer, fraction int) decimal.Decimal {
	var b strings.Builder
	if integer <= 0 {
		b.WriteByte('0')
	}
	for i := 0; i < integer; i++ {
		b.WriteByte('9')
	}
	if fraction > 0 {
		b.WriteByte('.')
		for i := 0; i < fraction; i++ {
			b.WriteByte('9')
		}
	}
	return decimal.RequireFromString(b.String())
}
