package compile

import (
	"math/big"

	"github.com/goliatone/go-fixturegen/pkg/constraint"
	"github.com/goliatone/go-fixturegen/pkg/envelope"
)

// Integer compiles integer-kind constraints into the four-slot envelope.
// The evaluation order is fixed: Digits seeds a symmetric magnitude window,
// Min/DecimalMin merge into the lower slots, Max/DecimalMax into the upper
// slots, sign-only constraints clamp without overriding tighter bounds, and
// the destination width narrows whatever would overflow it. The clamp never
// signals; contradictory inputs narrow silently.
func Integer(set constraint.Set, width constraint.Width) *envelope.Integer {
	var positiveMin, positiveMax, negativeMin, negativeMax *big.Int

	if digits, ok := constraint.Find[constraint.Digits](set); ok {
		value := big.NewInt(1)
		if digits.Integer > 1 {
			value = new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits.Integer-1)), nil)
		}
		positiveMin = value
		positiveMax = new(big.Int).Mul(value, big.NewInt(10))
		positiveMax.Sub(positiveMax, big.NewInt(1))
		negativeMax = new(big.Int).Neg(positiveMin)
		negativeMin = new(big.Int).Neg(positiveMax)
	}

	mergeLower := func(v *big.Int) {
		if v.Sign() >= 0 {
			positiveMin = keepSmaller(positiveMin, v)
		} else {
			negativeMin = keepSmaller(negativeMin, v)
		}
	}
	mergeUpper := func(v *big.Int) {
		if v.Sign() > 0 {
			positiveMax = keepLarger(positiveMax, v)
		} else {
			negativeMax = keepLarger(negativeMax, v)
		}
	}

	if min, ok := constraint.Find[constraint.Min](set); ok {
		mergeLower(big.NewInt(min.Value))
	}
	if decimalMin, ok := constraint.Find[constraint.DecimalMin](set); ok {
		v := decimalMin.Value.BigInt()
		if !decimalMin.Inclusive {
			v.Add(v, big.NewInt(1))
		}
		mergeLower(v)
	}

	if max, ok := constraint.Find[constraint.Max](set); ok {
		mergeUpper(big.NewInt(max.Value))
	}
	if decimalMax, ok := constraint.Find[constraint.DecimalMax](set); ok {
		v := decimalMax.Value.BigInt()
		if !decimalMax.Inclusive {
			v.Sub(v, big.NewInt(1))
		}
		mergeUpper(v)
	}

	if constraint.Has[constraint.Negative](set) {
		if negativeMax == nil || negativeMax.Sign() >= 0 {
			negativeMax = big.NewInt(-1)
		}
	}
	if constraint.Has[constraint.NegativeOrZero](set) {
		if negativeMax == nil || negativeMax.Sign() >= 0 {
			negativeMax = big.NewInt(0)
		}
	}
	if constraint.Has[constraint.Positive](set) {
		if positiveMin == nil || positiveMin.Sign() < 0 {
			positiveMin = big.NewInt(1)
		}
	}
	if constraint.Has[constraint.PositiveOrZero](set) {
		if positiveMin == nil || positiveMin.Sign() < 0 {
			positiveMin = big.NewInt(0)
		}
	}

	if widthMin := width.Min(); widthMin != nil && negativeMin != nil && negativeMin.Cmp(widthMin) < 0 {
		negativeMin = widthMin
	}
	if widthMax := width.Max(); widthMax != nil && positiveMax != nil && positiveMax.Cmp(widthMax) > 0 {
		positiveMax = widthMax
	}

	if positiveMin == nil && positiveMax == nil && negativeMin == nil && negativeMax == nil {
		return nil
	}

	return &envelope.Integer{
		PositiveMin: positiveMin,
		PositiveMax: positiveMax,
		NegativeMin: negativeMin,
		NegativeMax: negativeMax,
	}
}

func keepSmaller(current, candidate *big.Int) *big.Int {
	if current == nil || candidate.Cmp(current) < 0 {
		return candidate
	}
	return current
}

func keepLarger(current, candidate *big.Int) *big.Int {
	if current == nil || candidate.Cmp(current) > 0 {
		return candidate
	}
	return current
}
