package constraint

import "math/big"

// Width classifies the bit width of the destination integer representation.
// The integer compiler uses it to silently narrow bounds that would overflow
// the destination; WidthUnbounded disables the clamp.
type Width int

const (
	WidthUnbounded Width = 0
	Width8         Width = 8
	Width16        Width = 16
	Width32        Width = 32
	Width64        Width = 64
)

// Min returns the smallest value representable at this width, or nil when
// the width is unbounded.
func (w Width) Min() *big.Int {
	if w == WidthUnbounded {
		return nil
	}
	min := new(big.Int).Lsh(big.NewInt(1), uint(w)-1)
	return min.Neg(min)
}

// Max returns the largest value representable at this width, or nil when
// the width is unbounded.
func (w Width) Max() *big.Int {
	if w == WidthUnbounded {
		return nil
	}
	max := new(big.Int).Lsh(big.NewInt(1), uint(w)-1)
	return max.Sub(max, big.NewInt(1))
}
