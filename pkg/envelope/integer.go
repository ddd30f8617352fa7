package envelope

import "math/big"

// Integer describes the generation range for integral properties as four
// independent optional bounds. Positive bounds are >= 0; negative bounds are
// < 0 with NegativeMin <= NegativeMax. A nil slot leaves that side open.
// Bounds are arbitrary precision: declared values may exceed the destination
// width right up until the compiler's final clamp.
type Integer struct {
	PositiveMin *big.Int
	PositiveMax *big.Int
	NegativeMin *big.Int
	NegativeMax *big.Int
}
