package envelope

import "github.com/shopspring/decimal"

// Decimal describes the generation range for decimal properties. Each bound
// carries an explicit inclusivity flag; the flag is meaningful only while
// the corresponding bound is non-nil. The positive and negative slot pairs
// are disjoint by construction: after a zero-straddling split the negative
// side's upper boundary is exclusive at zero so no value can be produced
// from both sides.
type Decimal struct {
	PositiveMin          *decimal.Decimal
	PositiveMinInclusive bool
	PositiveMax          *decimal.Decimal
	PositiveMaxInclusive bool

	NegativeMin          *decimal.Decimal
	NegativeMinInclusive bool
	NegativeMax          *decimal.Decimal
	NegativeMaxInclusive bool

	// Scale is the fraction digit count from Digits, when declared.
	Scale *int32
}
