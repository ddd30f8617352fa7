package compile

import (
	"github.com/goliatone/go-fixturegen/pkg/constraint"
	"github.com/goliatone/go-fixturegen/pkg/envelope"
)

// String compiles string-kind constraints. NotBlank and NotEmpty floor the
// minimum length at one; Size may raise that floor but never lower it below
// an established one; Digits forces non-blank digit-only output and caps the
// maximum length at its integer digit count, tightest cap winning.
func String(set constraint.Set) *envelope.String {
	var minLen, maxLen *int

	digitsOnly := false
	notNull := constraint.Has[constraint.NotNull](set)
	notBlank := constraint.Has[constraint.NotBlank](set)
	email := constraint.Has[constraint.Email](set)

	if notBlank || constraint.Has[constraint.NotEmpty](set) {
		minLen = intRef(1)
	}

	if size, ok := constraint.Find[constraint.Size](set); ok {
		if minLen == nil || size.Min > 1 {
			minLen = intRef(size.Min)
		}
		maxLen = intRef(size.Max)
	}

	if digits, ok := constraint.Find[constraint.Digits](set); ok {
		digitsOnly = true
		notBlank = true
		if maxLen == nil || *maxLen > digits.Integer {
			maxLen = intRef(digits.Integer)
		}
	}

	var pattern *constraint.Pattern
	if p, ok := constraint.Find[constraint.Pattern](set); ok {
		pattern = &p
	}

	if minLen == nil && maxLen == nil && !digitsOnly && !notNull && !notBlank && pattern == nil && !email {
		return nil
	}

	return &envelope.String{
		MinLength:  minLen,
		MaxLength:  maxLen,
		DigitsOnly: digitsOnly,
		NotNull:    notNull,
		NotBlank:   notBlank,
		Pattern:    pattern,
		Email:      email,
	}
}

func intRef(v int) *int {
	return &v
}
