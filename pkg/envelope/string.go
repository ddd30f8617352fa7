package envelope

import "github.com/goliatone/go-fixturegen/pkg/constraint"

// String describes the generation range for string-valued properties.
// Length bounds are optional; a nil bound leaves that side open.
type String struct {
	MinLength *int
	MaxLength *int

	// DigitsOnly restricts generation to decimal digit runes.
	DigitsOnly bool

	NotNull  bool
	NotBlank bool

	// Pattern is carried opaquely for the value generator; the compiler
	// never reconciles it with the length bounds.
	Pattern *constraint.Pattern

	Email bool
}
