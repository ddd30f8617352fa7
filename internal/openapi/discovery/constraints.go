package discovery

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/shopspring/decimal"

	"github.com/goliatone/go-fixturegen/pkg/constraint"
)

const extensionKey = "x-fixturegen"

// constraintsFor translates one property schema's validation keywords into
// the declared-constraint vocabulary the compilers consume.
func constraintsFor(schema *openapi3.Schema, required bool) constraint.Set {
	var set constraint.Set

	if required && !schema.Nullable {
		set = append(set, constraint.NotNull{})
	}

	if schema.Type != nil {
		switch {
		case schema.Type.Is(openapi3.TypeString):
			set = append(set, stringConstraints(schema)...)
		case schema.Type.Is(openapi3.TypeInteger), schema.Type.Is(openapi3.TypeNumber):
			set = append(set, numericConstraints(schema)...)
		case schema.Type.Is(openapi3.TypeArray):
			set = append(set, containerConstraints(schema)...)
		}
	}

	set = append(set, extensionConstraints(schema.Extensions)...)
	return set
}

func stringConstraints(schema *openapi3.Schema) constraint.Set {
	var set constraint.Set

	if schema.MinLength > 0 || schema.MaxLength != nil {
		size := constraint.Size{
			Min: int(schema.MinLength),
			Max: constraint.DefaultSizeMax,
		}
		if schema.MaxLength != nil {
			size.Max = int(*schema.MaxLength)
		}
		set = append(set, size)
	}
	if schema.Pattern != "" {
		set = append(set, constraint.Pattern{Regexp: schema.Pattern})
	}
	if schema.Format == "email" || schema.Format == "idn-email" {
		set = append(set, constraint.Email{})
	}
	return set
}

func numericConstraints(schema *openapi3.Schema) constraint.Set {
	var set constraint.Set

	if schema.Min != nil {
		set = append(set, constraint.DecimalMin{
			Value:     decimal.NewFromFloat(*schema.Min),
			Inclusive: !schema.ExclusiveMin,
		})
	}
	if schema.Max != nil {
		set = append(set, constraint.DecimalMax{
			Value:     decimal.NewFromFloat(*schema.Max),
			Inclusive: !schema.ExclusiveMax,
		})
	}
	return set
}

func containerConstraints(schema *openapi3.Schema) constraint.Set {
	var set constraint.Set

	if schema.MinItems > 0 || schema.MaxItems != nil {
		size := constraint.Size{
			Min: int(schema.MinItems),
			Max: constraint.DefaultSizeMax,
		}
		if schema.MaxItems != nil {
			size.Max = int(*schema.MaxItems)
		}
		set = append(set, size)
		if schema.MinItems > 0 {
			set = append(set, constraint.NotEmpty{})
		}
	}
	return set
}

// extensionConstraints reads the x-fixturegen extension, which carries
// constraint facts OpenAPI has no keyword for (temporal direction, blank
// and empty rules, digit windows).
func extensionConstraints(extensions map[string]any) constraint.Set {
	raw, ok := extensions[extensionKey].(map[string]any)
	if !ok || len(raw) == 0 {
		return nil
	}

	var set constraint.Set

	if v, ok := raw["notBlank"].(bool); ok && v {
		set = append(set, constraint.NotBlank{})
	}
	if v, ok := raw["notEmpty"].(bool); ok && v {
		set = append(set, constraint.NotEmpty{})
	}

	switch raw["temporal"] {
	case "future":
		set = append(set, constraint.Future{})
	case "future-or-present":
		set = append(set, constraint.FutureOrPresent{})
	case "past":
		set = append(set, constraint.Past{})
	case "past-or-present":
		set = append(set, constraint.PastOrPresent{})
	}

	switch raw["sign"] {
	case "positive":
		set = append(set, constraint.Positive{})
	case "positive-or-zero":
		set = append(set, constraint.PositiveOrZero{})
	case "negative":
		set = append(set, constraint.Negative{})
	case "negative-or-zero":
		set = append(set, constraint.NegativeOrZero{})
	}

	if digits, ok := raw["digits"].(map[string]any); ok {
		d := constraint.Digits{}
		if v, ok := asInt(digits["integer"]); ok {
			d.Integer = v
		}
		if v, ok := asInt(digits["fraction"]); ok {
			d.Fraction = v
		}
		if d.Integer > 0 || d.Fraction > 0 {
			set = append(set, d)
		}
	}

	return set
}

// asInt tolerates the numeric types JSON and YAML decoders produce.
func asInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
