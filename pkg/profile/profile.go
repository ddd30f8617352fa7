// Package profile loads declarative fixture profiles: YAML documents that
// declare per-type, per-property constraints for callers who have no OpenAPI
// document to discover from. A profile compiles into the same
// declared-constraint sets and blueprints as schema discovery.
package profile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-fixturegen/pkg/assembly"
	"github.com/goliatone/go-fixturegen/pkg/constraint"
)

// Profile is the root of a fixture profile document.
type Profile struct {
	Types map[string]TypeProfile `yaml:"types"`
}

// TypeProfile declares the properties of one target type.
type TypeProfile struct {
	Properties map[string]PropertySpec `yaml:"properties"`
}

// PropertySpec is the declarative constraint block for one property.
type PropertySpec struct {
	Kind     string `yaml:"kind"`
	Width    int    `yaml:"width"`
	Optional bool   `yaml:"optional"`
	Nullable bool   `yaml:"nullable"`

	NotNull  bool        `yaml:"notNull"`
	NotBlank bool        `yaml:"notBlank"`
	NotEmpty bool        `yaml:"notEmpty"`
	Email    bool        `yaml:"email"`
	Pattern  string      `yaml:"pattern"`
	Size     *SizeSpec   `yaml:"size"`
	Digits   *DigitsSpec `yaml:"digits"`
	Min      *int64      `yaml:"min"`
	Max      *int64      `yaml:"max"`
	Floor    *BoundSpec  `yaml:"decimalMin"`
	Ceil     *BoundSpec  `yaml:"decimalMax"`
	Sign     string      `yaml:"sign"`
	Temporal string      `yaml:"temporal"`
}

// SizeSpec bounds a length or element count; a nil Max leaves it open.
type SizeSpec struct {
	Min int  `yaml:"min"`
	Max *int `yaml:"max"`
}

// DigitsSpec mirrors the Digits constraint.
type DigitsSpec struct {
	Integer  int `yaml:"integer"`
	Fraction int `yaml:"fraction"`
}

// BoundSpec is a decimal bound; Inclusive defaults to true when omitted.
type BoundSpec struct {
	Value     string `yaml:"value"`
	Inclusive *bool  `yaml:"inclusive"`
}

// Load decodes a profile document. Unknown fields are rejected so typos in
// constraint names fail loudly instead of silently relaxing generation.
func Load(r io.Reader) (Profile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Profile
	if err := dec.Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("profile: decode: %w", err)
	}
	if len(p.Types) == 0 {
		return Profile{}, errors.New("profile: document declares no types")
	}
	return p, nil
}

// LoadFile reads and decodes a profile from disk.
func LoadFile(path string) (Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return Profile{}, fmt.Errorf("profile: open: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Load(f)
}

// Constraints compiles the spec's declarative fields into a constraint set.
func (s PropertySpec) Constraints() (constraint.Set, error) {
	var set constraint.Set

	if s.NotNull {
		set = append(set, constraint.NotNull{})
	}
	if s.NotBlank {
		set = append(set, constraint.NotBlank{})
	}
	if s.NotEmpty {
		set = append(set, constraint.NotEmpty{})
	}
	if s.Email {
		set = append(set, constraint.Email{})
	}
	if s.Pattern != "" {
		set = append(set, constraint.Pattern{Regexp: s.Pattern})
	}
	if s.Size != nil {
		size := constraint.Size{Min: s.Size.Min, Max: constraint.DefaultSizeMax}
		if s.Size.Max != nil {
			size.Max = *s.Size.Max
		}
		set = append(set, size)
	}
	if s.Digits != nil {
		set = append(set, constraint.Digits{Integer: s.Digits.Integer, Fraction: s.Digits.Fraction})
	}
	if s.Min != nil {
		set = append(set, constraint.Min{Value: *s.Min})
	}
	if s.Max != nil {
		set = append(set, constraint.Max{Value: *s.Max})
	}
	if s.Floor != nil {
		value, inclusive, err := s.Floor.parse()
		if err != nil {
			return nil, fmt.Errorf("profile: decimalMin: %w", err)
		}
		set = append(set, constraint.DecimalMin{Value: value, Inclusive: inclusive})
	}
	if s.Ceil != nil {
		value, inclusive, err := s.Ceil.parse()
		if err != nil {
			return nil, fmt.Errorf("profile: decimalMax: %w", err)
		}
		set = append(set, constraint.DecimalMax{Value: value, Inclusive: inclusive})
	}

	switch s.Sign {
	case "":
	case "positive":
		set = append(set, constraint.Positive{})
	case "positive-or-zero":
		set = append(set, constraint.PositiveOrZero{})
	case "negative":
		set = append(set, constraint.Negative{})
	case "negative-or-zero":
		set = append(set, constraint.NegativeOrZero{})
	default:
		return nil, fmt.Errorf("profile: unknown sign %q", s.Sign)
	}

	switch s.Temporal {
	case "":
	case "future":
		set = append(set, constraint.Future{})
	case "future-or-present":
		set = append(set, constraint.FutureOrPresent{})
	case "past":
		set = append(set, constraint.Past{})
	case "past-or-present":
		set = append(set, constraint.PastOrPresent{})
	default:
		return nil, fmt.Errorf("profile: unknown temporal rule %q", s.Temporal)
	}

	return set, nil
}

// WidthClass maps the declared bit width onto the compiler's width
// classification. Undeclared and unrecognised widths stay unbounded.
func (s PropertySpec) WidthClass() constraint.Width {
	switch s.Width {
	case 8:
		return constraint.Width8
	case 16:
		return constraint.Width16
	case 32:
		return constraint.Width32
	case 64:
		return constraint.Width64
	default:
		return constraint.WidthUnbounded
	}
}

// Blueprint derives the construction blueprint for one declared type. The
// construction route assembles a plain map instance, which is what
// profile-driven fixtures target.
func (t TypeProfile) Blueprint(name string) assembly.Blueprint {
	names := make([]string, 0, len(t.Properties))
	for propName := range t.Properties {
		names = append(names, propName)
	}
	sort.Strings(names)

	parameters := make([]assembly.Parameter, 0, len(names))
	for _, propName := range names {
		spec := t.Properties[propName]
		parameters = append(parameters, assembly.Parameter{
			Name:     propName,
			Type:     spec.Kind,
			Optional: spec.Optional,
			Nullable: spec.Nullable,
		})
	}

	return assembly.Blueprint{
		TypeName:   name,
		Parameters: parameters,
		Construct: func(bindings map[string]any) (any, error) {
			instance := make(map[string]any, len(bindings))
			for key, value := range bindings {
				instance[key] = value
			}
			return instance, nil
		},
	}
}

func (b BoundSpec) parse() (decimal.Decimal, bool, error) {
	value, err := decimal.NewFromString(b.Value)
	if err != nil {
		return decimal.Decimal{}, false, err
	}
	inclusive := true
	if b.Inclusive != nil {
		inclusive = *b.Inclusive
	}
	return value, inclusive, nil
}
