package compile_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/goliatone/go-fixturegen/pkg/compile"
	"github.com/goliatone/go-fixturegen/pkg/constraint"
	"github.com/goliatone/go-fixturegen/pkg/envelope"
	"github.com/goliatone/go-fixturegen/pkg/testsupport"
)

func TestInteger_NoConstraintsYieldsNoEnvelope(t *testing.T) {
	if env := compile.Integer(nil, constraint.WidthUnbounded); env != nil {
		t.Fatalf("expected no envelope, got %+v", env)
	}
}

func TestInteger_Compile(t *testing.T) {
	cases := []struct {
		name  string
		set   constraint.Set
		width constraint.Width
		want  *envelope.Integer
	}{
		{
			name: "digits seeds a symmetric magnitude window",
			set:  constraint.Set{constraint.Digits{Integer: 3}},
			want: &envelope.Integer{
				PositiveMin: testsupport.BigInt("100"),
				PositiveMax: testsupport.BigInt("999"),
				NegativeMin: testsupport.BigInt("-999"),
				NegativeMax: testsupport.BigInt("-100"),
			},
		},
		{
			name: "single digit window",
			set:  constraint.Set{constraint.Digits{Integer: 1}},
			want: &envelope.Integer{
				PositiveMin: testsupport.BigInt("1"),
				PositiveMax: testsupport.BigInt("9"),
				NegativeMin: testsupport.BigInt("-9"),
				NegativeMax: testsupport.BigInt("-1"),
			},
		},
		{
			name: "min and max leave unspecified sides open",
			set:  constraint.Set{constraint.Min{Value: -5}, constraint.Max{Value: 10}},
			want: &envelope.Integer{
				PositiveMax: testsupport.BigInt("10"),
				NegativeMin: testsupport.BigInt("-5"),
			},
		},
		{
			name: "min merges into the digits window by minimum",
			set:  constraint.Set{constraint.Digits{Integer: 3}, constraint.Min{Value: 5}},
			want: &envelope.Integer{
				PositiveMin: testsupport.BigInt("5"),
				PositiveMax: testsupport.BigInt("999"),
				NegativeMin: testsupport.BigInt("-999"),
				NegativeMax: testsupport.BigInt("-100"),
			},
		},
		{
			name: "exclusive decimal min truncates then bumps",
			set: constraint.Set{constraint.DecimalMin{
				Value:     decimal.RequireFromString("2.5"),
				Inclusive: false,
			}},
			want: &envelope.Integer{
				PositiveMin: testsupport.BigInt("3"),
			},
		},
		{
			name: "exclusive decimal max truncates then bumps down",
			set: constraint.Set{constraint.DecimalMax{
				Value:     decimal.RequireFromString("7"),
				Inclusive: false,
			}},
			want: &envelope.Integer{
				PositiveMax: testsupport.BigInt("6"),
			},
		},
		{
			name: "positive with no prior bound",
			set:  constraint.Set{constraint.Positive{}},
			want: &envelope.Integer{
				PositiveMin: testsupport.BigInt("1"),
			},
		},
		{
			name: "positive never loosens an existing tighter bound",
			set:  constraint.Set{constraint.Min{Value: 5}, constraint.Positive{}},
			want: &envelope.Integer{
				PositiveMin: testsupport.BigInt("5"),
			},
		},
		{
			name: "negative with no prior bound",
			set:  constraint.Set{constraint.Negative{}},
			want: &envelope.Integer{
				NegativeMax: testsupport.BigInt("-1"),
			},
		},
		{
			name: "negative or zero",
			set:  constraint.Set{constraint.NegativeOrZero{}},
			want: &envelope.Integer{
				NegativeMax: testsupport.BigInt("0"),
			},
		},
		{
			name:  "width clamp narrows an overflowing max silently",
			set:   constraint.Set{constraint.Max{Value: 10_000_000_000}},
			width: constraint.Width8,
			want: &envelope.Integer{
				PositiveMax: testsupport.BigInt("127"),
			},
		},
		{
			name:  "width clamp raises an underflowing min",
			set:   constraint.Set{constraint.Min{Value: -100_000}, constraint.Max{Value: 40_000}},
			width: constraint.Width16,
			want: &envelope.Integer{
				PositiveMax: testsupport.BigInt("32767"),
				NegativeMin: testsupport.BigInt("-32768"),
			},
		},
		{
			name:  "bounds inside the width are untouched",
			set:   constraint.Set{constraint.Min{Value: -100}, constraint.Max{Value: 100}},
			width: constraint.Width32,
			want: &envelope.Integer{
				PositiveMax: testsupport.BigInt("100"),
				NegativeMin: testsupport.BigInt("-100"),
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := compile.Integer(tc.set, tc.width)
			if diff := testsupport.Diff(tc.want, got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Compiled envelopes keep min <= max on every populated side, whatever the
// declaration order or overlap.
func TestInteger_SubRangeOrdering(t *testing.T) {
	sets := []constraint.Set{
		{constraint.Digits{Integer: 3}, constraint.Min{Value: 5}, constraint.Max{Value: 500}},
		{constraint.Min{Value: -50}, constraint.Max{Value: -10}},
		{constraint.Digits{Integer: 2}, constraint.Negative{}, constraint.Positive{}},
		{constraint.Min{Value: 0}, constraint.Max{Value: 1}, constraint.PositiveOrZero{}},
	}
	for _, set := range sets {
		env := compile.Integer(set, constraint.WidthUnbounded)
		if env == nil {
			t.Fatalf("expected envelope for %+v", set)
		}
		if env.PositiveMin != nil && env.PositiveMax != nil && env.PositiveMin.Cmp(env.PositiveMax) > 0 {
			t.Fatalf("positive range inverted: [%s, %s] for %+v", env.PositiveMin, env.PositiveMax, set)
		}
		if env.NegativeMin != nil && env.NegativeMax != nil && env.NegativeMin.Cmp(env.NegativeMax) > 0 {
			t.Fatalf("negative range inverted: [%s, %s] for %+v", env.NegativeMin, env.NegativeMax, set)
		}
	}
}
