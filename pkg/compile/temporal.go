package compile

import (
	"github.com/goliatone/go-fixturegen/pkg/constraint"
	"github.com/goliatone/go-fixturegen/pkg/envelope"
)

// Temporal compiles temporal-kind constraints into deferred bound functions
// evaluated at generation time. At most one lower and one upper bound apply;
// Future outranks FutureOrPresent and Past outranks PastOrPresent. Joint
// satisfiability of both bounds is the value generator's problem, not the
// compiler's.
func Temporal(set constraint.Set) *envelope.Temporal {
	var min, max envelope.BoundFunc

	switch {
	case constraint.Has[constraint.Future](set):
		min = envelope.FutureBound()
	case constraint.Has[constraint.FutureOrPresent](set):
		min = envelope.FutureOrPresentBound()
	}

	switch {
	case constraint.Has[constraint.Past](set):
		max = envelope.PastBound()
	case constraint.Has[constraint.PastOrPresent](set):
		max = envelope.PastOrPresentBound()
	}

	if min == nil && max == nil {
		return nil
	}

	return &envelope.Temporal{Min: min, Max: max}
}
