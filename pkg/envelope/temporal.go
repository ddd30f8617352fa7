package envelope

import "time"

// BoundFunc produces a temporal bound relative to the evaluation instant.
// Bounds are deferred because "now" is a moving target: they run at
// generation time, never at compile time.
type BoundFunc func() time.Time

// Temporal describes the generation range for temporal properties. Either
// bound may be nil, leaving that side open. When both are present the value
// generator is responsible for their joint satisfiability.
type Temporal struct {
	Min BoundFunc
	Max BoundFunc
}

// Safety margins applied to deferred bounds so that clock granularity and
// generation latency cannot round a bound onto the wrong side of "now".
const (
	futureMargin          = 3 * time.Second
	futureOrPresentMargin = 2 * time.Second
	pastMargin            = time.Second
)

// FutureBound returns a bound strictly after the evaluation instant.
func FutureBound() BoundFunc {
	return func() time.Time { return time.Now().Add(futureMargin) }
}

// FutureOrPresentBound returns a bound at or after the evaluation instant.
func FutureOrPresentBound() BoundFunc {
	return func() time.Time { return time.Now().Add(futureOrPresentMargin) }
}

// PastBound returns a bound strictly before the evaluation instant.
func PastBound() BoundFunc {
	return func() time.Time { return time.Now().Add(-pastMargin) }
}

// PastOrPresentBound returns the evaluation instant itself.
func PastOrPresentBound() BoundFunc {
	return time.Now
}
