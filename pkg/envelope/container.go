package envelope

import "math/rand"

// Container describes the size range for container-valued properties.
// NotEmpty is informational at this level: callers fold it into MinSize >= 1
// before building a SizeRange.
type Container struct {
	MinSize  *int
	MaxSize  *int
	NotEmpty bool
}

// SizeRange is a fully resolved container size range, sampled at generation
// time. Both bounds are inclusive.
type SizeRange struct {
	Min int
	Max int
}

// NewSizeRange builds a resolved size range.
func NewSizeRange(min, max int) SizeRange {
	return SizeRange{Min: min, Max: max}
}

// Random returns one concrete size drawn uniformly from [Min, Max]. A
// degenerate range returns Min without touching the random source. The
// top-level rand functions are safe under concurrent test execution.
func (r SizeRange) Random() int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rand.Intn(r.Max-r.Min+1)
}

// WithMin returns a copy with the minimum replaced. A nil argument keeps
// the receiver unchanged.
func (r SizeRange) WithMin(min *int) SizeRange {
	if min == nil {
		return r
	}
	return SizeRange{Min: *min, Max: r.Max}
}

// WithMax returns a copy with the maximum replaced. A nil argument keeps
// the receiver unchanged.
func (r SizeRange) WithMax(max *int) SizeRange {
	if max == nil {
		return r
	}
	return SizeRange{Min: r.Min, Max: *max}
}
