// Package compile turns the declared constraints of a single property into
// one canonical generation envelope per value kind. Every compiler is a pure
// function of its constraint set: no shared state, safe for concurrent use,
// and cacheable keyed by (type, property, constraint set).
//
// Contradictory declarations are never an error. Each kind applies a fixed
// merge order that resolves overlaps deterministically, narrows silently on
// conflict, and guarantees min <= max on every produced sub-range. A kind
// with no applicable constraints compiles to nil, meaning unconstrained
// generation, never to a degenerate empty range.
package compile
