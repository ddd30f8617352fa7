// Package envelope holds the immutable generation envelopes the compilers
// emit: one value-object per kind describing the range and flags a value
// generator must honour. Envelopes are data; the only behaviour here is
// container size sampling and temporal bound evaluation, both of which need
// the generation-time clock or random source.
package envelope
