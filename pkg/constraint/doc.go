// Package constraint defines the closed set of declared validity facts a
// caller can attach to a single data property, plus the Set container the
// compilers consume. Constraints are declarative inputs only: merging,
// contradiction resolution and range arithmetic all live in pkg/compile.
package constraint
