// Package assembly composes per-property generators into whole object
// instances. A Blueprint describes a type's construction parameters and
// carries the construction route as an injected closure, so the package
// never touches reflection itself; discovery collaborators supply both.
//
// Assembly never aborts a run. Unsupported targets and discovery failures
// degrade to a not-introspected sentinel the caller can route to an
// alternative construction strategy.
package assembly
