package assembly

// Parameter is one construction parameter of a target type.
type Parameter struct {
	Name string

	// Type is the declared type name, informational for callers and logs.
	Type string

	// Optional marks parameters with a default the target can apply when
	// the binding set omits them.
	Optional bool

	// Nullable marks parameters whose declared type accepts an explicit
	// null binding.
	Nullable bool
}

// ConstructFunc builds an instance from named bindings. Discovery
// collaborators supply it alongside the parameter list; a nil ConstructFunc
// means the primary construction route could not be determined.
type ConstructFunc func(bindings map[string]any) (any, error)

// Blueprint is the ordered construction-parameter description of a target
// type. Blueprints are derived once per type, are immutable, and are reused
// across generation calls.
type Blueprint struct {
	TypeName   string
	Parameters []Parameter
	Construct  ConstructFunc
}

// BlueprintProvider supplies a blueprint on demand. Providers that rely on
// runtime metadata may fail; the assembler treats such failures as
// non-fatal.
type BlueprintProvider func() (Blueprint, error)

// Resolver produces the generated value for one property. Resolution may be
// lazy and arbitrarily expensive; the assembler guarantees it runs at most
// once per assembly call.
type Resolver func() (any, error)
