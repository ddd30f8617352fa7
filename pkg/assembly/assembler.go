package assembly

import (
	"fmt"
	"io"
	"log/slog"
)

// Option customises an Assembler.
type Option func(*Assembler)

// WithLogger injects the logger used for non-fatal discovery and
// construction failures.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assembler) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// Assembler binds resolved property values to a blueprint's construction
// parameters and invokes the construction route. Assemblers are stateless
// between calls and safe for concurrent use.
type Assembler struct {
	logger *slog.Logger
}

// New creates an Assembler. Warnings are discarded unless WithLogger is
// supplied.
func New(options ...Option) *Assembler {
	a := &Assembler{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		opt(a)
	}
	return a
}

// Assemble produces one instance from the blueprint and the per-property
// resolvers. A parameter joins the binding set when a resolved value exists,
// when it is required (not optional), or when it is nullable; required and
// nullable parameters without a resolved value bind an explicit nil.
// Optional non-nullable parameters with no resolved value are omitted so the
// target's own default applies.
//
// Each property resolves at most once per call, even when it appears under
// several parameters; intermediate results are memoized for the duration of
// this call only.
func (a *Assembler) Assemble(blueprint Blueprint, resolvers map[string]Resolver) Result {
	if blueprint.Construct == nil {
		return NotIntrospected()
	}

	memo := make(map[string]any)
	resolve := func(name string) (any, bool, error) {
		if value, done := memo[name]; done {
			return value, true, nil
		}
		resolver, ok := resolvers[name]
		if !ok {
			return nil, false, nil
		}
		value, err := resolver()
		if err != nil {
			return nil, false, fmt.Errorf("assembly: resolve %q: %w", name, err)
		}
		memo[name] = value
		return value, true, nil
	}

	bindings := make(map[string]any, len(blueprint.Parameters))
	for _, param := range blueprint.Parameters {
		value, resolved, err := resolve(param.Name)
		if err != nil {
			return Failed(err)
		}
		if resolved || !param.Optional || param.Nullable {
			bindings[param.Name] = value
		}
	}

	instance, err := blueprint.Construct(bindings)
	if err != nil {
		a.logger.Warn("assembly: construction failed",
			"type", blueprint.TypeName,
			"error", err,
		)
		return NotIntrospected()
	}
	return Constructed(instance)
}

// AssembleFrom discovers the blueprint through the provider and assembles
// from it. Discovery failures are logged and degrade to the sentinel rather
// than propagating.
func (a *Assembler) AssembleFrom(provider BlueprintProvider, resolvers map[string]Resolver) Result {
	blueprint, err := provider()
	if err != nil {
		a.logger.Warn("assembly: blueprint discovery failed", "error", err)
		return NotIntrospected()
	}
	return a.Assemble(blueprint, resolvers)
}
