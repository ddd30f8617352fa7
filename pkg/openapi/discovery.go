package openapi

import (
	"context"

	"github.com/goliatone/go-fixturegen/pkg/assembly"
	"github.com/goliatone/go-fixturegen/pkg/constraint"
)

// Kind classifies a property for compiler selection.
type Kind string

const (
	KindString    Kind = "string"
	KindInteger   Kind = "integer"
	KindDecimal   Kind = "decimal"
	KindContainer Kind = "container"
	KindTemporal  Kind = "temporal"
	KindBoolean   Kind = "boolean"
	KindObject    Kind = "object"
)

// Property is one discovered data property: its compiler kind, destination
// width for the integer clamp, and the declared constraints derived from the
// schema's validation keywords.
type Property struct {
	Name        string
	Kind        Kind
	Width       constraint.Width
	Nullable    bool
	Constraints constraint.Set
}

// TypeModel is the discovery output for one named schema: its ordered
// properties plus the construction blueprint the assembler consumes. The
// blueprint's construction route is nil for targets discovery cannot
// introspect (unions, non-object schemas), which the assembler degrades to
// its sentinel.
type TypeModel struct {
	Name       string
	Properties []Property
	Blueprint  assembly.Blueprint
}

// Property looks up a discovered property by name.
func (m TypeModel) Property(name string) (Property, bool) {
	for _, p := range m.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// DiscovererOptions configures schema discovery.
type DiscovererOptions struct {
	// ResolveReferences validates the document and resolves external refs
	// before discovery.
	ResolveReferences bool

	// AllowPartialDocuments tolerates documents with no component schemas.
	AllowPartialDocuments bool
}

// Discoverer derives declared constraints and construction blueprints from
// an OpenAPI document's component schemas. It is the external
// constraint-discovery collaborator for the compile/assembly core.
type Discoverer interface {
	Types(ctx context.Context, doc Document) (map[string]TypeModel, error)
}
