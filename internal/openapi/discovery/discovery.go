// Package discovery implements pkg/openapi.Discoverer using kin-openapi.
// It maps a schema's validation keywords onto declared constraints and
// derives construction blueprints from its object structure, playing the
// external constraint-discovery role for the compile/assembly core.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-fixturegen/pkg/assembly"
	"github.com/goliatone/go-fixturegen/pkg/constraint"
	pkgopenapi "github.com/goliatone/go-fixturegen/pkg/openapi"
)

// Discoverer implements pkgopenapi.Discoverer.
type Discoverer struct {
	options pkgopenapi.DiscovererOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgopenapi.Discoverer = (*Discoverer)(nil)

// New constructs a Discoverer with the given options.
func New(options pkgopenapi.DiscovererOptions) pkgopenapi.Discoverer {
	return &Discoverer{options: options}
}

// Types extracts a TypeModel per component schema, keyed by schema name.
func (d *Discoverer) Types(ctx context.Context, doc pkgopenapi.Document) (map[string]pkgopenapi.TypeModel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi discovery: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: d.options.ResolveReferences,
	}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi discovery: load document: %w", err)
	}
	if d.options.ResolveReferences {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi discovery: validate: %w", err)
		}
	}

	if spec.Components == nil || len(spec.Components.Schemas) == 0 {
		if d.options.AllowPartialDocuments {
			return map[string]pkgopenapi.TypeModel{}, nil
		}
		return nil, errors.New("openapi discovery: document has no component schemas")
	}

	models := make(map[string]pkgopenapi.TypeModel, len(spec.Components.Schemas))
	for name, ref := range spec.Components.Schemas {
		if ref == nil || ref.Value == nil {
			continue
		}
		models[name] = typeModel(name, ref.Value)
	}
	return models, nil
}

func typeModel(name string, schema *openapi3.Schema) pkgopenapi.TypeModel {
	model := pkgopenapi.TypeModel{Name: name}

	if !introspectable(schema) {
		// Leave the construction route nil; the assembler degrades this
		// to its not-introspected sentinel.
		model.Blueprint = assembly.Blueprint{TypeName: name}
		return model
	}

	required := make(map[string]bool, len(schema.Required))
	for _, r := range schema.Required {
		required[r] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for propName := range schema.Properties {
		names = append(names, propName)
	}
	sort.Strings(names)

	parameters := make([]assembly.Parameter, 0, len(names))
	for _, propName := range names {
		ref := schema.Properties[propName]
		if ref == nil || ref.Value == nil {
			continue
		}
		prop := ref.Value

		kind, width := classify(prop)
		model.Properties = append(model.Properties, pkgopenapi.Property{
			Name:        propName,
			Kind:        kind,
			Width:       width,
			Nullable:    prop.Nullable,
			Constraints: constraintsFor(prop, required[propName]),
		})
		parameters = append(parameters, assembly.Parameter{
			Name:     propName,
			Type:     typeName(prop),
			Optional: !required[propName],
			Nullable: prop.Nullable,
		})
	}

	model.Blueprint = assembly.Blueprint{
		TypeName:   name,
		Parameters: parameters,
		Construct: func(bindings map[string]any) (any, error) {
			instance := make(map[string]any, len(bindings))
			for key, value := range bindings {
				instance[key] = value
			}
			return instance, nil
		},
	}
	return model
}

// introspectable reports whether the schema has a determinable primary
// construction route. Unions and non-object schemas do not.
func introspectable(schema *openapi3.Schema) bool {
	if len(schema.OneOf) > 0 || len(schema.AnyOf) > 0 || len(schema.AllOf) > 0 {
		return false
	}
	return schema.Type != nil && schema.Type.Is(openapi3.TypeObject)
}

func classify(schema *openapi3.Schema) (pkgopenapi.Kind, constraint.Width) {
	switch {
	case schema.Type == nil:
		return pkgopenapi.KindObject, constraint.WidthUnbounded
	case schema.Type.Is(openapi3.TypeString):
		if schema.Format == "date-time" || schema.Format == "date" {
			return pkgopenapi.KindTemporal, constraint.WidthUnbounded
		}
		return pkgopenapi.KindString, constraint.WidthUnbounded
	case schema.Type.Is(openapi3.TypeInteger):
		return pkgopenapi.KindInteger, widthFromFormat(schema.Format)
	case schema.Type.Is(openapi3.TypeNumber):
		return pkgopenapi.KindDecimal, constraint.WidthUnbounded
	case schema.Type.Is(openapi3.TypeArray):
		return pkgopenapi.KindContainer, constraint.WidthUnbounded
	case schema.Type.Is(openapi3.TypeBoolean):
		return pkgopenapi.KindBoolean, constraint.WidthUnbounded
	default:
		return pkgopenapi.KindObject, constraint.WidthUnbounded
	}
}

func widthFromFormat(format string) constraint.Width {
	switch format {
	case "int8":
		return constraint.Width8
	case "int16":
		return constraint.Width16
	case "int32":
		return constraint.Width32
	case "int64":
		return constraint.Width64
	default:
		return constraint.WidthUnbounded
	}
}

func typeName(schema *openapi3.Schema) string {
	if schema.Type == nil {
		return ""
	}
	slice := schema.Type.Slice()
	if len(slice) == 0 {
		return ""
	}
	name := slice[0]
	if schema.Format != "" {
		name += ":" + schema.Format
	}
	return name
}
