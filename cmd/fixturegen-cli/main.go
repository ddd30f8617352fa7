package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/goliatone/go-fixturegen/internal/openapi/discovery"
	"github.com/goliatone/go-fixturegen/internal/openapi/loader"
	"github.com/goliatone/go-fixturegen/pkg/compile"
	"github.com/goliatone/go-fixturegen/pkg/envelope"
	pkgopenapi "github.com/goliatone/go-fixturegen/pkg/openapi"
)

func main() {
	source := flag.String("source", "openapi.yaml", "OpenAPI document path or URL")
	typeName := flag.String("type", "", "component schema to compile (all when empty)")
	output := flag.String("output", "", "output file (stdout if empty)")
	resolveRefs := flag.Bool("resolve-refs", false, "validate and resolve document references")
	flag.Parse()

	ctx := context.Background()

	src := parseSource(*source)
	if src == nil {
		log.Fatalf("invalid source: %q", *source)
	}

	docLoader := loader.New(pkgopenapi.NewLoaderOptions(
		pkgopenapi.WithHTTPFallback(30 * time.Second),
	))
	doc, err := docLoader.Load(ctx, src)
	if err != nil {
		log.Fatalf("Failed to load document: %v", err)
	}

	discoverer := discovery.New(pkgopenapi.DiscovererOptions{ResolveReferences: *resolveRefs})
	models, err := discoverer.Types(ctx, doc)
	if err != nil {
		log.Fatalf("Failed to discover schemas: %v", err)
	}

	if *typeName != "" {
		model, ok := models[*typeName]
		if !ok {
			log.Fatalf("schema %q not found in %s", *typeName, doc.Location())
		}
		models = map[string]pkgopenapi.TypeModel{*typeName: model}
	}

	report := make(map[string]map[string]propertyReport, len(models))
	for name, model := range models {
		report[name] = compileModel(model)
	}

	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode report: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Report written to %s\n", *output)
	} else {
		fmt.Println(string(payload))
	}
}

type propertyReport struct {
	Kind      pkgopenapi.Kind     `json:"kind"`
	String    *envelope.String    `json:"string,omitempty"`
	Integer   *envelope.Integer   `json:"integer,omitempty"`
	Decimal   *envelope.Decimal   `json:"decimal,omitempty"`
	Container *envelope.Container `json:"container,omitempty"`
	Temporal  *temporalReport     `json:"temporal,omitempty"`
}

// temporalReport renders deferred bounds as instants evaluated at report
// time, since bound functions have no serialised form.
type temporalReport struct {
	Min *time.Time `json:"min,omitempty"`
	Max *time.Time `json:"max,omitempty"`
}

func compileModel(model pkgopenapi.TypeModel) map[string]propertyReport {
	out := make(map[string]propertyReport, len(model.Properties))
	for _, prop := range model.Properties {
		entry := propertyReport{Kind: prop.Kind}
		switch prop.Kind {
		case pkgopenapi.KindString:
			entry.String = compile.String(prop.Constraints)
		case pkgopenapi.KindInteger:
			entry.Integer = compile.Integer(prop.Constraints, prop.Width)
		case pkgopenapi.KindDecimal:
			entry.Decimal = compile.Decimal(prop.Constraints)
		case pkgopenapi.KindContainer:
			entry.Container = compile.Container(prop.Constraints)
		case pkgopenapi.KindTemporal:
			entry.Temporal = temporalFor(prop)
		}
		out[prop.Name] = entry
	}
	return out
}

func temporalFor(prop pkgopenapi.Property) *temporalReport {
	env := compile.Temporal(prop.Constraints)
	if env == nil {
		return nil
	}
	report := &temporalReport{}
	if env.Min != nil {
		min := env.Min()
		report.Min = &min
	}
	if env.Max != nil {
		max := env.Max()
		report.Max = &max
	}
	return report
}

func parseSource(raw string) pkgopenapi.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return pkgopenapi.SourceFromURL(path)
	}
	return pkgopenapi.SourceFromFile(path)
}
