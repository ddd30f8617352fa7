package assembly_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/goliatone/go-fixturegen/pkg/assembly"
)

func mapConstruct(bindings map[string]any) (any, error) {
	instance := make(map[string]any, len(bindings))
	for key, value := range bindings {
		instance[key] = value
	}
	return instance, nil
}

func fixed(value any) assembly.Resolver {
	return func() (any, error) { return value, nil }
}

func personBlueprint(age assembly.Parameter) assembly.Blueprint {
	return assembly.Blueprint{
		TypeName: "Person",
		Parameters: []assembly.Parameter{
			{Name: "name"},
			age,
		},
		Construct: mapConstruct,
	}
}

func TestAssemble_OptionalWithoutValueIsOmitted(t *testing.T) {
	blueprint := personBlueprint(assembly.Parameter{Name: "age", Optional: true})

	result := assembly.New().Assemble(blueprint, map[string]assembly.Resolver{
		"name": fixed("Ada"),
	})
	if result.Status != assembly.StatusConstructed {
		t.Fatalf("unexpected status %v (err: %v)", result.Status, result.Err)
	}

	instance := result.Value.(map[string]any)
	if instance["name"] != "Ada" {
		t.Fatalf("unexpected name binding: %+v", instance)
	}
	if _, bound := instance["age"]; bound {
		t.Fatalf("optional parameter without value must stay unbound: %+v", instance)
	}
}

func TestAssemble_NullableOptionalBindsExplicitNil(t *testing.T) {
	blueprint := personBlueprint(assembly.Parameter{Name: "age", Optional: true, Nullable: true})

	result := assembly.New().Assemble(blueprint, map[string]assembly.Resolver{
		"name": fixed("Ada"),
	})
	if result.Status != assembly.StatusConstructed {
		t.Fatalf("unexpected status %v", result.Status)
	}

	instance := result.Value.(map[string]any)
	value, bound := instance["age"]
	if !bound || value != nil {
		t.Fatalf("nullable parameter must bind explicit nil: %+v", instance)
	}
}

func TestAssemble_RequiredWithoutValueStillBinds(t *testing.T) {
	blueprint := personBlueprint(assembly.Parameter{Name: "age"})

	result := assembly.New().Assemble(blueprint, map[string]assembly.Resolver{
		"name": fixed("Ada"),
	})
	if result.Status != assembly.StatusConstructed {
		t.Fatalf("unexpected status %v", result.Status)
	}

	instance := result.Value.(map[string]any)
	if _, bound := instance["age"]; !bound {
		t.Fatalf("required parameter must always join the binding set: %+v", instance)
	}
}

func TestAssemble_ResolvedValueAlwaysBinds(t *testing.T) {
	blueprint := personBlueprint(assembly.Parameter{Name: "age", Optional: true})

	result := assembly.New().Assemble(blueprint, map[string]assembly.Resolver{
		"name": fixed("Ada"),
		"age":  fixed(41),
	})
	instance := result.Value.(map[string]any)
	if instance["age"] != 41 {
		t.Fatalf("resolved optional value must bind: %+v", instance)
	}
}

func TestAssemble_EachPropertyResolvesExactlyOnce(t *testing.T) {
	calls := 0
	blueprint := assembly.Blueprint{
		TypeName: "Pair",
		Parameters: []assembly.Parameter{
			{Name: "id"},
			{Name: "id"},
		},
		Construct: mapConstruct,
	}

	result := assembly.New().Assemble(blueprint, map[string]assembly.Resolver{
		"id": func() (any, error) {
			calls++
			return calls, nil
		},
	})
	if result.Status != assembly.StatusConstructed {
		t.Fatalf("unexpected status %v", result.Status)
	}
	if calls != 1 {
		t.Fatalf("resolver ran %d times, want 1", calls)
	}
}

func TestAssemble_NilConstructionRouteReturnsSentinel(t *testing.T) {
	blueprint := assembly.Blueprint{TypeName: "Shape"}

	result := assembly.New().Assemble(blueprint, nil)
	if result.Status != assembly.StatusNotIntrospected {
		t.Fatalf("unexpected status %v", result.Status)
	}
	if result.Err != nil {
		t.Fatalf("sentinel must not carry an error: %v", result.Err)
	}
}

func TestAssemble_ConstructionFailureLogsAndDegrades(t *testing.T) {
	var buf bytes.Buffer
	assembler := assembly.New(assembly.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	blueprint := assembly.Blueprint{
		TypeName:   "Broken",
		Parameters: []assembly.Parameter{{Name: "x"}},
		Construct: func(map[string]any) (any, error) {
			return nil, errors.New("no matching constructor")
		},
	}

	result := assembler.Assemble(blueprint, map[string]assembly.Resolver{"x": fixed(1)})
	if result.Status != assembly.StatusNotIntrospected {
		t.Fatalf("unexpected status %v", result.Status)
	}
	if !strings.Contains(buf.String(), "construction failed") {
		t.Fatalf("expected warning log, got %q", buf.String())
	}
}

func TestAssemble_ResolverErrorFailsFast(t *testing.T) {
	blueprint := assembly.Blueprint{
		TypeName:   "Flaky",
		Parameters: []assembly.Parameter{{Name: "score"}},
		Construct:  mapConstruct,
	}

	boom := errors.New("generator exhausted")
	result := assembly.New().Assemble(blueprint, map[string]assembly.Resolver{
		"score": func() (any, error) { return nil, boom },
	})
	if result.Status != assembly.StatusFailed {
		t.Fatalf("unexpected status %v", result.Status)
	}
	if !errors.Is(result.Err, boom) {
		t.Fatalf("expected wrapped cause, got %v", result.Err)
	}
	if !strings.Contains(result.Err.Error(), "score") {
		t.Fatalf("error should name the property: %v", result.Err)
	}
}

func TestAssembleFrom_DiscoveryFailureLogsAndDegrades(t *testing.T) {
	var buf bytes.Buffer
	assembler := assembly.New(assembly.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	result := assembler.AssembleFrom(func() (assembly.Blueprint, error) {
		return assembly.Blueprint{}, errors.New("metadata unavailable")
	}, nil)
	if result.Status != assembly.StatusNotIntrospected {
		t.Fatalf("unexpected status %v", result.Status)
	}
	if !strings.Contains(buf.String(), "blueprint discovery failed") {
		t.Fatalf("expected warning log, got %q", buf.String())
	}
}

func TestStatus_String(t *testing.T) {
	cases := map[assembly.Status]string{
		assembly.StatusConstructed:     "constructed",
		assembly.StatusNotIntrospected: "not introspected",
		assembly.StatusFailed:          "failed",
		assembly.Status(99):            "unknown",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Fatalf("Status(%d) = %q, want %q", status, got, want)
		}
	}
}
