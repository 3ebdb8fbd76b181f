package catalog

import (
	"errors"
	"reflect"
	"testing"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	r, err := Default()
	if err != nil {
		t.Fatalf("failed to build default registry: %v", err)
	}
	return r
}

func TestRegistry_EndpointOrder(t *testing.T) {
	r := newTestRegistry(t)

	want := []string{"weather", "database", "file", "api"}
	got := r.Endpoints()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected endpoints %v, got %v", want, got)
	}
}

func TestRegistry_EndpointsHaveNoDuplicates(t *testing.T) {
	r := newTestRegistry(t)

	seen := make(map[string]bool)
	for _, name := range r.Endpoints() {
		if seen[name] {
			t.Errorf("duplicate endpoint name %q", name)
		}
		seen[name] = true

		if _, err := r.Get(name); err != nil {
			t.Errorf("listed endpoint %q not resolvable: %v", name, err)
		}
	}
}

func TestRegistry_GetUnknownEndpoint(t *testing.T) {
	r := newTestRegistry(t)

	if _, err := r.Get("nonexistent"); !errors.Is(err, ErrEndpointNotFound) {
		t.Errorf("expected ErrEndpointNotFound, got %v", err)
	}
	if _, err := r.Server("nonexistent"); !errors.Is(err, ErrEndpointNotFound) {
		t.Errorf("expected ErrEndpointNotFound from Server, got %v", err)
	}
	if _, err := r.Tools("nonexistent"); !errors.Is(err, ErrEndpointNotFound) {
		t.Errorf("expected ErrEndpointNotFound from Tools, got %v", err)
	}
	if _, err := r.Tool("nonexistent", "get_weather"); !errors.Is(err, ErrEndpointNotFound) {
		t.Errorf("expected ErrEndpointNotFound from Tool, got %v", err)
	}
}

func TestRegistry_ProjectionsMatchGet(t *testing.T) {
	r := newTestRegistry(t)

	for _, name := range r.Endpoints() {
		cfg, err := r.Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}

		server, err := r.Server(name)
		if err != nil {
			t.Fatalf("Server(%q): %v", name, err)
		}
		if !reflect.DeepEqual(server, cfg.Server) {
			t.Errorf("Server(%q) disagrees with Get(%q).Server", name, name)
		}

		tools, err := r.Tools(name)
		if err != nil {
			t.Fatalf("Tools(%q): %v", name, err)
		}
		if !reflect.DeepEqual(tools, cfg.Tools) {
			t.Errorf("Tools(%q) disagrees with Get(%q).Tools", name, name)
		}
	}
}

func TestRegistry_ToolLookupRoundTrip(t *testing.T) {
	r := newTestRegistry(t)

	for _, name := range r.Endpoints() {
		tools, err := r.Tools(name)
		if err != nil {
			t.Fatalf("Tools(%q): %v", name, err)
		}
		for _, want := range tools {
			got, err := r.Tool(name, want.Name)
			if err != nil {
				t.Fatalf("Tool(%q, %q): %v", name, want.Name, err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Tool(%q, %q) does not match the listed tool", name, want.Name)
			}
		}
	}
}

func TestRegistry_ToolUnknownName(t *testing.T) {
	r := newTestRegistry(t)

	_, err := r.Tool("weather", "nonexistent_tool")
	if !errors.Is(err, ErrToolNotFound) {
		t.Errorf("expected ErrToolNotFound, got %v", err)
	}
	if errors.Is(err, ErrEndpointNotFound) {
		t.Error("tool miss on an existing endpoint should not report ErrEndpointNotFound")
	}
}

func TestRegistry_ToolMatchIsCaseSensitive(t *testing.T) {
	r := newTestRegistry(t)

	if _, err := r.Tool("weather", "GET_WEATHER"); !errors.Is(err, ErrToolNotFound) {
		t.Errorf("expected case-sensitive miss, got %v", err)
	}
}

func TestRegistry_LookupsAreIdempotent(t *testing.T) {
	r := newTestRegistry(t)

	first, err := r.Get("weather")
	if err != nil {
		t.Fatalf("Get(weather): %v", err)
	}
	second, err := r.Get("weather")
	if err != nil {
		t.Fatalf("Get(weather) second call: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated Get(weather) returned different results")
	}
}

func TestRegistry_ResultsAreCopies(t *testing.T) {
	r := newTestRegistry(t)

	names := r.Endpoints()
	names[0] = "mutated"
	if r.Endpoints()[0] != "weather" {
		t.Error("mutating the Endpoints result leaked into the registry")
	}

	tools, _ := r.Tools("weather")
	tools[0].Name = "mutated"
	again, _ := r.Tools("weather")
	if again[0].Name != "get_weather" {
		t.Error("mutating the Tools result leaked into the registry")
	}
}

func TestNew_RejectsDuplicateEndpoint(t *testing.T) {
	_, err := New(
		Entry{Name: "a", Config: EndpointConfig{}},
		Entry{Name: "a", Config: EndpointConfig{}},
	)
	if err == nil {
		t.Fatal("expected error for duplicate endpoint name")
	}
}

func TestNew_RejectsEmptyEndpointName(t *testing.T) {
	_, err := New(Entry{Name: "", Config: EndpointConfig{}})
	if err == nil {
		t.Fatal("expected error for empty endpoint name")
	}
}

func TestNew_RejectsDuplicateToolName(t *testing.T) {
	_, err := New(Entry{
		Name: "a",
		Config: EndpointConfig{
			Tools: []Tool{
				{Name: "t", InputSchema: InputSchema{Type: "object"}},
				{Name: "t", InputSchema: InputSchema{Type: "object"}},
			},
		},
	})
	if err == nil {
		t.Fatal("expected error for duplicate tool name")
	}
}

func TestNew_RejectsUndeclaredRequiredProperty(t *testing.T) {
	_, err := New(Entry{
		Name: "a",
		Config: EndpointConfig{
			Tools: []Tool{
				{
					Name: "t",
					InputSchema: InputSchema{
						Type:       "object",
						Properties: map[string]SchemaProperty{"x": {Type: "string"}},
						Required:   []string{"y"},
					},
				},
			},
		},
	})
	if err == nil {
		t.Fatal("expected error for required property missing from properties")
	}
}
