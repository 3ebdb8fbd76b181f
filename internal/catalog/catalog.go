// Package catalog holds the static MCP endpoint catalog: a read-only
// registry mapping endpoint names (weather, database, file, api) to their
// server metadata and tool descriptions.
package catalog

import (
	"fmt"
)

// ServerInfo describes the fictitious server backing one endpoint.
type ServerInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// SchemaProperty describes a single property inside a tool's input schema.
// Optional JSON-Schema keywords (enum, default, minimum, maximum,
// additionalProperties) are carried through as-is for wire compatibility.
type SchemaProperty struct {
	Type                 string          `json:"type"`
	Description          string          `json:"description,omitempty"`
	Enum                 []string        `json:"enum,omitempty"`
	Default              any             `json:"default,omitempty"`
	Minimum              *int            `json:"minimum,omitempty"`
	Maximum              *int            `json:"maximum,omitempty"`
	AdditionalProperties *SchemaProperty `json:"additionalProperties,omitempty"`
}

// InputSchema is the JSON-Schema-shaped description of a tool's arguments.
// Required always serializes, even when empty, to match the documented
// response examples.
type InputSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]SchemaProperty `json:"properties"`
	Required   []string                  `json:"required"`
}

// Tool is a single described capability within an endpoint.
type Tool struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema InputSchema `json:"inputSchema"`
}

// EndpointConfig is the composite record owned by one endpoint name.
type EndpointConfig struct {
	Server ServerInfo `json:"server"`
	Tools  []Tool     `json:"tools"`
}

// Entry pairs an endpoint name with its configuration for registration.
type Entry struct {
	Name   string
	Config EndpointConfig
}

// Registry is the immutable endpoint-name → EndpointConfig table.
// It is populated once via New and never mutated, so any number of
// concurrent readers may use it without coordination.
type Registry struct {
	names   []string
	configs map[string]EndpointConfig
}

// New builds a Registry from the given entries, preserving registration
// order for Endpoints. It validates that endpoint names are unique and
// non-empty, that tool names are unique within each endpoint, and that
// every required schema property is declared under properties.
func New(entries ...Entry) (*Registry, error) {
	r := &Registry{
		names:   make([]string, 0, len(entries)),
		configs: make(map[string]EndpointConfig, len(entries)),
	}

	for _, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("endpoint with empty name")
		}
		if _, exists := r.configs[e.Name]; exists {
			return nil, fmt.Errorf("duplicate endpoint %q", e.Name)
		}
		if err := validateConfig(e.Name, e.Config); err != nil {
			return nil, err
		}
		r.names = append(r.names, e.Name)
		r.configs[e.Name] = e.Config
	}

	return r, nil
}

// validateConfig checks tool-level invariants for one endpoint.
func validateConfig(endpoint string, cfg EndpointConfig) error {
	seen := make(map[string]bool, len(cfg.Tools))
	for _, t := range cfg.Tools {
		if t.Name == "" {
			return fmt.Errorf("endpoint %q: tool with empty name", endpoint)
		}
		if seen[t.Name] {
			return fmt.Errorf("endpoint %q: duplicate tool %q", endpoint, t.Name)
		}
		seen[t.Name] = true

		for _, req := range t.InputSchema.Required {
			if _, ok := t.InputSchema.Properties[req]; !ok {
				return fmt.Errorf("endpoint %q: tool %q requires property %q which is not declared", endpoint, t.Name, req)
			}
		}
	}
	return nil
}

// Endpoints returns all registered endpoint names in registration order.
func (r *Registry) Endpoints() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Get returns the full configuration for the named endpoint. The tool
// slice is copied so callers cannot alias the registry's backing array.
func (r *Registry) Get(name string) (EndpointConfig, error) {
	cfg, ok := r.configs[name]
	if !ok {
		return EndpointConfig{}, fmt.Errorf("endpoint %q: %w", name, ErrEndpointNotFound)
	}
	tools := make([]Tool, len(cfg.Tools))
	copy(tools, cfg.Tools)
	cfg.Tools = tools
	return cfg, nil
}

// Server returns the server metadata for the named endpoint.
func (r *Registry) Server(name string) (ServerInfo, error) {
	cfg, err := r.Get(name)
	if err != nil {
		return ServerInfo{}, err
	}
	return cfg.Server, nil
}

// Tools returns the ordered tool list for the named endpoint.
func (r *Registry) Tools(name string) ([]Tool, error) {
	cfg, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	tools := make([]Tool, len(cfg.Tools))
	copy(tools, cfg.Tools)
	return tools, nil
}

// Tool returns the named tool within the named endpoint. The match is
// exact and case-sensitive; tool names are unique per endpoint so the
// first match is the only match.
func (r *Registry) Tool(name, toolName string) (Tool, error) {
	cfg, err := r.Get(name)
	if err != nil {
		return Tool{}, err
	}
	for _, t := range cfg.Tools {
		if t.Name == toolName {
			return t, nil
		}
	}
	return Tool{}, fmt.Errorf("endpoint %q: tool %q: %w", name, toolName, ErrToolNotFound)
}

// ToolNames returns the tool names for the named endpoint, in catalog order.
// Used by the HTTP layer to list alternatives in not-found messages.
func (r *Registry) ToolNames(name string) ([]string, error) {
	tools, err := r.Tools(name)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = t.Name
	}
	return names, nil
}
