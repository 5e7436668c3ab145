// Package tool exposes the lot-sizing solver as named, JSON-contract tools
// that an agent framework (or a shell pipe) can call. Each tool carries a
// description and a JSON schema for its input so a caller can discover the
// contract without reading code.
package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
)

// Handler executes a tool against a raw JSON input and returns raw JSON output.
type Handler func(ctx context.Context, input json.RawMessage) (json.RawMessage, error)

// Tool bundles a callable with its discovery metadata.
type Tool struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	InputSchema Schema  `json:"input_schema"`
	Handler     Handler `json:"-"`
}

// Schema is a minimal JSON-schema object description, enough for tool
// discovery. It is not a general validator.
type Schema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

type Property struct {
	// Type is the JSON type, e.g. "number" or "array". OneOf types like
	// "number or array of numbers" are spelled out in the description.
	Type        string    `json:"type"`
	Items       *Property `json:"items,omitempty"`
	Description string    `json:"description,omitempty"`
}

// Registry is a name-keyed set of tools.
type Registry struct {
	tools map[string]Tool
}

func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

func (r *Registry) Register(t Tool) error {
	if t.Name == "" {
		return fmt.Errorf("tool name is required")
	}
	if t.Handler == nil {
		return fmt.Errorf("tool %q has no handler", t.Name)
	}
	if _, exists := r.tools[t.Name]; exists {
		return fmt.Errorf("tool %q already registered", t.Name)
	}
	r.tools[t.Name] = t
	return nil
}

func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// List returns all tools sorted by name.
func (r *Registry) List() []Tool {
	out := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Call dispatches input to the named tool.
func (r *Registry) Call(ctx context.Context, name string, input json.RawMessage) (json.RawMessage, error) {
	t, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown tool: %q", name)
	}
	return t.Handler(ctx, input)
}
