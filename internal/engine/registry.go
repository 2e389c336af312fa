package engine

import (
	"fmt"
	"sort"
)

// ComponentFactory creates a Component from level-file props.
type ComponentFactory func(props map[string]any) (Component, error)

var componentRegistry = map[string]ComponentFactory{}

// RegisterComponent registers a named component factory. Level files refer to
// components by this name. Registering a name twice panics.
func RegisterComponent(name string, factory ComponentFactory) {
	if _, exists := componentRegistry[name]; exists {
		panic(fmt.Sprintf("component %q already registered", name))
	}
	componentRegistry[name] = factory
}

// CreateComponent looks up a registered component by name and creates it
// with the given props.
func CreateComponent(name string, props map[string]any) (Component, error) {
	factory, ok := componentRegistry[name]
	if !ok {
		return nil, fmt.Errorf("engine: unknown component %q", name)
	}
	c, err := factory(props)
	if err != nil {
		return nil, fmt.Errorf("engine: create %s: %w", name, err)
	}
	return c, nil
}

// RegisteredComponents returns a sorted list of all registered names.
func RegisteredComponents() []string {
	names := make([]string, 0, len(componentRegistry))
	for name := range componentRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Float32Prop reads a numeric prop. YAML decodes numbers as int or float64.
func Float32Prop(props map[string]any, key string, fallback float32) float32 {
	switch v := props[key].(type) {
	case float64:
		return float32(v)
	case int:
		return float32(v)
	case float32:
		return v
	}
	return fallback
}

// Vector3Prop reads a three element numeric list prop.
func Vector3Prop(props map[string]any, key string) ([3]float32, bool) {
	raw, ok := props[key].([]any)
	if !ok || len(raw) != 3 {
		return [3]float32{}, false
	}
	var out [3]float32
	for i, v := range raw {
		switch n := v.(type) {
		case float64:
			out[i] = float32(n)
		case int:
			out[i] = float32(n)
		default:
			return [3]float32{}, false
		}
	}
	return out, true
}
