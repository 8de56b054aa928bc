package ecs

import "fmt"

// Registry hands out display names of the form "<kind> (<ordinal>)".
// Ordinals are counted per kind and start at 0.
type Registry struct {
	ordinals map[string]int
}

func NewRegistry() *Registry {
	return &Registry{
		ordinals: make(map[string]int, 16),
	}
}

// NextName returns the next name for kind and advances its counter.
func (r *Registry) NextName(kind string) string {
	n := r.ordinals[kind]
	r.ordinals[kind] = n + 1
	return fmt.Sprintf("%s (%d)", kind, n)
}

// Count returns how many names were issued for kind.
func (r *Registry) Count(kind string) int {
	return r.ordinals[kind]
}
