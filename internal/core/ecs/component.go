package ecs

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrComponentNotFound is raised when a caller asks for a component type
	// the entity was never built with.
	ErrComponentNotFound = errors.New("component not found")
	// ErrDuplicateComponent is raised when the same concrete type is attached twice.
	ErrDuplicateComponent = errors.New("duplicate component")
)

// Entity is a named game object composed of components. Components are
// pointers to plain structs and are keyed by their concrete pointer type, so
// an entity holds at most one of each.
// Accessed only from the game loop goroutine — no locks.
type Entity struct {
	id     EntityID
	name   string
	caps   Capability
	order  []any
	byType map[reflect.Type]any
}

// NewEntity creates a detached entity. capHint sizes the component set.
// Entities that live in a World should be created through World.Spawn.
func NewEntity(name string, capHint int, caps Capability) *Entity {
	if capHint < 0 {
		capHint = 0
	}
	return &Entity{
		name:   name,
		caps:   caps,
		order:  make([]any, 0, capHint),
		byType: make(map[reflect.Type]any, capHint),
	}
}

func (e *Entity) ID() EntityID            { return e.id }
func (e *Entity) Name() string            { return e.name }
func (e *Entity) SetName(name string)     { e.name = name }
func (e *Entity) Caps() Capability        { return e.caps }
func (e *Entity) Is(flag Capability) bool { return e != nil && e.caps.Has(flag) }

// AddComponents attaches each component under its concrete type. Attaching a
// second component of a type the entity already owns is a construction bug
// and panics.
func (e *Entity) AddComponents(cs ...any) {
	for _, c := range cs {
		if c == nil {
			panic(fmt.Errorf("entity %q: nil component", e.name))
		}
		t := reflect.TypeOf(c)
		if t.Kind() != reflect.Pointer {
			panic(fmt.Errorf("entity %q: component %s must be a pointer", e.name, t))
		}
		if _, dup := e.byType[t]; dup {
			panic(fmt.Errorf("entity %q: %s: %w", e.name, t, ErrDuplicateComponent))
		}
		e.byType[t] = c
		e.order = append(e.order, c)
	}
}

// Components returns the attached components in attach order.
func (e *Entity) Components() []any {
	out := make([]any, len(e.order))
	copy(out, e.order)
	return out
}

func (e *Entity) String() string { return e.name }

func keyOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil))
}

// Get returns the entity's component of type T.
func Get[T any](e *Entity) (*T, error) {
	c, ok := e.byType[keyOf[T]()]
	if !ok {
		return nil, fmt.Errorf("entity %q: %s: %w", e.name, keyOf[T]().Elem().Name(), ErrComponentNotFound)
	}
	return c.(*T), nil
}

// MustGet is Get for types the entity is known to own. A miss means the
// entity was built wrong, so it panics.
func MustGet[T any](e *Entity) *T {
	c, err := Get[T](e)
	if err != nil {
		panic(err)
	}
	return c
}

// Has reports whether the entity owns a component of type T.
func Has[T any](e *Entity) bool {
	_, ok := e.byType[keyOf[T]()]
	return ok
}
