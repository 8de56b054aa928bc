package system

import (
	"sort"
	"time"

	"github.com/yorkpirates/seacore/internal/component"
	"github.com/yorkpirates/seacore/internal/core/ecs"
	coresys "github.com/yorkpirates/seacore/internal/core/system"
	"github.com/yorkpirates/seacore/internal/physics"
)

type pairKey struct {
	lo, hi ecs.EntityID
}

func keyOf(x, y ecs.EntityID) pairKey {
	if x > y {
		x, y = y, x
	}
	return pairKey{lo: x, hi: y}
}

type contact struct {
	a, b        *ecs.Entity
	enter, exit physics.EventKind
}

// ContactSystem stands in for the physics engine's contact listener. It
// finds overlapping circles through a uniform grid and turns pair changes
// into begin/end and enter/exit callbacks. Phase 3 (PostUpdate).
//
// A pair whose body is disabled or destroyed while touching is dropped
// without an exit event, the way a removed fixture never reports one.
type ContactSystem struct {
	world *ecs.World
	grid  *physics.Grid

	bodies  map[ecs.EntityID]*component.RigidBody
	touched map[pairKey]contact
	seen    map[pairKey]bool
}

func NewContactSystem(world *ecs.World, cellSize float64) *ContactSystem {
	return &ContactSystem{
		world:   world,
		grid:    physics.NewGrid(cellSize),
		bodies:  make(map[ecs.EntityID]*component.RigidBody),
		touched: make(map[pairKey]contact),
		seen:    make(map[pairKey]bool),
	}
}

func (s *ContactSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

// Touching reports whether two entities are currently in contact.
func (s *ContactSystem) Touching(x, y ecs.EntityID) bool {
	_, ok := s.touched[keyOf(x, y)]
	return ok
}

func (s *ContactSystem) Update(_ time.Duration) {
	s.grid.Reset()
	clear(s.bodies)
	var order []*ecs.Entity
	ecs.Each2(s.world, func(e *ecs.Entity, t *component.Transform, rb *component.RigidBody) {
		if !rb.Enabled {
			return
		}
		s.bodies[e.ID()] = rb
		s.grid.Add(e.ID(), t.Position)
		order = append(order, e)
	})

	clear(s.seen)
	var began []contact
	for _, x := range order {
		rx := s.bodies[x.ID()]
		near := s.grid.Nearby(rx.Position())
		sort.Slice(near, func(i, j int) bool { return near[i] < near[j] })
		for _, id := range near {
			if id <= x.ID() {
				continue
			}
			ry := s.bodies[id]
			enter, exit, ok := physics.Overlap(rx.Type, ry.Type)
			if !ok {
				continue
			}
			if _, _, hit := physics.Overlaps(rx.Position(), rx.Radius, ry.Position(), ry.Radius); !hit {
				continue
			}
			y, _ := s.world.Entity(id)
			k := keyOf(x.ID(), id)
			s.seen[k] = true
			if _, ok := s.touched[k]; ok {
				continue
			}
			a, b := physics.Order(x, y)
			c := contact{a: a, b: b, enter: enter, exit: exit}
			s.touched[k] = c
			began = append(began, c)
		}
	}

	s.endContacts()
	for _, c := range began {
		s.fire(c, c.enter)
	}
}

// endContacts reports pairs that stopped touching, in id order.
func (s *ContactSystem) endContacts() {
	var gone []pairKey
	for k := range s.touched {
		if !s.seen[k] {
			gone = append(gone, k)
		}
	}
	sort.Slice(gone, func(i, j int) bool {
		if gone[i].lo != gone[j].lo {
			return gone[i].lo < gone[j].lo
		}
		return gone[i].hi < gone[j].hi
	})
	for _, k := range gone {
		c := s.touched[k]
		delete(s.touched, k)
		if s.live(c.a) && s.live(c.b) {
			s.fire(c, c.exit)
		}
	}
}

// fire dispatches one event unless an earlier callback this tick already
// took one of the bodies out.
func (s *ContactSystem) fire(c contact, kind physics.EventKind) {
	if !s.live(c.a) || !s.live(c.b) {
		delete(s.touched, keyOf(c.a.ID(), c.b.ID()))
		return
	}
	ra, rb := ecs.MustGet[component.RigidBody](c.a), ecs.MustGet[component.RigidBody](c.b)
	normal, depth, _ := physics.Overlaps(ra.Position(), ra.Radius, rb.Position(), rb.Radius)
	physics.Dispatch(kind, physics.CollisionInfo{A: c.a, B: c.b, Normal: normal, Depth: depth}, component.CallbackOf)
}

func (s *ContactSystem) live(e *ecs.Entity) bool {
	if _, ok := s.world.Entity(e.ID()); !ok {
		return false
	}
	rb, err := ecs.Get[component.RigidBody](e)
	return err == nil && rb.Enabled
}
