package physics

import (
	"github.com/yorkpirates/seacore/internal/core/ecs"
	"github.com/yorkpirates/seacore/internal/geom"
)

// BodyType selects how a rigid body takes part in overlap detection.
type BodyType uint8

const (
	Static  BodyType = iota // never moves; solid
	Dynamic                 // moved by velocity; solid
	Trigger                 // non-solid zone; produces enter/exit events
)

func (t BodyType) String() string {
	switch t {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	case Trigger:
		return "trigger"
	}
	return "unknown"
}

// CollisionInfo describes one overlapping pair. A and B are ordered by Order
// so handlers can rely on projectiles sitting in A.
type CollisionInfo struct {
	A      *ecs.Entity
	B      *ecs.Entity
	Normal geom.Vec2 // unit vector from A towards B
	Depth  float64   // overlap distance, 0 on exit/end events
}

// Other returns the participant that is not self.
func (c CollisionInfo) Other(self *ecs.Entity) *ecs.Entity {
	if c.A == self {
		return c.B
	}
	return c.A
}

// Callback is implemented by entities that react to contacts. Handlers run
// synchronously inside the contact step and must not block.
type Callback interface {
	BeginContact(info CollisionInfo)
	EndContact(info CollisionInfo)
	EnterTrigger(info CollisionInfo)
	ExitTrigger(info CollisionInfo)
}

// NopCallback implements Callback with empty hooks. Embed it to override
// only the hooks an entity cares about.
type NopCallback struct{}

func (NopCallback) BeginContact(CollisionInfo) {}
func (NopCallback) EndContact(CollisionInfo)   {}
func (NopCallback) EnterTrigger(CollisionInfo) {}
func (NopCallback) ExitTrigger(CollisionInfo)  {}
