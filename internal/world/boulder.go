package world

import (
	"github.com/yorkpirates/seacore/internal/component"
	"github.com/yorkpirates/seacore/internal/core/ecs"
	"github.com/yorkpirates/seacore/internal/geom"
	"github.com/yorkpirates/seacore/internal/physics"
)

const boulderRadius = 24

// Boulder is a static rock. Every cannonball that reaches it stops there.
type Boulder struct {
	*ecs.Entity
	physics.NopCallback
	m *Manager
}

func newBoulder(m *Manager, pos geom.Vec2) *Boulder {
	e := m.world.Spawn("Boulder", 3, ecs.CapHazard)
	b := &Boulder{Entity: e, m: m}
	_, _, rb := m.newBody(e, pos, component.LayerTransparent, atlasProps, "boulder", physics.Static, boulderRadius)
	rb.SetCallback(b)
	return b
}

func (b *Boulder) Position() geom.Vec2 {
	return ecs.MustGet[component.Transform](b.Entity).Position
}

func (b *Boulder) EnterTrigger(info physics.CollisionInfo) {
	absorb(b.m, info, 0)
}
