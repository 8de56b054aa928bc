package world

import (
	"github.com/yorkpirates/seacore/internal/component"
	"github.com/yorkpirates/seacore/internal/core/ecs"
	"github.com/yorkpirates/seacore/internal/physics"
)

const collegeRadius = 64

// College is a faction's home structure. It soaks up hostile cannonballs
// and is never destroyed.
type College struct {
	*ecs.Entity
	physics.NopCallback
	m         *Manager
	factionID int
}

func newCollege(m *Manager, f *Faction) *College {
	e := m.world.Spawn("College", 3, ecs.CapStructure)
	c := &College{Entity: e, m: m, factionID: f.ID}
	_, _, rb := m.newBody(e, f.Position, component.LayerTransparent, atlasProps, f.Colour+"-college", physics.Static, collegeRadius)
	rb.SetCallback(c)
	return c
}

func (c *College) FactionID() int    { return c.factionID }
func (c *College) Faction() *Faction { return c.m.Faction(c.factionID) }

// EnterTrigger absorbs cannonballs fired by other factions.
func (c *College) EnterTrigger(info physics.CollisionInfo) {
	absorb(c.m, info, c.factionID)
}

// absorb kills an active cannonball in A unless it was fired by faction
// friendly. friendly 0 absorbs every ball.
func absorb(m *Manager, info physics.CollisionInfo, friendly int) bool {
	if !info.A.Is(ecs.CapProjectile) {
		return false
	}
	ball, ok := m.pool.lookup(info.A.ID())
	if !ok || !ball.IsActive() {
		return false
	}
	if friendly != 0 && ball.Shooter() != nil && ball.Shooter().FactionID() == friendly {
		return false
	}
	ball.Kill()
	return true
}
