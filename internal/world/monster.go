package world

import (
	"github.com/yorkpirates/seacore/internal/core/ecs"
	"github.com/yorkpirates/seacore/internal/geom"
	"github.com/yorkpirates/seacore/internal/physics"
)

// Monster defaults.
const (
	monsterHealth        = 60
	monsterContactDamage = 15
	monsterPlunder       = 50
	monsterXP            = 40
	monsterRadius        = 28
)

// Monster is an unaligned sea creature. It is hurt by every faction's
// cannonballs, bites the player on contact and carries loot for whoever
// sinks it.
type Monster struct {
	*Ship
	ContactDamage float64
}

func newMonster(m *Manager, pos geom.Vec2) *Monster {
	s := m.newShip("Monster", ecs.CapHazard|ecs.CapMonster)
	mo := &Monster{Ship: s, ContactDamage: monsterContactDamage}

	p := s.pirate()
	p.SetHealth(monsterHealth)
	p.Ammo = 0
	p.Plunder = monsterPlunder
	p.XP = monsterXP
	p.SetShootBehaviour(nil)

	rb := s.body()
	rb.Type = physics.Trigger
	rb.Radius = monsterRadius
	rb.SetCallback(mo)
	rb.Transform().Position = pos
	if sp, ok := m.sprite(s.Entity, atlasProps, "monster"); ok {
		rb.Renderable().SetSprite(sp)
	}
	return mo
}

// EnterTrigger bites the player when it sails in, otherwise takes hits
// like any hull.
func (mo *Monster) EnterTrigger(info physics.CollisionInfo) {
	if info.A.Is(ecs.CapPlayer) && info.B == mo.Entity {
		mo.bite(info.A)
		return
	}
	mo.Ship.EnterTrigger(info)
}

func (mo *Monster) bite(target *ecs.Entity) {
	if !mo.IsAlive() {
		return
	}
	victim, ok := mo.m.ShipByID(target.ID())
	if !ok || !victim.IsAlive() {
		return
	}
	victim.applyDamage(mo.ContactDamage, mo.ID(), mo.Name())
}
