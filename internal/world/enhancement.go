package world

import (
	"github.com/yorkpirates/seacore/internal/component"
	"github.com/yorkpirates/seacore/internal/core/ecs"
	"github.com/yorkpirates/seacore/internal/core/event"
	"github.com/yorkpirates/seacore/internal/geom"
	"github.com/yorkpirates/seacore/internal/physics"
)

// BoostKind names what an enhancement improves.
type BoostKind string

const (
	BoostHealth BoostKind = "health"
	BoostAmmo   BoostKind = "ammo"
	BoostDamage BoostKind = "damage"
	BoostSpeed  BoostKind = "speed" // cannonball speed, tiles per second
)

var boostKinds = [...]BoostKind{BoostHealth, BoostAmmo, BoostDamage, BoostSpeed}

var boostAmounts = map[BoostKind]int{
	BoostHealth: 25,
	BoostAmmo:   20,
	BoostDamage: 5,
	BoostSpeed:  1,
}

const enhancementRadius = 12

// Enhancement is a one-shot pickup. The player collects it by sailing
// through; it then leaves the world.
type Enhancement struct {
	*ecs.Entity
	physics.NopCallback
	m         *Manager
	Kind      BoostKind
	Amount    int
	collected bool
}

func newEnhancement(m *Manager, pos geom.Vec2) *Enhancement {
	e := m.world.Spawn("Enhancement", 3, ecs.CapPickup)
	kind := boostKinds[m.rng.Intn(len(boostKinds))]
	en := &Enhancement{Entity: e, m: m, Kind: kind, Amount: boostAmounts[kind]}
	_, _, rb := m.newBody(e, pos, component.LayerTransparent, atlasProps, "enhancement-"+string(kind), physics.Trigger, enhancementRadius)
	rb.SetCallback(en)
	return en
}

func (en *Enhancement) Collected() bool { return en.collected }

func (en *Enhancement) Position() geom.Vec2 {
	return ecs.MustGet[component.Transform](en.Entity).Position
}

// EnterTrigger applies the boost when the player reaches the pickup.
func (en *Enhancement) EnterTrigger(info physics.CollisionInfo) {
	if en.collected || !info.A.Is(ecs.CapPlayer) {
		return
	}
	player, ok := en.m.ShipByID(info.A.ID())
	if !ok || !player.IsAlive() {
		return
	}
	en.Apply(player)
}

// Apply grants the boost to s and removes the pickup.
func (en *Enhancement) Apply(s *Ship) {
	if en.collected {
		return
	}
	switch en.Kind {
	case BoostHealth:
		s.SetHealth(s.Health() + en.Amount)
	case BoostAmmo:
		s.SetAmmo(s.Ammo() + en.Amount)
	case BoostDamage:
		s.SetDamageDealt(s.DamageDealt() + float64(en.Amount))
	case BoostSpeed:
		s.SetBulletSpeed(s.BulletSpeed() + float64(en.Amount))
	}
	en.collected = true
	ecs.MustGet[component.RigidBody](en.Entity).Enabled = false
	en.m.world.MarkForDestruction(en.ID())
	event.Emit(en.m.bus, event.PickupCollected{
		Pickup:    en.Name(),
		Collector: s.Name(),
		Kind:      string(en.Kind),
		Amount:    en.Amount,
	})
}
