package world

import (
	"github.com/yorkpirates/seacore/internal/component"
	"github.com/yorkpirates/seacore/internal/core/ecs"
	"github.com/yorkpirates/seacore/internal/core/event"
	"github.com/yorkpirates/seacore/internal/geom"
	"github.com/yorkpirates/seacore/internal/physics"
)

// Ship is a Transform+Renderable+RigidBody+Pirate composite. The player and
// NPC ships differ only by the CapPlayer flag.
type Ship struct {
	*ecs.Entity
	m *Manager

	currentDir   geom.Vec2
	damageDealt  float64
	bulletSpeed  float64
	plunderBonus float64
	xpBonus      float64
	lastAttacker ecs.EntityID
}

var (
	_ physics.Callback  = (*Ship)(nil)
	_ component.Shooter = (*Ship)(nil)
)

func (m *Manager) newShip(kind string, caps ecs.Capability) *Ship {
	st := m.settings.Starting
	e := m.world.Spawn(kind, 4, caps)
	s := &Ship{
		Entity:       e,
		m:            m,
		damageDealt:  st.Damage,
		bulletSpeed:  st.CannonSpeed,
		plunderBonus: st.PlunderBonus,
		xpBonus:      st.XPBonus,
	}
	_, _, rb := m.newBody(e, geom.V(800, 800), component.LayerTransparent, atlasShips, "", physics.Dynamic, m.opts.ShipRadius)
	rb.SetCallback(s)

	p := component.NewPirate(st.Health, st.Armor, st.Ammo)
	p.SetShootBehaviour(func(dir geom.Vec2) { m.Shoot(s, dir) })
	e.AddComponents(p)

	m.byID[e.ID()] = s
	return s
}

func (s *Ship) pirate() *component.Pirate  { return ecs.MustGet[component.Pirate](s.Entity) }
func (s *Ship) body() *component.RigidBody { return ecs.MustGet[component.RigidBody](s.Entity) }

func (s *Ship) IsAlive() bool { return s.pirate().Health() > 0 }

// Destroy sinks the ship. The entity stays in the world; systems notice
// through IsAlive.
func (s *Ship) Destroy() { s.SetHealth(0) }

func (s *Ship) Health() int      { return s.pirate().Health() }
func (s *Ship) SetHealth(h int)  { s.pirate().SetHealth(h) }
func (s *Ship) Armor() int       { return s.pirate().Armor }
func (s *Ship) SetArmor(a int)   { s.pirate().Armor = a }
func (s *Ship) Ammo() int        { return s.pirate().Ammo }
func (s *Ship) SetAmmo(a int)    { s.pirate().Ammo = a }
func (s *Ship) Plunder() int     { return s.pirate().Plunder }
func (s *Ship) SetPlunder(p int) { s.pirate().Plunder = p }
func (s *Ship) AddPlunder(n int) { s.pirate().AddPlunder(n) }
func (s *Ship) XP() int          { return s.pirate().XP }
func (s *Ship) SetXP(xp int)     { s.pirate().XP = xp }
func (s *Ship) AddXP(n int)      { s.pirate().AddXP(n) }

func (s *Ship) DamageDealt() float64              { return s.damageDealt }
func (s *Ship) SetDamageDealt(d float64)          { s.damageDealt = d }
func (s *Ship) BulletSpeed() float64              { return s.bulletSpeed }
func (s *Ship) SetBulletSpeed(v float64)          { s.bulletSpeed = v }
func (s *Ship) PlunderBonus() float64             { return s.plunderBonus }
func (s *Ship) SetPlunderBonus(b float64)         { s.plunderBonus = b }
func (s *Ship) XPBonus() float64                  { return s.xpBonus }
func (s *Ship) SetXPBonus(b float64)              { s.xpBonus = b }
func (s *Ship) CurrentDirection() geom.Vec2       { return s.currentDir }
func (s *Ship) LastAttacker() ecs.EntityID        { return s.lastAttacker }
func (s *Ship) AttackRange() float64              { return s.m.AttackRange() }
func (s *Ship) Speed() geom.Vec2                  { return s.body().Velocity() }
func (s *Ship) SetSpeed(x, y float64)             { s.body().SetVelocity(x, y) }
func (s *Ship) Position() geom.Vec2               { return s.body().Position() }
func (s *Ship) SetPosition(p geom.Vec2)           { s.body().Transform().Position = p }
func (s *Ship) FactionID() int                    { return s.pirate().FactionID }
func (s *Ship) Renderable() *component.Renderable { return s.body().Renderable() }

// Faction returns the ship's faction, or nil for unaligned hulls.
func (s *Ship) Faction() *Faction {
	id := s.FactionID()
	if id == 0 {
		return nil
	}
	return s.m.Faction(id)
}

func (s *Ship) colour() string {
	if f := s.Faction(); f != nil {
		return f.Colour
	}
	return "white"
}

// SetFaction moves the ship to factionID and faces it up.
func (s *Ship) SetFaction(factionID int) {
	s.m.Faction(factionID)
	s.pirate().FactionID = factionID
	s.currentDir, _ = DirectionVector(DirUp)
	s.SetDirectionTag(DirUp)
}

// ResolveDirection returns the tag for v and makes it the current facing.
// It returns "" when v is not a canonical direction or is already the
// current facing.
func (s *Ship) ResolveDirection(v geom.Vec2) string {
	if v.Equal(s.currentDir) {
		return ""
	}
	tag, ok := DirectionTag(v)
	if !ok {
		return ""
	}
	s.currentDir = v
	return tag
}

// SetShipDirection turns the ship toward v. Repeating the current facing
// is a no-op.
func (s *Ship) SetShipDirection(v geom.Vec2) {
	s.SetDirectionTag(s.ResolveDirection(v))
}

// SetDirectionTag swaps to the "<colour>-<tag>" sprite. A failed lookup
// leaves the previous sprite in place.
func (s *Ship) SetDirectionTag(tag string) {
	if tag == "" {
		return
	}
	sp, ok := s.m.sprite(s.Entity, atlasShips, s.colour()+"-"+tag)
	if !ok {
		return
	}
	s.Renderable().SetSprite(sp)
}

// Shoot fires along the current facing.
func (s *Ship) Shoot() bool { return s.pirate().Shoot(s.currentDir) }

// ShootAt fires toward dir.
func (s *Ship) ShootAt(dir geom.Vec2) bool { return s.pirate().Shoot(dir) }

func (s *Ship) BeginContact(physics.CollisionInfo) {}
func (s *Ship) EndContact(physics.CollisionInfo)   {}

// EnterTrigger forwards player contact to the other side, then resolves a
// cannonball hit.
func (s *Ship) EnterTrigger(info physics.CollisionInfo) {
	s.redirect(physics.EnterTrigger, info)
	s.takeHit(info)
}

func (s *Ship) ExitTrigger(info physics.CollisionInfo) {
	s.redirect(physics.ExitTrigger, info)
}

// redirect hands a trigger event on to B once when the player receives it
// against a non-player.
func (s *Ship) redirect(kind physics.EventKind, info physics.CollisionInfo) {
	if !s.Is(ecs.CapPlayer) || info.B.Is(ecs.CapPlayer) || info.B == s.Entity {
		return
	}
	if cb := component.CallbackOf(info.B); cb != nil {
		physics.Invoke(cb, kind, info)
	}
}

// takeHit applies a hostile cannonball in A: the shooter's damage comes off
// this ship's health and the ball goes back to the pool. Friendly fire does
// nothing.
func (s *Ship) takeHit(info physics.CollisionInfo) {
	if !info.A.Is(ecs.CapProjectile) || !s.IsAlive() {
		return
	}
	ball, ok := s.m.pool.lookup(info.A.ID())
	if !ok || !ball.IsActive() {
		return
	}
	shooter := ball.Shooter()
	if shooter == nil || shooter.FactionID() == s.FactionID() {
		return
	}
	s.applyDamage(shooter.DamageDealt(), shooter.ID(), shooter.Name())
	ball.Kill()
}

func (s *Ship) applyDamage(amount float64, attacker ecs.EntityID, attackerName string) {
	dealt := s.pirate().TakeDamage(amount)
	s.lastAttacker = attacker
	event.Emit(s.m.bus, event.ShipDamaged{
		Target:       s.ID(),
		TargetName:   s.Name(),
		AttackerName: attackerName,
		Amount:       dealt,
		HealthAfter:  s.Health(),
	})
}
