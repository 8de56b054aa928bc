package component

import "github.com/yorkpirates/seacore/internal/geom"

// ShootFunc fires one projectile in dir on behalf of the owning entity.
type ShootFunc func(dir geom.Vec2)

// Pirate carries faction and combat stats. Stat writes never fail; health
// clamps at zero and has no upper bound.
type Pirate struct {
	health    int
	Armor     int
	Ammo      int
	Plunder   int
	XP        int
	FactionID int

	shoot ShootFunc
}

func NewPirate(health, armor, ammo int) *Pirate {
	p := &Pirate{Armor: armor, Ammo: ammo}
	p.SetHealth(health)
	return p
}

func (p *Pirate) Health() int { return p.health }

func (p *Pirate) SetHealth(h int) {
	if h < 0 {
		h = 0
	}
	p.health = h
}

// TakeDamage subtracts dmg, truncated toward zero, from health.
// It returns the health actually removed.
func (p *Pirate) TakeDamage(dmg float64) int {
	if dmg <= 0 || p.health == 0 {
		return 0
	}
	before := p.health
	p.SetHealth(p.health - int(dmg))
	return before - p.health
}

func (p *Pirate) AddPlunder(n int) { p.Plunder += n }
func (p *Pirate) AddXP(n int)      { p.XP += n }

// SetShootBehaviour installs the fire action used by Shoot.
func (p *Pirate) SetShootBehaviour(fn ShootFunc) { p.shoot = fn }

// Shoot spends one round of ammo and fires in dir. It does nothing without
// ammo, without a direction, or without a shoot behaviour installed.
func (p *Pirate) Shoot(dir geom.Vec2) bool {
	if p.shoot == nil || p.Ammo <= 0 || dir.IsZero() {
		return false
	}
	p.Ammo--
	p.shoot(dir)
	return true
}
