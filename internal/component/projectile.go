package component

import (
	"time"

	"github.com/yorkpirates/seacore/internal/core/ecs"
)

// Shooter is what a projectile knows about whoever fired it. The reference
// is weak: it is only read for faction and damage checks.
type Shooter interface {
	ID() ecs.EntityID
	Name() string
	FactionID() int
	DamageDealt() float64
}

// Projectile is the state of a pooled cannonball.
type Projectile struct {
	Shooter  Shooter
	Active   bool
	Lifetime time.Duration // remaining flight time
}

// Kill ends the flight. The entity stays in its pool slot.
func (p *Projectile) Kill() {
	p.Active = false
	p.Lifetime = 0
}
