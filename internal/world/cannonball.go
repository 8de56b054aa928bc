package world

import (
	"time"

	"github.com/yorkpirates/seacore/internal/component"
	"github.com/yorkpirates/seacore/internal/core/ecs"
	"github.com/yorkpirates/seacore/internal/geom"
	"github.com/yorkpirates/seacore/internal/physics"
)

const cannonBallRadius = 4

// CannonBall is one pooled projectile. It is built once and re-fired for
// the rest of the session; killing it only parks it.
type CannonBall struct {
	*ecs.Entity
	slot int
}

func newCannonBall(m *Manager, slot int) *CannonBall {
	e := m.world.Spawn("CannonBall", 4, ecs.CapProjectile)
	_, r, rb := m.newBody(e, geom.Zero, component.LayerTransparent, atlasProps, "ball", physics.Trigger, cannonBallRadius)
	rb.Enabled = false
	r.Visible = false
	e.AddComponents(&component.Projectile{})
	return &CannonBall{Entity: e, slot: slot}
}

func (c *CannonBall) projectile() *component.Projectile {
	return ecs.MustGet[component.Projectile](c.Entity)
}

func (c *CannonBall) body() *component.RigidBody { return ecs.MustGet[component.RigidBody](c.Entity) }

func (c *CannonBall) Slot() int                  { return c.slot }
func (c *CannonBall) IsActive() bool             { return c.projectile().Active }
func (c *CannonBall) Shooter() component.Shooter { return c.projectile().Shooter }
func (c *CannonBall) Position() geom.Vec2        { return c.body().Position() }
func (c *CannonBall) Velocity() geom.Vec2        { return c.body().Velocity() }

// Remaining is the flight time left.
func (c *CannonBall) Remaining() time.Duration { return c.projectile().Lifetime }

func (c *CannonBall) fire(shooter component.Shooter, pos, dir geom.Vec2, speed float64, lifetime time.Duration) {
	p := c.projectile()
	p.Shooter = shooter
	p.Active = true
	p.Lifetime = lifetime

	rb := c.body()
	rb.Transform().Position = pos
	rb.SetVelocity(dir.X*speed, dir.Y*speed)
	rb.Enabled = true
	rb.Renderable().Visible = true
}

// Kill ends the flight and parks the ball until its slot comes round again.
func (c *CannonBall) Kill() {
	c.projectile().Kill()
	rb := c.body()
	rb.SetVelocity(0, 0)
	rb.Enabled = false
	rb.Renderable().Visible = false
}

// Tick counts down the flight and kills the ball when time runs out.
func (c *CannonBall) Tick(dt time.Duration) {
	p := c.projectile()
	if !p.Active {
		return
	}
	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		c.Kill()
	}
}
