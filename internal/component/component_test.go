package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yorkpirates/seacore/internal/data"
	"github.com/yorkpirates/seacore/internal/geom"
	"github.com/yorkpirates/seacore/internal/physics"
)

func TestPirateHealthClamp(t *testing.T) {
	p := NewPirate(100, 0, 5)
	p.SetHealth(-20)
	assert.Equal(t, 0, p.Health())

	p.SetHealth(30)
	assert.Equal(t, 30, p.TakeDamage(45))
	assert.Equal(t, 0, p.Health())
	assert.Equal(t, 0, p.TakeDamage(10), "no damage once at zero")
}

func TestPirateTakeDamageTruncates(t *testing.T) {
	p := NewPirate(100, 0, 0)
	assert.Equal(t, 9, p.TakeDamage(9.6))
	assert.Equal(t, 91, p.Health())
	assert.Equal(t, 0, p.TakeDamage(0.4), "fractions below one do nothing")
	assert.Equal(t, 91, p.Health())
	assert.Equal(t, 0, p.TakeDamage(-3))
}

func TestPirateShoot(t *testing.T) {
	p := NewPirate(100, 0, 2)
	var fired []geom.Vec2
	assert.False(t, p.Shoot(geom.V(0, 1)), "no behaviour installed")

	p.SetShootBehaviour(func(dir geom.Vec2) { fired = append(fired, dir) })
	assert.False(t, p.Shoot(geom.Zero))
	assert.True(t, p.Shoot(geom.V(0, 1)))
	assert.True(t, p.Shoot(geom.V(1, 0)))
	assert.False(t, p.Shoot(geom.V(1, 0)), "out of ammo")
	assert.Equal(t, []geom.Vec2{{X: 0, Y: 1}, {X: 1, Y: 0}}, fired)
	assert.Equal(t, 0, p.Ammo)
}

func TestRigidBodyVelocityWritesThrough(t *testing.T) {
	tr := NewTransform(800, 800)
	r := NewRenderable(LayerTransparent, data.Sprite{})
	rb := NewRigidBody(physics.Dynamic, 16, r, tr)

	rb.SetVelocity(3, -4)
	assert.Equal(t, geom.V(3, -4), tr.Velocity)
	assert.Equal(t, tr.Velocity, rb.Velocity())
	assert.Same(t, tr, rb.Transform())
	assert.Same(t, r, rb.Renderable())
	assert.True(t, rb.Enabled)
}

func TestRenderableIgnoresZeroSprite(t *testing.T) {
	r := NewRenderable(LayerTransparent, data.Sprite{Atlas: 3, Key: "white-up"})
	r.SetSprite(data.Sprite{})
	assert.Equal(t, "white-up", r.Key())
	r.SetSprite(data.Sprite{Atlas: 3, Key: "white-dl"})
	assert.Equal(t, "white-dl", r.Key())
}

func TestProjectileKill(t *testing.T) {
	p := &Projectile{Active: true, Lifetime: 3}
	p.Kill()
	assert.False(t, p.Active)
	assert.Zero(t, p.Lifetime)
}
