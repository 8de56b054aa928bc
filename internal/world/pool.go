package world

import "github.com/yorkpirates/seacore/internal/core/ecs"

// ProjectilePool is a fixed ring of pre-built cannonballs reused in
// round-robin order.
//
// Reuse never checks whether a slot's ball is still flying: the next shot
// simply re-fires it. The pool is sized on the assumption that
// lifetime * fire rate stays below its capacity. When that fails a ball
// vanishes mid-flight; the pool counts those overwrites and flags them on
// the ProjectileFired event rather than refusing the shot.
type ProjectilePool struct {
	balls      []*CannonBall
	byID       map[ecs.EntityID]*CannonBall
	cursor     int
	overwrites int
}

func newProjectilePool(m *Manager, n int) *ProjectilePool {
	p := &ProjectilePool{
		balls: make([]*CannonBall, n),
		byID:  make(map[ecs.EntityID]*CannonBall, n),
	}
	for i := range p.balls {
		b := newCannonBall(m, i)
		p.balls[i] = b
		p.byID[b.ID()] = b
	}
	return p
}

// next hands out the ball at the cursor and advances it. overwrote reports
// that the ball was still in flight.
func (p *ProjectilePool) next() (ball *CannonBall, overwrote bool) {
	ball = p.balls[p.cursor]
	if ball.IsActive() {
		overwrote = true
		p.overwrites++
	}
	p.cursor = (p.cursor + 1) % len(p.balls)
	return ball, overwrote
}

func (p *ProjectilePool) lookup(id ecs.EntityID) (*CannonBall, bool) {
	if p == nil {
		return nil, false
	}
	b, ok := p.byID[id]
	return b, ok
}

func (p *ProjectilePool) Cap() int                { return len(p.balls) }
func (p *ProjectilePool) Cursor() int             { return p.cursor }
func (p *ProjectilePool) Overwrites() int         { return p.overwrites }
func (p *ProjectilePool) At(slot int) *CannonBall { return p.balls[slot] }
func (p *ProjectilePool) Balls() []*CannonBall    { return p.balls }

// Active counts balls currently in flight.
func (p *ProjectilePool) Active() int {
	n := 0
	for _, b := range p.balls {
		if b.IsActive() {
			n++
		}
	}
	return n
}
