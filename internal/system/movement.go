package system

import (
	"math"
	"time"

	"github.com/yorkpirates/seacore/internal/component"
	"github.com/yorkpirates/seacore/internal/core/ecs"
	coresys "github.com/yorkpirates/seacore/internal/core/system"
	"github.com/yorkpirates/seacore/internal/geom"
	"github.com/yorkpirates/seacore/internal/nav"
	"github.com/yorkpirates/seacore/internal/physics"
)

// MovementSystem advances every enabled, non-static body by its velocity
// and keeps it inside the square [0, extent] sea. Phase 2 (Update).
type MovementSystem struct {
	world  *ecs.World
	extent float64

	land     *nav.Graph
	tileSize float64
	blocked  uint64
}

func NewMovementSystem(world *ecs.World, extent float64) *MovementSystem {
	return &MovementSystem{world: world, extent: extent}
}

// WithLand keeps ships off the unwalkable tiles of g. Other bodies fly over
// land.
func (s *MovementSystem) WithLand(g *nav.Graph, tileSize float64) *MovementSystem {
	s.land = g
	s.tileSize = tileSize
	return s
}

func (s *MovementSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *MovementSystem) Update(dt time.Duration) {
	secs := dt.Seconds()
	ecs.Each2(s.world, func(e *ecs.Entity, t *component.Transform, rb *component.RigidBody) {
		if !rb.Enabled || rb.Type == physics.Static || t.Velocity.IsZero() {
			return
		}
		p := t.Position.Add(t.Velocity.Scale(secs))
		if s.extent > 0 {
			p.X = math.Max(0, math.Min(s.extent, p.X))
			p.Y = math.Max(0, math.Min(s.extent, p.Y))
		}
		if e.Is(ecs.CapShip) && s.onLand(p) {
			s.blocked++
			return
		}
		t.Position = p
	})
}

// Blocked counts the ship moves refused because they ended on land.
func (s *MovementSystem) Blocked() uint64 { return s.blocked }

func (s *MovementSystem) onLand(p geom.Vec2) bool {
	if s.land == nil || s.tileSize <= 0 {
		return false
	}
	tile := nav.Tile{
		X: int(math.Floor(p.X / s.tileSize)),
		Y: int(math.Floor(p.Y / s.tileSize)),
	}
	return !s.land.Walkable(tile)
}
