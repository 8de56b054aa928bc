package component

import "github.com/yorkpirates/seacore/internal/geom"

// Transform stores an entity's position and velocity in world units.
type Transform struct {
	Position geom.Vec2
	Velocity geom.Vec2
}

func NewTransform(x, y float64) *Transform {
	return &Transform{Position: geom.V(x, y)}
}

func (t *Transform) SetPosition(x, y float64) { t.Position = geom.V(x, y) }
