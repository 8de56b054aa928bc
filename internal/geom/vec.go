package geom

import "math"

// Vec2 is a 2D vector in world units (or tile units for path steps).
// It is a comparable value type, so it can key a map directly.
type Vec2 struct {
	X float64
	Y float64
}

// Zero is the "no direction" vector.
var Zero = Vec2{}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dst(o Vec2) float64   { return math.Hypot(o.X-v.X, o.Y-v.Y) }
func (v Vec2) IsZero() bool         { return v.X == 0 && v.Y == 0 }
func (v Vec2) Equal(o Vec2) bool    { return v.X == o.X && v.Y == o.Y }

// Nor returns the unit vector, or Zero for the zero vector.
func (v Vec2) Nor() Vec2 {
	l := v.Len()
	if l == 0 {
		return Zero
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Sign snaps each axis to -1, 0 or 1. Used to turn an arbitrary heading
// into one of the eight compass vectors.
func (v Vec2) Sign() Vec2 {
	return Vec2{X: sign(v.X), Y: sign(v.Y)}
}

func sign(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return 0
}
