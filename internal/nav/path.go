package nav

import "github.com/yorkpirates/seacore/internal/geom"

// Step is a single tile move; each axis is -1, 0 or 1.
type Step struct {
	X, Y int
}

// Vec returns the step as a direction vector.
func (s Step) Vec() geom.Vec2 { return geom.V(float64(s.X), float64(s.Y)) }

// Path is a consume-once sequence of steps from source toward destination.
// It cannot be rewound; ask the graph again for a fresh route.
type Path struct {
	steps []Step
	next  int
}

// Next pops the next step as a direction vector.
func (p *Path) Next() (geom.Vec2, bool) {
	if p == nil || p.next >= len(p.steps) {
		return geom.Zero, false
	}
	s := p.steps[p.next]
	p.next++
	return s.Vec(), true
}

// Peek returns the next step without consuming it.
func (p *Path) Peek() (geom.Vec2, bool) {
	if p == nil || p.next >= len(p.steps) {
		return geom.Zero, false
	}
	return p.steps[p.next].Vec(), true
}

// Len is the number of steps left.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.steps) - p.next
}

func (p *Path) Empty() bool { return p.Len() == 0 }
