package physics

import (
	"math"

	"github.com/yorkpirates/seacore/internal/core/ecs"
	"github.com/yorkpirates/seacore/internal/geom"
)

type cellKey struct {
	cx int32
	cy int32
}

// Grid is a uniform broadphase grid. Cell size should be at least the
// largest body diameter so a 3x3 neighbourhood covers every possible
// overlap. Accessed only from the game loop goroutine — no locks.
type Grid struct {
	cellSize float64
	cells    map[cellKey]map[ecs.EntityID]struct{}
}

func NewGrid(cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = 64
	}
	return &Grid{
		cellSize: cellSize,
		cells:    make(map[cellKey]map[ecs.EntityID]struct{}),
	}
}

func (g *Grid) key(p geom.Vec2) cellKey {
	return cellKey{
		cx: int32(math.Floor(p.X / g.cellSize)),
		cy: int32(math.Floor(p.Y / g.cellSize)),
	}
}

// Add places an entity into the grid.
func (g *Grid) Add(id ecs.EntityID, p geom.Vec2) {
	k := g.key(p)
	cell := g.cells[k]
	if cell == nil {
		cell = make(map[ecs.EntityID]struct{})
		g.cells[k] = cell
	}
	cell[id] = struct{}{}
}

// Remove takes an entity out of the grid.
func (g *Grid) Remove(id ecs.EntityID, p geom.Vec2) {
	k := g.key(p)
	cell := g.cells[k]
	if cell != nil {
		delete(cell, id)
		if len(cell) == 0 {
			delete(g.cells, k)
		}
	}
}

// Move updates an entity's cell when its position changes.
func (g *Grid) Move(id ecs.EntityID, from, to geom.Vec2) {
	if g.key(from) == g.key(to) {
		return
	}
	g.Remove(id, from)
	g.Add(id, to)
}

// Nearby returns every entity in the 3x3 block of cells around p. Callers
// do the exact overlap test.
func (g *Grid) Nearby(p geom.Vec2) []ecs.EntityID {
	c := g.key(p)
	var result []ecs.EntityID
	for dx := int32(-1); dx <= 1; dx++ {
		for dy := int32(-1); dy <= 1; dy++ {
			for id := range g.cells[cellKey{cx: c.cx + dx, cy: c.cy + dy}] {
				result = append(result, id)
			}
		}
	}
	return result
}

// Reset empties the grid.
func (g *Grid) Reset() {
	clear(g.cells)
}

// Overlaps reports whether two circles intersect, with the contact normal
// pointing from a to b and the penetration depth.
func Overlaps(pa geom.Vec2, ra float64, pb geom.Vec2, rb float64) (normal geom.Vec2, depth float64, ok bool) {
	d := pb.Sub(pa)
	dist := d.Len()
	depth = ra + rb - dist
	if depth <= 0 {
		return geom.Zero, 0, false
	}
	return d.Nor(), depth, true
}
