// Package nav answers shortest-path queries over the sea tile map.
package nav

import "math"

// TileSource supplies tile walkability. Coordinates are tile columns and
// rows, origin at the top-left tile.
type TileSource interface {
	Width() int
	Height() int
	Walkable(x, y int) bool
}

// Tile addresses one cell of the graph.
type Tile struct {
	X, Y int
}

type neighbor struct {
	dx, dy   int
	cost     float64
	diagonal bool
}

var neighborOffsets = [...]neighbor{
	{dx: 0, dy: -1, cost: 1},
	{dx: 1, dy: 0, cost: 1},
	{dx: 0, dy: 1, cost: 1},
	{dx: -1, dy: 0, cost: 1},
	{dx: 1, dy: -1, cost: math.Sqrt2, diagonal: true},
	{dx: 1, dy: 1, cost: math.Sqrt2, diagonal: true},
	{dx: -1, dy: 1, cost: math.Sqrt2, diagonal: true},
	{dx: -1, dy: -1, cost: math.Sqrt2, diagonal: true},
}

type edge struct {
	to   int
	cost float64
}

// Graph is the walkable-tile graph. Built once per world and read-only
// afterwards, so queries need no locking.
type Graph struct {
	width, height int
	walkable      []bool
	edges         [][]edge
	nodes         int
}

// NewGraph snapshots tiles into an adjacency list. Diagonal moves are only
// linked when both orthogonal neighbours are walkable, so paths never cut
// a land corner.
func NewGraph(tiles TileSource) *Graph {
	w, h := tiles.Width(), tiles.Height()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g := &Graph{
		width:    w,
		height:   h,
		walkable: make([]bool, w*h),
		edges:    make([][]edge, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if tiles.Walkable(x, y) {
				g.walkable[g.index(x, y)] = true
				g.nodes++
			}
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !g.isWalkable(x, y) {
				continue
			}
			idx := g.index(x, y)
			for _, n := range neighborOffsets {
				nx, ny := x+n.dx, y+n.dy
				if !g.isWalkable(nx, ny) {
					continue
				}
				if n.diagonal && (!g.isWalkable(x+n.dx, y) || !g.isWalkable(x, y+n.dy)) {
					continue
				}
				g.edges[idx] = append(g.edges[idx], edge{to: g.index(nx, ny), cost: n.cost})
			}
		}
	}
	return g
}

func (g *Graph) Width() int  { return g.width }
func (g *Graph) Height() int { return g.height }

// Nodes returns the number of walkable tiles.
func (g *Graph) Nodes() int { return g.nodes }

// Walkable reports whether t is inside the map and walkable.
func (g *Graph) Walkable(t Tile) bool { return g.isWalkable(t.X, t.Y) }

// Neighbors returns the tiles directly reachable from t.
func (g *Graph) Neighbors(t Tile) []Tile {
	if !g.isWalkable(t.X, t.Y) {
		return nil
	}
	es := g.edges[g.index(t.X, t.Y)]
	out := make([]Tile, 0, len(es))
	for _, e := range es {
		out = append(out, g.tile(e.to))
	}
	return out
}

func (g *Graph) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *Graph) index(x, y int) int { return y*g.width + x }

func (g *Graph) tile(idx int) Tile { return Tile{X: idx % g.width, Y: idx / g.width} }

func (g *Graph) isWalkable(x, y int) bool {
	return g.inBounds(x, y) && g.walkable[g.index(x, y)]
}
