package nav

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yorkpirates/seacore/internal/geom"
)

// gridTiles builds a TileSource from rows of '.' (water) and '#' (land).
type gridTiles []string

func (g gridTiles) Width() int  { return len(g[0]) }
func (g gridTiles) Height() int { return len(g) }
func (g gridTiles) Walkable(x, y int) bool {
	return g[y][x] == '.'
}

func parse(s string) gridTiles {
	return gridTiles(strings.Fields(s))
}

func drain(p *Path) []geom.Vec2 {
	var out []geom.Vec2
	for {
		v, ok := p.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func TestFindPathToSelfIsEmpty(t *testing.T) {
	g := NewGraph(parse(`
		...
		...
	`))
	p := g.FindPath(Tile{1, 1}, Tile{1, 1})
	assert.True(t, p.Empty())
	_, ok := p.Next()
	assert.False(t, ok)
}

func TestFindPathDisconnectedIsEmpty(t *testing.T) {
	g := NewGraph(parse(`
		..#..
		..#..
		..#..
	`))
	assert.True(t, g.FindPath(Tile{0, 0}, Tile{4, 2}).Empty())
}

func TestFindPathUnwalkableEndpoint(t *testing.T) {
	g := NewGraph(parse(`
		..#
		...
	`))
	assert.True(t, g.FindPath(Tile{0, 0}, Tile{2, 0}).Empty())
	assert.True(t, g.FindPath(Tile{2, 0}, Tile{0, 0}).Empty())
	assert.True(t, g.FindPath(Tile{0, 0}, Tile{9, 9}).Empty())
}

func TestFindPathAdjacent(t *testing.T) {
	g := NewGraph(parse(`
		...
		...
		...
	`))
	cases := []struct {
		dst  Tile
		want geom.Vec2
	}{
		{Tile{2, 1}, geom.V(1, 0)},
		{Tile{0, 1}, geom.V(-1, 0)},
		{Tile{1, 0}, geom.V(0, -1)},
		{Tile{1, 2}, geom.V(0, 1)},
		{Tile{2, 2}, geom.V(1, 1)},
		{Tile{0, 0}, geom.V(-1, -1)},
	}
	for _, tc := range cases {
		p := g.FindPath(Tile{1, 1}, tc.dst)
		require.Equal(t, 1, p.Len(), "dst %v", tc.dst)
		assert.Equal(t, []geom.Vec2{tc.want}, drain(p))
		assert.True(t, p.Empty(), "path is consumed")
	}
}

func TestFindPathNoCornerCutting(t *testing.T) {
	g := NewGraph(parse(`
		.#
		..
	`))
	p := g.FindPath(Tile{0, 0}, Tile{1, 1})
	assert.Equal(t, []geom.Vec2{geom.V(0, 1), geom.V(1, 0)}, drain(p))
}

func TestFindPathAroundWall(t *testing.T) {
	g := NewGraph(parse(`
		.....
		.###.
		.....
	`))
	p := g.FindPath(Tile{0, 0}, Tile{0, 2})
	assert.Equal(t, 2, p.Len())

	p = g.FindPath(Tile{2, 0}, Tile{2, 2})
	steps := drain(p)
	require.Len(t, steps, 6)
	// No diagonal can clip the wall, so the detour is all straight moves.
	pos := Tile{2, 0}
	cost := 0.0
	for _, s := range steps {
		pos.X += int(s.X)
		pos.Y += int(s.Y)
		cost += s.Len()
	}
	assert.Equal(t, Tile{2, 2}, pos)
	assert.InDelta(t, 6, cost, 1e-9)
}

func TestGraphNodesAndNeighbors(t *testing.T) {
	g := NewGraph(parse(`
		.#.
		...
	`))
	assert.Equal(t, 5, g.Nodes())
	assert.ElementsMatch(t, []Tile{{0, 1}}, g.Neighbors(Tile{0, 0}))
	assert.Nil(t, g.Neighbors(Tile{1, 0}))
}

func TestNilPathIsEmpty(t *testing.T) {
	var p *Path
	assert.True(t, p.Empty())
	_, ok := p.Peek()
	assert.False(t, ok)
}
