package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yorkpirates/seacore/internal/core/ecs"
	"github.com/yorkpirates/seacore/internal/geom"
)

func TestGridNearby(t *testing.T) {
	g := NewGrid(64)
	a, b, c := ecs.NewEntityID(1, 0), ecs.NewEntityID(2, 0), ecs.NewEntityID(3, 0)
	g.Add(a, geom.V(10, 10))
	g.Add(b, geom.V(100, 10))
	g.Add(c, geom.V(500, 500))

	assert.ElementsMatch(t, []ecs.EntityID{a, b}, g.Nearby(geom.V(20, 20)))

	g.Move(b, geom.V(100, 10), geom.V(490, 490))
	assert.ElementsMatch(t, []ecs.EntityID{a}, g.Nearby(geom.V(20, 20)))
	assert.ElementsMatch(t, []ecs.EntityID{b, c}, g.Nearby(geom.V(500, 500)))

	g.Remove(c, geom.V(500, 500))
	assert.ElementsMatch(t, []ecs.EntityID{b}, g.Nearby(geom.V(500, 500)))

	g.Reset()
	assert.Empty(t, g.Nearby(geom.V(20, 20)))
}

func TestGridNegativeCoordinates(t *testing.T) {
	g := NewGrid(32)
	id := ecs.NewEntityID(1, 0)
	g.Add(id, geom.V(-5, -5))
	assert.Equal(t, cellKey{cx: -1, cy: -1}, g.key(geom.V(-5, -5)))
	assert.Contains(t, g.Nearby(geom.V(-40, -40)), id)
}

func TestOverlaps(t *testing.T) {
	n, depth, ok := Overlaps(geom.V(0, 0), 5, geom.V(8, 0), 5)
	assert.True(t, ok)
	assert.Equal(t, geom.V(1, 0), n)
	assert.InDelta(t, 2, depth, 1e-9)

	_, _, ok = Overlaps(geom.V(0, 0), 5, geom.V(10, 0), 5)
	assert.False(t, ok, "touching is not overlapping")
}
