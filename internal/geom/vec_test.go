package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNorZeroVector(t *testing.T) {
	assert.Equal(t, Zero, Zero.Nor())
}

func TestNorUnitLength(t *testing.T) {
	n := V(3, 4).Nor()
	assert.InDelta(t, 1.0, n.Len(), 1e-9)
	assert.InDelta(t, 0.6, n.X, 1e-9)
}

func TestSign(t *testing.T) {
	assert.Equal(t, V(1, -1), V(12.5, -0.1).Sign())
	assert.Equal(t, V(0, 1), V(0, 3).Sign())
}

func TestVecAsMapKey(t *testing.T) {
	m := map[Vec2]string{V(1, 1): "ur"}
	assert.Equal(t, "ur", m[V(1, 1)])
	assert.Empty(t, m[V(1, 0)])
}

func TestDst(t *testing.T) {
	assert.InDelta(t, math.Sqrt2, V(0, 0).Dst(V(1, 1)), 1e-9)
}
