package world

import (
	"sync"

	"github.com/yorkpirates/seacore/internal/geom"
)

// Direction tags, also the suffix of every ship sprite key.
const (
	DirUp        = "up"
	DirDown      = "down"
	DirRight     = "right"
	DirLeft      = "left"
	DirUpRight   = "ur"
	DirUpLeft    = "ul"
	DirDownRight = "dr"
	DirDownLeft  = "dl"
)

type directionTable struct {
	tags  map[geom.Vec2]string
	byTag map[string]geom.Vec2
}

// directions is built on first use and shared read-only by every manager.
var directions = sync.OnceValue(func() *directionTable {
	t := &directionTable{
		tags: map[geom.Vec2]string{
			geom.V(0, 1):   DirUp,
			geom.V(0, -1):  DirDown,
			geom.V(1, 0):   DirRight,
			geom.V(-1, 0):  DirLeft,
			geom.V(1, 1):   DirUpRight,
			geom.V(-1, 1):  DirUpLeft,
			geom.V(1, -1):  DirDownRight,
			geom.V(-1, -1): DirDownLeft,
		},
		byTag: make(map[string]geom.Vec2, 8),
	}
	for v, tag := range t.tags {
		t.byTag[tag] = v
	}
	return t
})

// DirectionTag maps one of the eight canonical vectors to its tag.
func DirectionTag(v geom.Vec2) (string, bool) {
	tag, ok := directions().tags[v]
	return tag, ok
}

// DirectionVector is the inverse of DirectionTag.
func DirectionVector(tag string) (geom.Vec2, bool) {
	v, ok := directions().byTag[tag]
	return v, ok
}
