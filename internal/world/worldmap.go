package world

import (
	"github.com/yorkpirates/seacore/internal/component"
	"github.com/yorkpirates/seacore/internal/core/ecs"
	"github.com/yorkpirates/seacore/internal/nav"
)

// WorldMap is the terrain entity: the sea tile layer drawn under
// everything else.
type WorldMap struct {
	*ecs.Entity
	tiles nav.TileSource
}

func newWorldMap(m *Manager, tiles nav.TileSource) *WorldMap {
	e := m.world.Spawn("WorldMap", 1, ecs.CapTerrain)
	sp, _ := m.sprite(e, atlasMap, "sea")
	e.AddComponents(component.NewRenderable(component.LayerBackground, sp))
	return &WorldMap{Entity: e, tiles: tiles}
}

// Tiles returns the tile source the path graph was built from, or nil.
func (w *WorldMap) Tiles() nav.TileSource { return w.tiles }
