package world

import (
	"github.com/yorkpirates/seacore/internal/geom"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Faction is an allegiance shared by a college and its ships. Factions are
// created once during initialisation and never change afterwards.
type Faction struct {
	ID       int // 1-based
	Name     string
	Colour   string
	Position geom.Vec2 // college position, world units
	SpawnPos geom.Vec2 // ship spawn position, world units
}

// DisplayName is the faction name in title case, for logs and HUD text.
func (f *Faction) DisplayName() string {
	return cases.Title(language.English).String(f.Name)
}
