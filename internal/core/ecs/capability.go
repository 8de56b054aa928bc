package ecs

// Capability is a bit set describing what an entity is and which dispatch
// behaviour applies to it. Collision rules test flags instead of inspecting
// concrete Go types.
type Capability uint32

const (
	CapShip Capability = 1 << iota
	CapPlayer
	CapProjectile
	CapStructure
	CapHazard
	CapMonster
	CapPickup
	CapTerrain
)

var capNames = [...]string{"ship", "player", "projectile", "structure", "hazard", "monster", "pickup", "terrain"}

func (c Capability) Has(flag Capability) bool { return c&flag == flag }

func (c Capability) String() string {
	if c == 0 {
		return "none"
	}
	s := ""
	for i, n := range capNames {
		if c&(1<<i) == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += n
	}
	return s
}
