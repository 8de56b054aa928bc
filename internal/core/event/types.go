package event

import (
	"github.com/yorkpirates/seacore/internal/core/ecs"
	"github.com/yorkpirates/seacore/internal/geom"
)

// ProjectileFired is emitted for every pooled cannonball that is (re)fired.
// Overwrote is set when the slot's previous ball was still in flight.
type ProjectileFired struct {
	Shooter     ecs.EntityID
	ShooterName string
	Slot        int
	Dir         geom.Vec2
	Overwrote   bool
}

type ShipDamaged struct {
	Target       ecs.EntityID
	TargetName   string
	AttackerName string
	Amount       int
	HealthAfter  int
}

type ShipSunk struct {
	Ship       ecs.EntityID
	ShipName   string
	KillerName string // empty when nobody claimed the kill
	Plunder    int
	XP         int
	Player     bool
}

type PickupCollected struct {
	Pickup    string
	Collector string
	Kind      string
	Amount    int
}

// SpriteMissing reports a sprite lookup that failed and was ignored.
type SpriteMissing struct {
	EntityName string
	Key        string
}
