package physics

import "github.com/yorkpirates/seacore/internal/core/ecs"

// EventKind names the four hooks of Callback.
type EventKind uint8

const (
	BeginContact EventKind = iota
	EndContact
	EnterTrigger
	ExitTrigger
)

func (k EventKind) String() string {
	switch k {
	case BeginContact:
		return "begin_contact"
	case EndContact:
		return "end_contact"
	case EnterTrigger:
		return "enter_trigger"
	case ExitTrigger:
		return "exit_trigger"
	}
	return "unknown"
}

// Order arranges a detected pair. A projectile always goes in A; failing
// that the player goes in A; otherwise detection order is kept.
func Order(x, y *ecs.Entity) (a, b *ecs.Entity) {
	switch {
	case y.Is(ecs.CapProjectile) && !x.Is(ecs.CapProjectile):
		return y, x
	case x.Is(ecs.CapProjectile):
		return x, y
	case y.Is(ecs.CapPlayer) && !x.Is(ecs.CapPlayer):
		return y, x
	}
	return x, y
}

// Receiver picks the entity whose handler gets the event: the player when
// it takes part, otherwise B. The player then forwards trigger events to B
// itself, so non-player entities still see player contact.
func Receiver(info CollisionInfo) *ecs.Entity {
	switch {
	case info.B.Is(ecs.CapPlayer):
		return info.B
	case info.A.Is(ecs.CapPlayer):
		return info.A
	}
	return info.B
}

// Resolver returns the callback bound to an entity, or nil.
type Resolver func(*ecs.Entity) Callback

// Dispatch delivers one event. When the preferred receiver has no callback
// bound, the other participant gets it instead. It reports whether any
// handler ran.
func Dispatch(kind EventKind, info CollisionInfo, resolve Resolver) bool {
	recv := Receiver(info)
	cb := resolve(recv)
	if cb == nil {
		cb = resolve(info.Other(recv))
	}
	if cb == nil {
		return false
	}
	Invoke(cb, kind, info)
	return true
}

// Invoke calls the hook matching kind.
func Invoke(cb Callback, kind EventKind, info CollisionInfo) {
	switch kind {
	case BeginContact:
		cb.BeginContact(info)
	case EndContact:
		cb.EndContact(info)
	case EnterTrigger:
		cb.EnterTrigger(info)
	case ExitTrigger:
		cb.ExitTrigger(info)
	}
}

// Overlap classifies a pair of bodies: trigger events when either side is a
// trigger, contact events when both are solid, nothing for two static bodies.
func Overlap(a, b BodyType) (enter, exit EventKind, ok bool) {
	switch {
	case a == Trigger || b == Trigger:
		return EnterTrigger, ExitTrigger, true
	case a == Static && b == Static:
		return 0, 0, false
	}
	return BeginContact, EndContact, true
}
