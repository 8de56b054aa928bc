package system

import (
	"time"

	"github.com/yorkpirates/seacore/internal/core/event"
	coresys "github.com/yorkpirates/seacore/internal/core/system"
)

// EventDispatchSystem delivers the events emitted during the previous tick.
// Phase 1 (PreUpdate).
type EventDispatchSystem struct {
	bus *event.Bus
}

func NewEventDispatchSystem(bus *event.Bus) *EventDispatchSystem {
	return &EventDispatchSystem{bus: bus}
}

func (s *EventDispatchSystem) Phase() coresys.Phase { return coresys.PhasePreUpdate }

func (s *EventDispatchSystem) Update(_ time.Duration) {
	if s.bus == nil {
		return
	}
	s.bus.SwapBuffers()
	s.bus.DispatchAll()
}
