package system

import (
	"time"

	"github.com/yorkpirates/seacore/internal/component"
	"github.com/yorkpirates/seacore/internal/core/ecs"
	"github.com/yorkpirates/seacore/internal/core/event"
	coresys "github.com/yorkpirates/seacore/internal/core/system"
	"github.com/yorkpirates/seacore/internal/scripting"
	"github.com/yorkpirates/seacore/internal/world"
	"go.uber.org/zap"
)

// DeathSystem notices hulls that dropped to zero health, takes them out of
// the fight and pays the last attacker. Sunk ships keep their entity.
// Phase 3 (PostUpdate).
type DeathSystem struct {
	m     *world.Manager
	brain Brain
	log   *zap.Logger
	sunk  map[ecs.EntityID]bool
}

func NewDeathSystem(m *world.Manager, brain Brain, log *zap.Logger) *DeathSystem {
	return &DeathSystem{
		m:     m,
		brain: brain,
		log:   log,
		sunk:  make(map[ecs.EntityID]bool),
	}
}

func (s *DeathSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

// Sunk reports whether the ship has already been handled.
func (s *DeathSystem) Sunk(id ecs.EntityID) bool { return s.sunk[id] }

func (s *DeathSystem) Update(_ time.Duration) {
	for _, ship := range s.m.Combatants() {
		if ship.IsAlive() || s.sunk[ship.ID()] {
			continue
		}
		s.sink(ship)
	}
}

func (s *DeathSystem) sink(ship *world.Ship) {
	s.sunk[ship.ID()] = true
	ship.SetSpeed(0, 0)
	ecs.MustGet[component.RigidBody](ship.Entity).Enabled = false

	ev := event.ShipSunk{
		Ship:     ship.ID(),
		ShipName: ship.Name(),
		Player:   ship.Is(ecs.CapPlayer),
	}
	if killer, ok := s.m.ShipByID(ship.LastAttacker()); ok && killer != ship {
		r := s.brain.SinkReward(scripting.RewardContext{
			VictimPlunder: ship.Plunder(),
			VictimXP:      ship.XP(),
			PlunderBonus:  killer.PlunderBonus(),
			XPBonus:       killer.XPBonus(),
			Monster:       ship.Is(ecs.CapMonster),
		})
		killer.AddPlunder(r.Plunder)
		killer.AddXP(r.XP)
		ev.KillerName, ev.Plunder, ev.XP = killer.Name(), r.Plunder, r.XP
	}
	event.Emit(s.m.Bus(), ev)

	s.log.Info("ship sunk",
		zap.String("ship", ev.ShipName),
		zap.String("killer", ev.KillerName),
		zap.Int("plunder", ev.Plunder),
		zap.Int("xp", ev.XP))
}
