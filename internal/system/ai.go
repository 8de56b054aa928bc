package system

import (
	"time"

	"github.com/yorkpirates/seacore/internal/core/ecs"
	coresys "github.com/yorkpirates/seacore/internal/core/system"
	"github.com/yorkpirates/seacore/internal/geom"
	"github.com/yorkpirates/seacore/internal/scripting"
	"github.com/yorkpirates/seacore/internal/world"
	"go.uber.org/zap"
)

// Brain makes the scripted decisions. *scripting.Engine satisfies it.
type Brain interface {
	DecideNPC(ctx scripting.NPCContext) scripting.NPCAction
	SinkReward(ctx scripting.RewardContext) scripting.Reward
}

// AISystem drives NPC ships: Go finds the target and carries out the
// command, Lua picks the action. Phase 0 (Think).
type AISystem struct {
	m        *world.Manager
	brain    Brain
	log      *zap.Logger
	interval time.Duration
	cooldown time.Duration
	speed    float64 // tiles per second

	acc    time.Duration
	reload map[ecs.EntityID]time.Duration
}

func NewAISystem(m *world.Manager, brain Brain, log *zap.Logger, interval, cooldown time.Duration, speed float64) *AISystem {
	return &AISystem{
		m:        m,
		brain:    brain,
		log:      log,
		interval: interval,
		cooldown: cooldown,
		speed:    speed,
		reload:   make(map[ecs.EntityID]time.Duration),
	}
}

func (s *AISystem) Phase() coresys.Phase { return coresys.PhaseThink }

func (s *AISystem) Update(dt time.Duration) {
	for id, left := range s.reload {
		if left -= dt; left <= 0 {
			delete(s.reload, id)
		} else {
			s.reload[id] = left
		}
	}

	s.acc += dt
	if s.acc < s.interval {
		return
	}
	s.acc = 0

	ships := s.m.Ships()
	if len(ships) < 2 {
		return
	}
	for _, npc := range ships[1:] {
		if !npc.IsAlive() {
			continue
		}
		s.think(npc, ships)
	}
}

func (s *AISystem) think(npc *world.Ship, ships []*world.Ship) {
	tile := s.m.TileSize()
	target := nearestHostile(npc, ships)

	ctx := scripting.NPCContext{
		Name:        npc.Name(),
		Health:      npc.Health(),
		MaxHealth:   s.m.Settings().Starting.Health,
		Ammo:        npc.Ammo(),
		AttackRange: s.m.Settings().Starting.AttackRangeTiles,
		CanFire:     npc.Ammo() > 0 && s.reload[npc.ID()] <= 0,
	}
	if target != nil {
		ctx.HasTarget = true
		ctx.TargetDist = npc.Position().Dst(target.Position()) / tile
	}

	switch action := s.brain.DecideNPC(ctx); {
	case target == nil || action == scripting.ActionIdle:
		npc.SetSpeed(0, 0)
	case action == scripting.ActionChase:
		s.chase(npc, target)
	case action == scripting.ActionAttack:
		s.attack(npc, target, ctx.CanFire)
	case action == scripting.ActionFlee:
		s.steer(npc, npc.Position().Sub(target.Position()))
	}
}

// chase takes the first step of the current route to the target.
func (s *AISystem) chase(npc, target *world.Ship) {
	step, ok := s.m.Path(npc.Position(), target.Position()).Next()
	if !ok {
		npc.SetSpeed(0, 0)
		return
	}
	s.steer(npc, step)
}

func (s *AISystem) attack(npc, target *world.Ship, canFire bool) {
	npc.SetSpeed(0, 0)
	dir := target.Position().Sub(npc.Position())
	if dir.IsZero() {
		return
	}
	npc.SetShipDirection(dir.Sign())
	if !canFire {
		return
	}
	if npc.ShootAt(dir) {
		s.reload[npc.ID()] = s.cooldown
		s.log.Debug("npc fired",
			zap.String("ship", npc.Name()),
			zap.String("target", target.Name()),
			zap.Int("ammo", npc.Ammo()))
	}
}

func (s *AISystem) steer(npc *world.Ship, dir geom.Vec2) {
	if dir.IsZero() {
		npc.SetSpeed(0, 0)
		return
	}
	npc.SetShipDirection(dir.Sign())
	v := dir.Nor().Scale(s.speed * s.m.TileSize())
	npc.SetSpeed(v.X, v.Y)
}

// nearestHostile returns the closest living ship of another faction.
func nearestHostile(self *world.Ship, ships []*world.Ship) *world.Ship {
	var best *world.Ship
	bestDist := 0.0
	for _, other := range ships {
		if other == self || !other.IsAlive() || other.FactionID() == self.FactionID() {
			continue
		}
		d := self.Position().Dst(other.Position())
		if best == nil || d < bestDist {
			best, bestDist = other, d
		}
	}
	return best
}
