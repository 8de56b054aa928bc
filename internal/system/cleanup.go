package system

import (
	"time"

	"github.com/yorkpirates/seacore/internal/core/ecs"
	coresys "github.com/yorkpirates/seacore/internal/core/system"
	"go.uber.org/zap"
)

// CleanupSystem removes entities queued for destruction, such as collected
// pickups, once every other phase is done with them. Phase 6 (Cleanup).
type CleanupSystem struct {
	world   *ecs.World
	log     *zap.Logger
	removed int
}

func NewCleanupSystem(world *ecs.World, log *zap.Logger) *CleanupSystem {
	return &CleanupSystem{world: world, log: log}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	before := s.world.Len()
	s.world.FlushDestroyQueue()
	if n := before - s.world.Len(); n > 0 {
		s.removed += n
		s.log.Debug("entities removed", zap.Int("count", n), zap.Int("live", s.world.Len()))
	}
}

// Removed is the running total of destroyed entities.
func (s *CleanupSystem) Removed() int { return s.removed }
