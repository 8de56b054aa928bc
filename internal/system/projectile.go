package system

import (
	"time"

	coresys "github.com/yorkpirates/seacore/internal/core/system"
	"github.com/yorkpirates/seacore/internal/world"
)

// ProjectileSystem counts down cannonball flight time. Phase 2 (Update).
type ProjectileSystem struct {
	m *world.Manager
}

func NewProjectileSystem(m *world.Manager) *ProjectileSystem {
	return &ProjectileSystem{m: m}
}

func (s *ProjectileSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *ProjectileSystem) Update(dt time.Duration) {
	pool := s.m.Pool()
	if pool == nil {
		return
	}
	for _, b := range pool.Balls() {
		b.Tick(dt)
	}
}
