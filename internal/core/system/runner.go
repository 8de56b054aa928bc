package system

import "time"

// Runner drives one simulation step: every registered system, bucketed by
// phase, runs in phase order and then in the order it was registered.
type Runner struct {
	phases [phaseCount][]System
	ticks  uint64
}

func NewRunner() *Runner { return &Runner{} }

// Register adds s to its phase. Registering after the first tick is fine;
// s joins from the next step.
func (r *Runner) Register(s System) {
	p := s.Phase()
	if p < 0 || p >= phaseCount {
		panic("system: phase out of range")
	}
	r.phases[p] = append(r.phases[p], s)
}

// Tick advances the simulation by dt.
func (r *Runner) Tick(dt time.Duration) {
	for p := range r.phases {
		r.run(Phase(p), dt)
	}
	r.ticks++
}

// TickPhase runs a single phase without counting a step. Tests use it to
// drive one stage in isolation.
func (r *Runner) TickPhase(phase Phase, dt time.Duration) {
	if phase >= 0 && phase < phaseCount {
		r.run(phase, dt)
	}
}

func (r *Runner) run(p Phase, dt time.Duration) {
	for _, s := range r.phases[p] {
		s.Update(dt)
	}
}

// Ticks is the number of completed steps.
func (r *Runner) Ticks() uint64 { return r.ticks }

// Len is the number of registered systems.
func (r *Runner) Len() int {
	n := 0
	for _, ss := range r.phases {
		n += len(ss)
	}
	return n
}
