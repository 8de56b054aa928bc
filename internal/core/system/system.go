package system

import "time"

// Phase is a stage of the simulation step. Lower phases run first.
type Phase int

const (
	PhaseThink      Phase = iota // NPCs pick an action
	PhasePreUpdate               // last step's bus events reach subscribers
	PhaseUpdate                  // bodies move, cannonballs age
	PhasePostUpdate              // overlaps fire callbacks, sunk ships settle
	PhaseOutput                  // free for render or snapshot collaborators
	PhasePersist                 // combat journal flush
	PhaseCleanup                 // queued entities leave the world

	phaseCount
)

// System is one stage worker of the sea simulation.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
