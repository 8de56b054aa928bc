package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	phase Phase
	name  string
	log   *[]string
}

func (r recorder) Phase() Phase           { return r.phase }
func (r recorder) Update(_ time.Duration) { *r.log = append(*r.log, r.name) }

func TestRunnerPhaseOrder(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(recorder{PhaseCleanup, "cleanup", &log})
	r.Register(recorder{PhaseThink, "ai", &log})
	r.Register(recorder{PhaseUpdate, "move", &log})
	r.Register(recorder{PhaseUpdate, "projectiles", &log})

	r.Tick(time.Second / 60)
	assert.Equal(t, []string{"ai", "move", "projectiles", "cleanup"}, log)
	assert.Equal(t, uint64(1), r.Ticks())
}

func TestRunnerTickPhase(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(recorder{PhaseThink, "ai", &log})
	r.Register(recorder{PhaseUpdate, "move", &log})

	r.TickPhase(PhaseUpdate, time.Millisecond)
	assert.Equal(t, []string{"move"}, log)
	assert.Equal(t, uint64(0), r.Ticks())
}

type badPhase struct{}

func (badPhase) Phase() Phase           { return phaseCount }
func (badPhase) Update(_ time.Duration) {}

func TestRunnerRejectsUnknownPhase(t *testing.T) {
	r := NewRunner()
	assert.Panics(t, func() { r.Register(badPhase{}) })
	assert.Equal(t, 0, r.Len())

	var log []string
	r.Register(recorder{PhaseOutput, "snapshot", &log})
	r.TickPhase(phaseCount, time.Millisecond)
	assert.Empty(t, log)
	assert.Equal(t, 1, r.Len())
}
