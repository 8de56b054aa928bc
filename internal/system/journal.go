package system

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yorkpirates/seacore/internal/core/event"
	coresys "github.com/yorkpirates/seacore/internal/core/system"
	"github.com/yorkpirates/seacore/internal/persist"
	"go.uber.org/zap"
)

// JournalSink stores journal batches. *persist.JournalRepo satisfies it.
type JournalSink interface {
	WriteJournal(ctx context.Context, entries []persist.JournalEntry) error
}

// LogSink writes the journal to the logger when no database is configured.
type LogSink struct {
	Log *zap.Logger
}

func (s LogSink) WriteJournal(_ context.Context, entries []persist.JournalEntry) error {
	for _, e := range entries {
		s.Log.Info("journal",
			zap.Uint64("tick", e.Tick),
			zap.String("kind", e.Kind),
			zap.String("actor", e.Actor),
			zap.String("target", e.Target),
			zap.Int("amount", e.Amount),
			zap.String("detail", e.Detail))
	}
	return nil
}

// maxBacklog bounds how many unwritten entries survive failed flushes.
const maxBacklog = 4096

// JournalSystem records combat events and writes them out in batches.
// Phase 5 (Persist).
type JournalSystem struct {
	sink     JournalSink
	session  uuid.UUID
	log      *zap.Logger
	interval time.Duration
	batch    int

	tick    uint64
	elapsed time.Duration
	pending []persist.JournalEntry
	written int
	dropped int
}

func NewJournalSystem(bus *event.Bus, sink JournalSink, session uuid.UUID, log *zap.Logger, interval time.Duration, batch int) *JournalSystem {
	s := &JournalSystem{
		sink:     sink,
		session:  session,
		log:      log,
		interval: interval,
		batch:    batch,
	}

	event.Subscribe(bus, func(e event.ProjectileFired) {
		detail := fmt.Sprintf("slot=%d dir=(%.2f,%.2f)", e.Slot, e.Dir.X, e.Dir.Y)
		if e.Overwrote {
			detail += " overwrote"
		}
		s.record(persist.KindFired, e.ShooterName, "", 0, detail)
	})
	event.Subscribe(bus, func(e event.ShipDamaged) {
		s.record(persist.KindDamaged, e.AttackerName, e.TargetName, e.Amount,
			fmt.Sprintf("health=%d", e.HealthAfter))
	})
	event.Subscribe(bus, func(e event.ShipSunk) {
		s.record(persist.KindSunk, e.KillerName, e.ShipName, e.Plunder,
			fmt.Sprintf("xp=%d player=%t", e.XP, e.Player))
	})
	event.Subscribe(bus, func(e event.PickupCollected) {
		s.record(persist.KindCollected, e.Collector, e.Pickup, e.Amount, e.Kind)
	})
	event.Subscribe(bus, func(e event.SpriteMissing) {
		s.record(persist.KindSpriteMiss, e.EntityName, "", 0, e.Key)
	})
	return s
}

func (s *JournalSystem) Phase() coresys.Phase { return coresys.PhasePersist }

func (s *JournalSystem) Update(dt time.Duration) {
	s.tick++
	s.elapsed += dt
	if s.elapsed < s.interval && len(s.pending) < s.batch {
		return
	}
	s.elapsed = 0
	s.Flush(context.Background())
}

func (s *JournalSystem) record(kind, actor, target string, amount int, detail string) {
	s.pending = append(s.pending, persist.JournalEntry{
		SessionID: s.session,
		Tick:      s.tick,
		Kind:      kind,
		Actor:     actor,
		Target:    target,
		Amount:    amount,
		Detail:    detail,
		At:        time.Now(),
	})
}

// Flush writes everything pending. Failed entries stay queued for the next
// flush, up to maxBacklog.
func (s *JournalSystem) Flush(ctx context.Context) {
	if len(s.pending) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.sink.WriteJournal(ctx, s.pending); err != nil {
		s.log.Error("journal flush failed", zap.Error(err), zap.Int("pending", len(s.pending)))
		if over := len(s.pending) - maxBacklog; over > 0 {
			s.dropped += over
			s.pending = append(s.pending[:0], s.pending[over:]...)
		}
		return
	}
	s.written += len(s.pending)
	s.pending = s.pending[:0]
}

func (s *JournalSystem) Pending() int { return len(s.pending) }
func (s *JournalSystem) Written() int { return s.written }
func (s *JournalSystem) Dropped() int { return s.dropped }
