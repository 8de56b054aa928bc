package persist

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Journal entry kinds.
const (
	KindFired      = "fired"
	KindDamaged    = "damaged"
	KindSunk       = "sunk"
	KindCollected  = "collected"
	KindSpriteMiss = "sprite_miss"
)

// JournalEntry is one row of the combat journal.
type JournalEntry struct {
	SessionID uuid.UUID
	Tick      uint64
	Kind      string
	Actor     string
	Target    string
	Amount    int
	Detail    string
	At        time.Time
}

type JournalRepo struct {
	db *DB
}

func NewJournalRepo(db *DB) *JournalRepo {
	return &JournalRepo{db: db}
}

// WriteJournal writes a batch in a single transaction. Nothing is written
// when any insert fails.
func (r *JournalRepo) WriteJournal(ctx context.Context, entries []JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("journal begin: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, e := range entries {
		if _, err := tx.Exec(ctx,
			`INSERT INTO combat_journal (session_id, tick, kind, actor, target, amount, detail, logged_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			e.SessionID, int64(e.Tick), e.Kind, e.Actor, e.Target, e.Amount, e.Detail, e.At,
		); err != nil {
			return fmt.Errorf("journal insert: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("journal commit: %w", err)
	}
	return nil
}

// CountSession returns how many rows were journalled for a session.
func (r *JournalRepo) CountSession(ctx context.Context, session uuid.UUID) (int, error) {
	var n int
	err := r.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM combat_journal WHERE session_id = $1`, session,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("journal count: %w", err)
	}
	return n, nil
}
