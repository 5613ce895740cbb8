package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// sequenceCounter manages the global monotonic sequence number shared across
// events and snapshots. A snapshot records the sequence it covers, so
// events with a higher sequence are exactly the ones it has not seen.
//
// Uses raw SQL because the ent builder has no database-level atomic
// counter. The mutex serializes within the process; the RETURNING clause
// makes the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo with the ent SQL builder.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendStudyEvent(ctx context.Context, data StudyEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	q, args := builder().Insert(StudyEventsTable.Name).
		Columns("sequence", "timestamp", "session_id", "kind", "subject_id").
		Values(seqNum, time.Now().UTC(), data.SessionID, data.Kind, data.SubjectID).
		Query()
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("save study event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryStudyEvents(ctx context.Context, opts QueryOpts) ([]StudyEventRecord, error) {
	sel := builder().Select("sequence", "timestamp", "session_id", "kind", "subject_id").
		From(builder().Table(StudyEventsTable.Name)).
		OrderBy(entsql.Desc("sequence"))
	applyOpts(sel, opts)

	q, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query study events: %w", err)
	}
	defer rows.Close()

	var out []StudyEventRecord
	for rows.Next() {
		var rec StudyEventRecord
		if err := rows.Scan(&rec.Sequence, &rec.Timestamp, &rec.SessionID, &rec.Kind, &rec.SubjectID); err != nil {
			return nil, fmt.Errorf("scan study event: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *eventRepo) KindCounts(ctx context.Context) (map[string]int, error) {
	sel := builder().Select("kind", entsql.Count("*")).
		From(builder().Table(StudyEventsTable.Name)).
		GroupBy("kind")
	return r.counts(ctx, sel)
}

func (r *eventRepo) SubjectCounts(ctx context.Context, kind string) (map[string]int, error) {
	sel := builder().Select("subject_id", entsql.Count("*")).
		From(builder().Table(StudyEventsTable.Name)).
		Where(entsql.EQ("kind", kind)).
		GroupBy("subject_id")
	return r.counts(ctx, sel)
}

func (r *eventRepo) counts(ctx context.Context, sel *entsql.Selector) (map[string]int, error) {
	q, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("count study events: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var (
			key string
			n   int
		)
		if err := rows.Scan(&key, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		out[key] = n
	}
	return out, rows.Err()
}

func applyOpts(sel *entsql.Selector, opts QueryOpts) {
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("timestamp", opts.From))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE("timestamp", opts.To))
	}
	if opts.Kind != "" {
		sel.Where(entsql.EQ("kind", opts.Kind))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
}

// Current returns the last sequence number handed out (0 before any).
func (sc *sequenceCounter) Current(ctx context.Context) (int64, error) {
	var next int64
	err := sc.db.QueryRowContext(ctx, `SELECT next_val FROM global_sequence WHERE id = 1`).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("current sequence: %w", err)
	}
	return next - 1, nil
}
