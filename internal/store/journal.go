package store

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// SnapshotKeep is how many progress snapshots survive a prune.
const SnapshotKeep = 5

// Journal records one study session: every action is appended as an
// event and each completion change also writes a progress snapshot.
type Journal struct {
	snaps     SnapshotRepo
	events    EventRepo
	seq       *sequenceCounter
	sessionID string

	// Saves arrive from concurrent commands; mu orders them and revision
	// is the newest completion set written so far.
	mu       sync.Mutex
	revision int64
}

// Journal returns a journal for sessionID.
func (s *Store) Journal(sessionID string) *Journal {
	return &Journal{
		snaps:     s.SnapshotRepo(),
		events:    s.EventRepo(),
		seq:       s.seq,
		sessionID: sessionID,
	}
}

// SessionID returns the session the journal writes under.
func (j *Journal) SessionID() string {
	return j.sessionID
}

// Completed returns the lesson ids of the latest snapshot.
func (j *Journal) Completed(ctx context.Context) ([]string, error) {
	snap, err := j.snaps.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, nil
	}
	return snap.Data.Completed, nil
}

// Start marks the beginning of the session.
func (j *Journal) Start(ctx context.Context) error {
	return j.events.AppendStudyEvent(ctx, StudyEventData{SessionID: j.sessionID, Kind: KindSessionStarted})
}

// SetupViewed records that a setup's detail was opened.
func (j *Journal) SetupViewed(ctx context.Context, setupID string) error {
	return j.events.AppendStudyEvent(ctx, StudyEventData{SessionID: j.sessionID, Kind: KindSetupViewed, SubjectID: setupID})
}

// LessonToggled records a completion change and snapshots the full set.
// revision increases with every toggle in the session; a set older than
// one already saved is not snapshotted, so the newest toggle always wins.
func (j *Journal) LessonToggled(ctx context.Context, revision int64, lessonID string, done bool, completed []string) error {
	kind := KindLessonUncompleted
	if done {
		kind = KindLessonCompleted
	}
	if err := j.events.AppendStudyEvent(ctx, StudyEventData{SessionID: j.sessionID, Kind: kind, SubjectID: lessonID}); err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if revision <= j.revision {
		return nil
	}

	seq, err := j.seq.Current(ctx)
	if err != nil {
		return err
	}
	err = j.snaps.Save(ctx, &Snapshot{
		Sequence:  seq,
		Timestamp: time.Now().UTC(),
		Data:      SnapshotData{Version: 1, Completed: completed},
	})
	if err != nil {
		return err
	}
	j.revision = revision
	if err := j.snaps.Prune(ctx, SnapshotKeep); err != nil {
		return fmt.Errorf("prune: %w", err)
	}
	return nil
}
