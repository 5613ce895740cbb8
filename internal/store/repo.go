package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
	Kind   string    // exact kind match ("" = any)
}

// SnapshotData captures the learner state at a point in time.
type SnapshotData struct {
	Version int `json:"version"`
	// Completed holds the completed lesson ids, sorted.
	Completed []string `json:"completed,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error

	// Count returns the number of stored snapshots.
	Count(ctx context.Context) (int, error)
}

// Study event kinds.
const (
	KindSetupViewed       = "setup_viewed"
	KindLessonCompleted   = "lesson_completed"
	KindLessonUncompleted = "lesson_uncompleted"
	KindSessionStarted    = "session_started"
)

// StudyEventData captures one study action.
type StudyEventData struct {
	SessionID string
	Kind      string
	SubjectID string // setup or lesson id; empty for session events
}

// StudyEventRecord is a stored study event.
type StudyEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	SessionID string
	Kind      string
	SubjectID string
}

// EventRepo provides append and query access to study events.
type EventRepo interface {
	// AppendStudyEvent records a study event under the next global sequence.
	AppendStudyEvent(ctx context.Context, data StudyEventData) error

	// QueryStudyEvents returns events newest first.
	QueryStudyEvents(ctx context.Context, opts QueryOpts) ([]StudyEventRecord, error)

	// KindCounts returns the number of events per kind.
	KindCounts(ctx context.Context) (map[string]int, error)

	// SubjectCounts returns how often each subject occurs for kind.
	SubjectCounts(ctx context.Context, kind string) (map[string]int, error)
}
