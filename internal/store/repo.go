package store

import (
	"context"
	"time"
)

// AttemptData is the serialized form of a problem attempt inside a snapshot.
type AttemptData struct {
	ProblemID         string `json:"problem_id"`
	Difficulty        string `json:"difficulty"`
	Solved            bool   `json:"solved"`
	TimeSpentMs       int64  `json:"time_spent_ms"`
	HintsUsed         int    `json:"hints_used"`
	IncorrectAttempts int    `json:"incorrect_attempts"`
	Timestamp         string `json:"timestamp"` // RFC3339
}

// MasteryStateData is the serialized mastery state inside a snapshot.
type MasteryStateData struct {
	RecentAttempts    []AttemptData      `json:"recent_attempts"`
	Levels            map[string]float64 `json:"levels"`
	ConsecutiveSolved int                `json:"consecutive_solved"`
	ShouldAdvance     bool               `json:"should_advance"`
	Recommended       string             `json:"recommended"`
}

// SnapshotData captures the full student state at a point in time.
type SnapshotData struct {
	Version int               `json:"version"`
	Mastery *MasteryStateData `json:"mastery,omitempty"`
}

// Snapshot represents a point-in-time capture of student state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages student state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AttemptEventData captures one completed problem attempt.
type AttemptEventData struct {
	SessionID         string
	ProblemID         string
	Difficulty        string
	Solved            bool
	TimeMs            int64
	HintsUsed         int
	IncorrectAttempts int
}

// QuestionEventData captures one proactive question granted by the gate.
type QuestionEventData struct {
	SessionID       string
	QuestionText    string
	ExpectsResponse bool
	State           string
	Trigger         string
}

// SessionEventData records a session lifecycle event (start/end).
type SessionEventData struct {
	SessionID      string
	Action         string
	AttemptsServed int
	SolvedCount    int
	QuestionsAsked int
	DurationSecs   int
}

// AttemptTotals aggregates attempt counts for one difficulty tier.
type AttemptTotals struct {
	Difficulty string
	Attempts   int
	Solved     int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttempt records a completed problem attempt.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// AppendQuestion records a granted proactive question.
	AppendQuestion(ctx context.Context, data QuestionEventData) error

	// AppendSession records a session start or end.
	AppendSession(ctx context.Context, data SessionEventData) error

	// RecentAttempts returns up to limit attempts, most recent first.
	RecentAttempts(ctx context.Context, limit int) ([]AttemptEventData, error)

	// AttemptTotals aggregates attempt and solved counts per difficulty.
	AttemptTotals(ctx context.Context) ([]AttemptTotals, error)

	// QuestionCount returns the total number of recorded questions.
	QuestionCount(ctx context.Context) (int, error)
}
