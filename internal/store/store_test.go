package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot with mastery state.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Mastery: &MasteryStateData{
				Levels:            map[string]float64{"easy": 0.8},
				ConsecutiveSolved: 3,
				Recommended:       "medium",
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Mastery == nil {
		t.Fatal("expected mastery data to survive the round trip")
	}
	if snap.Data.Mastery.Levels["easy"] != 0.8 {
		t.Errorf("easy level = %f, want 0.8", snap.Data.Mastery.Levels["easy"])
	}
	if snap.Data.Mastery.Recommended != "medium" {
		t.Errorf("recommended = %q, want medium", snap.Data.Mastery.Recommended)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	n, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 5 {
		t.Errorf("snapshots after prune = %d, want 5", n)
	}
}

func TestAppendAttemptAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	attempts := []AttemptEventData{
		{SessionID: "s1", ProblemID: "p1", Difficulty: "easy", Solved: true, TimeMs: 30000},
		{SessionID: "s1", ProblemID: "p2", Difficulty: "easy", Solved: false, TimeMs: 60000, HintsUsed: 2, IncorrectAttempts: 1},
		{SessionID: "s1", ProblemID: "p3", Difficulty: "medium", Solved: true, TimeMs: 45000},
	}
	for _, a := range attempts {
		if err := repo.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append %s: %v", a.ProblemID, err)
		}
	}

	recent, err := repo.RecentAttempts(ctx, 2)
	if err != nil {
		t.Fatalf("recent attempts: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent length = %d, want 2", len(recent))
	}
	// Most recent first.
	if recent[0].ProblemID != "p3" || recent[1].ProblemID != "p2" {
		t.Errorf("recent order = %s, %s; want p3, p2", recent[0].ProblemID, recent[1].ProblemID)
	}

	totals, err := repo.AttemptTotals(ctx)
	if err != nil {
		t.Fatalf("attempt totals: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("totals length = %d, want 2", len(totals))
	}
	if totals[0].Difficulty != "easy" || totals[0].Attempts != 2 || totals[0].Solved != 1 {
		t.Errorf("easy totals = %+v", totals[0])
	}
	if totals[1].Difficulty != "medium" || totals[1].Attempts != 1 || totals[1].Solved != 1 {
		t.Errorf("medium totals = %+v", totals[1])
	}
}

func TestAppendQuestionAndCount(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendQuestion(ctx, QuestionEventData{
		SessionID:    "s1",
		QuestionText: "what comes next?",
		State:        "working",
		Trigger:      "stuck",
	})
	if err != nil {
		t.Fatalf("append question: %v", err)
	}

	n, err := repo.QuestionCount(ctx)
	if err != nil {
		t.Fatalf("question count: %v", err)
	}
	if n != 1 {
		t.Errorf("question count = %d, want 1", n)
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSession(ctx, SessionEventData{SessionID: "s1", Action: "start"}); err != nil {
		t.Fatalf("append session: %v", err)
	}
	if err := repo.AppendAttempt(ctx, AttemptEventData{SessionID: "s1", ProblemID: "p1", Difficulty: "easy", Solved: true}); err != nil {
		t.Fatalf("append attempt: %v", err)
	}
	if err := repo.AppendQuestion(ctx, QuestionEventData{SessionID: "s1", QuestionText: "q", State: "working", Trigger: "stuck"}); err != nil {
		t.Fatalf("append question: %v", err)
	}

	se, err := s.Client().SessionEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query session event: %v", err)
	}
	ae, err := s.Client().AttemptEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query attempt event: %v", err)
	}
	qe, err := s.Client().QuestionEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query question event: %v", err)
	}

	if !(se.Sequence < ae.Sequence && ae.Sequence < qe.Sequence) {
		t.Errorf("sequences not strictly increasing across types: %d, %d, %d",
			se.Sequence, ae.Sequence, qe.Sequence)
	}
}
