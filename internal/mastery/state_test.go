package mastery

import (
	"testing"
	"time"
)

func TestUpdateState_AppendsAndScores(t *testing.T) {
	e := testEngine()
	state := NewMasteryState()

	attempt := makeAttempts(1, DifficultyEasy, true, 0, 0)[0]
	next := e.UpdateState(state, attempt)

	if len(next.RecentAttempts) != 1 {
		t.Fatalf("history length = %d, want 1", len(next.RecentAttempts))
	}
	if !almostEqual(next.Levels.Easy, 1.0) {
		t.Errorf("easy level = %f, want 1.0", next.Levels.Easy)
	}
	if next.Levels.Medium != 0 || next.Levels.Hard != 0 {
		t.Error("untouched tiers must stay at 0")
	}
}

func TestUpdateState_ConsecutiveSolved(t *testing.T) {
	e := testEngine()
	state := NewMasteryState()

	for i, a := range makeAttempts(3, DifficultyEasy, true, 0, 0) {
		state = e.UpdateState(state, a)
		if state.ConsecutiveSolved != i+1 {
			t.Errorf("after solve %d: consecutive = %d, want %d", i+1, state.ConsecutiveSolved, i+1)
		}
	}

	failed := makeAttempts(1, DifficultyEasy, false, 0, 0)[0]
	state = e.UpdateState(state, failed)
	if state.ConsecutiveSolved != 0 {
		t.Errorf("after failure: consecutive = %d, want 0", state.ConsecutiveSolved)
	}
}

func TestUpdateState_HistoryCap(t *testing.T) {
	e := testEngine()
	state := NewMasteryState()

	limit := e.Thresholds().MaxAttemptsWindow * historyMultiplier
	for _, a := range makeAttempts(limit+5, DifficultyEasy, true, 0, 0) {
		state = e.UpdateState(state, a)
	}

	if len(state.RecentAttempts) != limit {
		t.Errorf("history length = %d, want cap %d", len(state.RecentAttempts), limit)
	}
	// Oldest entries are the ones evicted.
	if state.RecentAttempts[0].ProblemID != "p-6" {
		t.Errorf("oldest kept = %s, want p-6", state.RecentAttempts[0].ProblemID)
	}
}

func TestUpdateState_DoesNotMutateInput(t *testing.T) {
	e := testEngine()
	state := NewMasteryState()
	for _, a := range makeAttempts(4, DifficultyEasy, true, 1, 0) {
		state = e.UpdateState(state, a)
	}

	beforeLen := len(state.RecentAttempts)
	beforeLevels := state.Levels
	beforeConsecutive := state.ConsecutiveSolved
	beforeFirst := state.RecentAttempts[0]

	_ = e.UpdateState(state, makeAttempts(1, DifficultyMedium, false, 0, 0)[0])

	if len(state.RecentAttempts) != beforeLen {
		t.Error("input history length changed")
	}
	if state.Levels != beforeLevels {
		t.Error("input levels changed")
	}
	if state.ConsecutiveSolved != beforeConsecutive {
		t.Error("input consecutive count changed")
	}
	if state.RecentAttempts[0] != beforeFirst {
		t.Error("input history contents changed")
	}
}

func TestUpdateState_RecommendationFollowsNewAttempt(t *testing.T) {
	e := testEngine()
	state := NewMasteryState()

	// Master easy; the final update should flag advancement and
	// recommend medium using the new attempt's tier as reference.
	for _, a := range makeAttempts(10, DifficultyEasy, true, 0, 0) {
		state = e.UpdateState(state, a)
	}

	if !state.ShouldAdvance {
		t.Error("expected ShouldAdvance after mastering easy")
	}
	if state.Recommended != DifficultyMedium {
		t.Errorf("recommended = %s, want medium", state.Recommended)
	}
}

func TestUpdateState_ZeroStateDefaults(t *testing.T) {
	state := NewMasteryState()
	if state.Recommended != DifficultyEasy {
		t.Errorf("fresh recommendation = %s, want easy", state.Recommended)
	}
	if len(state.RecentAttempts) != 0 || state.ConsecutiveSolved != 0 {
		t.Error("fresh state must be zeroed")
	}
}

func TestUpdateState_SharedHistoryAcrossTiers(t *testing.T) {
	e := testEngine()
	state := NewMasteryState()

	for _, a := range makeAttempts(5, DifficultyEasy, true, 0, 0) {
		state = e.UpdateState(state, a)
	}
	for _, a := range makeAttempts(5, DifficultyMedium, false, 0, 2) {
		state = e.UpdateState(state, a)
	}

	if !almostEqual(state.Levels.Easy, 1.0) {
		t.Errorf("easy level = %f, want 1.0", state.Levels.Easy)
	}
	if state.Levels.Medium >= 0.5 {
		t.Errorf("medium level = %f, want < 0.5", state.Levels.Medium)
	}

	// Last attempt was medium, so medium is the reference tier; the
	// student shows easy competence, so the engine steps them down.
	if state.Recommended != DifficultyEasy {
		t.Errorf("recommended = %s, want easy", state.Recommended)
	}
}

func TestLevels_Level(t *testing.T) {
	l := Levels{Easy: 0.9, Medium: 0.5, Hard: 0.1}
	if l.Level(DifficultyEasy) != 0.9 || l.Level(DifficultyMedium) != 0.5 || l.Level(DifficultyHard) != 0.1 {
		t.Error("Level must select the matching tier")
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
	}{
		{"easy", DifficultyEasy},
		{"medium", DifficultyMedium},
		{"hard", DifficultyHard},
		{"", DifficultyEasy},
		{"impossible", DifficultyEasy},
	}
	for _, tt := range tests {
		if got := ParseDifficulty(tt.in); got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestProblemAttempt_ValueSemantics(t *testing.T) {
	a := ProblemAttempt{
		ProblemID:  "p-1",
		Difficulty: DifficultyEasy,
		Solved:     true,
		TimeSpent:  30 * time.Second,
		Timestamp:  time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
	b := a
	b.Solved = false
	if !a.Solved {
		t.Error("copying an attempt must not alias the original")
	}
}
