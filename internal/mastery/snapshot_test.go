package mastery

import (
	"testing"
	"time"
)

func TestSnapshotRoundTrip(t *testing.T) {
	e := testEngine()
	state := NewMasteryState()
	for _, a := range makeAttempts(8, DifficultyEasy, true, 1, 0) {
		state = e.UpdateState(state, a)
	}
	for _, a := range makeAttempts(4, DifficultyMedium, false, 2, 1) {
		state = e.UpdateState(state, a)
	}

	revived := StateFromSnapshot(state.ToSnapshot())

	for _, d := range Difficulties {
		want := e.CalculateMastery(state.RecentAttempts, d)
		got := e.CalculateMastery(revived.RecentAttempts, d)
		if !almostEqual(got, want) {
			t.Errorf("%s mastery after round trip = %f, want %f", d, got, want)
		}
	}

	if revived.ConsecutiveSolved != state.ConsecutiveSolved {
		t.Errorf("consecutive = %d, want %d", revived.ConsecutiveSolved, state.ConsecutiveSolved)
	}
	if revived.Recommended != state.Recommended {
		t.Errorf("recommended = %s, want %s", revived.Recommended, state.Recommended)
	}
	if revived.ShouldAdvance != state.ShouldAdvance {
		t.Errorf("shouldAdvance = %v, want %v", revived.ShouldAdvance, state.ShouldAdvance)
	}
	if revived.Levels != state.Levels {
		t.Errorf("levels = %+v, want %+v", revived.Levels, state.Levels)
	}
}

func TestSnapshotRoundTrip_Timestamps(t *testing.T) {
	ts := time.Date(2025, 6, 1, 9, 30, 15, 500000000, time.UTC)
	state := MasteryState{
		RecentAttempts: []ProblemAttempt{{
			ProblemID:  "p-1",
			Difficulty: DifficultyMedium,
			Solved:     true,
			TimeSpent:  42 * time.Second,
			Timestamp:  ts,
		}},
		Recommended: DifficultyMedium,
	}

	revived := StateFromSnapshot(state.ToSnapshot())
	got := revived.RecentAttempts[0]

	if !got.Timestamp.Equal(ts) {
		t.Errorf("timestamp = %s, want %s", got.Timestamp, ts)
	}
	if got.TimeSpent != 42*time.Second {
		t.Errorf("timeSpent = %s, want 42s", got.TimeSpent)
	}
}

func TestStateFromSnapshot_NilYieldsDefault(t *testing.T) {
	state := StateFromSnapshot(nil)
	if state.Recommended != DifficultyEasy {
		t.Errorf("recommended = %s, want easy", state.Recommended)
	}
	if len(state.RecentAttempts) != 0 {
		t.Error("expected empty history")
	}
}

func TestStateFromSnapshot_BadTimestampKeptZero(t *testing.T) {
	e := testEngine()
	state := e.UpdateState(NewMasteryState(), makeAttempts(1, DifficultyEasy, true, 0, 0)[0])
	data := state.ToSnapshot()
	data.RecentAttempts[0].Timestamp = "not-a-time"

	revived := StateFromSnapshot(data)
	if !revived.RecentAttempts[0].Timestamp.IsZero() {
		t.Error("unparseable timestamp should revive as zero time")
	}
	if revived.RecentAttempts[0].ProblemID != "p-1" {
		t.Error("remaining fields must survive a bad timestamp")
	}
}
