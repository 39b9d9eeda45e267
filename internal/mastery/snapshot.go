package mastery

import (
	"time"

	"github.com/abhisek/slate/internal/store"
)

// ToSnapshot exports the state for persistence. Timestamps are stored
// as RFC3339 strings so snapshots stay readable in the database.
func (s MasteryState) ToSnapshot() *store.MasteryStateData {
	data := &store.MasteryStateData{
		Levels: map[string]float64{
			string(DifficultyEasy):   s.Levels.Easy,
			string(DifficultyMedium): s.Levels.Medium,
			string(DifficultyHard):   s.Levels.Hard,
		},
		ConsecutiveSolved: s.ConsecutiveSolved,
		ShouldAdvance:     s.ShouldAdvance,
		Recommended:       string(s.Recommended),
	}
	for _, a := range s.RecentAttempts {
		data.RecentAttempts = append(data.RecentAttempts, store.AttemptData{
			ProblemID:         a.ProblemID,
			Difficulty:        string(a.Difficulty),
			Solved:            a.Solved,
			TimeSpentMs:       a.TimeSpent.Milliseconds(),
			HintsUsed:         a.HintsUsed,
			IncorrectAttempts: a.IncorrectAttempts,
			Timestamp:         a.Timestamp.UTC().Format(time.RFC3339Nano),
		})
	}
	return data
}

// StateFromSnapshot revives a persisted state. Nil or partial input
// yields the zeroed default rather than an error; attempts with
// unparseable timestamps keep the zero time.
func StateFromSnapshot(data *store.MasteryStateData) MasteryState {
	if data == nil {
		return NewMasteryState()
	}

	state := MasteryState{
		ConsecutiveSolved: data.ConsecutiveSolved,
		ShouldAdvance:     data.ShouldAdvance,
		Recommended:       ParseDifficulty(data.Recommended),
	}
	if data.Levels != nil {
		state.Levels = Levels{
			Easy:   data.Levels[string(DifficultyEasy)],
			Medium: data.Levels[string(DifficultyMedium)],
			Hard:   data.Levels[string(DifficultyHard)],
		}
	}
	for _, a := range data.RecentAttempts {
		attempt := ProblemAttempt{
			ProblemID:         a.ProblemID,
			Difficulty:        ParseDifficulty(a.Difficulty),
			Solved:            a.Solved,
			TimeSpent:         time.Duration(a.TimeSpentMs) * time.Millisecond,
			HintsUsed:         a.HintsUsed,
			IncorrectAttempts: a.IncorrectAttempts,
		}
		if ts, err := time.Parse(time.RFC3339Nano, a.Timestamp); err == nil {
			attempt.Timestamp = ts
		}
		state.RecentAttempts = append(state.RecentAttempts, attempt)
	}
	return state
}
