package mastery

// historyMultiplier sizes the stored attempt history relative to the
// per-tier mastery window, so every tier keeps enough recent attempts.
const historyMultiplier = 3

// Levels holds the per-tier mastery scores, each clamped to [0,1].
type Levels struct {
	Easy   float64
	Medium float64
	Hard   float64
}

// Level returns the score for a tier.
func (l Levels) Level(d Difficulty) float64 {
	switch d {
	case DifficultyMedium:
		return l.Medium
	case DifficultyHard:
		return l.Hard
	default:
		return l.Easy
	}
}

// MasteryState is the rolling performance model for one student.
// UpdateState replaces it wholesale; nothing mutates it in place, which
// keeps every transition auditable.
type MasteryState struct {
	// RecentAttempts is the bounded attempt history, oldest evicted first.
	RecentAttempts []ProblemAttempt

	// Levels holds the current per-tier mastery scores.
	Levels Levels

	// ConsecutiveSolved counts solved attempts in a row across tiers.
	ConsecutiveSolved int

	// ShouldAdvance reports whether the last attempt's tier is ready to advance.
	ShouldAdvance bool

	// Recommended is the tier to present next.
	Recommended Difficulty
}

// NewMasteryState returns the zeroed default state for a fresh student.
func NewMasteryState() MasteryState {
	return MasteryState{Recommended: DifficultyEasy}
}

// UpdateState folds a new attempt into the state and returns the
// replacement. The input state is left untouched.
func (e *Engine) UpdateState(state MasteryState, attempt ProblemAttempt) MasteryState {
	history := make([]ProblemAttempt, 0, len(state.RecentAttempts)+1)
	history = append(history, state.RecentAttempts...)
	history = append(history, attempt)

	if limit := e.thresholds.MaxAttemptsWindow * historyMultiplier; limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}

	next := MasteryState{
		RecentAttempts: history,
		Levels: Levels{
			Easy:   e.CalculateMastery(history, DifficultyEasy),
			Medium: e.CalculateMastery(history, DifficultyMedium),
			Hard:   e.CalculateMastery(history, DifficultyHard),
		},
	}

	if attempt.Solved {
		next.ConsecutiveSolved = state.ConsecutiveSolved + 1
	} else {
		next.ConsecutiveSolved = 0
	}

	next.ShouldAdvance = e.ShouldAdvance(history, attempt.Difficulty)
	next.Recommended = e.RecommendDifficulty(history, attempt.Difficulty)

	return next
}
