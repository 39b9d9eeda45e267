package mastery

const (
	// hintPenaltyRate and hintPenaltyCap shape how hint usage degrades mastery.
	hintPenaltyRate = 0.1
	hintPenaltyCap  = 0.3

	// incorrectPenaltyRate and incorrectPenaltyCap shape the wrong-attempt penalty.
	incorrectPenaltyRate = 0.05
	incorrectPenaltyCap  = 0.2

	// strugglingThreshold marks a tier the student is struggling at.
	strugglingThreshold = 0.5

	// regressCompetence is the lower-tier mastery needed before stepping down.
	regressCompetence = 0.6
)

// Engine turns an attempt history into difficulty recommendations using
// a small explainable scoring function. All methods are pure reads of
// their inputs.
type Engine struct {
	thresholds Thresholds
}

// NewEngine creates an engine with the given advancement criteria.
func NewEngine(thresholds Thresholds) *Engine {
	return &Engine{thresholds: thresholds}
}

// Thresholds returns the engine's advancement criteria.
func (e *Engine) Thresholds() Thresholds {
	return e.thresholds
}

// CalculateMastery computes the 0-1 mastery score for a difficulty tier.
// Solve rate dominates; hints and wrong attempts degrade the score but
// their penalties are capped, so a student who always eventually solves
// is never scored below solveRate - 0.5.
func (e *Engine) CalculateMastery(attempts []ProblemAttempt, difficulty Difficulty) float64 {
	window := e.tierWindow(attempts, difficulty)
	if len(window) == 0 {
		return 0
	}

	solved := 0
	totalHints := 0
	totalIncorrect := 0
	for _, a := range window {
		if a.Solved {
			solved++
		}
		totalHints += a.HintsUsed
		totalIncorrect += a.IncorrectAttempts
	}

	n := float64(len(window))
	solveRate := float64(solved) / n
	hintPenalty := min(float64(totalHints)/n*hintPenaltyRate, hintPenaltyCap)
	incorrectPenalty := min(float64(totalIncorrect)/n*incorrectPenaltyRate, incorrectPenaltyCap)

	return clamp(solveRate-hintPenalty-incorrectPenalty, 0, 1)
}

// ShouldAdvance reports whether the student has earned the next tier.
// Hard never advances. Mastery must meet the advance threshold and the
// trailing N attempts at the tier must all be solved.
func (e *Engine) ShouldAdvance(attempts []ProblemAttempt, current Difficulty) bool {
	if current == DifficultyHard {
		return false
	}

	if e.CalculateMastery(attempts, current) < e.thresholds.AdvanceThreshold {
		return false
	}

	tier := filterByDifficulty(attempts, current)
	need := e.thresholds.ConsecutiveSolvedToAdvance
	if len(tier) < need {
		return false
	}
	for _, a := range tier[len(tier)-need:] {
		if !a.Solved {
			return false
		}
	}
	return true
}

// RecommendDifficulty picks the tier to present next. A struggling
// student steps down one tier when they have shown competence there;
// an advancing student steps up one tier; everyone else stays put.
func (e *Engine) RecommendDifficulty(attempts []ProblemAttempt, current Difficulty) Difficulty {
	if e.CalculateMastery(attempts, current) < strugglingThreshold {
		switch current {
		case DifficultyHard:
			if e.CalculateMastery(attempts, DifficultyMedium) > regressCompetence {
				return DifficultyMedium
			}
		case DifficultyMedium:
			if e.CalculateMastery(attempts, DifficultyEasy) > regressCompetence {
				return DifficultyEasy
			}
		}
		return current
	}

	if e.ShouldAdvance(attempts, current) {
		switch current {
		case DifficultyEasy:
			return DifficultyMedium
		case DifficultyMedium:
			return DifficultyHard
		}
	}

	return current
}

// tierWindow filters attempts to a tier and keeps the last
// MaxAttemptsWindow of them. Input order is trusted as-is; attempts are
// not re-sorted by timestamp.
func (e *Engine) tierWindow(attempts []ProblemAttempt, difficulty Difficulty) []ProblemAttempt {
	tier := filterByDifficulty(attempts, difficulty)
	if w := e.thresholds.MaxAttemptsWindow; w > 0 && len(tier) > w {
		tier = tier[len(tier)-w:]
	}
	return tier
}

func filterByDifficulty(attempts []ProblemAttempt, difficulty Difficulty) []ProblemAttempt {
	var out []ProblemAttempt
	for _, a := range attempts {
		if a.Difficulty == difficulty {
			out = append(out, a)
		}
	}
	return out
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
