package mastery

import "time"

// Difficulty is a problem difficulty tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the tiers in ascending order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParseDifficulty revives a Difficulty from its string form, falling
// back to easy for unknown input.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(s) {
	case DifficultyMedium:
		return DifficultyMedium
	case DifficultyHard:
		return DifficultyHard
	default:
		return DifficultyEasy
	}
}

// ProblemAttempt records one completed (or abandoned) problem. Created
// once by the orchestrator and never mutated afterwards.
type ProblemAttempt struct {
	ProblemID         string
	Difficulty        Difficulty
	Solved            bool
	TimeSpent         time.Duration
	HintsUsed         int
	IncorrectAttempts int
	Timestamp         time.Time
}

// Thresholds configures when a student advances to the next tier.
type Thresholds struct {
	// AdvanceThreshold is the minimum mastery required to advance.
	AdvanceThreshold float64

	// ConsecutiveSolvedToAdvance is how many trailing attempts at the
	// current tier must all be solved.
	ConsecutiveSolvedToAdvance int

	// MaxAttemptsWindow is how many most-recent per-tier attempts feed
	// the mastery computation.
	MaxAttemptsWindow int
}

// DefaultThresholds returns the standard advancement criteria.
func DefaultThresholds() Thresholds {
	return Thresholds{
		AdvanceThreshold:           0.75,
		ConsecutiveSolvedToAdvance: 3,
		MaxAttemptsWindow:          10,
	}
}
