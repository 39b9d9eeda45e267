package mastery

import (
	"fmt"
	"math"
	"testing"
	"time"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func testEngine() *Engine {
	return NewEngine(DefaultThresholds())
}

// makeAttempts builds n attempts at one tier with uniform stats.
func makeAttempts(n int, d Difficulty, solved bool, hints, incorrect int) []ProblemAttempt {
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	out := make([]ProblemAttempt, n)
	for i := range out {
		out[i] = ProblemAttempt{
			ProblemID:         fmt.Sprintf("p-%d", i+1),
			Difficulty:        d,
			Solved:            solved,
			TimeSpent:         45 * time.Second,
			HintsUsed:         hints,
			IncorrectAttempts: incorrect,
			Timestamp:         base.Add(time.Duration(i) * time.Minute),
		}
	}
	return out
}

func TestCalculateMastery_EmptyHistory(t *testing.T) {
	e := testEngine()
	if got := e.CalculateMastery(nil, DifficultyEasy); got != 0 {
		t.Errorf("CalculateMastery(empty) = %f, want 0", got)
	}
}

func TestCalculateMastery_AllSolvedClean(t *testing.T) {
	e := testEngine()
	attempts := makeAttempts(10, DifficultyEasy, true, 0, 0)
	if got := e.CalculateMastery(attempts, DifficultyEasy); !almostEqual(got, 1.0) {
		t.Errorf("CalculateMastery = %f, want 1.0", got)
	}
}

func TestCalculateMastery_HintPenaltyCapped(t *testing.T) {
	e := testEngine()
	// Average 5 hints would be a 0.5 penalty uncapped; the cap holds it at 0.3.
	attempts := makeAttempts(10, DifficultyEasy, true, 5, 0)
	if got := e.CalculateMastery(attempts, DifficultyEasy); !almostEqual(got, 0.7) {
		t.Errorf("CalculateMastery = %f, want 0.7", got)
	}
}

func TestCalculateMastery_IncorrectPenaltyCapped(t *testing.T) {
	e := testEngine()
	// Average 10 wrong attempts would be a 0.5 penalty uncapped; cap is 0.2.
	attempts := makeAttempts(10, DifficultyEasy, true, 0, 10)
	if got := e.CalculateMastery(attempts, DifficultyEasy); !almostEqual(got, 0.8) {
		t.Errorf("CalculateMastery = %f, want 0.8", got)
	}
}

func TestCalculateMastery_CombinedPenalties(t *testing.T) {
	e := testEngine()
	// solveRate 1.0, hint penalty 0.1*1=0.1, incorrect penalty 0.05*2=0.1.
	attempts := makeAttempts(10, DifficultyEasy, true, 1, 2)
	if got := e.CalculateMastery(attempts, DifficultyEasy); !almostEqual(got, 0.8) {
		t.Errorf("CalculateMastery = %f, want 0.8", got)
	}
}

func TestCalculateMastery_ClampedAtZero(t *testing.T) {
	e := testEngine()
	// Nothing solved plus max penalties would go negative without the clamp.
	attempts := makeAttempts(10, DifficultyEasy, false, 5, 10)
	if got := e.CalculateMastery(attempts, DifficultyEasy); got != 0 {
		t.Errorf("CalculateMastery = %f, want 0", got)
	}
}

func TestCalculateMastery_FiltersByDifficulty(t *testing.T) {
	e := testEngine()
	attempts := append(
		makeAttempts(5, DifficultyEasy, true, 0, 0),
		makeAttempts(5, DifficultyMedium, false, 0, 0)...,
	)
	if got := e.CalculateMastery(attempts, DifficultyEasy); !almostEqual(got, 1.0) {
		t.Errorf("easy mastery = %f, want 1.0 (medium failures must not count)", got)
	}
	if got := e.CalculateMastery(attempts, DifficultyMedium); got != 0 {
		t.Errorf("medium mastery = %f, want 0", got)
	}
}

func TestCalculateMastery_WindowKeepsLastN(t *testing.T) {
	e := testEngine()
	// 10 old failures followed by 10 recent solves: only the last 10
	// attempts at the tier feed the score.
	attempts := append(
		makeAttempts(10, DifficultyEasy, false, 0, 0),
		makeAttempts(10, DifficultyEasy, true, 0, 0)...,
	)
	if got := e.CalculateMastery(attempts, DifficultyEasy); !almostEqual(got, 1.0) {
		t.Errorf("CalculateMastery = %f, want 1.0 (old failures outside window)", got)
	}
}

func TestShouldAdvance_HardNever(t *testing.T) {
	e := testEngine()
	attempts := makeAttempts(10, DifficultyHard, true, 0, 0)
	if e.ShouldAdvance(attempts, DifficultyHard) {
		t.Error("hard must never advance")
	}
}

func TestShouldAdvance_BelowThreshold(t *testing.T) {
	e := testEngine()
	// 6/10 solved = 0.6 mastery, below the 0.75 threshold.
	attempts := append(
		makeAttempts(4, DifficultyMedium, false, 0, 0),
		makeAttempts(6, DifficultyMedium, true, 0, 0)...,
	)
	if e.ShouldAdvance(attempts, DifficultyMedium) {
		t.Error("mastery 0.6 < 0.75: expected false")
	}
}

func TestShouldAdvance_TrailingSolvedRequired(t *testing.T) {
	e := testEngine()

	// 9/10 solved with the failure early: mastery 0.9, trailing 3 solved.
	attempts := append(
		makeAttempts(1, DifficultyMedium, false, 0, 0),
		makeAttempts(9, DifficultyMedium, true, 0, 0)...,
	)
	if !e.ShouldAdvance(attempts, DifficultyMedium) {
		t.Error("trailing 3 solved with mastery 0.9: expected true")
	}

	// Same mastery but the failure sits inside the trailing three.
	attempts = append(
		makeAttempts(9, DifficultyMedium, true, 0, 0),
		makeAttempts(1, DifficultyMedium, false, 0, 0)...,
	)
	if e.ShouldAdvance(attempts, DifficultyMedium) {
		t.Error("unsolved attempt in the trailing 3: expected false")
	}
}

func TestShouldAdvance_NotEnoughAttempts(t *testing.T) {
	e := testEngine()
	attempts := makeAttempts(2, DifficultyEasy, true, 0, 0)
	if e.ShouldAdvance(attempts, DifficultyEasy) {
		t.Error("2 attempts with consecutive requirement 3: expected false")
	}
}

func TestRecommendDifficulty_AdvancesOneTier(t *testing.T) {
	e := testEngine()

	easy := makeAttempts(10, DifficultyEasy, true, 0, 0)
	if got := e.RecommendDifficulty(easy, DifficultyEasy); got != DifficultyMedium {
		t.Errorf("easy mastered: recommendation = %s, want medium", got)
	}

	medium := makeAttempts(10, DifficultyMedium, true, 0, 0)
	if got := e.RecommendDifficulty(medium, DifficultyMedium); got != DifficultyHard {
		t.Errorf("medium mastered: recommendation = %s, want hard", got)
	}

	hard := makeAttempts(10, DifficultyHard, true, 0, 0)
	if got := e.RecommendDifficulty(hard, DifficultyHard); got != DifficultyHard {
		t.Errorf("hard mastered: recommendation = %s, want hard (no higher tier)", got)
	}
}

func TestRecommendDifficulty_RegressWhenStruggling(t *testing.T) {
	e := testEngine()

	// Struggling at hard, solid at medium: step down.
	attempts := append(
		makeAttempts(10, DifficultyMedium, true, 0, 0),
		makeAttempts(10, DifficultyHard, false, 0, 0)...,
	)
	if got := e.RecommendDifficulty(attempts, DifficultyHard); got != DifficultyMedium {
		t.Errorf("struggling at hard: recommendation = %s, want medium", got)
	}

	// Struggling at medium, solid at easy: step down.
	attempts = append(
		makeAttempts(10, DifficultyEasy, true, 0, 0),
		makeAttempts(10, DifficultyMedium, false, 0, 0)...,
	)
	if got := e.RecommendDifficulty(attempts, DifficultyMedium); got != DifficultyEasy {
		t.Errorf("struggling at medium: recommendation = %s, want easy", got)
	}
}

func TestRecommendDifficulty_StruggleWithoutFallbackStays(t *testing.T) {
	e := testEngine()

	// Struggling at medium but easy mastery is also weak: stay put.
	attempts := makeAttempts(10, DifficultyMedium, false, 0, 0)
	if got := e.RecommendDifficulty(attempts, DifficultyMedium); got != DifficultyMedium {
		t.Errorf("no fallback competence: recommendation = %s, want medium", got)
	}
}

func TestRecommendDifficulty_HoldBetweenThresholds(t *testing.T) {
	e := testEngine()

	// 6/10 solved: not struggling, not advancing.
	attempts := append(
		makeAttempts(4, DifficultyMedium, false, 0, 0),
		makeAttempts(6, DifficultyMedium, true, 0, 0)...,
	)
	if got := e.RecommendDifficulty(attempts, DifficultyMedium); got != DifficultyMedium {
		t.Errorf("mid-range mastery: recommendation = %s, want medium", got)
	}
}
