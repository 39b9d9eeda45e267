package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/slate/internal/dialogue"
	"github.com/abhisek/slate/internal/mastery"
	"github.com/abhisek/slate/internal/session"
	"github.com/abhisek/slate/internal/store"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a scripted student session through the policy engine",
	Long: "Simulate drives a pseudo-student through the dialogue gate and " +
		"mastery engine with a seeded RNG, printing every policy decision. " +
		"Useful for tuning thresholds without a real session.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		problems, _ := cmd.Flags().GetInt("problems")
		seed, _ := cmd.Flags().GetInt64("seed")
		persist, _ := cmd.Flags().GetBool("persist")

		opts := session.Options{
			Engine: mastery.NewEngine(cfg.Thresholds),
		}

		if persist {
			dbPath, err := resolveDBPath(cmd, cfg)
			if err != nil {
				return fmt.Errorf("resolve DB path: %w", err)
			}
			st, err := store.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer st.Close()
			opts.Events = st.EventRepo()
			opts.Snapshots = st.SnapshotRepo()
		}

		rng := rand.New(rand.NewSource(seed))
		clock := newSimClock(time.Now())
		opts.Now = clock.Now
		opts.Gate = dialogue.NewGate(cfg.Dialogue,
			dialogue.WithClock(clock.Now),
			dialogue.WithRand(rng.Float64),
		)

		return runSimulation(cmd.Context(), opts, rng, clock, problems)
	},
}

func init() {
	simulateCmd.Flags().Int("problems", 20, "Number of problems to simulate")
	simulateCmd.Flags().Int64("seed", 1, "RNG seed for a reproducible run")
	simulateCmd.Flags().Bool("persist", false, "Record events and snapshots to the database")
}

// simClock is a controllable clock for the simulated session.
type simClock struct {
	t time.Time
}

func newSimClock(start time.Time) *simClock {
	return &simClock{t: start}
}

func (c *simClock) Now() time.Time {
	return c.t
}

func (c *simClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// runSimulation drives a pseudo-student whose latent ability grows with
// practice, so early attempts fail often and later ones mostly solve.
func runSimulation(ctx context.Context, opts session.Options, rng *rand.Rand, clock *simClock, problems int) error {
	sess, err := session.New(ctx, opts)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tDIFFICULTY\tSOLVED\tHINTS\tWRONG\tASKED\tNEXT")

	ability := 0.35
	for i := 0; i < problems; i++ {
		difficulty := sess.Recommended()
		sess.StartProblem()
		sess.OnStudentActivity()

		solveChance := ability - difficultyHandicap(difficulty)
		solved := rng.Float64() < solveChance
		hints := 0
		incorrect := 0
		if !solved || rng.Float64() < 0.3 {
			hints = rng.Intn(3)
			incorrect = rng.Intn(3)
		}

		timeSpent := time.Duration(20+rng.Intn(70)) * time.Second
		clock.Advance(timeSpent)

		// Mid-problem, the orchestrator probes the gate once.
		asked := sess.AskQuestion(ctx, "What operation comes next?", false, dialogue.AskContext{
			StrategicMoment:   rng.Float64() < 0.25,
			CorrectStep:       solved,
			ConsecutiveErrors: incorrect,
		})

		attempt := mastery.ProblemAttempt{
			ProblemID:         fmt.Sprintf("sim-%03d", i+1),
			Difficulty:        difficulty,
			Solved:            solved,
			TimeSpent:         timeSpent,
			HintsUsed:         hints,
			IncorrectAttempts: incorrect,
			Timestamp:         clock.Now(),
		}
		if err := sess.RecordAttempt(ctx, attempt); err != nil {
			return fmt.Errorf("record attempt %d: %w", i+1, err)
		}

		if solved {
			ability += 0.02
		}

		fmt.Fprintf(w, "%d\t%s\t%v\t%d\t%d\t%v\t%s\n",
			i+1, difficulty, solved, hints, incorrect, asked, sess.Recommended())
	}
	w.Flush()

	state := sess.MasteryState()
	fmt.Println()
	fmt.Printf("mastery  easy=%.2f  medium=%.2f  hard=%.2f\n",
		state.Levels.Easy, state.Levels.Medium, state.Levels.Hard)
	fmt.Printf("consecutive solved: %d, recommended next: %s\n",
		state.ConsecutiveSolved, state.Recommended)

	return sess.Close(ctx)
}

// difficultyHandicap is how much harder each tier is for the simulated student.
func difficultyHandicap(d mastery.Difficulty) float64 {
	switch d {
	case mastery.DifficultyMedium:
		return 0.15
	case mastery.DifficultyHard:
		return 0.3
	default:
		return 0
	}
}
