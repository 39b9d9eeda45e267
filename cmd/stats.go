package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/slate/internal/mastery"
	"github.com/abhisek/slate/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show attempt totals and current mastery",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		totals, err := st.EventRepo().AttemptTotals(ctx)
		if err != nil {
			return err
		}
		questions, err := st.EventRepo().QuestionCount(ctx)
		if err != nil {
			return err
		}

		if len(totals) == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DIFFICULTY\tATTEMPTS\tSOLVED\tRATE")
		for _, tot := range totals {
			rate := 0.0
			if tot.Attempts > 0 {
				rate = float64(tot.Solved) / float64(tot.Attempts)
			}
			fmt.Fprintf(w, "%s\t%d\t%d\t%.0f%%\n", tot.Difficulty, tot.Attempts, tot.Solved, rate*100)
		}
		w.Flush()
		fmt.Printf("\nProactive questions asked: %d\n", questions)

		snap, err := st.SnapshotRepo().Latest(ctx)
		if err != nil {
			return err
		}
		if snap != nil && snap.Data.Mastery != nil {
			state := mastery.StateFromSnapshot(snap.Data.Mastery)
			fmt.Printf("Mastery: easy=%.2f medium=%.2f hard=%.2f (next: %s)\n",
				state.Levels.Easy, state.Levels.Medium, state.Levels.Hard, state.Recommended)
		}
		return nil
	},
}
