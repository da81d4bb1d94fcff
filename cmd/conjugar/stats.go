package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lbarroso/conjugar/internal/cli"
	"github.com/lbarroso/conjugar/internal/config"
	"github.com/lbarroso/conjugar/internal/scheduler"
	"github.com/lbarroso/conjugar/internal/stats"
)

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show practice progress statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			return runStats(cfg, cmd.OutOrStdout(), time.Now())
		},
	}
}

func runStats(cfg *config.Config, w io.Writer, now time.Time) error {
	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("openStore() > %w", err)
	}
	defer func() {
		_ = store.Close()
	}()

	entries := scheduler.NewLedger(store).Entries()
	summary := stats.Summarize(entries, now)
	bold := color.New(color.Bold)

	fmt.Fprintln(w, bold.Sprint("Progress"))
	fmt.Fprintf(w, "  Conjugations practiced: %d\n", summary.Tracked)
	fmt.Fprintf(w, "  Mastered: %d\n", summary.Mastered)
	fmt.Fprintf(w, "  Struggling: %d\n", summary.Struggling)
	fmt.Fprintf(w, "  Due for review: %d\n", summary.DueNow)
	fmt.Fprintf(w, "  Correct answers: %d\n", summary.TotalCorrect)
	fmt.Fprintf(w, "  Incorrect answers: %d\n", summary.TotalIncorrect)
	fmt.Fprintf(w, "  Accuracy: %.0f%%\n", summary.Accuracy()*100)

	byTense := stats.ByTense(entries)
	if len(byTense) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, bold.Sprint("By tense"))
		for _, tense := range byTense {
			fmt.Fprintf(w, "  %s: %d practiced, %.0f%% accuracy\n",
				cli.TenseName(tense.Tense), tense.Tracked, tense.Accuracy()*100)
		}
	}
	return nil
}
