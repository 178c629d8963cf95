package cmd

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/they4kman/sweeper/game"
	"github.com/they4kman/sweeper/scores"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print statistics of the games in the score store",
	RunE: func(cmd *cobra.Command, args []string) error {
		if scoresPath == "" {
			return errors.New("no score store given; pass --scores")
		}

		store, err := scores.Open(storeKind, scoresPath)
		if err != nil {
			return fmt.Errorf("open scores: %w", err)
		}
		defer store.Close()

		records, err := store.All()
		if err != nil {
			return fmt.Errorf("read scores: %w", err)
		}

		return printSummary(cmd.OutOrStdout(), scores.Summarize(records, game.Levels))
	},
}

func printSummary(out io.Writer, summary scores.Summary) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(w, "Level\tPlayed\tWon\tLost\tAbandoned\tWin %\tBest\tAverage\t")
	for _, level := range summary.Levels {
		printStatistic(w, level.Level, level.Statistic)
	}
	printStatistic(w, "Total", summary.Total)

	return w.Flush()
}

func printStatistic(w io.Writer, name string, stat scores.Statistic) {
	best, average := "-", "-"
	if stat.HasTimes() {
		best = fmt.Sprintf("%.1fs", stat.BestTime)
		average = fmt.Sprintf("%.1fs", stat.AverageTime)
	}

	fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%.0f%%\t%s\t%s\t\n",
		name, stat.Played, stat.Won, stat.Lost, stat.Abandoned, stat.WinPercent(), best, average)
}
