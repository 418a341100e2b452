package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"introscan/internal/introstore"
	"introscan/internal/library"
	"introscan/internal/report"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the intro summary for the last completed scan",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			seasons, err := library.Scan(cfg.Paths.LibraryDir)
			if err != nil {
				return fmt.Errorf("scan library: %w", err)
			}

			store, err := introstore.Open(cfg.Paths.DBPath)
			if err != nil {
				return fmt.Errorf("open intro store: %w", err)
			}
			defer store.Close()

			intros, err := store.Intros(context.Background())
			if err != nil {
				return fmt.Errorf("load intros: %w", err)
			}

			out := cmd.OutOrStdout()
			headers := []string{"Series", "Season", "Episodes", "Matched", "Mean Duration", "Mean Start"}
			rows := make([][]string, 0, len(seasons))
			for _, s := range seasons {
				summary := report.Summarize(s.Series, s.Number, s.Episodes, intros)
				rows = append(rows, []string{
					summary.Series,
					fmt.Sprintf("%d", summary.Number),
					fmt.Sprintf("%d", summary.EpisodeCount),
					fmt.Sprintf("%d", summary.MatchedCount),
					fmt.Sprintf("%.1fs", summary.MeanDuration),
					fmt.Sprintf("%.1fs", summary.MeanStart),
				})
			}

			fmt.Fprintln(out, renderTable(headers, rows, []columnAlignment{
				alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight,
			}))
			return nil
		},
	}
}
