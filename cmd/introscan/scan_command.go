package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"introscan/internal/audiotool"
	"introscan/internal/config"
	"introscan/internal/driver"
	"introscan/internal/edl"
	"introscan/internal/introstore"
	"introscan/internal/library"
	"introscan/internal/logging"
	"introscan/internal/matcher"
	"introscan/internal/report"
	"introscan/internal/season"
	"introscan/internal/stage"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var skipChecks bool
	var seasonZero bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a TV library and detect intros season by season",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("season-zero") {
				cfg.Analysis.AnalyzeSeasonZero = seasonZero
			}
			return runScan(cmd, cfg, skipChecks)
		},
	}

	cmd.Flags().BoolVar(&skipChecks, "skip-checks", false, "Skip pre-scan readiness checks")
	cmd.Flags().BoolVar(&seasonZero, "season-zero", false, "Include season zero (specials) in the scan")
	return cmd
}

func runScan(cmd *cobra.Command, cfg *config.Config, skipChecks bool) error {
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}

	out := cmd.OutOrStdout()

	if !skipChecks {
		results := stage.RunChecks(cmd.Context(), cfg, stage.DefaultCheckers()...)
		for _, result := range results {
			if result.Ready {
				continue
			}
			fmt.Fprintf(out, "preflight check %q failed: %s\n", result.Name, result.Detail)
		}
		if !stage.AllReady(results) {
			return fmt.Errorf("pre-scan readiness checks failed; run with --skip-checks to override")
		}
	}

	lockPath := filepath.Join(cfg.Paths.StagingDir, "introscan.lock")
	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire scan lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another introscan run holds the lock at %s", lockPath)
	}
	defer lock.Unlock()

	seasons, err := scanLibrary(cfg)
	if err != nil {
		return err
	}
	if len(seasons) == 0 {
		fmt.Fprintln(out, "no seasons found under "+cfg.Paths.LibraryDir)
		return nil
	}

	store, err := introstore.Open(cfg.Paths.DBPath)
	if err != nil {
		return fmt.Errorf("open intro store: %w", err)
	}
	defer store.Close()

	tool := audiotool.New(cfg.Audio.FFmpegBinary, cfg.Audio.NoiseThresholddB)
	analyzer := season.NewAnalyzer(season.Config{
		Matcher: matcher.Params{
			InvertedIndexShift:   cfg.Analysis.InvertedIndexShift,
			MaximumDifferences:   cfg.Analysis.MaximumFingerprintPointDifferences,
			MaxTimeSkip:          cfg.Analysis.MaximumTimeSkip,
			MinimumIntroDuration: cfg.Analysis.MinimumIntroDuration,
		},
		SilenceMinDuration:   cfg.Analysis.SilenceDetectionMinimumDuration,
		MaximumIntroDuration: cfg.Analysis.MaximumIntroDuration,
		AnalyzeSeasonZero:    cfg.Analysis.AnalyzeSeasonZero,
	}, tool, logger)

	d := driver.New(analyzer, store, cfg.Analysis.MaxParallelism, logger)

	reporter := newProgressReporter(out, isatty.IsTerminal(os.Stdout.Fd()))
	start := time.Now()
	if err := d.Run(cmd.Context(), seasons, reporter); err != nil {
		return fmt.Errorf("run scan: %w", err)
	}
	reporter.Done()

	fmt.Fprintf(out, "scanned %d seasons in %s\n", len(seasons), time.Since(start).Round(time.Second))

	if cfg.EDL.Action == config.EDLActionRemove {
		written, err := writeEDLFiles(seasons, store)
		if err != nil {
			fmt.Fprintf(out, "warning: %v\n", err)
		} else {
			fmt.Fprintf(out, "wrote %d edl files\n", written)
		}
	}

	return summarizeSeasons(out, seasons, store)
}

func scanLibrary(cfg *config.Config) ([]driver.Season, error) {
	seasons, err := library.Scan(cfg.Paths.LibraryDir)
	if err != nil {
		return nil, fmt.Errorf("scan library: %w", err)
	}
	return seasons, nil
}

func writeEDLFiles(seasons []driver.Season, store *introstore.Store) (int, error) {
	intros, err := store.Intros(context.Background())
	if err != nil {
		return 0, fmt.Errorf("load intros for edl export: %w", err)
	}
	total := 0
	for _, s := range seasons {
		written, err := edl.Write(s.Episodes, intros)
		if err != nil {
			return total, fmt.Errorf("write edl files for %s season %d: %w", s.Series, s.Number, err)
		}
		total += written
	}
	return total, nil
}

func summarizeSeasons(out io.Writer, seasons []driver.Season, store *introstore.Store) error {
	intros, err := store.Intros(context.Background())
	if err != nil {
		return fmt.Errorf("load intros for summary: %w", err)
	}

	headers := []string{"Series", "Season", "Episodes", "Matched", "Mean Duration"}
	rows := make([][]string, 0, len(seasons))
	for _, s := range seasons {
		summary := report.Summarize(s.Series, s.Number, s.Episodes, intros)
		rows = append(rows, []string{
			summary.Series,
			fmt.Sprintf("%d", summary.Number),
			fmt.Sprintf("%d", summary.EpisodeCount),
			fmt.Sprintf("%d", summary.MatchedCount),
			fmt.Sprintf("%.1fs", summary.MeanDuration),
		})
	}

	table := renderTable(headers, rows, []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight})
	fmt.Fprintln(out, table)
	return nil
}
