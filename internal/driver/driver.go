// Package driver runs the season analyzer across a bounded worker pool,
// reports aggregate progress, and merges each season's results into the
// shared intro store under its mutex. It uses a semaphore-bounded
// goroutine pool rather than one goroutine per season, since seasons are
// a bounded, enumerable unit of work rather than a long-lived polling
// loop.
package driver

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"introscan/internal/episode"
	"introscan/internal/season"
)

// ErrNoWork is returned when the season queue is empty.
var ErrNoWork = errors.New("introscan: no seasons queued for analysis")

// Season is one unit of work: an ordered, verified list of episodes
// belonging to the same series and season number.
type Season struct {
	Series   string
	Number   int
	Episodes []episode.Descriptor
}

// Store is the process-wide intro store. Merge must perform persistence
// inside the same critical section as the map update, so that a torn
// write can never leave the canonical store inconsistent with what was
// last flushed to disk.
type Store interface {
	Merge(ctx context.Context, intros episode.SeasonIntros) error
}

// ProgressReporter receives a percentage in [0, 100] after each season
// completes (successfully, with failure, or via cancellation).
type ProgressReporter interface {
	Report(percent int)
}

// Analyzer is the subset of *season.Analyzer the driver depends on.
type Analyzer interface {
	Analyze(ctx context.Context, descriptors []episode.Descriptor) (season.Result, error)
}

// Driver runs Analyzer across Seasons with at most Parallelism concurrent
// workers, merging each season's result into Store.
type Driver struct {
	Analyzer    Analyzer
	Store       Store
	Parallelism int
	Logger      *slog.Logger
}

func New(analyzer Analyzer, store Store, parallelism int, logger *slog.Logger) *Driver {
	if parallelism < 1 {
		parallelism = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{Analyzer: analyzer, Store: store, Parallelism: parallelism, Logger: logger}
}

// Run analyzes every season and merges its results into Store, reporting
// progress to reporter as processed*100/total after each season completes.
// A season that fails (fingerprinting or store-merge error) is logged and
// skipped; it never aborts the run. Run itself returns ErrNoWork if
// seasons is empty, and otherwise returns only once every season has
// either completed or context was cancelled.
func (d *Driver) Run(ctx context.Context, seasons []Season, reporter ProgressReporter) error {
	if len(seasons) == 0 {
		return ErrNoWork
	}

	sem := make(chan struct{}, d.Parallelism)
	var wg sync.WaitGroup
	var processed atomic.Int64
	total := int64(len(seasons))

	for _, s := range seasons {
		if ctx.Err() != nil {
			wg.Wait()
			return nil
		}
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(s Season) {
			defer wg.Done()
			defer func() { <-sem }()

			d.runOne(ctx, s)

			n := processed.Add(1)
			if reporter != nil {
				reporter.Report(int(n * 100 / total))
			}
		}(s)
	}

	wg.Wait()
	return nil
}

func (d *Driver) runOne(ctx context.Context, s Season) {
	result, err := d.Analyzer.Analyze(ctx, s.Episodes)
	if err != nil {
		d.Logger.Error("season analysis failed, skipping",
			"series", s.Series, "season", s.Number, "error", err)
		return
	}
	if len(result.Intros) == 0 {
		return
	}
	if err := d.Store.Merge(ctx, result.Intros); err != nil {
		d.Logger.Error("failed to merge season results into intro store",
			"series", s.Series, "season", s.Number, "error", err)
	}
}
