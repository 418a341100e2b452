// Package report computes match-quality diagnostics over a season's
// detected intros: mean/variance/quantiles of durations and start-time
// spread, using gonum's stat package for descriptive statistics rather
// than hand-rolled summation.
package report

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"introscan/internal/episode"
)

// SeasonSummary is a diagnostic snapshot of one season's detected intros.
type SeasonSummary struct {
	Series         string
	Number         int
	EpisodeCount   int
	MatchedCount   int
	MeanDuration   float64
	DurationStdDev float64
	MedianDuration float64
	MeanStart      float64
	StartStdDev    float64
}

// Summarize computes a SeasonSummary for one season's episodes and their
// detected intros. Episodes without a valid intro count toward
// EpisodeCount but not MatchedCount and are excluded from the statistics.
func Summarize(series string, number int, episodes []episode.Descriptor, intros episode.SeasonIntros) SeasonSummary {
	summary := SeasonSummary{Series: series, Number: number, EpisodeCount: len(episodes)}

	var durations, starts []float64
	for _, ep := range episodes {
		intro, ok := intros[ep.ID]
		if !ok || !intro.Valid() {
			continue
		}
		durations = append(durations, intro.Duration())
		starts = append(starts, intro.Start)
	}
	summary.MatchedCount = len(durations)
	if len(durations) == 0 {
		return summary
	}

	summary.MeanDuration, summary.DurationStdDev = stat.MeanStdDev(durations, nil)
	summary.MeanStart, summary.StartStdDev = stat.MeanStdDev(starts, nil)

	sorted := append([]float64(nil), durations...)
	sort.Float64s(sorted)
	summary.MedianDuration = stat.Quantile(0.5, stat.Empirical, sorted, nil)

	return summary
}
