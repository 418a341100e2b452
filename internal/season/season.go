// Package season orchestrates pairwise fingerprint comparison across one
// season's episodes, tracks each episode's best intro, and hands the
// result to the silence adjuster before the caller merges it into the
// global store.
package season

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"introscan/internal/episode"
	"introscan/internal/fingerprint"
	"introscan/internal/matcher"
	"introscan/internal/silence"
)

// AudioTool is the opaque fingerprinting and silence-detection collaborator.
// Fingerprint errors are handled by the caller substituting an empty
// stream, per the per-episode error policy.
type AudioTool interface {
	Fingerprint(ctx context.Context, path string) (fingerprint.Stream, error)
	silence.Detector
}

// Config carries the subset of analysis configuration the season analyzer
// and the components it drives need. It is passed by value so the pure
// comparison functions underneath never read process-wide globals.
type Config struct {
	Matcher              matcher.Params
	SilenceMinDuration   float64
	MaximumIntroDuration float64
	AnalyzeSeasonZero    bool
}

// Analyzer runs the per-season pipeline described above.
type Analyzer struct {
	cfg    Config
	tool   AudioTool
	logger *slog.Logger
}

func NewAnalyzer(cfg Config, tool AudioTool, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{cfg: cfg, tool: tool, logger: logger}
}

// Result is what one Analyze call produces: the best intro found per
// episode this run, and how many episodes were processed.
type Result struct {
	Intros    episode.SeasonIntros
	Processed int
}

// Analyze fingerprints every episode, performs the pairwise scan-with-break
// search, and runs the silence adjuster over the survivors. It returns
// early (without error) on context cancellation, handing back whatever
// Result had accumulated so far per the cooperative-cancellation contract.
func (a *Analyzer) Analyze(ctx context.Context, descriptors []episode.Descriptor) (Result, error) {
	if len(descriptors) <= 1 {
		return Result{Intros: make(episode.SeasonIntros), Processed: len(descriptors)}, nil
	}

	if len(descriptors) > 0 && descriptors[0].Season == 0 && !a.cfg.AnalyzeSeasonZero {
		a.logger.Debug("skipping season zero", "series", descriptors[0].Series)
		return Result{Intros: make(episode.SeasonIntros), Processed: 0}, nil
	}

	streams := make(map[uuid.UUID]fingerprint.Stream, len(descriptors))
	for _, d := range descriptors {
		if ctx.Err() != nil {
			return Result{Intros: make(episode.SeasonIntros), Processed: len(descriptors)}, nil
		}
		stream, err := a.tool.Fingerprint(ctx, d.Path)
		if err != nil {
			a.logger.Warn("fingerprint failed, substituting empty stream",
				"series", d.Series, "season", d.Season, "episode", d.Name, "error", err)
			stream = nil
		}
		streams[d.ID] = stream
	}

	seasonIntros := make(episode.SeasonIntros)
	work := append([]episode.Descriptor(nil), descriptors...)

	for len(work) > 0 {
		current := work[0]
		remaining := work[1:]

		for _, other := range remaining {
			lhsRanges, rhsRanges := matcher.ComparePair(streams[current.ID], streams[other.ID], a.cfg.Matcher)
			lhsIntro, rhsIntro := matcher.SelectLongest(current.ID, lhsRanges, other.ID, rhsRanges)
			if !lhsIntro.Valid() || !rhsIntro.Valid() {
				continue
			}
			if a.cfg.MaximumIntroDuration > 0 && lhsIntro.Duration() > a.cfg.MaximumIntroDuration {
				continue
			}

			seasonIntros.UpdateBest(lhsIntro)
			seasonIntros.UpdateBest(rhsIntro)
			break
		}

		work = remaining
	}

	if ctx.Err() != nil {
		return Result{Intros: seasonIntros, Processed: len(descriptors)}, nil
	}

	byID := make(map[uuid.UUID]episode.Descriptor, len(descriptors))
	for _, d := range descriptors {
		byID[d.ID] = d
	}

	for id, intro := range seasonIntros {
		d, ok := byID[id]
		if !ok {
			continue
		}
		adjusted, err := silence.Adjust(ctx, a.tool, d.Path, intro, a.cfg.SilenceMinDuration)
		if err != nil {
			a.logger.Warn("silence adjust failed, keeping unadjusted intro",
				"series", d.Series, "season", d.Season, "episode", d.Name, "error", err)
			continue
		}
		seasonIntros[id] = adjusted
	}

	return Result{Intros: seasonIntros, Processed: len(descriptors)}, nil
}
