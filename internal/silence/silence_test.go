package silence

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"introscan/internal/episode"
	"introscan/internal/timerange"
)

type stubDetector struct {
	ranges []timerange.Range
	err    error
}

func (s stubDetector) DetectSilence(ctx context.Context, path string, durationSeconds float64) ([]timerange.Range, error) {
	return s.ranges, s.err
}

func TestAdjust_QualifyingSilenceMovesEnd(t *testing.T) {
	intro := episode.Intro{EpisodeID: uuid.New(), Start: 0, End: 80}
	det := stubDetector{ranges: []timerange.Range{
		{Start: 66, End: 66.1},   // too short, rejected
		{Start: 78.2, End: 79.1}, // qualifies
	}}

	got, err := Adjust(context.Background(), det, "ep.mkv", intro, 0.33)
	if err != nil {
		t.Fatal(err)
	}
	if got.End != 78.2 {
		t.Errorf("End = %v, want 78.2", got.End)
	}
}

func TestAdjust_NoQualifyingSilenceLeavesEndUnchanged(t *testing.T) {
	intro := episode.Intro{EpisodeID: uuid.New(), Start: 0, End: 80}
	det := stubDetector{ranges: []timerange.Range{
		{Start: 66, End: 66.1},
	}}

	got, err := Adjust(context.Background(), det, "ep.mkv", intro, 0.33)
	if err != nil {
		t.Fatal(err)
	}
	if got.End != 80 {
		t.Errorf("End = %v, want unchanged 80", got.End)
	}
}

func TestAdjust_SilenceBeforeIntroStartRejected(t *testing.T) {
	intro := episode.Intro{EpisodeID: uuid.New(), Start: 70, End: 80}
	det := stubDetector{ranges: []timerange.Range{
		{Start: 68, End: 69},
	}}

	got, err := Adjust(context.Background(), det, "ep.mkv", intro, 0.33)
	if err != nil {
		t.Fatal(err)
	}
	if got.End != 80 {
		t.Errorf("End = %v, want unchanged 80 (silence starts before introStart)", got.End)
	}
}

func TestAdjust_FirstQualifyingMatchWins(t *testing.T) {
	intro := episode.Intro{EpisodeID: uuid.New(), Start: 0, End: 80}
	det := stubDetector{ranges: []timerange.Range{
		{Start: 70, End: 70.5},
		{Start: 75, End: 75.5},
	}}

	got, err := Adjust(context.Background(), det, "ep.mkv", intro, 0.33)
	if err != nil {
		t.Fatal(err)
	}
	if got.End != 70 {
		t.Errorf("End = %v, want 70 (first qualifying match, not the longest)", got.End)
	}
}

func TestAdjust_NonIntersectingSilenceIgnored(t *testing.T) {
	intro := episode.Intro{EpisodeID: uuid.New(), Start: 0, End: 80}
	det := stubDetector{ranges: []timerange.Range{
		{Start: 10, End: 11},
	}}

	got, err := Adjust(context.Background(), det, "ep.mkv", intro, 0.33)
	if err != nil {
		t.Fatal(err)
	}
	if got.End != 80 {
		t.Errorf("End = %v, want unchanged 80", got.End)
	}
}

func TestAdjust_InvalidIntroPassesThrough(t *testing.T) {
	intro := episode.Intro{EpisodeID: uuid.New()}
	got, err := Adjust(context.Background(), stubDetector{}, "ep.mkv", intro, 0.33)
	if err != nil {
		t.Fatal(err)
	}
	if got != intro {
		t.Errorf("expected invalid intro to pass through unchanged, got %+v", got)
	}
}
