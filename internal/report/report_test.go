package report

import (
	"testing"

	"github.com/google/uuid"

	"introscan/internal/episode"
)

func TestSummarize_NoMatches(t *testing.T) {
	d := episode.Descriptor{ID: uuid.New()}
	summary := Summarize("Show", 1, []episode.Descriptor{d}, episode.SeasonIntros{})
	if summary.EpisodeCount != 1 || summary.MatchedCount != 0 {
		t.Fatalf("summary = %+v, want EpisodeCount=1 MatchedCount=0", summary)
	}
}

func TestSummarize_ComputesMeanAndMedian(t *testing.T) {
	d1 := episode.Descriptor{ID: uuid.New()}
	d2 := episode.Descriptor{ID: uuid.New()}
	d3 := episode.Descriptor{ID: uuid.New()}
	intros := episode.SeasonIntros{
		d1.ID: {EpisodeID: d1.ID, Start: 0, End: 20},
		d2.ID: {EpisodeID: d2.ID, Start: 0, End: 30},
		d3.ID: {EpisodeID: d3.ID, Start: 0, End: 40},
	}

	summary := Summarize("Show", 1, []episode.Descriptor{d1, d2, d3}, intros)
	if summary.MatchedCount != 3 {
		t.Fatalf("MatchedCount = %d, want 3", summary.MatchedCount)
	}
	if summary.MeanDuration != 30 {
		t.Errorf("MeanDuration = %v, want 30", summary.MeanDuration)
	}
	if summary.MedianDuration != 30 {
		t.Errorf("MedianDuration = %v, want 30", summary.MedianDuration)
	}
}

func TestSummarize_SkipsInvalidIntros(t *testing.T) {
	d1 := episode.Descriptor{ID: uuid.New()}
	d2 := episode.Descriptor{ID: uuid.New()}
	intros := episode.SeasonIntros{
		d1.ID: {EpisodeID: d1.ID, Start: 0, End: 20},
		d2.ID: {EpisodeID: d2.ID},
	}

	summary := Summarize("Show", 1, []episode.Descriptor{d1, d2}, intros)
	if summary.MatchedCount != 1 {
		t.Errorf("MatchedCount = %d, want 1 (default intro excluded)", summary.MatchedCount)
	}
}
