package episode

import (
	"testing"

	"github.com/google/uuid"
)

func TestIntro_Duration(t *testing.T) {
	i := Intro{Start: 10, End: 45}
	if got := i.Duration(); got != 35 {
		t.Fatalf("Duration() = %v, want 35", got)
	}
}

func TestIntro_Valid(t *testing.T) {
	if !(Intro{Start: 0, End: 1}).Valid() {
		t.Error("expected positive-duration intro to be valid")
	}
	if (Intro{Start: 0, End: 0}).Valid() {
		t.Error("expected zero-duration intro to be invalid")
	}
}

func TestIntro_IsDefault(t *testing.T) {
	if !(Intro{}).IsDefault() {
		t.Error("expected zero value to be default")
	}
	if (Intro{Start: 1}).IsDefault() {
		t.Error("expected non-zero start to not be default")
	}
}

func TestIntro_SnapStart(t *testing.T) {
	cases := []struct {
		start, want float64
	}{
		{0, 0},
		{5, 0},
		{5.01, 5.01},
		{12.8, 12.8},
	}
	for _, c := range cases {
		got := Intro{Start: c.start, End: c.start + 30}.SnapStart()
		if got.Start != c.want {
			t.Errorf("SnapStart(%v) = %v, want %v", c.start, got.Start, c.want)
		}
	}
}

func TestSeasonIntros_UpdateBest(t *testing.T) {
	id := uuid.New()
	s := make(SeasonIntros)

	s.UpdateBest(Intro{EpisodeID: id, Start: 0, End: 20})
	if got := s[id].Duration(); got != 20 {
		t.Fatalf("after first update, duration = %v, want 20", got)
	}

	// Worse candidate must not overwrite.
	s.UpdateBest(Intro{EpisodeID: id, Start: 0, End: 10})
	if got := s[id].Duration(); got != 20 {
		t.Fatalf("worse candidate overwrote best: duration = %v, want 20", got)
	}

	// Better candidate overwrites.
	s.UpdateBest(Intro{EpisodeID: id, Start: 0, End: 30})
	if got := s[id].Duration(); got != 30 {
		t.Fatalf("better candidate ignored: duration = %v, want 30", got)
	}
}
