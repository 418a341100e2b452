package timerange

import (
	"math"
	"testing"
)

func TestRange_Duration(t *testing.T) {
	r := Range{Start: 10, End: 25.5}
	if got := r.Duration(); got != 15.5 {
		t.Fatalf("Duration() = %v, want 15.5", got)
	}
}

func TestRange_Intersects(t *testing.T) {
	cases := []struct {
		name string
		a, b Range
		want bool
	}{
		{"overlap", Range{0, 10}, Range{5, 15}, true},
		{"disjoint", Range{0, 10}, Range{10, 20}, false},
		{"contained", Range{0, 20}, Range{5, 10}, true},
		{"gap", Range{0, 10}, Range{11, 20}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Intersects(c.b); got != c.want {
				t.Errorf("Intersects() = %v, want %v", got, c.want)
			}
			if got := c.b.Intersects(c.a); got != c.want {
				t.Errorf("Intersects() (reversed) = %v, want %v", got, c.want)
			}
		})
	}
}

func TestSortDescending(t *testing.T) {
	ranges := []Range{
		{0, 5},
		{0, 30},
		{0, 12},
	}
	SortDescending(ranges)
	want := []float64{30, 12, 5}
	for i, r := range ranges {
		if r.Duration() != want[i] {
			t.Fatalf("ranges[%d].Duration() = %v, want %v", i, r.Duration(), want[i])
		}
	}
}

func TestFindContiguous_TooShort(t *testing.T) {
	if _, ok := FindContiguous(nil, 3.5); ok {
		t.Fatal("expected no run for empty input")
	}
	if _, ok := FindContiguous([]float64{1.0, math.Inf(1)}, 3.5); ok {
		t.Fatal("expected no run for single real entry")
	}
}

func TestFindContiguous_SingleRun(t *testing.T) {
	times := []float64{0, 0.128, 0.256, 0.384, math.Inf(1)}
	got, ok := FindContiguous(times, 3.5)
	if !ok {
		t.Fatal("expected a run")
	}
	want := Range{Start: 0, End: 0.384}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestFindContiguous_ToleratesSmallGap(t *testing.T) {
	times := []float64{0, 1.0, 4.0, 6.0, math.Inf(1)}
	got, ok := FindContiguous(times, 3.5)
	if !ok {
		t.Fatal("expected a run")
	}
	if got.Start != 0 || got.End != 6.0 {
		t.Fatalf("got %+v, want full run [0,6]", got)
	}
}

func TestFindContiguous_PicksLongestRun(t *testing.T) {
	// Two runs: [0,4] (duration 4) and [20,30] (duration 10), separated by a
	// gap larger than maxTimeSkip.
	times := []float64{0, 2, 4, 20, 22.5, 25, 27.5, 30, math.Inf(1)}
	got, ok := FindContiguous(times, 3.5)
	if !ok {
		t.Fatal("expected a run")
	}
	want := Range{Start: 20, End: 30}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestFindContiguous_WithoutSentinelDropsFinalRun(t *testing.T) {
	// Without a trailing sentinel, the final run never closes and is lost -
	// this is why callers must append +Inf before invoking FindContiguous.
	times := []float64{100, 101, 102}
	if _, ok := FindContiguous(times, 3.5); ok {
		t.Fatal("expected no run without a closing sentinel")
	}
}

func TestFindContiguous_SentinelForcesClose(t *testing.T) {
	times := []float64{100, 101, 102, math.Inf(1)}
	got, ok := FindContiguous(times, 3.5)
	if !ok {
		t.Fatal("expected the final run to close via the sentinel")
	}
	if got.Start != 100 || got.End != 102 {
		t.Fatalf("got %+v", got)
	}
}
