// Package timerange represents half-open [start, end) intervals in seconds
// and the contiguity search used to find the longest run of closely spaced
// timestamps.
package timerange

import "sort"

// Range is a [Start, End) interval in seconds. Start is always <= End.
type Range struct {
	Start float64
	End   float64
}

// Duration returns End - Start.
func (r Range) Duration() float64 {
	return r.End - r.Start
}

// Intersects reports whether r and other overlap as open intervals.
func (r Range) Intersects(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

// SortDescending orders ranges by descending duration, longest first. Ties
// keep their relative order (stable) so repeated runs over identical input
// are deterministic.
func SortDescending(ranges []Range) {
	sort.SliceStable(ranges, func(i, j int) bool {
		return ranges[i].Duration() > ranges[j].Duration()
	})
}

// FindContiguous walks times, which must be sorted ascending and end with a
// sentinel value (typically +Inf) appended by the caller to force the final
// run to close, and returns the longest run where no two consecutive
// timestamps differ by more than maxTimeSkip. It reports false if times has
// fewer than two real entries (i.e. fewer than three including the
// sentinel), since a single point cannot form a positive-duration run.
func FindContiguous(times []float64, maxTimeSkip float64) (Range, bool) {
	if len(times) < 3 {
		return Range{}, false
	}

	var best Range
	found := false

	runStart := times[0]
	runEnd := times[0]

	for _, t := range times[1:] {
		if t-runEnd <= maxTimeSkip {
			runEnd = t
			continue
		}

		if d := runEnd - runStart; !found || d > best.Duration() {
			best = Range{Start: runStart, End: runEnd}
			found = true
		}
		runStart = t
		runEnd = t
	}

	return best, found
}
