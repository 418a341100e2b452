// Package matcher implements the pair comparator and longest-range
// selector: the shift-search heuristic that locates a shared intro between
// two episodes' fingerprint streams.
package matcher

// Params is the immutable set of analysis parameters the pair comparator
// and contiguity search need. It is threaded through by value rather than
// read from process-wide configuration globals, so the comparison
// functions underneath stay pure and independently testable.
type Params struct {
	// InvertedIndexShift (S) is the value-neighborhood radius probed when
	// discovering candidate shifts.
	InvertedIndexShift int
	// MaximumDifferences is the Hamming-distance threshold (popcount of the
	// XOR of two fingerprint elements) at or below which they are considered
	// a match.
	MaximumDifferences int
	// MaxTimeSkip is the largest gap, in seconds, tolerated between
	// consecutive matching timestamps within a contiguous run.
	MaxTimeSkip float64
	// MinimumIntroDuration is the shortest accepted contiguous run.
	MinimumIntroDuration float64
}
