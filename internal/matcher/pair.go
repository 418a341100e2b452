package matcher

import (
	"math"
	"sort"

	"introscan/internal/bitutil"
	"introscan/internal/fingerprint"
	"introscan/internal/timerange"
)

// candidateShifts enumerates the integer offsets that plausibly align lhs
// and rhs: for each key in the LHS index, probe the RHS index directly
// for every key in [v-S, v+S] and collect the resulting offset deltas
// into a deduplicated, sorted set. Sorting is not required by the
// algorithm's semantics but makes shift processing order deterministic,
// which matters whenever two shifts tie on duration.
func candidateShifts(lhs, rhs fingerprint.Index, shiftRadius int) []int {
	seen := make(map[int]struct{})
	for v, lhsOffset := range lhs {
		for delta := -shiftRadius; delta <= shiftRadius; delta++ {
			candidate := int64(v) + int64(delta)
			if candidate < 0 || candidate > math.MaxUint32 {
				continue
			}
			rhsOffset, ok := rhs[uint32(candidate)]
			if !ok {
				continue
			}
			seen[rhsOffset-lhsOffset] = struct{}{}
		}
	}

	shifts := make([]int, 0, len(seen))
	for shift := range seen {
		shifts = append(shifts, shift)
	}
	sort.Ints(shifts)
	return shifts
}

// applyEndTrim shortens r's End to compensate for findContiguous extending
// a run up to the last point still within maxTimeSkip of a gap; the true
// end of the shared intro lies somewhat before that extended boundary.
// Start is left untouched.
func applyEndTrim(r timerange.Range, maxTimeSkip float64) timerange.Range {
	switch d := r.Duration(); {
	case d >= 90:
		r.End -= 2 * maxTimeSkip
	case d >= 30:
		r.End -= maxTimeSkip
	}
	return r
}

// ComparePair enumerates candidate shifts between lhs and rhs, XOR-compares
// fingerprint elements at each shift, and returns one TimeRange pair per
// shift whose LHS contiguous run meets MinimumIntroDuration. The two
// returned slices are index-aligned: lhsRanges[i] and rhsRanges[i] come
// from the same shift.
func ComparePair(lhs, rhs fingerprint.Stream, p Params) (lhsRanges, rhsRanges []timerange.Range) {
	if len(lhs) == 0 || len(rhs) == 0 {
		return nil, nil
	}

	lhsIndex := fingerprint.BuildIndex(lhs)
	rhsIndex := fingerprint.BuildIndex(rhs)
	shifts := candidateShifts(lhsIndex, rhsIndex, p.InvertedIndexShift)

	overlap := len(lhs)
	if len(rhs) < overlap {
		overlap = len(rhs)
	}

	for _, shift := range shifts {
		leftOffset, rightOffset := 0, 0
		if shift < 0 {
			leftOffset = -shift
		} else {
			rightOffset = shift
		}

		abs := shift
		if abs < 0 {
			abs = -abs
		}
		upper := overlap - abs
		if upper <= 0 {
			continue
		}

		lhsTimes := make([]float64, 0, upper)
		rhsTimes := make([]float64, 0, upper)
		for i := 0; i < upper; i++ {
			diff := lhs[i+leftOffset] ^ rhs[i+rightOffset]
			if bitutil.PopCount(diff) <= p.MaximumDifferences {
				lhsTimes = append(lhsTimes, fingerprint.Seconds(i+leftOffset))
				rhsTimes = append(rhsTimes, fingerprint.Seconds(i+rightOffset))
			}
		}
		lhsTimes = append(lhsTimes, math.Inf(1))
		rhsTimes = append(rhsTimes, math.Inf(1))

		lhsRun, ok := timerange.FindContiguous(lhsTimes, p.MaxTimeSkip)
		if !ok || lhsRun.Duration() < p.MinimumIntroDuration {
			continue
		}
		rhsRun, ok := timerange.FindContiguous(rhsTimes, p.MaxTimeSkip)
		if !ok {
			// Built in lockstep with the LHS run above; this should not
			// happen, but a missing RHS run makes the shift unusable.
			continue
		}

		lhsRanges = append(lhsRanges, applyEndTrim(lhsRun, p.MaxTimeSkip))
		rhsRanges = append(rhsRanges, applyEndTrim(rhsRun, p.MaxTimeSkip))
	}

	return lhsRanges, rhsRanges
}
