package matcher

import (
	"github.com/google/uuid"

	"introscan/internal/episode"
	"introscan/internal/timerange"
)

// SelectLongest picks the longest candidate range on each side of a pair
// and wraps them as Intro records.
//
// The two input slices are sorted independently by descending duration
// before the first of each is taken. When shifts produce ranges of
// differing lengths on each side, the "longest LHS" and "longest RHS" can
// therefore originate from different shifts; this independent-selection
// behavior is intentional and kept rather than sorting pairs jointly.
func SelectLongest(lhsID uuid.UUID, lhsRanges []timerange.Range, rhsID uuid.UUID, rhsRanges []timerange.Range) (episode.Intro, episode.Intro) {
	if len(lhsRanges) == 0 || len(rhsRanges) == 0 {
		return episode.Intro{EpisodeID: lhsID}, episode.Intro{EpisodeID: rhsID}
	}

	lhsSorted := append([]timerange.Range(nil), lhsRanges...)
	rhsSorted := append([]timerange.Range(nil), rhsRanges...)
	timerange.SortDescending(lhsSorted)
	timerange.SortDescending(rhsSorted)

	lhsIntro := episode.Intro{EpisodeID: lhsID, Start: lhsSorted[0].Start, End: lhsSorted[0].End}.SnapStart()
	rhsIntro := episode.Intro{EpisodeID: rhsID, Start: rhsSorted[0].Start, End: rhsSorted[0].End}.SnapStart()

	return lhsIntro, rhsIntro
}
