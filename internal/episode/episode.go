// Package episode holds the identity and per-episode result types shared
// across the season analyzer, the pair comparator, and the persistent
// intro store.
package episode

import "github.com/google/uuid"

// Descriptor identifies one episode. It is produced by the media-library
// collaborator and is immutable for the lifetime of an analysis run.
type Descriptor struct {
	ID     uuid.UUID
	Series string
	Season int
	Name   string
	Path   string
}

// Fingerprintable reports whether the descriptor carries enough identity to
// be compared against another episode. Two episodes are only comparable if
// both have non-empty fingerprints, which is checked separately once
// fingerprints are computed; this only guards against a missing path.
func (d Descriptor) Fingerprintable() bool {
	return d.Path != ""
}

// Intro is the per-episode detection result: the half-open [Start, End)
// window believed to contain the recurring opening.
type Intro struct {
	EpisodeID uuid.UUID
	Start     float64
	End       float64
}

// Duration returns End - Start.
func (i Intro) Duration() float64 {
	return i.End - i.Start
}

// Valid reports whether the intro has a positive duration.
func (i Intro) Valid() bool {
	return i.End > i.Start
}

// IsDefault reports whether the intro is the zero-value "no intro found"
// result.
func (i Intro) IsDefault() bool {
	return i.Start == 0 && i.End == 0
}

// snapStartThreshold is the boundary below which a detected start is
// snapped to zero, per the data model invariant that near-zero starts are
// treated as "the intro starts at the beginning of the episode".
const snapStartThreshold = 5.0

// SnapStart zeroes Start when it falls at or below snapStartThreshold.
func (i Intro) SnapStart() Intro {
	if i.Start <= snapStartThreshold {
		i.Start = 0
	}
	return i
}

// SeasonIntros maps an episode id to its current best intro within one
// season run.
type SeasonIntros map[uuid.UUID]Intro

// UpdateBest stores intro under its episode id iff it has a strictly
// greater duration than any entry already present, or no entry exists yet.
// This is the monotone-update rule the season analyzer relies on: within a
// single run, an episode's stored duration never decreases.
func (s SeasonIntros) UpdateBest(intro Intro) {
	if existing, ok := s[intro.EpisodeID]; !ok || intro.Duration() > existing.Duration() {
		s[intro.EpisodeID] = intro
	}
}
