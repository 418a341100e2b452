// Package bitutil provides the Hamming-weight primitive used to compare
// fingerprint elements.
package bitutil

import "math/bits"

// PopCount returns the number of set bits in v. It is the sole metric the
// pair comparator uses to decide whether two fingerprint elements are
// "close enough" to belong to the same shared intro.
func PopCount(v uint32) int {
	return bits.OnesCount32(v)
}
