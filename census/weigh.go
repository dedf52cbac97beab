package census

import (
	"github.com/wordgametools/handcensus/tiles"
)

// Weigher computes the number of physically distinct unordered draws that
// realize a given hand shape: the product over all symbols of
// C(bagCount, handCount). Binomials are precomputed into a Pascal triangle
// so the per-hand cost is a handful of table lookups and multiplies.
type Weigher struct {
	// rows[l][k] = C(bag count of l, k). Rows are wide enough that any
	// legal hand count indexes in bounds; over-capacity counts yield 0.
	rows [tiles.NumTileTypes][]uint64
}

// NewWeigher precomputes the binomial tables for the bag.
func NewWeigher(bag *tiles.Bag) *Weigher {
	maxN := int(bag.MaxCount())
	if bag.HandSize() > maxN {
		maxN = bag.HandSize()
	}
	// Pascal's triangle; row n holds C(n, 0..maxN), with C(n, k) = 0 for
	// k > n.
	triangle := make([][]uint64, maxN+1)
	for n := 0; n <= maxN; n++ {
		row := make([]uint64, maxN+1)
		row[0] = 1
		for k := 1; k <= maxN; k++ {
			if n == 0 {
				break
			}
			row[k] = triangle[n-1][k-1] + triangle[n-1][k]
		}
		triangle[n] = row
	}
	w := &Weigher{}
	for l := tiles.Letter(0); l < tiles.NumTileTypes; l++ {
		w.rows[l] = triangle[bag.Count(l)]
	}
	return w
}

// Weight returns the draw multiplicity of the hand, or 0 if the hand
// exceeds the bag's capacity for some symbol. Every hand produced by a
// correct Enumerator weighs at least 1, so a 0 signals an invariant
// violation upstream.
func (w *Weigher) Weight(hand *tiles.Vector) uint64 {
	total := uint64(1)
	for l, c := range hand {
		if c == 0 {
			continue
		}
		total *= w.rows[l][c]
		if total == 0 {
			return 0
		}
	}
	return total
}
