// Package census enumerates every distinct hand drawable from a tile bag,
// classifies each as playable or dead against a lexicon, and accumulates
// raw and draw-weighted totals.
package census

import (
	"github.com/wordgametools/handcensus/tiles"
)

// Enumerator produces every distinct count vector of total size handSize
// such that no symbol exceeds the bag's available count. Symbols are
// visited in a fixed canonical order (A..Z, then blank), which is what
// guarantees each multiset appears exactly once.
//
// The walk is an explicit choice-stack state machine rather than deep
// recursion; millions of hands are emitted per run.
type Enumerator struct {
	caps     tiles.Vector
	suffix   [tiles.NumTileTypes + 1]int
	handSize int
}

// NewEnumerator builds an enumerator for the given bag.
func NewEnumerator(bag *tiles.Bag) *Enumerator {
	e := &Enumerator{caps: bag.Counts(), handSize: bag.HandSize()}
	for i := tiles.NumTileTypes - 1; i >= 0; i-- {
		e.suffix[i] = e.suffix[i+1] + int(e.caps[i])
	}
	return e
}

// HandSize returns the hand size being enumerated.
func (e *Enumerator) HandSize() int {
	return e.handSize
}

// Each calls yield for every distinct hand, reusing a single vector across
// calls; the callback must not retain it. Returns false if yield stopped
// the enumeration early.
func (e *Enumerator) Each(yield func(hand *tiles.Vector) bool) bool {
	var hand tiles.Vector
	return e.EachFrom(&hand, 0, e.handSize, yield)
}

// EachFrom enumerates every completion of the partial hand, choosing counts
// for symbols start..blank so that exactly left more tiles are placed. The
// caller seeds hand with the counts already chosen for symbols below start.
// This is the partition point for parallel workers: disjoint prefixes yield
// disjoint sub-ranges of the full enumeration.
//
// A branch is never entered unless the remaining symbols can still absorb
// the remaining slots: at each position the count ranges from
// max(0, left-suffixAvail) to min(cap, left), so infeasible branches are
// pruned before they are walked.
func (e *Enumerator) EachFrom(hand *tiles.Vector, start, left int, yield func(hand *tiles.Vector) bool) bool {
	if left < 0 || left > e.suffix[start] {
		return true
	}
	var ks [tiles.NumTileTypes]int
	pos, rem := start, left
	for {
		// Descend, choosing the minimum feasible count at each
		// position. The bounds guarantee the descent always reaches a
		// complete hand.
		for pos < tiles.NumTileTypes {
			k := rem - e.suffix[pos+1]
			if k < 0 {
				k = 0
			}
			ks[pos] = k
			hand[pos] += uint8(k)
			rem -= k
			pos++
		}
		if !yield(hand) {
			for pos > start {
				pos--
				hand[pos] -= uint8(ks[pos])
			}
			return false
		}
		// Backtrack to the deepest position that can take one more
		// tile of its symbol.
		for {
			pos--
			if pos < start {
				return true
			}
			k := ks[pos]
			hand[pos] -= uint8(k)
			rem += k
			hi := int(e.caps[pos])
			if hi > rem {
				hi = rem
			}
			if k < hi {
				k++
				ks[pos] = k
				hand[pos] += uint8(k)
				rem -= k
				pos++
				break
			}
		}
	}
}
