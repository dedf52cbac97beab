package census

import (
	"sort"
	"testing"

	"github.com/matryer/is"

	"github.com/wordgametools/handcensus/tiles"
)

func smallBag(t *testing.T, counts map[rune]uint8, handSize int) *tiles.Bag {
	t.Helper()
	var v tiles.Vector
	for r, n := range counts {
		l, err := tiles.FromRune(r)
		if err != nil {
			t.Fatal(err)
		}
		v[l] = n
	}
	bag, err := tiles.NewBag(v, handSize)
	if err != nil {
		t.Fatal(err)
	}
	return bag
}

func collect(e *Enumerator) []string {
	var hands []string
	e.Each(func(h *tiles.Vector) bool {
		hands = append(hands, h.String())
		return true
	})
	sort.Strings(hands)
	return hands
}

func TestEnumerateCompleteAndUnique(t *testing.T) {
	is := is.New(t)
	bag := smallBag(t, map[rune]uint8{'A': 2, 'B': 2, 'C': 2}, 2)

	hands := collect(NewEnumerator(bag))
	is.Equal(hands, []string{"AA", "AB", "AC", "BB", "BC", "CC"})
}

func TestEnumerateRespectsCapacity(t *testing.T) {
	is := is.New(t)
	bag := smallBag(t, map[rune]uint8{'A': 1, 'B': 1}, 2)

	hands := collect(NewEnumerator(bag))
	is.Equal(hands, []string{"AB"})
}

func TestEnumerateIncludesBlanks(t *testing.T) {
	is := is.New(t)
	bag := smallBag(t, map[rune]uint8{'A': 1, '?': 1}, 1)

	hands := collect(NewEnumerator(bag))
	is.Equal(hands, []string{"?", "A"})
}

func TestEnumerateEarlyStop(t *testing.T) {
	is := is.New(t)
	bag := smallBag(t, map[rune]uint8{'A': 2, 'B': 2, 'C': 2}, 2)

	seen := 0
	completed := NewEnumerator(bag).Each(func(h *tiles.Vector) bool {
		seen++
		return false
	})
	is.Equal(completed, false)
	is.Equal(seen, 1)
}

func TestEnumeratePartitionsCoverTheSpace(t *testing.T) {
	is := is.New(t)
	bag := tiles.English()
	e := NewEnumerator(bag)

	full := uint64(0)
	e.Each(func(h *tiles.Vector) bool {
		full++
		return true
	})

	// Re-enumerate as disjoint sub-ranges keyed on the first symbol's
	// count, the same split the parallel runner uses.
	split := uint64(0)
	for a := 0; a <= min(int(bag.Count(0)), bag.HandSize()); a++ {
		var hand tiles.Vector
		hand[0] = uint8(a)
		e.EachFrom(&hand, 1, bag.HandSize()-a, func(h *tiles.Vector) bool {
			split++
			return true
		})
	}
	is.Equal(full, split)
}

// refHandCount counts the multisets with a symbol-by-symbol DP, giving an
// independent check on the backtracking walk.
func refHandCount(bag *tiles.Bag) uint64 {
	k := bag.HandSize()
	counts := make([]uint64, k+1)
	counts[0] = 1
	for l := tiles.Letter(0); l < tiles.NumTileTypes; l++ {
		next := make([]uint64, k+1)
		for have, ways := range counts {
			if ways == 0 {
				continue
			}
			for take := 0; take <= int(bag.Count(l)) && have+take <= k; take++ {
				next[have+take] += ways
			}
		}
		counts = next
	}
	return counts[k]
}

func TestEnumerateMatchesReferenceCount(t *testing.T) {
	is := is.New(t)
	for _, bag := range []*tiles.Bag{
		smallBag(t, map[rune]uint8{'A': 2, 'B': 2, 'C': 2}, 2),
		smallBag(t, map[rune]uint8{'A': 3, 'B': 1, 'C': 2, '?': 2}, 4),
		tiles.English(),
	} {
		emitted := uint64(0)
		NewEnumerator(bag).Each(func(h *tiles.Vector) bool {
			emitted++
			return true
		})
		is.Equal(emitted, refHandCount(bag))
	}
}

func TestEnumerateWeightsSumToTotalDraws(t *testing.T) {
	is := is.New(t)
	bag := tiles.English()
	w := NewWeigher(bag)

	sum := uint64(0)
	NewEnumerator(bag).Each(func(h *tiles.Vector) bool {
		sum += w.Weight(h)
		return true
	})
	is.Equal(sum, bag.TotalDraws())
}
