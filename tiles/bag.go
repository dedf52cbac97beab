package tiles

import (
	"errors"

	"gonum.org/v1/gonum/stat/combin"
)

var (
	// ErrBadHandSize is returned when the hand size is zero or negative.
	ErrBadHandSize = errors.New("hand size must be at least 1")
	// ErrHandExceedsBag is returned when the hand size exceeds the total
	// number of tiles in the distribution.
	ErrHandExceedsBag = errors.New("hand size exceeds total tile count")
)

// Bag is an immutable tile distribution together with the hand size drawn
// from it. It is constructed once at startup and read-only thereafter, so it
// may be shared freely across workers.
type Bag struct {
	counts   Vector
	handSize int
	total    int
	maxCount uint8
}

// NewBag validates and builds a Bag from a per-symbol count vector and a
// hand size.
func NewBag(counts Vector, handSize int) (*Bag, error) {
	if handSize < 1 {
		return nil, ErrBadHandSize
	}
	total := 0
	maxCount := uint8(0)
	for _, c := range counts {
		total += int(c)
		if c > maxCount {
			maxCount = c
		}
	}
	if handSize > total {
		return nil, ErrHandExceedsBag
	}
	return &Bag{
		counts:   counts,
		handSize: handSize,
		total:    total,
		maxCount: maxCount,
	}, nil
}

// English returns the official English 100-tile distribution with a hand
// size of 7.
func English() *Bag {
	counts := Vector{
		9, 2, 2, 4, 12, 2, 3, 2, 9, 1, 1, 4, 2, // A-M
		6, 8, 2, 1, 6, 4, 6, 4, 2, 2, 1, 2, 1, // N-Z
		2, // blank
	}
	b, err := NewBag(counts, 7)
	if err != nil {
		// The built-in table is always valid.
		panic(err)
	}
	return b
}

// Count returns the number of tiles of the given letter in the bag.
func (b *Bag) Count(l Letter) uint8 {
	return b.counts[l]
}

// Counts returns a copy of the full count vector.
func (b *Bag) Counts() Vector {
	return b.counts
}

// HandSize returns the number of tiles in a drawn hand.
func (b *Bag) HandSize() int {
	return b.handSize
}

// TotalTiles returns the total number of physical tiles in the bag.
func (b *Bag) TotalTiles() int {
	return b.total
}

// MaxCount returns the largest per-symbol count in the bag.
func (b *Bag) MaxCount() uint8 {
	return b.maxCount
}

// TotalDraws returns the number of distinct physical draws of a full hand
// from the bag, C(total, handSize). For the English distribution this is
// 16,007,560,800.
func (b *Bag) TotalDraws() uint64 {
	return uint64(combin.Binomial(b.total, b.handSize))
}
