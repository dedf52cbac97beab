package tiles

import (
	"testing"

	"github.com/matryer/is"
)

func TestEnglishDistribution(t *testing.T) {
	is := is.New(t)
	bag := English()

	is.Equal(bag.TotalTiles(), 100)
	is.Equal(bag.HandSize(), 7)
	is.Equal(bag.Count(Letter('E'-'A')), uint8(12))
	is.Equal(bag.Count(Letter('Z'-'A')), uint8(1))
	is.Equal(bag.Count(Blank), uint8(2))
	is.Equal(bag.MaxCount(), uint8(12))
	is.Equal(bag.TotalDraws(), uint64(16007560800))
}

func TestNewBagValidation(t *testing.T) {
	is := is.New(t)

	var counts Vector
	counts[0] = 2

	_, err := NewBag(counts, 0)
	is.Equal(err, ErrBadHandSize)

	_, err = NewBag(counts, 3)
	is.Equal(err, ErrHandExceedsBag)

	bag, err := NewBag(counts, 2)
	is.NoErr(err)
	is.Equal(bag.TotalTiles(), 2)
}
