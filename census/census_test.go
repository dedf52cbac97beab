package census

import (
	"context"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/require"

	"github.com/wordgametools/handcensus/lexicon"
	"github.com/wordgametools/handcensus/tiles"
)

func lexiconFor(t *testing.T, bag *tiles.Bag, words ...string) *lexicon.Lexicon {
	t.Helper()
	lx, err := lexicon.Load(strings.NewReader(strings.Join(words, "\n")), bag)
	if err != nil {
		t.Fatal(err)
	}
	return lx
}

func TestCensusSyntheticBag(t *testing.T) {
	is := is.New(t)
	bag := smallBag(t, map[rune]uint8{'A': 2, 'B': 2, 'C': 2}, 2)
	lx := lexiconFor(t, bag, "ab")

	c := New(bag, lx)
	c.SetThreads(1)
	totals, err := c.Run(context.Background())
	is.NoErr(err)

	// Of {AA,AB,AC,BB,BC,CC} only AB forms "ab"; its draw weight is
	// C(2,1)*C(2,1) = 4 of the C(6,2) = 15 physical draws.
	is.Equal(totals.RawPlayable, uint64(1))
	is.Equal(totals.RawDead, uint64(5))
	is.Equal(totals.WeightedPlayable, uint64(4))
	is.Equal(totals.WeightedDead, uint64(11))
	is.Equal(totals.RawTotal(), uint64(6))
	is.Equal(totals.WeightedTotal(), bag.TotalDraws())
	is.Equal(c.HandsChecked(), totals.RawTotal())
}

func TestCensusBlankCoversDeficit(t *testing.T) {
	is := is.New(t)
	bag := smallBag(t, map[rune]uint8{'A': 2, '?': 1}, 2)
	lx := lexiconFor(t, bag, "aa")

	totals, err := New(bag, lx).Run(context.Background())
	is.NoErr(err)

	// Hands are AA and A?; the blank covers the second A in both cases.
	is.Equal(totals.RawPlayable, uint64(2))
	is.Equal(totals.RawDead, uint64(0))
	is.Equal(totals.WeightedTotal(), bag.TotalDraws())
}

func TestCensusIdempotentAndThreadCountInvariant(t *testing.T) {
	is := is.New(t)
	bag := smallBag(t, map[rune]uint8{'A': 3, 'B': 2, 'C': 2, 'D': 1, '?': 1}, 3)
	lx := lexiconFor(t, bag, "ab", "cd", "bcd")

	c := New(bag, lx)
	c.SetThreads(1)
	serial, err := c.Run(context.Background())
	is.NoErr(err)

	again, err := c.Run(context.Background())
	is.NoErr(err)
	is.Equal(serial, again)

	c.SetThreads(4)
	parallel, err := c.Run(context.Background())
	is.NoErr(err)
	is.Equal(serial, parallel)

	is.Equal(serial.WeightedTotal(), bag.TotalDraws())
}

func TestCensusDictionaryMonotonicity(t *testing.T) {
	is := is.New(t)
	bag := smallBag(t, map[rune]uint8{'A': 2, 'B': 2, 'C': 2, '?': 1}, 3)

	before, err := New(bag, lexiconFor(t, bag, "aa")).Run(context.Background())
	is.NoErr(err)
	after, err := New(bag, lexiconFor(t, bag, "aa", "bc")).Run(context.Background())
	is.NoErr(err)

	is.True(after.RawDead <= before.RawDead)
	is.True(after.WeightedDead <= before.WeightedDead)
	is.Equal(after.RawTotal(), before.RawTotal())
}

func TestCensusUnformableWordEndToEnd(t *testing.T) {
	bag := tiles.English()
	// zzzzzzz requires seven Zs; the bag holds one Z and two blanks, so
	// no hand can ever supply it and every hand is dead.
	lx := lexiconFor(t, bag, "zzzzzzz")

	totals, err := New(bag, lx).Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, uint64(0), totals.RawPlayable)
	require.Equal(t, uint64(0), totals.WeightedPlayable)
	require.Equal(t, bag.TotalDraws(), totals.WeightedTotal())
	require.Equal(t, totals.RawTotal(), totals.RawDead)
}

func TestCensusCancellation(t *testing.T) {
	is := is.New(t)
	bag := tiles.English()
	lx := lexiconFor(t, bag, "cab")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(bag, lx).Run(ctx)
	is.Equal(err, context.Canceled)
}
