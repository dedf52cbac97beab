// Package lexicon holds the preprocessed word list used for hand
// feasibility testing. Words are reduced to letter-count signatures; the
// oracle never needs the words themselves, only whether some signature can
// be covered by a hand's tiles plus its blanks.
package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/bits"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/wordgametools/handcensus/tiles"
)

// ErrNoWords is returned when the input word list contains no usable tokens.
// An empty lexicon makes every hand dead, so this is a hard stop.
var ErrNoWords = errors.New("word list contains no words")

// Entry is a word reduced to its letter-count signature.
type Entry struct {
	counts [tiles.NumLetters]uint8
	mask   uint32
	length uint8
}

// Lexicon is the immutable set of word signatures, bucketed by word length
// for cheap candidate filtering. Read-only after Load; safe for concurrent
// use.
type Lexicon struct {
	byLength [][]Entry
	handSize int
	loaded   int
	dropped  int
	entries  int
}

// Load reads one token per line, lower-cases it, and builds the lexicon.
// Words longer than the bag's hand size are dropped, as are words that can
// never be drawn from the bag even with every blank assigned to them.
// Duplicate signatures (anagrams) collapse into a single entry.
func Load(r io.Reader, bag *tiles.Bag) (*Lexicon, error) {
	lx := &Lexicon{
		byLength: make([][]Entry, bag.HandSize()+1),
		handSize: bag.HandSize(),
	}
	seen := make(map[[tiles.NumLetters]uint8]struct{})

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		token := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if token == "" {
			continue
		}
		lx.loaded++
		entry, err := newEntry(token)
		if err != nil {
			lx.dropped++
			log.Debug().Str("token", token).Msg("skipping malformed token")
			continue
		}
		if int(entry.length) > lx.handSize || !drawableFrom(entry, bag) {
			lx.dropped++
			continue
		}
		if _, ok := seen[entry.counts]; ok {
			continue
		}
		seen[entry.counts] = struct{}{}
		lx.byLength[entry.length] = append(lx.byLength[entry.length], entry)
		lx.entries++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	if lx.loaded == 0 {
		return nil, ErrNoWords
	}
	log.Info().
		Int("loaded", lx.loaded).
		Int("dropped", lx.dropped).
		Int("signatures", lx.entries).
		Msg("built lexicon")
	return lx, nil
}

func newEntry(token string) (Entry, error) {
	var e Entry
	for _, r := range token {
		if r < 'a' || r > 'z' {
			return Entry{}, fmt.Errorf("non-letter rune %q in token", r)
		}
		i := r - 'a'
		e.counts[i]++
		e.mask |= 1 << uint(i)
	}
	e.length = uint8(len(token))
	return e, nil
}

// drawableFrom reports whether some hand drawn from the bag could ever
// contain this word's letters, counting the bag's blanks against any
// deficit.
func drawableFrom(e Entry, bag *tiles.Bag) bool {
	deficit := 0
	for i := 0; i < tiles.NumLetters; i++ {
		if need := int(e.counts[i]); need > int(bag.Count(tiles.Letter(i))) {
			deficit += need - int(bag.Count(tiles.Letter(i)))
		}
	}
	return deficit <= int(bag.Count(tiles.Blank))
}

// WordCount returns the number of tokens read from the word list.
func (lx *Lexicon) WordCount() int {
	return lx.loaded
}

// Dropped returns the number of tokens dropped as unformable or malformed.
func (lx *Lexicon) Dropped() int {
	return lx.dropped
}

// Signatures returns the number of distinct usable signatures.
func (lx *Lexicon) Signatures() int {
	return lx.entries
}

// Playable reports whether any lexicon word is formable from the hand. A
// word is formable iff the sum of its per-letter deficits against the hand
// does not exceed the hand's blank count. Words shorter than the hand match
// subsets of the hand; there is no length-equality requirement.
func (lx *Lexicon) Playable(hand *tiles.Vector) bool {
	blanks := int(hand.Blanks())
	var handMask uint32
	for i := 0; i < tiles.NumLetters; i++ {
		if hand[i] > 0 {
			handMask |= 1 << uint(i)
		}
	}
	for length := 1; length < len(lx.byLength); length++ {
		for i := range lx.byLength[length] {
			e := &lx.byLength[length][i]
			// Every letter missing from the hand entirely costs at
			// least one blank.
			if bits.OnesCount32(e.mask&^handMask) > blanks {
				continue
			}
			if deficit(e, hand) <= blanks {
				return true
			}
		}
	}
	return false
}

func deficit(e *Entry, hand *tiles.Vector) int {
	d := 0
	m := e.mask
	for m != 0 {
		i := bits.TrailingZeros32(m)
		m &= m - 1
		if need := int(e.counts[i]); need > int(hand[i]) {
			d += need - int(hand[i])
		}
	}
	return d
}
