package tiles

import (
	"fmt"
	"sort"
	"strings"
)

// A tile is internally represented by a small integer index.
// The letter A is represented by 0, B by 1, ... up to Z at 25. The blank
// (wildcard) tile takes the last slot, index 26, so that hands and word
// signatures can live in a single fixed-size count vector.
const (
	// NumLetters is the number of distinct non-blank letters.
	NumLetters = 26
	// Blank is the index of the wildcard tile.
	Blank Letter = 26
	// NumTileTypes is the number of distinct tile symbols, blank included.
	NumTileTypes = 27
	// BlankToken is the user-visible representation of a blank.
	BlankToken = '?'
)

// Letter is a machine-only representation of a tile symbol.
type Letter uint8

// Rune returns the user-visible rune for this letter.
func (l Letter) Rune() rune {
	if l == Blank {
		return BlankToken
	}
	return rune('A' + l)
}

// FromRune converts a user-visible rune into a Letter. It accepts upper and
// lower case letters and the blank token.
func FromRune(r rune) (Letter, error) {
	switch {
	case r == BlankToken:
		return Blank, nil
	case r >= 'A' && r <= 'Z':
		return Letter(r - 'A'), nil
	case r >= 'a' && r <= 'z':
		return Letter(r - 'a'), nil
	}
	return 0, fmt.Errorf("not a tile symbol: %q", r)
}

// Vector is a count vector over all tile symbols. It represents a hand, a
// word signature, or a full tile distribution, depending on context. The
// fixed size keeps the hot classification path allocation-free.
type Vector [NumTileTypes]uint8

// VectorFromString builds a Vector from a user-visible string such as
// "AEINST?".
func VectorFromString(s string) (Vector, error) {
	var v Vector
	for _, r := range s {
		l, err := FromRune(r)
		if err != nil {
			return Vector{}, err
		}
		v[l]++
	}
	return v, nil
}

// Total returns the total number of tiles counted in the vector.
func (v *Vector) Total() int {
	n := 0
	for _, c := range v {
		n += int(c)
	}
	return n
}

// Blanks returns the number of blank tiles in the vector.
func (v *Vector) Blanks() uint8 {
	return v[Blank]
}

// Add adds one tile of the given letter.
func (v *Vector) Add(l Letter) {
	v[l]++
}

// Remove removes one tile of the given letter. The tile must be present.
func (v *Vector) Remove(l Letter) {
	v[l]--
}

// String returns the alphagram-style representation of the vector, with
// blanks rendered as '?' at the end.
func (v *Vector) String() string {
	var sb strings.Builder
	for l := Letter(0); l < NumTileTypes; l++ {
		for i := uint8(0); i < v[l]; i++ {
			sb.WriteRune(l.Rune())
		}
	}
	return sb.String()
}

// Alphagram sorts the letters of a user-visible word into canonical order.
// Blanks sort last.
func Alphagram(word string) string {
	rs := []rune(strings.ToUpper(word))
	sort.Slice(rs, func(i, j int) bool {
		if rs[i] == BlankToken {
			return false
		}
		if rs[j] == BlankToken {
			return true
		}
		return rs[i] < rs[j]
	})
	return string(rs)
}
