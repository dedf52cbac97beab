package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/wordgametools/handcensus/tiles"
)

// MinimizeOptions controls the word-list minimizer filters.
type MinimizeOptions struct {
	// IncludeLetters keeps only words containing at least one of these
	// letters, when non-empty.
	IncludeLetters string
	// ExcludeLetters drops any word containing one of these letters.
	ExcludeLetters string
	// MinLength drops shorter words. Zero means 1.
	MinLength int
	// MaxLength drops longer words. Zero means the bag's hand size.
	MaxLength int
}

// MinimizeResult summarizes a minimizer run.
type MinimizeResult struct {
	// Unique is the number of distinct canonical forms found in the input.
	Unique int
	// Kept is the number of canonical forms written out.
	Kept int
	// Removed is Unique - Kept.
	Removed int
}

// Minimize reduces a raw word list to the minimal canonical list needed for
// feasibility testing. Each input line's first token is upper-cased and
// sorted into canonical form; duplicates collapse, canonical supersets of
// other words are removed (any hand forming the superset also forms the
// subset), and forms that exceed the bag's per-letter tile counts are
// dropped. The surviving forms are written one per line, lower-case, sorted.
func Minimize(r io.Reader, w io.Writer, bag *tiles.Bag, opts MinimizeOptions) (MinimizeResult, error) {
	if opts.MinLength < 1 {
		opts.MinLength = 1
	}
	if opts.MaxLength < 1 {
		opts.MaxLength = bag.HandSize()
	}
	include := strings.ToUpper(opts.IncludeLetters)
	exclude := strings.ToUpper(opts.ExcludeLetters)

	var canonical []string
	seen := make(map[uint64]struct{})
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		word := strings.ToUpper(fields[0])
		if !isAlphabetic(word) {
			log.Debug().Str("word", word).Msg("skipping non-alphabetic token")
			continue
		}
		if len(word) < opts.MinLength || len(word) > opts.MaxLength {
			continue
		}
		if exclude != "" && strings.ContainsAny(word, exclude) {
			continue
		}
		if include != "" && !strings.ContainsAny(word, include) {
			continue
		}
		form := tiles.Alphagram(word)
		h := xxhash.Sum64String(form)
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		canonical = append(canonical, form)
	}
	if err := scanner.Err(); err != nil {
		return MinimizeResult{}, fmt.Errorf("reading word list: %w", err)
	}

	kept := removeSupersets(canonical, bag)
	sort.Strings(kept)
	for _, form := range kept {
		if _, err := fmt.Fprintln(w, strings.ToLower(form)); err != nil {
			return MinimizeResult{}, fmt.Errorf("writing word list: %w", err)
		}
	}
	res := MinimizeResult{
		Unique:  len(canonical),
		Kept:    len(kept),
		Removed: len(canonical) - len(kept),
	}
	log.Info().
		Int("unique", res.Unique).
		Int("kept", res.Kept).
		Int("removed", res.Removed).
		Msg("minimized word list")
	return res, nil
}

func isAlphabetic(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// removeSupersets keeps only canonical forms that do not contain all the
// letters of some other (shorter or equal) form, and that fit within the
// bag's per-letter tile counts.
func removeSupersets(canonical []string, bag *tiles.Bag) []string {
	byLength := lo.Filter(canonical, func(form string, _ int) bool {
		return fitsBag(form, bag)
	})
	sort.Slice(byLength, func(i, j int) bool {
		return len(byLength[i]) < len(byLength[j])
	})
	sigs := make([]tiles.Vector, 0, len(byLength))
	kept := byLength[:0]
	for _, form := range byLength {
		v, err := tiles.VectorFromString(form)
		if err != nil {
			continue
		}
		if containsAnyOf(&v, sigs) {
			continue
		}
		sigs = append(sigs, v)
		kept = append(kept, form)
	}
	return kept
}

func fitsBag(form string, bag *tiles.Bag) bool {
	v, err := tiles.VectorFromString(form)
	if err != nil {
		return false
	}
	// Blanks are not spent here: the minimizer validates against physical
	// letter tiles only.
	for i := tiles.Letter(0); i < tiles.NumLetters; i++ {
		if v[i] > bag.Count(i) {
			return false
		}
	}
	return true
}

func containsAnyOf(v *tiles.Vector, sigs []tiles.Vector) bool {
	for s := range sigs {
		contained := true
		for i := 0; i < tiles.NumLetters; i++ {
			if sigs[s][i] > v[i] {
				contained = false
				break
			}
		}
		if contained {
			return true
		}
	}
	return false
}
