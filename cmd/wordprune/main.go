package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/wordgametools/handcensus/lexicon"
	"github.com/wordgametools/handcensus/tiles"
)

func main() {
	include := flag.String("include-letter", "", "keep only words containing at least one of these letters")
	exclude := flag.String("exclude-letter", "", "drop words containing any of these letters")
	minLength := flag.Int("min-length", 1, "minimum word length")
	maxLength := flag.Int("max-length", 0, "maximum word length; 0 means the hand size")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: wordprune [flags] <input> <output>")
		os.Exit(2)
	}

	in, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer in.Close()

	out, err := os.Create(flag.Arg(1))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	res, err := lexicon.Minimize(in, out, tiles.English(), lexicon.MinimizeOptions{
		IncludeLetters: *include,
		ExcludeLetters: *exclude,
		MinLength:      *minLength,
		MaxLength:      *maxLength,
	})
	if err != nil {
		out.Close()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := out.Close(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("Processing complete:\n")
	fmt.Printf("  Input: %d unique canonical forms\n", res.Unique)
	fmt.Printf("  Output: %d minimal forms\n", res.Kept)
	fmt.Printf("  Removed: %d forms\n", res.Removed)
	fmt.Printf("  Results written to %q\n", flag.Arg(1))
}
