package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wordgametools/handcensus/census"
	"github.com/wordgametools/handcensus/config"
	"github.com/wordgametools/handcensus/lexicon"
	"github.com/wordgametools/handcensus/tiles"
)

func main() {
	cfg := config.DefaultConfig()
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	var logger zerolog.Logger
	if cfg.GetBool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	log.Logger = logger

	wordfile := cfg.GetString("wordfile")
	if wordfile == "" {
		fmt.Fprintln(os.Stderr, "usage: handcensus [flags] <wordfile>")
		os.Exit(2)
	}

	bag := tiles.English()

	f, err := os.Open(wordfile)
	if err != nil {
		log.Fatal().Err(err).Str("wordfile", wordfile).Msg("cannot open word list")
	}
	lex, err := lexicon.Load(f, bag)
	f.Close()
	if err != nil {
		log.Fatal().Err(err).Str("wordfile", wordfile).Msg("cannot build lexicon")
	}
	fmt.Fprintf(os.Stderr, "Loaded %d valid words\n", lex.WordCount())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := census.New(bag, lex)
	c.SetThreads(cfg.GetInt("threads"))
	c.SetProgress(os.Stderr, uint64(cfg.GetInt("report-every")))

	totals, err := c.Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn().Msg("census interrupted")
			os.Exit(130)
		}
		log.Fatal().Err(err).Msg("census failed")
	}

	rep := &census.Report{
		Totals:     totals,
		TotalDraws: bag.TotalDraws(),
	}
	if cfg.GetBool("json") {
		err = rep.RenderJSON(os.Stdout)
	} else {
		err = rep.Render(os.Stdout)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("cannot render report")
	}
}
