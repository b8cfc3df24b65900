package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"othello-engine/selfplay"
)

func main() {
	black := flag.Int("black", 3, "strength of the engine playing black")
	white := flag.Int("white", 3, "strength of the engine playing white")
	games := flag.Int("games", 10, "number of games")
	workers := flag.Int("workers", 0, "games played at once (0 = GOMAXPROCS)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "match seed")
	verbose := flag.Bool("v", false, "print every game")
	logLevel := flag.String("loglevel", "info", "log level")
	flag.Parse()

	lvl, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	match := selfplay.Match{
		Black:   selfplay.Strength(*black),
		White:   selfplay.Strength(*white),
		Games:   *games,
		Workers: *workers,
		Seed:    *seed,
	}
	log.Info().Int("black", *black).Int("white", *white).Int("games", *games).Int64("seed", *seed).Msg("match-started")

	start := time.Now()
	res, err := match.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("match failed")
		os.Exit(1)
	}

	if *verbose {
		for _, g := range res.Games {
			fmt.Printf("game %3d  %2d-%2d  %s\n", g.Index+1, g.BlackDiscs, g.WhiteDiscs, g.Transcript)
		}
	}
	fmt.Printf("black (level %d): %.1f points, %d discs\n", *black, res.BlackPoints(), res.BlackDiscs)
	fmt.Printf("white (level %d): %.1f points, %d discs\n", *white, res.WhitePoints(), res.WhiteDiscs)
	fmt.Printf("wins %d  losses %d  draws %d  time %v\n", res.BlackWins, res.WhiteWins, res.Draws, time.Since(start))
}
