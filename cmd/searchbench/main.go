package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"othello-engine/engine"
	"othello-engine/othello"
)

// A middle game position after twenty moves, used when -moves is not given.
const defaultLine = "f5 d6 c3 d3 c4 f4 c5 b3 c2 e6 c6 b4 b5 d2 e3 a6 c1 b1 f6 e7"

func main() {
	levelFlag := flag.Int("level", 8, "engine strength (nominal search depth)")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	movesFlag := flag.String("moves", defaultLine, "moves from the initial position")
	seedFlag := flag.Int64("seed", 1, "random seed")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	logLevel := flag.String("loglevel", "info", "log level")
	flag.Parse()

	lvl, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if *levelFlag < 0 {
		log.Fatal().Int("level", *levelFlag).Msg("level must not be negative")
	}
	game, err := othello.ParseTranscript(*movesFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("could not replay moves")
	}
	if game.WhoseTurn() == othello.None {
		log.Fatal().Msg("the game is over")
	}

	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	fmt.Printf("searchbench: moves=%q level=%d repeat=%d\n", *movesFlag, *levelFlag, *repeatFlag)

	e := engine.NewSeededEngine(*levelFlag, *seedFlag)
	var nodes uint64
	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		m, ok := e.ComputeMove(game)
		stats := e.LastStats()
		nodes += stats.Nodes
		best := "(none)"
		if ok {
			best = m.String()
		}
		fmt.Printf("iteration %d: bestmove %s value %d depth %d nodes %d time=%v nps=%d\n",
			i+1, best, stats.BestValue, stats.Depth, stats.Nodes, stats.Elapsed, stats.NodesPerSecond())
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total time: %v nodes: %d\n", totalElapsed, nodes)

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create memory profile")
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not write memory profile")
		}
	}
}
