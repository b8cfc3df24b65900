// Package selfplay plays engines against each other, several games at a time.
package selfplay

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"othello-engine/engine"
	"othello-engine/othello"
)

var (
	ErrNoPlayer    = errors.New("selfplay: both players must be set")
	ErrNoMove      = errors.New("selfplay: engine returned no move although one exists")
	ErrIllegalMove = errors.New("selfplay: engine returned an illegal move")
)

// Factory builds the engine for one game. Every game gets fresh engines so
// games can run in parallel; seed makes each game reproducible.
type Factory func(seed int64) engine.MoveComputer

// Strength returns a Factory of seeded engines searching at strength n.
func Strength(n int) Factory {
	return func(seed int64) engine.MoveComputer {
		return engine.NewSeededEngine(n, seed)
	}
}

type Match struct {
	Black Factory
	White Factory
	Games int
	// Workers bounds the number of games played at once, GOMAXPROCS when
	// not positive.
	Workers int
	Seed    int64
}

// GameRecord is the outcome of one game.
type GameRecord struct {
	Index      int
	BlackDiscs int
	WhiteDiscs int
	// Transcript lists the moves in order, e.g. "f5 d6 c3".
	Transcript string
	Elapsed    time.Duration
}

func (r GameRecord) Winner() othello.Player {
	switch {
	case r.BlackDiscs > r.WhiteDiscs:
		return othello.Black
	case r.WhiteDiscs > r.BlackDiscs:
		return othello.White
	default:
		return othello.None
	}
}

type Result struct {
	Games      []GameRecord
	BlackWins  int
	WhiteWins  int
	Draws      int
	BlackDiscs int
	WhiteDiscs int
}

// BlackPoints counts a win as one point and a draw as half.
func (r Result) BlackPoints() float64 { return float64(r.BlackWins) + float64(r.Draws)/2 }

func (r Result) WhitePoints() float64 { return float64(r.WhiteWins) + float64(r.Draws)/2 }

// Run plays every game of the match and returns the totals. The first error
// stops the match; cancelling ctx interrupts the games in progress.
func (m Match) Run(ctx context.Context) (Result, error) {
	if m.Black == nil || m.White == nil {
		return Result{}, ErrNoPlayer
	}
	workers := m.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	records := make([]GameRecord, max(m.Games, 0))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range records {
		i := i
		g.Go(func() error {
			rec, err := m.playGame(gctx, i)
			if err != nil {
				return err
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := summarize(records)
	log.Info().
		Int("games", len(records)).
		Int("black-wins", res.BlackWins).
		Int("white-wins", res.WhiteWins).
		Int("draws", res.Draws).
		Msg("match-finished")
	return res, nil
}

func (m Match) playGame(ctx context.Context, index int) (GameRecord, error) {
	seed := m.Seed + 2*int64(index)
	players := map[othello.Player]engine.MoveComputer{
		othello.Black: m.Black(seed),
		othello.White: m.White(seed + 1),
	}

	start := time.Now()
	game := othello.NewGame()
	for {
		player := game.WhoseTurn()
		if player == othello.None {
			break
		}
		if err := ctx.Err(); err != nil {
			return GameRecord{}, err
		}
		mv, ok := players[player].ComputeMoveContext(ctx, game)
		if !ok {
			if err := ctx.Err(); err != nil {
				return GameRecord{}, err
			}
			return GameRecord{}, fmt.Errorf("game %d, move %d: %w", index, game.MoveNumber()+1, ErrNoMove)
		}
		if !game.MakeMove(mv) {
			return GameRecord{}, fmt.Errorf("game %d, move %d (%v by %v): %w", index, game.MoveNumber()+1, mv, player, ErrIllegalMove)
		}
	}

	rec := GameRecord{
		Index:      index,
		BlackDiscs: game.Score(othello.Black),
		WhiteDiscs: game.Score(othello.White),
		Transcript: game.Transcript(),
		Elapsed:    time.Since(start),
	}
	log.Debug().
		Int("game", index).
		Int("black", rec.BlackDiscs).
		Int("white", rec.WhiteDiscs).
		Int("moves", game.MoveNumber()).
		Dur("elapsed", rec.Elapsed).
		Msg("game-finished")
	return rec, nil
}

func summarize(records []GameRecord) Result {
	res := Result{Games: records}
	for _, r := range records {
		res.BlackDiscs += r.BlackDiscs
		res.WhiteDiscs += r.WhiteDiscs
		switch r.Winner() {
		case othello.Black:
			res.BlackWins++
		case othello.White:
			res.WhiteWins++
		default:
			res.Draws++
		}
	}
	return res
}
