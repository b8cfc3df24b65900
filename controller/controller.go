// Package controller is the command surface a user interface drives: it owns
// one game and one engine, runs engine searches in the background and keeps
// the bookkeeping needed to undo the last move entered by a person.
package controller

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"othello-engine/engine"
	"othello-engine/othello"
)

var (
	// ErrBusy is returned when a computation is requested while another one
	// is still running.
	ErrBusy = errors.New("controller: computation already in progress")
	// ErrGameOver is returned when a computation is requested but neither
	// side can move.
	ErrGameOver = errors.New("controller: no side can move")
)

// Listener is told once about the outcome of every computation started with
// ComputeMove. ok is false when there was no move or the search was
// interrupted.
type Listener interface {
	ComputationFinished(m othello.Move, ok bool)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(m othello.Move, ok bool)

func (f ListenerFunc) ComputationFinished(m othello.Move, ok bool) { f(m, ok) }

// Result is what a finished computation publishes on its Done channel.
type Result struct {
	Move othello.Move
	OK   bool
}

type Controller struct {
	mu sync.Mutex

	engine engine.MoveComputer
	game   *othello.Game

	calculating bool
	listener    Listener
	cancel      context.CancelFunc
	done        chan Result

	// discs on the board before the last move entered through MakeMove, 0
	// when there is nothing to undo.
	lastEnteredDiscs int
}

// New returns a controller with a new game driven by e.
func New(e engine.MoveComputer) *Controller {
	return &Controller{engine: e, game: othello.NewGame()}
}

// ComputeMove starts a search for the side to move on a background goroutine
// and returns at once. When the search ends its move, if any, is played, the
// listener is notified and the result is sent on the channel returned by Done.
// The listener may start the next computation from inside its callback.
// Cancelling ctx interrupts the search.
func (c *Controller) ComputeMove(ctx context.Context, listener Listener) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.calculating {
		return ErrBusy
	}
	player := c.game.WhoseTurn()
	if player == othello.None {
		return ErrGameOver
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan Result, 1)
	c.calculating = true
	c.listener = listener
	c.cancel = cancel
	c.done = done

	log.Debug().
		Stringer("player", player).
		Int("level", c.engine.Strength()).
		Int("move-number", c.game.MoveNumber()).
		Msg("search-started")

	go c.run(ctx, cancel, c.game.Clone(), done)
	return nil
}

func (c *Controller) run(ctx context.Context, cancel context.CancelFunc, g *othello.Game, done chan<- Result) {
	defer cancel()

	start := time.Now()
	m, ok := c.engine.ComputeMoveContext(ctx, g)

	c.mu.Lock()
	if ok {
		ok = c.game.MakeMove(m)
	}
	c.calculating = false
	c.cancel = nil
	listener := c.listener
	c.listener = nil
	c.mu.Unlock()

	log.Debug().
		Str("move", m.String()).
		Bool("found", ok).
		Dur("elapsed", time.Since(start)).
		Msg("search-finished")

	if listener != nil {
		listener.ComputationFinished(m, ok)
	}
	done <- Result{Move: m, OK: ok}
}

// Done returns the channel of the most recently started computation, nil if
// none was ever started. It receives exactly one Result.
func (c *Controller) Done() <-chan Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}

func (c *Controller) Calculating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calculating
}

func (c *Controller) ComputeMoveIsPossible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.calculating && c.game.WhoseTurn() != othello.None
}

// Interrupt asks the running computation to stop. The listener still fires,
// reporting no move.
func (c *Controller) Interrupt() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.calculating {
		return false
	}
	c.cancel()
	return true
}

func (c *Controller) InterruptIsPossible() bool { return c.Calculating() }

// MoveIsPossible reports whether a person may enter a move now.
func (c *Controller) MoveIsPossible() bool { return c.ComputeMoveIsPossible() }

// MakeMove plays (x, y) for the side to move.
func (c *Controller) MakeMove(x, y int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.enteredMove(x, y)
	if !ok {
		return false
	}
	discs := c.discs()
	if !c.game.MakeMove(m) {
		return false
	}
	c.lastEnteredDiscs = discs
	return true
}

func (c *Controller) MakeMoveIsPossible(x, y int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.enteredMove(x, y)
	return ok
}

func (c *Controller) enteredMove(x, y int) (othello.Move, bool) {
	if c.calculating {
		return othello.Move{}, false
	}
	m, err := othello.NewMove(x, y, c.game.WhoseTurn())
	if err != nil || !c.game.MoveIsLegal(m) {
		return othello.Move{}, false
	}
	return m, true
}

// Undo takes back every move played since the last move entered through
// MakeMove, that move included.
func (c *Controller) Undo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.undoIsPossible() {
		return false
	}
	for c.discs() > c.lastEnteredDiscs {
		if !c.game.TakeBackMove() {
			break
		}
	}
	c.lastEnteredDiscs = 0
	return true
}

func (c *Controller) UndoIsPossible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.undoIsPossible()
}

func (c *Controller) undoIsPossible() bool {
	return !c.calculating && c.lastEnteredDiscs >= 4
}

// TakeBack takes back the last move, whoever played it.
func (c *Controller) TakeBack() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.takeBackIsPossible() {
		return false
	}
	c.game.TakeBackMove()
	if discs := c.discs(); discs <= 4 || discs <= c.lastEnteredDiscs {
		c.lastEnteredDiscs = 0
	}
	return true
}

func (c *Controller) TakeBackIsPossible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.takeBackIsPossible()
}

func (c *Controller) takeBackIsPossible() bool {
	return !c.calculating && c.discs() > 4
}

func (c *Controller) NewGame() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.calculating {
		return false
	}
	c.lastEnteredDiscs = 0
	c.game.Reset()
	return true
}

func (c *Controller) NewGameIsPossible() bool { return !c.Calculating() }

// SetLevel sets the engine strength for the next computation.
func (c *Controller) SetLevel(level int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.calculating {
		return false
	}
	c.engine.SetStrength(level)
	return true
}

func (c *Controller) SetLevelIsPossible() bool { return !c.Calculating() }

func (c *Controller) Level() int { return c.engine.Strength() }

// SetSeed makes the engine's random choices reproducible.
func (c *Controller) SetSeed(seed int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.calculating {
		return false
	}
	c.engine.SetSeed(seed)
	return true
}

// Square returns the owner of (x, y).
func (c *Controller) Square(x, y int) (othello.Player, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.Square(x, y)
}

func (c *Controller) ScoreWhite() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.Score(othello.White)
}

func (c *Controller) ScoreBlack() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.Score(othello.Black)
}

func (c *Controller) WhoseTurn() othello.Player {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.WhoseTurn()
}

// LastMove returns the last move as an upper-case column letter followed by
// the row, "C4" for instance, or "" before the first move.
func (c *Controller) LastMove() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.game.LastMove()
	if !ok {
		return ""
	}
	return string(rune('A'+m.X()-1)) + string(rune('0'+m.Y()))
}

// Game returns a copy of the current game.
func (c *Controller) Game() *othello.Game {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.Clone()
}

func (c *Controller) discs() int {
	return c.game.Score(othello.White) + c.game.Score(othello.Black)
}
