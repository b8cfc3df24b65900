package engine

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"othello-engine/othello"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	// LargeInt bounds every value the search can produce.
	LargeInt = 99999
	// IllegalValue marks a tried move that turned nothing. It lies outside
	// [-LargeInt, LargeInt] so it is never mistaken for an evaluation.
	IllegalValue = 888888
)

// Engine is a fixed-depth negamax searcher with alpha-beta cutoffs over a
// mutable scratch board.
type Engine struct {
	*SearchContext

	mu        sync.Mutex
	lastStats Stats
}

func NewEngine(strength int) *Engine {
	return &Engine{SearchContext: NewSearchContext(strength)}
}

// NewSeededEngine returns an engine whose random choices are reproducible.
func NewSeededEngine(strength int, seed int64) *Engine {
	return &Engine{SearchContext: NewSeededSearchContext(strength, seed)}
}

// LastStats returns the statistics of the most recent ComputeMove call.
func (e *Engine) LastStats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastStats
}

func (e *Engine) setStats(s Stats) {
	e.mu.Lock()
	e.lastStats = s
	e.mu.Unlock()
}

// ComputeMove searches the current position of g and returns the move to
// play. ok is false when no side can move or when the search was
// interrupted; both cases look the same to the caller. g is only read.
func (e *Engine) ComputeMove(g *othello.Game) (othello.Move, bool) {
	return e.ComputeMoveContext(context.Background(), g)
}

// ComputeMoveContext is ComputeMove with ctx cancellation raising the
// interrupt flag.
func (e *Engine) ComputeMoveContext(ctx context.Context, g *othello.Game) (othello.Move, bool) {
	player := g.WhoseTurn()
	if player == othello.None {
		return othello.Move{}, false
	}

	pos := g.Position()
	if pos.Discs() == 4 {
		e.setStats(Stats{Opening: true, RootMoves: 4})
		return e.openingMove(player)
	}

	e.SetInterrupt(false)
	stop := context.AfterFunc(ctx, func() { e.SetInterrupt(true) })
	defer stop()

	start := time.Now()
	s := newSearchState(pos, e.Strength(), e.SearchContext)
	m, ok := e.rootSearch(s, player)
	s.stats.Elapsed = time.Since(start)
	e.setStats(s.stats)

	log.Debug().
		Stringer("player", player).
		Int("strength", e.Strength()).
		Str("move", m.String()).
		Bool("found", ok).
		Object("stats", s.stats).
		Msg("search-finished")

	return m, ok
}

// =============================================================================
// PER-SEARCH STATE
// =============================================================================

type scratchBoard [boardSize + 2][boardSize + 2]othello.Player

// searchState is owned by a single ComputeMove call. Nothing in it is shared
// with other searches.
type searchState struct {
	board      scratchBoard
	score      othello.Score
	bcScore    othello.Score
	flips      flipStack
	strength   int
	depth      int
	coeff      int
	exhaustive bool
	ctx        *SearchContext
	stats      Stats
}

func newSearchState(pos *othello.Position, strength int, ctx *SearchContext) *searchState {
	s := &searchState{
		flips:    newFlipStack(initialFlipStackSize),
		ctx:      ctx,
		strength: strength,
	}
	for x := 1; x <= boardSize; x++ {
		for y := 1; y <= boardSize; y++ {
			s.board[x][y] = pos.At(x, y)
		}
	}
	s.score = othello.NewScore(pos.Score(othello.White), pos.Score(othello.Black))
	s.bcScore = othello.NewScore(calcBcScore(&s.board, othello.White), calcBcScore(&s.board, othello.Black))

	discs := s.score.Total()
	s.depth = searchDepth(discs, strength)
	s.exhaustive = discs+s.depth >= 64
	s.coeff = progressCoeff(discs, s.depth)

	s.stats.Depth = s.depth
	s.stats.Exhaustive = s.exhaustive
	s.stats.Coeff = s.coeff
	return s
}

// searchDepth extends the nominal depth as the board fills up so that the
// last plies of a game are searched to the end.
func searchDepth(discs, strength int) int {
	depth := Max(strength, 1)
	switch {
	case discs+depth+4 >= 64:
		depth = 64 - discs
	case discs+depth+7 >= 64:
		depth += 3
	case discs+depth+9 >= 64:
		depth += 2
	case discs+depth+11 >= 64:
		depth++
	}
	return depth
}

func (s *searchState) interrupted() bool { return s.ctx.Interrupt() }

// =============================================================================
// ROOT
// =============================================================================

type moveAndValue struct {
	x, y, value int
}

func (e *Engine) rootSearch(s *searchState, player othello.Player) (othello.Move, bool) {
	playerBits := occupiedBits(&s.board, player)
	opponentBits := occupiedBits(&s.board, player.Opponent())

	maxval := -LargeInt
	maxX, maxY := 0, 0
	moves := make([]moveAndValue, 0, othello.MaxMoves)
	numberOfMaxval := 0

root:
	for x := 1; x <= boardSize; x++ {
		for y := 1; y <= boardSize; y++ {
			if s.board[x][y] != othello.None || neighborBits[x][y]&opponentBits == 0 {
				continue
			}
			val := s.tryMove(x, y, player, 1, maxval, playerBits, opponentBits)
			if val != IllegalValue {
				moves = append(moves, moveAndValue{x: x, y: y, value: val})
				if val > maxval {
					maxval = val
					maxX, maxY = x, y
					numberOfMaxval = 1
				} else if val == maxval {
					numberOfMaxval++
				}
			}
			if s.interrupted() {
				break root
			}
		}
	}

	s.stats.RootMoves = len(moves)
	s.stats.TiedMoves = numberOfMaxval
	s.stats.BestValue = maxval

	if s.interrupted() {
		s.stats.Interrupted = true
		return othello.Move{}, false
	}
	if maxval == -LargeInt || len(moves) == 0 {
		return othello.Move{}, false
	}

	// The weakest level ignores the values and plays any legal move.
	if s.strength == 0 {
		pick := moves[e.Random(len(moves))]
		maxX, maxY = pick.x, pick.y
	} else if numberOfMaxval > 1 {
		r := e.Random(numberOfMaxval)
		for _, mv := range moves {
			if mv.value != maxval {
				continue
			}
			if r == 0 {
				maxX, maxY = mv.x, mv.y
				break
			}
			r--
		}
	}

	m, err := othello.NewMove(maxX, maxY, player)
	if err != nil {
		return othello.Move{}, false
	}
	return m, true
}

// =============================================================================
// NEGAMAX
// =============================================================================

// tryMove plays (xplay, yplay) for player on the scratch board, searches the
// reply and takes the move back. It returns the value from player's point of
// view, or IllegalValue when the move turns nothing or the search was
// interrupted.
//
// cutoff is the best value the parent has found so far. Once a reply is good
// enough for the opponent to make this move worse than the parent's best, the
// remaining replies are not searched.
func (s *searchState) tryMove(xplay, yplay int, player othello.Player, level, cutoff int, playerBits, opponentBits uint64) int {
	numberOfTurned := 0
	opponent := player.Opponent()

	s.stats.Nodes++

	s.board[xplay][yplay] = player
	playerBits |= coordBit[xplay][yplay]
	s.score.Add(player, 1)
	s.bcScore.Add(player, bcBoard[xplay][yplay])

	// Turn all pieces
	for xinc := -1; xinc <= 1; xinc++ {
		for yinc := -1; yinc <= 1; yinc++ {
			if xinc == 0 && yinc == 0 {
				continue
			}
			x, y := xplay+xinc, yplay+yinc
			for s.board[x][y] == opponent {
				x += xinc
				y += yinc
			}
			if s.board[x][y] != player {
				continue
			}
			for x, y = x-xinc, y-yinc; x != xplay || y != yplay; x, y = x-xinc, y-yinc {
				s.board[x][y] = player
				playerBits |= coordBit[x][y]
				opponentBits &^= coordBit[x][y]
				s.flips.push(x, y)
				s.bcScore.Add(player, bcBoard[x][y])
				s.bcScore.Subtract(opponent, bcBoard[x][y])
				numberOfTurned++
			}
		}
	}

	retval := -LargeInt

	if numberOfTurned > 0 {
		s.score.Add(player, numberOfTurned)
		s.score.Subtract(opponent, numberOfTurned)

		if level >= s.depth {
			retval = s.evaluate(player)
		} else {
			maxval := s.tryAllMoves(opponent, level, cutoff, opponentBits, playerBits)
			if maxval != -LargeInt {
				retval = -maxval
			} else if !s.interrupted() {
				// The opponent has to pass; a pass does not use up a ply.
				retval = s.tryAllMoves(player, level, -LargeInt, playerBits, opponentBits)
				if retval == -LargeInt {
					retval = s.terminalValue(player)
				}
			}
		}

		s.score.Add(opponent, numberOfTurned)
		s.score.Subtract(player, numberOfTurned)
	}

	// Restore board
	for i := numberOfTurned; i > 0; i-- {
		x, y := s.flips.pop()
		s.bcScore.Add(opponent, bcBoard[x][y])
		s.bcScore.Subtract(player, bcBoard[x][y])
		s.board[x][y] = opponent
	}
	s.board[xplay][yplay] = othello.None
	s.score.Subtract(player, 1)
	s.bcScore.Subtract(player, bcBoard[xplay][yplay])

	if numberOfTurned < 1 || s.interrupted() {
		return IllegalValue
	}
	return retval
}

// tryAllMoves returns the best value player can reach from the scratch board,
// -LargeInt if player has no legal move or the search was interrupted.
// Candidates not adjacent to an opponent disc are skipped without a scan.
func (s *searchState) tryAllMoves(player othello.Player, level, cutoff int, playerBits, opponentBits uint64) int {
	maxval := -LargeInt

scan:
	for x := 1; x <= boardSize; x++ {
		for y := 1; y <= boardSize; y++ {
			if s.board[x][y] != othello.None || neighborBits[x][y]&opponentBits == 0 {
				continue
			}
			val := s.tryMove(x, y, player, level+1, maxval, playerBits, opponentBits)
			if val != IllegalValue && val > maxval {
				maxval = val
				if maxval > -cutoff {
					s.stats.Cutoffs++
					break scan
				}
			}
			if s.interrupted() {
				break scan
			}
		}
	}

	if s.interrupted() {
		return -LargeInt
	}
	return maxval
}
