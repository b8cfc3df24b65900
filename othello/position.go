package othello

// Position is an immutable board snapshot together with the disc counts and
// the move that produced it.
//
// Squares are addressed [x][y] with 1..8 on both axes. Row and column 0 and 9
// are permanently empty so direction scans stop without bounds checks.
type Position struct {
	board    [BoardSize + 2][BoardSize + 2]Player
	score    Score
	lastMove Move
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	p := &Position{score: NewScore(2, 2)}
	p.board[4][4] = White
	p.board[5][5] = White
	p.board[5][4] = Black
	p.board[4][5] = Black
	return p
}

// Legal reports whether m may be played here: the target is empty and at
// least one direction runs over opponent discs into one of the mover's own.
func (p *Position) Legal(m Move) bool {
	if !OnBoard(m.x, m.y) || p.board[m.x][m.y] != None {
		return false
	}
	player := m.player
	if player != White && player != Black {
		return false
	}
	opponent := player.Opponent()

	for xinc := -1; xinc <= 1; xinc++ {
		for yinc := -1; yinc <= 1; yinc++ {
			if xinc == 0 && yinc == 0 {
				continue
			}
			x, y := m.x+xinc, m.y+yinc
			for p.board[x][y] == opponent {
				x += xinc
				y += yinc
			}
			if p.board[x][y] == player && (x-xinc != m.x || y-yinc != m.y) {
				return true
			}
		}
	}
	return false
}

// Apply returns the position after m. The caller guarantees p.Legal(m).
func (p *Position) Apply(m Move) *Position {
	next := &Position{board: p.board, lastMove: m}
	next.score.CopyFrom(p.score)

	player := m.player
	opponent := player.Opponent()

	next.board[m.x][m.y] = player
	next.score.Add(player, 1)

	for xinc := -1; xinc <= 1; xinc++ {
		for yinc := -1; yinc <= 1; yinc++ {
			if xinc == 0 && yinc == 0 {
				continue
			}
			x, y := m.x+xinc, m.y+yinc
			for next.board[x][y] == opponent {
				x += xinc
				y += yinc
			}
			if next.board[x][y] != player {
				continue
			}
			for x, y = x-xinc, y-yinc; x != m.x || y != m.y; x, y = x-xinc, y-yinc {
				next.board[x][y] = player
				next.score.Add(player, 1)
				next.score.Subtract(opponent, 1)
			}
		}
	}
	return next
}

// AnyLegalMove reports whether player has at least one legal move.
func (p *Position) AnyLegalMove(player Player) bool {
	for x := 1; x <= BoardSize; x++ {
		for y := 1; y <= BoardSize; y++ {
			if p.Legal(mustMove(x, y, player)) {
				return true
			}
		}
	}
	return false
}

func (p *Position) AnyLegalMoveAtAll() bool {
	return p.AnyLegalMove(White) || p.AnyLegalMove(Black)
}

// LegalMoves lists the legal moves of player, x-major.
func (p *Position) LegalMoves(player Player) []Move {
	var moves []Move
	for x := 1; x <= BoardSize; x++ {
		for y := 1; y <= BoardSize; y++ {
			m := mustMove(x, y, player)
			if p.Legal(m) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// Square returns the owner of (x, y).
func (p *Position) Square(x, y int) (Player, error) {
	if err := checkCoordinate(x, y); err != nil {
		return None, err
	}
	return p.board[x][y], nil
}

// At is Square without the range check. Off-board coordinates inside the
// sentinel border read as None.
func (p *Position) At(x, y int) Player { return p.board[x][y] }

// Score returns the number of discs player owns, 0 for None.
func (p *Position) Score(player Player) int {
	if player != White && player != Black {
		return 0
	}
	return p.score.Get(player)
}

// Discs is the number of occupied squares.
func (p *Position) Discs() int { return p.score.Total() }

func (p *Position) Empties() int {
	n := 0
	for x := 1; x <= BoardSize; x++ {
		for y := 1; y <= BoardSize; y++ {
			if p.board[x][y] == None {
				n++
			}
		}
	}
	return n
}

// LastMove returns the move that produced p; ok is false for the initial position.
func (p *Position) LastMove() (Move, bool) {
	return p.lastMove, !p.lastMove.IsZero()
}
