package othello

// MaxMoves is the number of empty squares in the starting position.
const MaxMoves = BoardSize*BoardSize - 4

// Game is the ordered history of positions. positions[0] is the initial
// position and positions[MoveNumber()] the current one.
type Game struct {
	positions []*Position
}

func NewGame() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// Reset discards the history and returns to the initial position.
func (g *Game) Reset() {
	g.positions = make([]*Position, 1, MaxMoves+1)
	g.positions[0] = NewPosition()
}

func (g *Game) current() *Position { return g.positions[len(g.positions)-1] }

// Position returns the current immutable snapshot.
func (g *Game) Position() *Position { return g.current() }

// MakeMove plays m. It returns false, leaving the game untouched, when m has no
// player, when it is not m's player's turn or when m is illegal.
func (g *Game) MakeMove(m Move) bool {
	if m.player == None {
		return false
	}
	if g.WhoseTurn() != m.player {
		return false
	}
	if !g.current().Legal(m) {
		return false
	}
	g.positions = append(g.positions, g.current().Apply(m))
	return true
}

// TakeBackMove drops the latest position. It returns false at the initial position.
func (g *Game) TakeBackMove() bool {
	n := len(g.positions) - 1
	if n <= 0 {
		return false
	}
	g.positions[n] = nil
	g.positions = g.positions[:n]
	return true
}

func (g *Game) Square(x, y int) (Player, error) { return g.current().Square(x, y) }

func (g *Game) Score(player Player) int { return g.current().Score(player) }

func (g *Game) LastMove() (Move, bool) { return g.current().LastMove() }

// Move returns the i:th move of the game, counting from 1.
func (g *Game) Move(i int) (Move, bool) {
	if i <= 0 || i > g.MoveNumber() {
		return Move{}, false
	}
	return g.positions[i].LastMove()
}

func (g *Game) MoveIsLegal(m Move) bool { return g.current().Legal(m) }

func (g *Game) MoveIsPossible(player Player) bool { return g.current().AnyLegalMove(player) }

func (g *Game) MoveIsAtAllPossible() bool { return g.current().AnyLegalMoveAtAll() }

func (g *Game) MoveNumber() int { return len(g.positions) - 1 }

// WhoseTurn returns the side to move. Black starts. After a move the opponent
// of the mover is to play if it can, otherwise the mover plays again; None
// means neither side can move.
func (g *Game) WhoseTurn() Player {
	last, ok := g.LastMove()
	if !ok {
		return Black
	}
	player := last.player
	opponent := player.Opponent()

	if g.MoveIsPossible(opponent) {
		return opponent
	}
	if g.MoveIsPossible(player) {
		return player
	}
	return None
}

// TurnedByLastMove lists the squares changed by the last move: the played
// square first, then every flipped square x-major. It is empty at the start.
func (g *Game) TurnedByLastMove() []Move {
	n := g.MoveNumber()
	if n <= 0 {
		return nil
	}
	last, _ := g.LastMove()
	now, before := g.positions[n], g.positions[n-1]

	turned := []Move{last}
	for x := 1; x <= BoardSize; x++ {
		for y := 1; y <= BoardSize; y++ {
			if x == last.x && y == last.y {
				continue
			}
			if now.board[x][y] != before.board[x][y] {
				turned = append(turned, mustMove(x, y, last.player))
			}
		}
	}
	return turned
}

// Identical reports whether both games consist of the same squares played in
// the same order. The player of each move is not compared.
func (g *Game) Identical(other *Game) bool {
	if g.MoveNumber() != other.MoveNumber() {
		return false
	}
	for i := 1; i <= g.MoveNumber(); i++ {
		a, _ := g.Move(i)
		b, _ := other.Move(i)
		if !a.SameSquare(b) {
			return false
		}
	}
	return true
}

// Clone copies the history. Positions are immutable and shared.
func (g *Game) Clone() *Game {
	c := &Game{positions: make([]*Position, len(g.positions), MaxMoves+1)}
	copy(c.positions, g.positions)
	return c
}
