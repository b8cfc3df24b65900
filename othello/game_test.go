package othello

import (
	"errors"
	"testing"
)

type snapshot struct {
	board [BoardSize + 1][BoardSize + 1]Player
	white int
	black int
	turn  Player
	moves int
}

func takeSnapshot(g *Game) snapshot {
	var s snapshot
	for x := 1; x <= BoardSize; x++ {
		for y := 1; y <= BoardSize; y++ {
			s.board[x][y], _ = g.Square(x, y)
		}
	}
	s.white = g.Score(White)
	s.black = g.Score(Black)
	s.turn = g.WhoseTurn()
	s.moves = g.MoveNumber()
	return s
}

func TestNewGame(t *testing.T) {
	g := NewGame()
	if g.WhoseTurn() != Black {
		t.Fatalf("WhoseTurn = %v, want Black", g.WhoseTurn())
	}
	if g.MoveNumber() != 0 {
		t.Fatalf("MoveNumber = %d, want 0", g.MoveNumber())
	}
	if len(g.TurnedByLastMove()) != 0 {
		t.Fatalf("TurnedByLastMove should be empty at the start")
	}
	if _, ok := g.LastMove(); ok {
		t.Fatalf("LastMove should be absent at the start")
	}
	if g.TakeBackMove() {
		t.Fatalf("TakeBackMove at the start should fail")
	}
	if !g.MoveIsAtAllPossible() {
		t.Fatalf("moves must be possible at the start")
	}
}

func TestMakeMoveScenario(t *testing.T) {
	g := NewGame()
	if !g.MakeMove(move(t, 3, 4, Black)) {
		t.Fatalf("c4 should be legal for black")
	}
	if g.Score(Black) != 4 || g.Score(White) != 1 {
		t.Fatalf("scores black %d white %d, want 4/1", g.Score(Black), g.Score(White))
	}
	turned := g.TurnedByLastMove()
	if len(turned) != 2 {
		t.Fatalf("TurnedByLastMove returned %d squares, want 2", len(turned))
	}
	if turned[0].X() != 3 || turned[0].Y() != 4 {
		t.Fatalf("first turned square = %v, want c4", turned[0])
	}
	if turned[1].X() != 4 || turned[1].Y() != 4 || turned[1].Player() != Black {
		t.Fatalf("second turned square = %v, want d4 by black", turned[1])
	}
	if g.WhoseTurn() != White {
		t.Fatalf("WhoseTurn = %v, want White", g.WhoseTurn())
	}
	if m, ok := g.Move(1); !ok || m.String() != "c4" {
		t.Fatalf("Move(1) = %v,%v", m, ok)
	}
	if _, ok := g.Move(2); ok {
		t.Fatalf("Move(2) should not exist")
	}
	if _, ok := g.Move(0); ok {
		t.Fatalf("Move(0) should not exist")
	}
}

func TestMakeMoveRejects(t *testing.T) {
	g := NewGame()
	before := takeSnapshot(g)

	cases := []Move{
		move(t, 3, 4, None),  // no player
		move(t, 3, 5, White), // wrong turn
		move(t, 1, 1, Black), // illegal square
		move(t, 4, 4, Black), // occupied
		{},
	}
	for _, m := range cases {
		if g.MakeMove(m) {
			t.Fatalf("MakeMove(%v by %v) should fail", m, m.Player())
		}
		if takeSnapshot(g) != before {
			t.Fatalf("failed MakeMove(%v) changed the game", m)
		}
	}
}

func TestMakeTakeBackRoundTrip(t *testing.T) {
	g := NewGame()
	for i := 0; i < 30; i++ {
		player := g.WhoseTurn()
		if player == None {
			break
		}
		moves := g.Position().LegalMoves(player)
		before := takeSnapshot(g)
		m := moves[(i*5)%len(moves)]
		if !g.MakeMove(m) {
			t.Fatalf("legal move %v rejected", m)
		}
		if !g.TakeBackMove() {
			t.Fatalf("TakeBackMove failed")
		}
		if takeSnapshot(g) != before {
			t.Fatalf("round trip of %v did not restore the game", m)
		}
		g.MakeMove(m)
	}
}

func TestPassAndTerminalRules(t *testing.T) {
	g := NewGame()
	// Black wipes out White in nine moves.
	line := []string{"e6", "f4", "e3", "f6", "g5", "d6", "e7", "f5", "c5"}
	for i, s := range line {
		p := g.WhoseTurn()
		m, err := ParseMove(s, p)
		if err != nil {
			t.Fatal(err)
		}
		if !g.MakeMove(m) {
			t.Fatalf("move %d %s by %v rejected", i+1, s, p)
		}
	}
	if g.Score(White) != 0 {
		t.Fatalf("white should be wiped out, has %d", g.Score(White))
	}
	if g.WhoseTurn() != None {
		t.Fatalf("WhoseTurn = %v, want None", g.WhoseTurn())
	}
	if g.MoveIsAtAllPossible() {
		t.Fatalf("no move should be possible")
	}
}

func TestWhoseTurnAfterForcedPass(t *testing.T) {
	g := NewGame()
	// Replace the history with a hand-built position where White has just
	// moved, Black has no reply and White still has one.
	pos := &Position{}
	pos.board[1][1] = White
	pos.board[1][2] = Black
	pos.board[1][4] = White
	pos.board[8][8] = White
	pos.score = NewScore(3, 1)
	pos.lastMove = mustMove(8, 8, White)
	g.positions = append(g.positions, pos)

	if g.MoveIsPossible(Black) {
		t.Fatalf("black should have no legal move")
	}
	if !g.MoveIsPossible(White) {
		t.Fatalf("white should have a legal move")
	}
	if g.WhoseTurn() != White {
		t.Fatalf("WhoseTurn = %v, want White after black's forced pass", g.WhoseTurn())
	}
}

func TestIdentical(t *testing.T) {
	a, b := NewGame(), NewGame()
	if !a.Identical(b) {
		t.Fatalf("two new games should be identical")
	}
	a.MakeMove(move(t, 3, 4, Black))
	if a.Identical(b) {
		t.Fatalf("different lengths should not be identical")
	}
	b.MakeMove(move(t, 4, 3, Black))
	if a.Identical(b) {
		t.Fatalf("different last move should not be identical")
	}
	b.TakeBackMove()
	b.MakeMove(move(t, 3, 4, Black))
	if !a.Identical(b) {
		t.Fatalf("same moves should be identical")
	}
}

func TestGameSquareOutOfRange(t *testing.T) {
	g := NewGame()
	if _, err := g.Square(0, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Square(0,0) err = %v", err)
	}
	if _, err := NewMove(9, 1, Black); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("NewMove(9,1) err = %v", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGame()
	g.MakeMove(move(t, 3, 4, Black))
	c := g.Clone()
	c.MakeMove(move(t, 3, 3, White))
	if g.MoveNumber() != 1 || c.MoveNumber() != 2 {
		t.Fatalf("clone shares history: %d/%d", g.MoveNumber(), c.MoveNumber())
	}
	g.Reset()
	if c.MoveNumber() != 2 {
		t.Fatalf("reset of the original affected the clone")
	}
}
