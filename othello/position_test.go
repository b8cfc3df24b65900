package othello

import (
	"errors"
	"testing"
)

func move(t *testing.T, x, y int, p Player) Move {
	t.Helper()
	m, err := NewMove(x, y, p)
	if err != nil {
		t.Fatalf("NewMove(%d,%d): %v", x, y, err)
	}
	return m
}

func checkDiscInvariant(t *testing.T, pos *Position) {
	t.Helper()
	if got := pos.Score(White) + pos.Score(Black) + pos.Empties(); got != 64 {
		t.Fatalf("white %d + black %d + empty %d = %d, want 64",
			pos.Score(White), pos.Score(Black), pos.Empties(), got)
	}
}

func TestInitialPosition(t *testing.T) {
	pos := NewPosition()
	want := map[[2]int]Player{
		{4, 4}: White,
		{5, 5}: White,
		{5, 4}: Black,
		{4, 5}: Black,
	}
	for x := 1; x <= BoardSize; x++ {
		for y := 1; y <= BoardSize; y++ {
			got, err := pos.Square(x, y)
			if err != nil {
				t.Fatalf("Square(%d,%d): %v", x, y, err)
			}
			if got != want[[2]int{x, y}] {
				t.Fatalf("Square(%d,%d) = %v, want %v", x, y, got, want[[2]int{x, y}])
			}
		}
	}
	if pos.Score(White) != 2 || pos.Score(Black) != 2 {
		t.Fatalf("scores %d/%d, want 2/2", pos.Score(White), pos.Score(Black))
	}
	if _, ok := pos.LastMove(); ok {
		t.Fatalf("initial position should have no last move")
	}
	checkDiscInvariant(t, pos)
}

func TestInitialLegalMoves(t *testing.T) {
	pos := NewPosition()
	got := pos.LegalMoves(Black)
	want := []string{"c4", "d3", "e6", "f5"}
	if len(got) != len(want) {
		t.Fatalf("black has %d legal moves, want %d", len(got), len(want))
	}
	for i, m := range got {
		if m.String() != want[i] {
			t.Fatalf("move %d = %s, want %s", i, m, want[i])
		}
	}
	if pos.Legal(move(t, 4, 4, Black)) {
		t.Fatalf("occupied square must not be legal")
	}
	if pos.Legal(move(t, 1, 1, Black)) {
		t.Fatalf("corner is not legal at the start")
	}
	if pos.Legal(move(t, 3, 4, None)) {
		t.Fatalf("a move without player must not be legal")
	}
	if pos.Legal(Move{}) {
		t.Fatalf("zero move must not be legal")
	}
}

func TestApplyFlipsAndScores(t *testing.T) {
	pos := NewPosition()
	next := pos.Apply(move(t, 3, 4, Black))

	if next.Score(Black) != 4 || next.Score(White) != 1 {
		t.Fatalf("scores black %d white %d, want 4/1", next.Score(Black), next.Score(White))
	}
	if next.At(4, 4) != Black {
		t.Fatalf("(4,4) should be flipped to black")
	}
	if pos.At(4, 4) != White || pos.At(3, 4) != None {
		t.Fatalf("parent position was mutated")
	}
	last, ok := next.LastMove()
	if !ok || last.X() != 3 || last.Y() != 4 || last.Player() != Black {
		t.Fatalf("unexpected last move %v", last)
	}
	checkDiscInvariant(t, next)
}

// Legal must agree with "Apply flips at least one disc" on every square of
// every position reached in a fixed line of play.
func TestLegalIffFlips(t *testing.T) {
	pos := NewPosition()
	player := Black
	for ply := 0; ply < 40; ply++ {
		for _, p := range []Player{White, Black} {
			for x := 1; x <= BoardSize; x++ {
				for y := 1; y <= BoardSize; y++ {
					m := move(t, x, y, p)
					if pos.At(x, y) != None {
						if pos.Legal(m) {
							t.Fatalf("occupied %v reported legal", m)
						}
						continue
					}
					next := pos.Apply(m)
					flipped := next.Score(p) - pos.Score(p) - 1
					if pos.Legal(m) != (flipped > 0) {
						t.Fatalf("ply %d %v %v: legal=%v flipped=%d", ply, p, m, pos.Legal(m), flipped)
					}
				}
			}
		}
		moves := pos.LegalMoves(player)
		if len(moves) == 0 {
			player = player.Opponent()
			moves = pos.LegalMoves(player)
			if len(moves) == 0 {
				break
			}
		}
		pos = pos.Apply(moves[(ply*7)%len(moves)])
		checkDiscInvariant(t, pos)
		player = player.Opponent()
	}
}

func TestSquareOutOfRange(t *testing.T) {
	pos := NewPosition()
	for _, c := range [][2]int{{0, 1}, {1, 0}, {9, 4}, {4, 9}, {-1, -1}} {
		_, err := pos.Square(c[0], c[1])
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("Square(%d,%d) err = %v, want ErrInvalidArgument", c[0], c[1], err)
		}
		var rangeErr *CoordinateOutOfRangeError
		if !errors.As(err, &rangeErr) || rangeErr.X != c[0] || rangeErr.Y != c[1] {
			t.Fatalf("Square(%d,%d) err = %v, want CoordinateOutOfRangeError", c[0], c[1], err)
		}
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		in      string
		x, y    int
		wantErr error
	}{
		{in: "c4", x: 3, y: 4},
		{in: "F5", x: 6, y: 5},
		{in: " a1 ", x: 1, y: 1},
		{in: "h8", x: 8, y: 8},
		{in: "i1", wantErr: ErrInvalidArgument},
		{in: "a9", wantErr: ErrInvalidArgument},
		{in: "a0", wantErr: ErrInvalidArgument},
		{in: "a", wantErr: ErrInvalidNotation},
		{in: "44", wantErr: ErrInvalidNotation},
	}
	for _, tc := range tests {
		m, err := ParseMove(tc.in, White)
		if tc.wantErr != nil {
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("ParseMove(%q) err = %v, want %v", tc.in, err, tc.wantErr)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", tc.in, err)
		}
		if m.X() != tc.x || m.Y() != tc.y || m.Player() != White {
			t.Fatalf("ParseMove(%q) = %d,%d,%v", tc.in, m.X(), m.Y(), m.Player())
		}
		if back, _ := ParseMove(m.String(), White); back != m {
			t.Fatalf("String/ParseMove mismatch for %q", tc.in)
		}
	}
}

func TestOpponent(t *testing.T) {
	if White.Opponent() != Black || Black.Opponent() != White || None.Opponent() != None {
		t.Fatalf("unexpected opponent mapping")
	}
}
