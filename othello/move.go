package othello

import (
	"fmt"
	"strings"
)

const BoardSize = 8

// Move is a square plus the side that plays it. The zero Move means "no move".
type Move struct {
	x, y   int
	player Player
}

// NewMove builds a move, reporting ErrInvalidArgument for coordinates off the board.
func NewMove(x, y int, player Player) (Move, error) {
	if err := checkCoordinate(x, y); err != nil {
		return Move{}, err
	}
	return Move{x: x, y: y, player: player}, nil
}

// mustMove is used internally where the coordinate is known to be on the board.
func mustMove(x, y int, player Player) Move {
	return Move{x: x, y: y, player: player}
}

func (m Move) X() int                 { return m.x }
func (m Move) Y() int                 { return m.y }
func (m Move) Player() Player         { return m.player }
func (m Move) IsZero() bool           { return m == Move{} }
func (m Move) SameSquare(o Move) bool { return m.x == o.x && m.y == o.y }

// String renders the square as column letter + row digit, e.g. "c4" for (3,4).
func (m Move) String() string {
	if !OnBoard(m.x, m.y) {
		return "-"
	}
	return string([]byte{'a' + byte(m.x-1), '0' + byte(m.y)})
}

// ParseMove reads a square in the notation produced by Move.String. Upper
// case column letters are accepted too.
func ParseMove(s string, player Player) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	if s[0] < 'a' || s[0] > 'z' || s[1] < '0' || s[1] > '9' {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	x := int(s[0]-'a') + 1
	y := int(s[1] - '0')
	m, err := NewMove(x, y, player)
	if err != nil {
		return Move{}, fmt.Errorf("parse move %q: %w", s, err)
	}
	return m, nil
}
