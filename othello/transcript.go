package othello

import (
	"fmt"
	"strings"
)

// Transcript returns the moves of g in order, separated by spaces, for
// example "f5 d6 c3". Each move is played by whoever was to move, so no
// colours are needed to replay it.
func (g *Game) Transcript() string {
	moves := make([]string, 0, g.MoveNumber())
	for i := 1; i <= g.MoveNumber(); i++ {
		m, _ := g.Move(i)
		moves = append(moves, m.String())
	}
	return strings.Join(moves, " ")
}

// ParseTranscript replays a transcript from the initial position. Moves may
// be separated by spaces or written back to back ("f5d6c3").
func ParseTranscript(s string) (*Game, error) {
	g := NewGame()
	s = strings.Join(strings.Fields(s), "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd transcript length", ErrInvalidNotation)
	}
	for i := 0; i < len(s); i += 2 {
		player := g.WhoseTurn()
		m, err := ParseMove(s[i:i+2], player)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i/2+1, err)
		}
		if !g.MakeMove(m) {
			return nil, fmt.Errorf("move %d %s by %v: %w", i/2+1, m, player, ErrIllegalMove)
		}
	}
	return g, nil
}
