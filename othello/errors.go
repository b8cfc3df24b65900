package othello

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is reported when a caller passes a value outside the
// domain of an API, such as a coordinate off the 8x8 board.
var ErrInvalidArgument = errors.New("invalid argument")

var ErrInvalidNotation = errors.New("invalid move notation")

// CoordinateOutOfRangeError wraps ErrInvalidArgument with the offending pair.
type CoordinateOutOfRangeError struct {
	X, Y int
}

func newCoordinateOutOfRangeError(x, y int) error {
	return &CoordinateOutOfRangeError{X: x, Y: y}
}

func (e *CoordinateOutOfRangeError) Error() string {
	return fmt.Sprintf("coordinate is out of range(1-%d), x: %d, y: %d", BoardSize, e.X, e.Y)
}

func (e *CoordinateOutOfRangeError) Unwrap() error { return ErrInvalidArgument }

// OnBoard reports whether (x, y) addresses one of the 64 playable squares.
func OnBoard(x, y int) bool {
	return x >= 1 && x <= BoardSize && y >= 1 && y <= BoardSize
}

func checkCoordinate(x, y int) error {
	if !OnBoard(x, y) {
		return newCoordinateOutOfRangeError(x, y)
	}
	return nil
}

// ErrIllegalMove is reported when a transcript contains a move that cannot
// be played.
var ErrIllegalMove = errors.New("illegal move")
