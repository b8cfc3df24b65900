package engine

import (
	"context"

	"othello-engine/othello"
)

// MoveComputer is the capability every move-producing agent offers. The
// controller and the match runner only depend on this.
type MoveComputer interface {
	// ComputeMove returns the move to play in g. ok is false when nobody can
	// move or the search was interrupted.
	ComputeMove(g *othello.Game) (m othello.Move, ok bool)
	// ComputeMoveContext is ComputeMove with ctx cancellation mapped onto
	// the interrupt flag.
	ComputeMoveContext(ctx context.Context, g *othello.Game) (m othello.Move, ok bool)

	Strength() int
	SetStrength(n int)
	Interrupt() bool
	SetInterrupt(v bool)
	SetSeed(seed int64)
}

var _ MoveComputer = (*Engine)(nil)
