package engine

import (
	"time"

	"github.com/rs/zerolog"
)

// Stats describes the last completed (or interrupted) search.
type Stats struct {
	Nodes       uint64
	Cutoffs     uint64
	Depth       int
	Exhaustive  bool
	Coeff       int
	RootMoves   int
	TiedMoves   int
	BestValue   int
	Interrupted bool
	Opening     bool
	Elapsed     time.Duration
}

// MarshalZerologObject lets the stats be attached to a log event with Object.
func (s Stats) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("nodes", s.Nodes).
		Uint64("cutoffs", s.Cutoffs).
		Int("depth", s.Depth).
		Bool("exhaustive", s.Exhaustive).
		Int("coeff", s.Coeff).
		Int("root-moves", s.RootMoves).
		Int("tied-moves", s.TiedMoves).
		Int("best-value", s.BestValue).
		Bool("interrupted", s.Interrupted).
		Dur("elapsed", s.Elapsed)
}

// NodesPerSecond is zero for searches too short to time.
func (s Stats) NodesPerSecond() uint64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return uint64(float64(s.Nodes) / s.Elapsed.Seconds())
}
