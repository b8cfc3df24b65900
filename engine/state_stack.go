package engine

// flipEntry is one square turned during the search.
type flipEntry struct {
	x, y int8
}

// flipStack records every disc turned while a move is tried so the move can
// be taken back by replaying the stack in reverse. It belongs to a single
// search invocation.
type flipStack struct {
	entries []flipEntry
	top     int
}

const initialFlipStackSize = 200

func newFlipStack(size int) flipStack {
	return flipStack{entries: make([]flipEntry, Max(size, 1))}
}

func (s *flipStack) push(x, y int) {
	if s.top >= len(s.entries) {
		s.grow(len(s.entries) * 2)
	}
	s.entries[s.top] = flipEntry{x: int8(x), y: int8(y)}
	s.top++
}

func (s *flipStack) pop() (x, y int) {
	s.top--
	e := s.entries[s.top]
	return int(e.x), int(e.y)
}

func (s *flipStack) grow(size int) {
	if len(s.entries) >= size {
		return
	}
	grown := make([]flipEntry, size)
	copy(grown, s.entries)
	s.entries = grown
}

func (s *flipStack) len() int { return s.top }
