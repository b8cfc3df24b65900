package othello

// Player identifies the owner of a square or a move.
type Player uint8

const (
	None  Player = 0
	White Player = 1
	Black Player = 2
)

// Opponent returns the other side. None has no opponent and maps to None.
func (p Player) Opponent() Player {
	switch p {
	case White:
		return Black
	case Black:
		return White
	default:
		return None
	}
}

func (p Player) String() string {
	switch p {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// Score holds one counter per side. The engine uses it both for disc counts
// and for the running board control sums.
type Score struct {
	counts [2]int
}

func NewScore(white, black int) Score {
	var s Score
	s.counts[White-1] = white
	s.counts[Black-1] = black
	return s
}

// Get returns the counter for p. p must be White or Black.
func (s *Score) Get(p Player) int { return s.counts[p-1] }

func (s *Score) Set(p Player, n int) { s.counts[p-1] = n }

func (s *Score) Add(p Player, n int) { s.counts[p-1] += n }

func (s *Score) Subtract(p Player, n int) { s.counts[p-1] -= n }

// CopyFrom overwrites both counters with the ones in other.
func (s *Score) CopyFrom(other Score) { s.counts = other.counts }

// Total is the sum of both counters.
func (s *Score) Total() int { return s.counts[0] + s.counts[1] }
