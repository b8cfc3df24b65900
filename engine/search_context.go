package engine

import (
	"encoding/binary"
	"sync"
	"sync/atomic"

	"lukechampine.com/frand"
)

// DefaultStrength is the search depth used when none is configured.
const DefaultStrength = 5

// SearchContext holds what every move-producing agent shares: a playing
// strength, a random source and a cooperative interrupt flag.
type SearchContext struct {
	strength  atomic.Int32
	interrupt atomic.Bool

	mu  sync.Mutex
	rng *frand.RNG
}

// NewSearchContext returns a context with an entropy-seeded random source, so
// repeated games do not all play out the same way.
func NewSearchContext(strength int) *SearchContext {
	c := &SearchContext{rng: frand.New()}
	c.SetStrength(strength)
	return c
}

// NewSeededSearchContext behaves like NewSearchContext but draws its random
// numbers from seed, making every decision reproducible.
func NewSeededSearchContext(strength int, seed int64) *SearchContext {
	c := &SearchContext{}
	c.SetStrength(strength)
	c.SetSeed(seed)
	return c
}

// Strength is the nominal search depth. 0 is the weakest level.
func (c *SearchContext) Strength() int { return int(c.strength.Load()) }

// SetStrength changes the level. Negative values are treated as 0. It does
// not affect a search that is already running.
func (c *SearchContext) SetStrength(n int) {
	c.strength.Store(int32(Clamp(n, 0, 64)))
}

// SetInterrupt asks a running search to give up as soon as possible. It is
// safe to call from any goroutine.
func (c *SearchContext) SetInterrupt(v bool) { c.interrupt.Store(v) }

func (c *SearchContext) Interrupt() bool { return c.interrupt.Load() }

// SetSeed replaces the random source with a deterministic one.
func (c *SearchContext) SetSeed(seed int64) {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(seed))
	rng := frand.NewCustom(key[:], 1024, 12)

	c.mu.Lock()
	c.rng = rng
	c.mu.Unlock()
}

// Random returns a uniform integer in [0, n). n must be positive.
func (c *SearchContext) Random(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rng == nil {
		c.rng = frand.New()
	}
	return c.rng.Intn(n)
}
