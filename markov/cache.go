package markov

import (
	"sync"

	"monopolycore/board"
)

// entry holds the once-computed, immutable result for a single jail
// policy: publish-on-complete means readers either see the zero value (not
// yet built) or a fully populated entry; they never observe a partially
// built one, because once guards the only write.
type entry struct {
	once       sync.Once
	stationary []float64
	err        error
}

// Cache memoizes the stationary distribution per jail policy. It is built
// once per policy on first use and is safe for unlimited concurrent
// readers thereafter with no locking on the read path, per the
// single-write/many-read lifecycle required of the core's caches.
type Cache struct {
	board    *board.Board
	nworkers int

	mu      sync.Mutex
	entries map[JailPolicy]*entry
}

// NewCache returns a cache bound to b. nworkers controls the concurrency
// of each policy's power-iteration sweep the first time it is requested.
func NewCache(b *board.Board, nworkers int) *Cache {
	return &Cache{
		board:    b,
		nworkers: nworkers,
		entries:  make(map[JailPolicy]*entry),
	}
}

// Stationary returns the steady-state landing distribution for policy,
// building it on first request and reusing it for every call thereafter.
func (c *Cache) Stationary(policy JailPolicy) ([]float64, error) {
	e := c.entryFor(policy)
	e.once.Do(func() {
		rows := BuildTransitions(c.board, policy)
		e.stationary, e.err = Solve(rows, c.nworkers)
	})
	return e.stationary, e.err
}

// entryFor returns the (possibly new) entry for policy. The map itself is
// guarded by a short-lived mutex; the expensive solve happens outside the
// lock, inside entry.once, so concurrent callers for different policies
// never block each other's builds.
func (c *Cache) entryFor(policy JailPolicy) *entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[policy]
	if !ok {
		e = &entry{}
		c.entries[policy] = e
	}
	return e
}
