// internal/seqsource/cached.go
package seqsource

import (
	"context"
	"sync"

	"seqextract/internal/runutil"
)

// Cached memoizes successful resolutions of the wrapped provider in a bounded
// LRU. Failures are not cached.
type Cached struct {
	inner Provider

	mu    sync.Mutex
	lru   *runutil.LRU[string, string]
	hits  int
	fetch int
}

// NewCached wraps p; capacity <= 0 selects runutil.DefaultLRUCapacity.
func NewCached(p Provider, capacity int) *Cached {
	return &Cached{inner: p, lru: runutil.NewLRU[string, string](capacity)}
}

func (c *Cached) Resolve(ctx context.Context, name string) (string, error) {
	c.mu.Lock()
	if seq, ok := c.lru.Get(name); ok {
		c.hits++
		c.mu.Unlock()
		return seq, nil
	}
	c.mu.Unlock()

	seq, err := c.inner.Resolve(ctx, name)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.fetch++
	c.lru.Put(name, seq)
	c.mu.Unlock()
	return seq, nil
}

// Stats reports cache hits and inner resolutions so far.
func (c *Cached) Stats() (hits, fetched int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.fetch
}

func (c *Cached) Close() error { return c.inner.Close() }
