package query

import (
	"bytes"
	"context"
	"log/slog"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Fetcher loads the raw body for a key
type Fetcher func(ctx context.Context) ([]byte, error)

type entry struct {
	body    []byte
	hasBody bool
	stale   bool
	// replaced by every invalidation, compared when a fetch lands
	version uint64
	// version the body was fetched under
	fetched uint64
}

// Cache holds the latest raw body fetched for each key.
// Bodies are never mutated; readers decode their own copy.
type Cache struct {
	mu      sync.Mutex
	entries map[Key]*entry
	seq     uint64
	group   singleflight.Group
	logger  *slog.Logger
}

// CacheOption configures a Cache
type CacheOption func(*Cache)

// WithCacheLogger sets the logger used for cache events
func WithCacheLogger(logger *slog.Logger) CacheOption {
	return func(c *Cache) {
		c.logger = logger
	}
}

// NewCache creates an empty cache
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		entries: make(map[Key]*entry),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch returns the fresh cached body for key, or runs fetch and caches its
// result. Concurrent fetches of one key share a single call unless an
// invalidation happened in between. Errors are never cached. The shared call
// outlives the cancellation of any one caller.
func (c *Cache) Fetch(ctx context.Context, key Key, fetch Fetcher) ([]byte, error) {
	if body, ok := c.fresh(key); ok {
		return body, nil
	}

	version := c.begin(key)
	flight := key.String() + "#" + strconv.FormatUint(version, 10)

	ch := c.group.DoChan(flight, func() (any, error) {
		fetchCtx, cancel := detach(ctx)
		defer cancel()

		body, err := fetch(fetchCtx)
		if err != nil {
			return nil, err
		}

		c.land(key, body, version)
		return body, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}

		c.logger.DebugContext(ctx, "query fetched", slog.String("key", key.String()), slog.Bool("shared", res.Shared))
		return bytes.Clone(res.Val.([]byte)), nil
	}
}

// detach drops the cancellation of ctx but keeps its deadline
func detach(ctx context.Context) (context.Context, context.CancelFunc) {
	base := context.WithoutCancel(ctx)
	if deadline, ok := ctx.Deadline(); ok {
		return context.WithDeadline(base, deadline)
	}
	return context.WithCancel(base)
}

func (c *Cache) fresh(key Key) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !e.hasBody || e.stale {
		return nil, false
	}
	return bytes.Clone(e.body), true
}

// begin registers the key so invalidations during the fetch are observed
func (c *Cache) begin(key Key) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		e = &entry{version: c.next()}
		c.entries[key] = e
	}
	return e.version
}

// land stores a fetched body; it stays stale when the key was invalidated
// or removed after the fetch began. A body fetched under an older version
// never replaces one fetched under a newer version.
func (c *Cache) land(key Key, body []byte, version uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		e = &entry{version: c.next()}
		c.entries[key] = e
	}
	if e.hasBody && e.fetched > version {
		return
	}

	e.body = body
	e.hasBody = true
	e.fetched = version
	e.stale = e.version != version
}

// next returns a version never handed out before; callers hold mu
func (c *Cache) next() uint64 {
	c.seq++
	return c.seq
}

// Invalidate marks the given keys stale
func (c *Cache) Invalidate(keys ...Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		if e, ok := c.entries[key]; ok {
			e.stale = true
			e.version = c.next()
		}
	}
}

// InvalidatePrefix marks every key under prefix stale
func (c *Cache) InvalidatePrefix(prefix Prefix) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, e := range c.entries {
		if prefix.Matches(key) {
			e.stale = true
			e.version = c.next()
		}
	}
}

// Remove drops the given keys
func (c *Cache) Remove(keys ...Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		delete(c.entries, key)
	}
}

// Peek returns the last body cached for key without fetching, and whether
// it is stale
func (c *Cache) Peek(key Key) (body []byte, stale bool, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, found := c.entries[key]
	if !found || !e.hasBody {
		return nil, false, false
	}
	return bytes.Clone(e.body), e.stale, true
}

// keys returns the keys currently holding a body
func (c *Cache) keys() []Key {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]Key, 0, len(c.entries))
	for key, e := range c.entries {
		if e.hasBody {
			keys = append(keys, key)
		}
	}
	return keys
}
