package montgomery

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/agbru/ecccalc/internal/bignum"
)

// CacheObserver is notified of every Cache lookup. Implementations must be
// safe for concurrent use.
type CacheObserver interface {
	CacheHit()
	CacheMiss()
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithObserver attaches an observer to the cache.
func WithObserver(o CacheObserver) CacheOption {
	return func(c *Cache) {
		c.observer = o
	}
}

// Cache maps moduli to their Contexts. It is owned by the caller and passed
// to whatever builds fields; there is no package-level instance. A Cache is
// safe for concurrent use, and concurrent misses on the same modulus build
// the Context once.
type Cache struct {
	mu       sync.RWMutex
	contexts map[string]*Context
	group    singleflight.Group
	observer CacheObserver
}

// NewCache returns an empty cache.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{contexts: make(map[string]*Context)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the Context for n, building and storing it on first use.
// Construction errors are returned and not cached.
func (c *Cache) Get(n bignum.Nat) (*Context, error) {
	key := n.String()

	c.mu.RLock()
	ctx, ok := c.contexts[key]
	c.mu.RUnlock()
	if ok {
		if c.observer != nil {
			c.observer.CacheHit()
		}
		return ctx, nil
	}

	if c.observer != nil {
		c.observer.CacheMiss()
	}
	v, err, _ := c.group.Do(key, func() (any, error) {
		built, err := New(n)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		if existing, ok := c.contexts[key]; ok {
			built = existing
		} else {
			c.contexts[key] = built
		}
		c.mu.Unlock()
		return built, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Context), nil
}

// Len returns the number of cached contexts.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.contexts)
}
