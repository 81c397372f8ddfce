package datasource

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const snapshotCacheKey = "snapshot"

// CachedSource wraps a DataSource with a TTL cache so repeated pipeline runs
// inside the window reuse the same snapshot.
type CachedSource struct {
	inner DataSource
	cache *gocache.Cache
}

// NewCachedSource wraps inner with the given TTL. A zero ttl disables
// caching entirely.
func NewCachedSource(inner DataSource, ttl time.Duration) DataSource {
	if ttl <= 0 {
		return inner
	}
	return &CachedSource{
		inner: inner,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Name returns the wrapped source's name.
func (c *CachedSource) Name() string {
	return c.inner.Name()
}

// FetchSnapshot returns the cached snapshot when fresh, otherwise delegates
// to the wrapped source and caches the result.
func (c *CachedSource) FetchSnapshot(ctx context.Context) (*Snapshot, error) {
	if cached, ok := c.cache.Get(snapshotCacheKey); ok {
		return cached.(*Snapshot), nil
	}

	snapshot, err := c.inner.FetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(snapshotCacheKey, snapshot)
	return snapshot, nil
}

// Invalidate drops the cached snapshot, forcing the next fetch through.
func (c *CachedSource) Invalidate() {
	c.cache.Delete(snapshotCacheKey)
}
