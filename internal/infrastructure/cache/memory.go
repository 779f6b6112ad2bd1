package cache

import (
	"context"
	"sync"
	"time"

	"github.com/ecocart/backend/internal/domain"
)

// entry is a cached result set with its expiration.
type entry struct {
	products   []domain.Product
	expiration time.Time
}

// SearchResultCache is a thread-safe in-memory TTL cache of merged search
// results, keyed by normalized query. It sits above the fan-out so a repeated
// query does not re-hit every retailer within the TTL window.
type SearchResultCache struct {
	data  map[string]entry
	mutex sync.RWMutex
}

// NewSearchResultCache creates the cache and starts a background sweeper for
// expired entries.
func NewSearchResultCache() *SearchResultCache {
	c := &SearchResultCache{
		data: make(map[string]entry),
	}
	go c.cleanupExpired()
	return c
}

// Get returns the cached result set for a key, or ErrCacheMiss.
func (c *SearchResultCache) Get(_ context.Context, key string) ([]domain.Product, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	e, exists := c.data[key]
	if !exists || time.Now().After(e.expiration) {
		return nil, domain.ErrCacheMiss
	}

	// Return a copy: the aggregator relabels source fields on what it hands
	// out, and that must not leak back into the cached slice.
	out := make([]domain.Product, len(e.products))
	copy(out, e.products)
	return out, nil
}

// Set stores a result set under key with the given TTL.
func (c *SearchResultCache) Set(_ context.Context, key string, products []domain.Product, ttl time.Duration) error {
	stored := make([]domain.Product, len(products))
	copy(stored, products)

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data[key] = entry{
		products:   stored,
		expiration: time.Now().Add(ttl),
	}
	return nil
}

// Delete removes a key.
func (c *SearchResultCache) Delete(_ context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.data, key)
	return nil
}

// Size returns the current number of entries.
func (c *SearchResultCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// cleanupExpired sweeps expired entries every 10 minutes.
func (c *SearchResultCache) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mutex.Lock()
		now := time.Now()
		for key, e := range c.data {
			if now.After(e.expiration) {
				delete(c.data, key)
			}
		}
		c.mutex.Unlock()
	}
}
