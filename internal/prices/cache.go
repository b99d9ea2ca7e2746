// Package prices holds the in-memory quote cache shared between the price
// fetchers (writers) and the valuation layer (readers). The cache lives for
// the process only; it is never persisted and is repopulated lazily on sync.
package prices

import (
	"sync"
	"time"
)

// Quote is the last fetched price for a ticker.
type Quote struct {
	Price     float64   `json:"price"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Cache maps uppercased ticker symbols to their last fetched quote.
// Readers must tolerate an empty or partially populated cache at any time;
// every consumer has a defined fallback when a ticker is missing.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Quote
}

// NewCache creates an empty quote cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]Quote)}
}

// Get returns the cached quote for the ticker, if any. Lookup is by the
// ticker as stored; callers uppercase symbols before calling.
func (c *Cache) Get(ticker string) (Quote, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	q, ok := c.entries[ticker]
	return q, ok
}

// Put stores a quote for the ticker, replacing any previous entry.
func (c *Cache) Put(ticker string, price float64, fetchedAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[ticker] = Quote{Price: price, FetchedAt: fetchedAt}
}

// All returns a copy of the cache contents.
func (c *Cache) All() map[string]Quote {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]Quote, len(c.entries))
	for k, v := range c.entries {
		out[k] = v
	}
	return out
}

// Len returns the number of cached tickers.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
