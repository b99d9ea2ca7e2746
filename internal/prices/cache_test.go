package prices_test

import (
	"sync"
	"testing"
	"time"

	"github.com/horizon60/Horizon60-Backend/internal/prices"
)

// TestCache tests the in-memory quote cache.
func TestCache(t *testing.T) {
	t.Run("get returns what was put", func(t *testing.T) {
		cache := prices.NewCache()
		fetchedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

		cache.Put("VTI", 250.5, fetchedAt)

		quote, ok := cache.Get("VTI")
		if !ok {
			t.Fatal("Expected quote, got miss")
		}
		if quote.Price != 250.5 {
			t.Errorf("Expected 250.5, got %v", quote.Price)
		}
		if !quote.FetchedAt.Equal(fetchedAt) {
			t.Errorf("Expected %v, got %v", fetchedAt, quote.FetchedAt)
		}
	})

	t.Run("miss on unknown ticker", func(t *testing.T) {
		cache := prices.NewCache()

		if _, ok := cache.Get("NOPE"); ok {
			t.Error("Expected miss")
		}
	})

	t.Run("put replaces the previous quote", func(t *testing.T) {
		cache := prices.NewCache()
		cache.Put("VTI", 250, time.Now())
		cache.Put("VTI", 260, time.Now())

		quote, _ := cache.Get("VTI")
		if quote.Price != 260 {
			t.Errorf("Expected 260, got %v", quote.Price)
		}
		if cache.Len() != 1 {
			t.Errorf("Expected 1 entry, got %d", cache.Len())
		}
	})

	t.Run("all returns a copy", func(t *testing.T) {
		cache := prices.NewCache()
		cache.Put("VTI", 250, time.Now())

		all := cache.All()
		all["VTI"] = prices.Quote{Price: 1}

		quote, _ := cache.Get("VTI")
		if quote.Price != 250 {
			t.Errorf("Mutating the returned map changed the cache: %v", quote.Price)
		}
	})

	t.Run("concurrent readers and writers", func(t *testing.T) {
		cache := prices.NewCache()

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				cache.Put("BTC", 60000, time.Now())
			}()
			go func() {
				defer wg.Done()
				cache.Get("BTC")
			}()
		}
		wg.Wait()
	})
}
