package valuation_test

import (
	"math"
	"testing"
	"time"

	"github.com/horizon60/Horizon60-Backend/internal/model"
	"github.com/horizon60/Horizon60-Backend/internal/prices"
	"github.com/horizon60/Horizon60-Backend/internal/valuation"
)

func ptr(v float64) *float64 {
	return &v
}

func security(sec model.SecurityHolding) model.Holding {
	return model.NewSecurityHolding("h1", sec)
}

// TestPurchasePrice tests effective purchase price resolution.
//
// WHY: Holdings created before the per-unit purchase price field existed carry
// a legacy total cost basis instead. Both representations must resolve to the
// same effective per-unit price so old and new records value identically.
func TestPurchasePrice(t *testing.T) {
	t.Run("explicit per-unit price wins", func(t *testing.T) {
		h := security(model.SecurityHolding{
			Ticker:        "VTI",
			Quantity:      10,
			PurchasePrice: ptr(220),
			CostBasis:     ptr(9999), // stale legacy value must be ignored
		})

		got := valuation.PurchasePrice(h)
		if got == nil || *got != 220 {
			t.Errorf("Expected 220, got %v", got)
		}
	})

	t.Run("derives per-unit price from legacy cost basis", func(t *testing.T) {
		h := security(model.SecurityHolding{
			Ticker:    "VTI",
			Quantity:  10,
			CostBasis: ptr(2200),
		})

		got := valuation.PurchasePrice(h)
		if got == nil || *got != 220 {
			t.Errorf("Expected 220, got %v", got)
		}
	})

	t.Run("nil when neither representation is usable", func(t *testing.T) {
		h := security(model.SecurityHolding{Ticker: "VTI", Quantity: 10})

		if got := valuation.PurchasePrice(h); got != nil {
			t.Errorf("Expected nil, got %v", *got)
		}
	})

	t.Run("nil when legacy basis has zero quantity", func(t *testing.T) {
		h := security(model.SecurityHolding{Ticker: "VTI", Quantity: 0, CostBasis: ptr(2200)})

		if got := valuation.PurchasePrice(h); got != nil {
			t.Errorf("Expected nil, got %v", *got)
		}
	})

	t.Run("nil for balance holdings", func(t *testing.T) {
		h := model.NewBalanceHolding("h1", 5000)

		if got := valuation.PurchasePrice(h); got != nil {
			t.Errorf("Expected nil, got %v", *got)
		}
	})
}

// TestCurrentPrice tests the three-tier price resolution chain.
//
// WHY: The override, the fetched quote, and the purchase price must be
// consulted in exactly that order, so a user-pinned price always wins and a
// holding with no fetched quote still values at what was paid for it.
func TestCurrentPrice(t *testing.T) {
	t.Run("price override wins over cached quote", func(t *testing.T) {
		cache := prices.NewCache()
		cache.Put("VTI", 250, time.Now())

		h := security(model.SecurityHolding{
			Ticker:        "VTI",
			Quantity:      10,
			PurchasePrice: ptr(220),
			PriceOverride: ptr(300),
		})

		got := valuation.CurrentPrice(h, cache)
		if got == nil || *got != 300 {
			t.Errorf("Expected 300, got %v", got)
		}
	})

	t.Run("cached quote wins over purchase price", func(t *testing.T) {
		cache := prices.NewCache()
		cache.Put("VTI", 250, time.Now())

		h := security(model.SecurityHolding{
			Ticker:        "VTI",
			Quantity:      10,
			PurchasePrice: ptr(220),
		})

		got := valuation.CurrentPrice(h, cache)
		if got == nil || *got != 250 {
			t.Errorf("Expected 250, got %v", got)
		}
	})

	t.Run("cache lookup uppercases the ticker", func(t *testing.T) {
		cache := prices.NewCache()
		cache.Put("BTC", 60000, time.Now())

		h := security(model.SecurityHolding{Ticker: "btc", Quantity: 0.5})

		got := valuation.CurrentPrice(h, cache)
		if got == nil || *got != 60000 {
			t.Errorf("Expected 60000, got %v", got)
		}
	})

	t.Run("falls back to purchase price when cache misses", func(t *testing.T) {
		h := security(model.SecurityHolding{
			Ticker:        "VTI",
			Quantity:      10,
			PurchasePrice: ptr(220),
		})

		got := valuation.CurrentPrice(h, prices.NewCache())
		if got == nil || *got != 220 {
			t.Errorf("Expected 220, got %v", got)
		}
	})

	t.Run("nil when all three tiers are empty", func(t *testing.T) {
		h := security(model.SecurityHolding{Ticker: "VTI", Quantity: 10})

		if got := valuation.CurrentPrice(h, prices.NewCache()); got != nil {
			t.Errorf("Expected nil, got %v", *got)
		}
	})
}

// TestMarketValue tests holding valuation for both holding kinds.
func TestMarketValue(t *testing.T) {
	t.Run("security is quantity times current price", func(t *testing.T) {
		cache := prices.NewCache()
		cache.Put("VTI", 250, time.Now())

		h := security(model.SecurityHolding{Ticker: "VTI", Quantity: 10, PurchasePrice: ptr(220)})

		got := valuation.MarketValue(h, model.AccountTypeRetirement, cache)
		if got == nil || *got != 2500 {
			t.Errorf("Expected 2500, got %v", got)
		}
	})

	t.Run("security with no resolvable price is nil", func(t *testing.T) {
		h := security(model.SecurityHolding{Ticker: "VTI", Quantity: 10})

		if got := valuation.MarketValue(h, model.AccountTypeRetirement, prices.NewCache()); got != nil {
			t.Errorf("Expected nil, got %v", *got)
		}
	})

	t.Run("balance holding is its stored balance", func(t *testing.T) {
		h := model.NewBalanceHolding("h1", 5000)

		got := valuation.MarketValue(h, model.AccountTypeCash, nil)
		if got == nil || *got != 5000 {
			t.Errorf("Expected 5000, got %v", got)
		}
	})

	t.Run("balance holding with no record defaults to zero", func(t *testing.T) {
		h := model.Holding{ID: "h1", Kind: model.HoldingKindBalance}

		got := valuation.MarketValue(h, model.AccountTypeCash, nil)
		if got == nil || *got != 0 {
			t.Errorf("Expected 0, got %v", got)
		}
	})
}

// TestProfitLoss tests dollar and percent profit/loss.
//
// WHY: A zero or missing cost basis must yield a nil percentage, never NaN or
// Inf. Those values are not representable in JSON and would poison the API
// response.
func TestProfitLoss(t *testing.T) {
	t.Run("computes dollar and percent gain", func(t *testing.T) {
		cache := prices.NewCache()
		cache.Put("VTI", 250, time.Now())

		h := security(model.SecurityHolding{Ticker: "VTI", Quantity: 10, PurchasePrice: ptr(220)})

		pl := valuation.ProfitLossDollar(h, model.AccountTypeRetirement, cache)
		if pl == nil || *pl != 300 {
			t.Errorf("Expected P/L 300, got %v", pl)
		}

		pct := valuation.ProfitLossPercent(h, model.AccountTypeRetirement, cache)
		if pct == nil {
			t.Fatal("Expected percent, got nil")
		}
		if math.Abs(*pct-13.636363636) > 1e-6 {
			t.Errorf("Expected ~13.64%%, got %v", *pct)
		}
	})

	t.Run("percent is nil when cost basis is missing", func(t *testing.T) {
		h := security(model.SecurityHolding{Ticker: "VTI", Quantity: 10, PriceOverride: ptr(250)})

		if pct := valuation.ProfitLossPercent(h, model.AccountTypeRetirement, prices.NewCache()); pct != nil {
			t.Errorf("Expected nil, got %v", *pct)
		}
	})

	t.Run("percent is nil not NaN when cost basis is zero", func(t *testing.T) {
		h := security(model.SecurityHolding{
			Ticker:        "FREE",
			Quantity:      10,
			PurchasePrice: ptr(0),
			PriceOverride: ptr(50),
		})

		pct := valuation.ProfitLossPercent(h, model.AccountTypeRetirement, prices.NewCache())
		if pct != nil {
			t.Errorf("Expected nil, got %v", *pct)
		}
	})

	t.Run("dollar P/L is nil for balance accounts", func(t *testing.T) {
		h := model.NewBalanceHolding("h1", 5000)

		if pl := valuation.ProfitLossDollar(h, model.AccountTypeCash, nil); pl != nil {
			t.Errorf("Expected nil, got %v", *pl)
		}
	})
}
