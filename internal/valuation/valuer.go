// Package valuation implements the holding valuer and account aggregator:
// pure query functions over the account list and the current quote cache.
// Nothing in this package mutates its inputs.
package valuation

import (
	"strings"

	"github.com/horizon60/Horizon60-Backend/internal/model"
	"github.com/horizon60/Horizon60-Backend/internal/prices"
)

// PriceSource is the read-only view of the quote cache the valuer consults.
// *prices.Cache satisfies it.
type PriceSource interface {
	Get(ticker string) (prices.Quote, bool)
}

// PurchasePrice resolves a security holding's effective per-unit purchase
// price. The explicit per-unit field wins; records from before that field
// existed carry a legacy total cost basis instead, from which the per-unit
// price is derived. Both representations resolve to the same effective price.
// Returns nil when neither representation is usable.
func PurchasePrice(h model.Holding) *float64 {
	if h.Kind != model.HoldingKindSecurity || h.Security == nil {
		return nil
	}
	sec := h.Security
	if sec.PurchasePrice != nil {
		v := *sec.PurchasePrice
		return &v
	}
	if sec.CostBasis != nil && *sec.CostBasis > 0 && sec.Quantity > 0 {
		v := *sec.CostBasis / sec.Quantity
		return &v
	}
	return nil
}

// CurrentPrice resolves a security holding's current per-unit price through
// the three-tier fallback chain: user price override, then the quote cache
// keyed by uppercased ticker, then the purchase price. Returns nil only when
// all three tiers are empty.
func CurrentPrice(h model.Holding, source PriceSource) *float64 {
	if h.Kind != model.HoldingKindSecurity || h.Security == nil {
		return nil
	}
	if p := overridePrice(h); p != nil {
		return p
	}
	if p := cachedPrice(h, source); p != nil {
		return p
	}
	return PurchasePrice(h)
}

// overridePrice is the first tier: the user-supplied current price.
func overridePrice(h model.Holding) *float64 {
	if h.Security.PriceOverride == nil {
		return nil
	}
	v := *h.Security.PriceOverride
	return &v
}

// cachedPrice is the second tier: the last fetched quote for the ticker.
func cachedPrice(h model.Holding, source PriceSource) *float64 {
	if source == nil {
		return nil
	}
	q, ok := source.Get(strings.ToUpper(h.Security.Ticker))
	if !ok {
		return nil
	}
	v := q.Price
	return &v
}

// CostBasis returns the total amount originally paid for a holding:
// quantity times per-unit purchase price. Balance accounts have no
// cost-basis concept, so the result is nil for them.
func CostBasis(h model.Holding, accountType model.AccountType) *float64 {
	if !accountType.IsSecurity() || h.Kind != model.HoldingKindSecurity || h.Security == nil {
		return nil
	}
	pp := PurchasePrice(h)
	if pp == nil {
		return nil
	}
	v := h.Security.Quantity * *pp
	return &v
}

// MarketValue returns a holding's present worth. Security holdings are
// quantity times current price, nil when no price is resolvable. Balance
// holdings are their stored balance, zero when the record carries none.
func MarketValue(h model.Holding, accountType model.AccountType, source PriceSource) *float64 {
	if accountType.IsSecurity() {
		if h.Kind != model.HoldingKindSecurity || h.Security == nil {
			return nil
		}
		cp := CurrentPrice(h, source)
		if cp == nil {
			return nil
		}
		v := h.Security.Quantity * *cp
		return &v
	}
	var v float64
	if h.Kind == model.HoldingKindBalance && h.Balance != nil {
		v = h.Balance.Balance
	}
	return &v
}

// ProfitLossDollar returns market value minus cost basis, or nil when either
// operand is unresolvable.
func ProfitLossDollar(h model.Holding, accountType model.AccountType, source PriceSource) *float64 {
	mv := MarketValue(h, accountType, source)
	cb := CostBasis(h, accountType)
	if mv == nil || cb == nil {
		return nil
	}
	v := *mv - *cb
	return &v
}

// ProfitLossPercent returns the dollar profit/loss as a percentage of cost
// basis. A zero or missing cost basis yields nil, never NaN or Inf.
func ProfitLossPercent(h model.Holding, accountType model.AccountType, source PriceSource) *float64 {
	pl := ProfitLossDollar(h, accountType, source)
	cb := CostBasis(h, accountType)
	if pl == nil || cb == nil || *cb == 0 {
		return nil
	}
	v := (*pl / *cb) * 100
	return &v
}
