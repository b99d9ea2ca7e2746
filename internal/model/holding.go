package model

// HoldingKind tags the two concrete holding shapes.
type HoldingKind string

const (
	// HoldingKindBalance is a directly-entered dollar amount (Cash/Debt).
	HoldingKindBalance HoldingKind = "balance"
	// HoldingKindSecurity is a ticker position (Retirement/Crypto).
	HoldingKindSecurity HoldingKind = "security"
)

// Holding is a tagged variant over the two holding shapes. Exactly one of
// Balance or Security is set, according to Kind; the account's type decides
// which kind its holdings may carry.
type Holding struct {
	ID       string           `json:"id"`
	Kind     HoldingKind      `json:"kind"`
	Balance  *BalanceHolding  `json:"balance,omitempty"`
	Security *SecurityHolding `json:"security,omitempty"`
}

// BalanceHolding is a holding valued by its stored dollar amount. Debt
// balances are stored as a positive amount owed; the aggregator applies the
// sign convention.
type BalanceHolding struct {
	Balance float64 `json:"balance"`
}

// SecurityHolding is a holding valued by quantity times price.
//
// PurchasePrice is the per-unit cost basis. Records created before that field
// existed carry a total CostBasis instead; the valuer derives the per-unit
// price from it. PriceOverride, when set, takes precedence over any fetched
// quote.
type SecurityHolding struct {
	Ticker        string   `json:"ticker"`
	Quantity      float64  `json:"quantity"`
	PurchasePrice *float64 `json:"purchasePrice,omitempty"`
	CostBasis     *float64 `json:"costBasis,omitempty"`
	PriceOverride *float64 `json:"priceOverride,omitempty"`
}

// NewBalanceHolding builds a balance-mode holding with the given ID.
func NewBalanceHolding(id string, balance float64) Holding {
	return Holding{
		ID:      id,
		Kind:    HoldingKindBalance,
		Balance: &BalanceHolding{Balance: balance},
	}
}

// NewSecurityHolding builds a security-mode holding with the given ID.
func NewSecurityHolding(id string, sec SecurityHolding) Holding {
	return Holding{
		ID:       id,
		Kind:     HoldingKindSecurity,
		Security: &sec,
	}
}
