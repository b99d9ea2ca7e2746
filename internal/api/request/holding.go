package request

// HoldingRequest creates or updates a holding. The owning account's type
// decides which fields apply: balance accounts read Balance, security
// accounts read the ticker fields. Validation rejects the wrong shape.
type HoldingRequest struct {
	Balance       *float64 `json:"balance"`
	Ticker        string   `json:"ticker"`
	Quantity      *float64 `json:"quantity"`
	PurchasePrice *float64 `json:"purchasePrice"`
	CostBasis     *float64 `json:"costBasis"`
	PriceOverride *float64 `json:"priceOverride"`
}
