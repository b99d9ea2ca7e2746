package validation

import (
	"strings"

	"github.com/horizon60/Horizon60-Backend/internal/api/request"
	"github.com/horizon60/Horizon60-Backend/internal/model"
)

// ValidateHolding checks a holding request against the owning account's
// type. Invalid input never reaches the data model: security holdings must
// carry a non-empty ticker and a quantity greater than zero, balance
// holdings a balance amount.
func ValidateHolding(req request.HoldingRequest, accountType model.AccountType) error {
	if accountType.IsSecurity() {
		return validateSecurityHolding(req)
	}
	return validateBalanceHolding(req, accountType)
}

func validateSecurityHolding(req request.HoldingRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Ticker) == "" {
		errors["ticker"] = "ticker is required"
	} else if len(req.Ticker) > 16 {
		errors["ticker"] = "ticker must be 16 characters or less"
	}

	if req.Quantity == nil {
		errors["quantity"] = "quantity is required"
	} else if *req.Quantity <= 0 {
		errors["quantity"] = "quantity must be greater than zero"
	}

	if req.PurchasePrice != nil && *req.PurchasePrice < 0 {
		errors["purchasePrice"] = "purchase price cannot be negative"
	}
	if req.CostBasis != nil && *req.CostBasis < 0 {
		errors["costBasis"] = "cost basis cannot be negative"
	}
	if req.PriceOverride != nil && *req.PriceOverride < 0 {
		errors["priceOverride"] = "price override cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func validateBalanceHolding(req request.HoldingRequest, accountType model.AccountType) error {
	errors := make(map[string]string)

	if req.Balance == nil {
		errors["balance"] = "balance is required"
	} else if accountType.IsDebt() && *req.Balance < 0 {
		// Debt balances are stored as a positive amount owed.
		errors["balance"] = "debt balance must be the positive amount owed"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
