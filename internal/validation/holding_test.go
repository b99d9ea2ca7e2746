package validation_test

import (
	"testing"

	"github.com/horizon60/Horizon60-Backend/internal/api/request"
	"github.com/horizon60/Horizon60-Backend/internal/model"
	"github.com/horizon60/Horizon60-Backend/internal/validation"
)

func fptr(v float64) *float64 {
	return &v
}

// TestValidateHolding tests holding validation against the account type.
//
// WHY: The account type decides which request shape is legal. A security
// request with no ticker or a debt balance entered as a negative number must
// be rejected before it reaches the data model.
func TestValidateHolding(t *testing.T) {
	t.Run("valid security holding passes", func(t *testing.T) {
		err := validation.ValidateHolding(request.HoldingRequest{
			Ticker:        "VTI",
			Quantity:      fptr(10),
			PurchasePrice: fptr(220),
		}, model.AccountTypeRetirement)
		if err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("security holding requires a ticker", func(t *testing.T) {
		err := validation.ValidateHolding(request.HoldingRequest{
			Quantity: fptr(10),
		}, model.AccountTypeRetirement)
		if err == nil {
			t.Fatal("Expected error")
		}
		if fieldError(t, err, "ticker") == "" {
			t.Error("Expected a ticker field error")
		}
	})

	t.Run("security holding requires a positive quantity", func(t *testing.T) {
		err := validation.ValidateHolding(request.HoldingRequest{
			Ticker:   "VTI",
			Quantity: fptr(0),
		}, model.AccountTypeCrypto)
		if err == nil {
			t.Fatal("Expected error")
		}
		if fieldError(t, err, "quantity") == "" {
			t.Error("Expected a quantity field error")
		}
	})

	t.Run("security holding rejects negative prices", func(t *testing.T) {
		err := validation.ValidateHolding(request.HoldingRequest{
			Ticker:        "VTI",
			Quantity:      fptr(1),
			PurchasePrice: fptr(-5),
			PriceOverride: fptr(-1),
		}, model.AccountTypeRetirement)
		if err == nil {
			t.Fatal("Expected error")
		}
		vErr := err.(*validation.Error)
		if vErr.Fields["purchasePrice"] == "" || vErr.Fields["priceOverride"] == "" {
			t.Errorf("Expected price field errors, got %v", vErr.Fields)
		}
	})

	t.Run("valid balance holding passes", func(t *testing.T) {
		err := validation.ValidateHolding(request.HoldingRequest{
			Balance: fptr(5000),
		}, model.AccountTypeCash)
		if err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("balance holding requires a balance", func(t *testing.T) {
		err := validation.ValidateHolding(request.HoldingRequest{}, model.AccountTypeCash)
		if err == nil {
			t.Fatal("Expected error")
		}
		if fieldError(t, err, "balance") == "" {
			t.Error("Expected a balance field error")
		}
	})

	t.Run("negative cash balance is allowed", func(t *testing.T) {
		// An overdrawn checking account is a legitimate negative balance
		err := validation.ValidateHolding(request.HoldingRequest{
			Balance: fptr(-50),
		}, model.AccountTypeCash)
		if err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("negative debt balance is rejected", func(t *testing.T) {
		err := validation.ValidateHolding(request.HoldingRequest{
			Balance: fptr(-3000),
		}, model.AccountTypeDebt)
		if err == nil {
			t.Fatal("Expected error")
		}
		if fieldError(t, err, "balance") == "" {
			t.Error("Expected a balance field error")
		}
	})
}
