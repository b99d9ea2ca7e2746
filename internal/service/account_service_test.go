package service_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/horizon60/Horizon60-Backend/internal/apperrors"
	"github.com/horizon60/Horizon60-Backend/internal/model"
	"github.com/horizon60/Horizon60-Backend/internal/testutil"
)

// TestAccountService_CreateAccount tests account creation.
func TestAccountService_CreateAccount(t *testing.T) {
	t.Run("creates an account with a generated id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAccountService(t, db)

		account, err := svc.CreateAccount("Savings", model.AccountTypeCash, "Credit Union")
		if err != nil {
			t.Fatalf("CreateAccount() returned unexpected error: %v", err)
		}
		if account.ID == "" {
			t.Error("Expected a generated ID")
		}

		got, err := svc.GetAccount(account.ID)
		if err != nil {
			t.Fatalf("GetAccount() returned unexpected error: %v", err)
		}
		if got.Name != "Savings" || got.Type != model.AccountTypeCash {
			t.Errorf("Round trip mismatch: %+v", got)
		}
	})

	t.Run("rejects an invalid account type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAccountService(t, db)

		_, err := svc.CreateAccount("X", model.AccountType("Brokerage"), "")
		if !errors.Is(err, apperrors.ErrInvalidAccountType) {
			t.Errorf("Expected ErrInvalidAccountType, got %v", err)
		}
	})
}

// TestAccountService_UpdateAccount tests account edits.
func TestAccountService_UpdateAccount(t *testing.T) {
	t.Run("renames an account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAccountService(t, db)

		account, _ := svc.CreateAccount("Old", model.AccountTypeCash, "Bank")

		updated, err := svc.UpdateAccount(account.ID, "New", "Other Bank")
		if err != nil {
			t.Fatalf("UpdateAccount() returned unexpected error: %v", err)
		}
		if updated.Name != "New" || updated.Institution != "Other Bank" {
			t.Errorf("Expected updated fields, got %+v", updated)
		}
	})

	t.Run("unknown account returns ErrAccountNotFound", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAccountService(t, db)

		_, err := svc.UpdateAccount(testutil.MakeID(), "X", "")
		if !errors.Is(err, apperrors.ErrAccountNotFound) {
			t.Errorf("Expected ErrAccountNotFound, got %v", err)
		}
	})
}

// TestAccountService_Holdings tests holding management through the service.
//
// WHY: The account type pins which holding kind it accepts: balance holdings
// for Cash/Debt, security holdings for Retirement/Crypto. Crossing them must
// fail with a kind mismatch, not corrupt the row.
func TestAccountService_Holdings(t *testing.T) {
	t.Run("adds a balance holding to a cash account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAccountService(t, db)
		account, _ := svc.CreateAccount("Savings", model.AccountTypeCash, "")

		holding, err := svc.AddBalanceHolding(account.ID, 5000)
		if err != nil {
			t.Fatalf("AddBalanceHolding() returned unexpected error: %v", err)
		}
		if holding.Kind != model.HoldingKindBalance || holding.Balance.Balance != 5000 {
			t.Errorf("Expected balance holding of 5000, got %+v", holding)
		}
	})

	t.Run("adds a security holding and uppercases the ticker", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAccountService(t, db)
		account, _ := svc.CreateAccount("Brokerage", model.AccountTypeRetirement, "")

		holding, err := svc.AddSecurityHolding(account.ID, model.SecurityHolding{
			Ticker:   "vti",
			Quantity: 10,
		})
		if err != nil {
			t.Fatalf("AddSecurityHolding() returned unexpected error: %v", err)
		}
		if holding.Security.Ticker != "VTI" {
			t.Errorf("Expected VTI, got %s", holding.Security.Ticker)
		}
	})

	t.Run("rejects a security holding on a balance account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAccountService(t, db)
		account, _ := svc.CreateAccount("Savings", model.AccountTypeCash, "")

		_, err := svc.AddSecurityHolding(account.ID, model.SecurityHolding{Ticker: "VTI", Quantity: 1})
		if !errors.Is(err, apperrors.ErrHoldingKindMismatch) {
			t.Errorf("Expected ErrHoldingKindMismatch, got %v", err)
		}
	})

	t.Run("rejects a balance holding on a security account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAccountService(t, db)
		account, _ := svc.CreateAccount("Brokerage", model.AccountTypeCrypto, "")

		_, err := svc.AddBalanceHolding(account.ID, 100)
		if !errors.Is(err, apperrors.ErrHoldingKindMismatch) {
			t.Errorf("Expected ErrHoldingKindMismatch, got %v", err)
		}
	})

	t.Run("updates a balance holding", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAccountService(t, db)
		account, _ := svc.CreateAccount("Savings", model.AccountTypeCash, "")
		holding, _ := svc.AddBalanceHolding(account.ID, 100)

		updated, err := svc.UpdateBalanceHolding(holding.ID, 250)
		if err != nil {
			t.Fatalf("UpdateBalanceHolding() returned unexpected error: %v", err)
		}
		if updated.Balance.Balance != 250 {
			t.Errorf("Expected 250, got %v", updated.Balance.Balance)
		}
	})

	t.Run("deletes a holding", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAccountService(t, db)
		account, _ := svc.CreateAccount("Savings", model.AccountTypeCash, "")
		holding, _ := svc.AddBalanceHolding(account.ID, 100)

		if err := svc.DeleteHolding(holding.ID); err != nil {
			t.Fatalf("DeleteHolding() returned unexpected error: %v", err)
		}
		testutil.AssertRowCount(t, db, "holding", 0)
	})
}

// TestAccountService_ImportHoldings tests bulk CSV import.
func TestAccountService_ImportHoldings(t *testing.T) {
	t.Run("imports parsed rows into a security account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAccountService(t, db)
		account, _ := svc.CreateAccount("Brokerage", model.AccountTypeRetirement, "")

		csv := "Ticker,Quantity,Average Cost Basis\nAAPL,10,150.00\nVTI,5,220.00\n"

		result, err := svc.ImportHoldings(account.ID, strings.NewReader(csv))
		if err != nil {
			t.Fatalf("ImportHoldings() returned unexpected error: %v", err)
		}
		if len(result.Holdings) != 2 {
			t.Errorf("Expected 2 imported holdings, got %d", len(result.Holdings))
		}

		got, _ := svc.GetAccount(account.ID)
		if len(got.Holdings) != 2 {
			t.Errorf("Expected 2 persisted holdings, got %d", len(got.Holdings))
		}
	})

	t.Run("rejects import into a balance account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAccountService(t, db)
		account, _ := svc.CreateAccount("Savings", model.AccountTypeCash, "")

		_, err := svc.ImportHoldings(account.ID, strings.NewReader("Ticker,Quantity\nAAPL,1\n"))
		if !errors.Is(err, apperrors.ErrHoldingKindMismatch) {
			t.Errorf("Expected ErrHoldingKindMismatch, got %v", err)
		}
	})
}
