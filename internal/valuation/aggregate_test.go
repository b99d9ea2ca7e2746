package valuation_test

import (
	"testing"

	"github.com/horizon60/Horizon60-Backend/internal/model"
	"github.com/horizon60/Horizon60-Backend/internal/valuation"
)

// TestTotalNetWorth tests portfolio aggregation across account types.
//
// WHY: Debt accounts store their balance as a positive amount owed, and the
// aggregator alone applies the sign. Getting this wrong would silently
// overstate net worth by twice the debt.
func TestTotalNetWorth(t *testing.T) {
	t.Run("debt subtracts from net worth", func(t *testing.T) {
		accounts := []model.Account{
			{
				ID:   "a1",
				Type: model.AccountTypeCash,
				Holdings: []model.Holding{
					model.NewBalanceHolding("h1", 10000),
				},
			},
			{
				ID:   "a2",
				Type: model.AccountTypeDebt,
				Holdings: []model.Holding{
					model.NewBalanceHolding("h2", 3000),
				},
			},
		}

		got := valuation.TotalNetWorth(accounts, nil)
		if got != 7000 {
			t.Errorf("Expected 7000, got %v", got)
		}
	})

	t.Run("empty portfolio is zero", func(t *testing.T) {
		if got := valuation.TotalNetWorth(nil, nil); got != 0 {
			t.Errorf("Expected 0, got %v", got)
		}
	})

	t.Run("holdings with no valuation are excluded", func(t *testing.T) {
		accounts := []model.Account{
			{
				ID:   "a1",
				Type: model.AccountTypeRetirement,
				Holdings: []model.Holding{
					model.NewSecurityHolding("h1", model.SecurityHolding{
						Ticker: "VTI", Quantity: 10, PurchasePrice: ptr(220),
					}),
					// no price from any tier
					model.NewSecurityHolding("h2", model.SecurityHolding{
						Ticker: "MYSTERY", Quantity: 5,
					}),
				},
			},
		}

		got := valuation.TotalNetWorth(accounts, nil)
		if got != 2200 {
			t.Errorf("Expected 2200, got %v", got)
		}
	})
}

// TestSummaryByType tests per-type subtotals.
func TestSummaryByType(t *testing.T) {
	t.Run("all four types present even when unused", func(t *testing.T) {
		summary := valuation.SummaryByType(nil, nil)

		if len(summary) != 4 {
			t.Fatalf("Expected 4 entries, got %d", len(summary))
		}
		for _, accountType := range model.AccountTypes {
			if v, ok := summary[accountType]; !ok || v != 0 {
				t.Errorf("Expected %s = 0, got %v (present: %v)", accountType, v, ok)
			}
		}
	})

	t.Run("debt reported as positive magnitude", func(t *testing.T) {
		accounts := []model.Account{
			{
				ID:   "a1",
				Type: model.AccountTypeDebt,
				Holdings: []model.Holding{
					model.NewBalanceHolding("h1", 3000),
				},
			},
		}

		summary := valuation.SummaryByType(accounts, nil)
		if summary[model.AccountTypeDebt] != 3000 {
			t.Errorf("Expected 3000, got %v", summary[model.AccountTypeDebt])
		}
	})
}

// TestAccountProfitLoss tests account-level invested/market/P&L rollups.
//
// WHY: Balance-mode accounts have no cost-basis concept, so their invested
// amount is defined as the market value and the displayed profit/loss must
// always be zero, not nil and not garbage.
func TestAccountProfitLoss(t *testing.T) {
	t.Run("security account with gains", func(t *testing.T) {
		acct := model.Account{
			ID:   "a1",
			Type: model.AccountTypeRetirement,
			Holdings: []model.Holding{
				model.NewSecurityHolding("h1", model.SecurityHolding{
					Ticker: "VTI", Quantity: 10, PurchasePrice: ptr(220), PriceOverride: ptr(250),
				}),
			},
		}

		invested, market, plDollar, plPercent := valuation.AccountProfitLoss(acct, nil)
		if invested != 2200 {
			t.Errorf("Expected invested 2200, got %v", invested)
		}
		if market != 2500 {
			t.Errorf("Expected market 2500, got %v", market)
		}
		if plDollar != 300 {
			t.Errorf("Expected P/L 300, got %v", plDollar)
		}
		if plPercent == nil {
			t.Fatal("Expected percent, got nil")
		}
	})

	t.Run("balance account shows zero profit loss", func(t *testing.T) {
		acct := model.Account{
			ID:   "a1",
			Type: model.AccountTypeCash,
			Holdings: []model.Holding{
				model.NewBalanceHolding("h1", 5000),
			},
		}

		invested, market, plDollar, plPercent := valuation.AccountProfitLoss(acct, nil)
		if invested != market {
			t.Errorf("Expected invested == market, got %v and %v", invested, market)
		}
		if plDollar != 0 {
			t.Errorf("Expected P/L 0, got %v", plDollar)
		}
		if plPercent == nil || *plPercent != 0 {
			t.Errorf("Expected percent 0, got %v", plPercent)
		}
	})

	t.Run("empty balance account has nil percent", func(t *testing.T) {
		acct := model.Account{ID: "a1", Type: model.AccountTypeCash}

		_, _, _, plPercent := valuation.AccountProfitLoss(acct, nil)
		if plPercent != nil {
			t.Errorf("Expected nil, got %v", *plPercent)
		}
	})
}
