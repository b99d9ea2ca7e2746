package testutil

import (
	"database/sql"
	"testing"

	"github.com/horizon60/Horizon60-Backend/internal/model"
)

// AccountBuilder provides a fluent interface for creating test accounts.
//
// Example usage:
//
//	// Simple creation with defaults
//	account := testutil.NewAccount().Build(t, db)
//
//	// Customized account
//	account := testutil.NewAccount().
//	    WithName("Brokerage").
//	    WithType(model.AccountTypeRetirement).
//	    WithInstitution("Vanguard").
//	    Build(t, db)
type AccountBuilder struct {
	ID          string
	Name        string
	Type        model.AccountType
	Institution string
	Position    int
}

// NewAccount creates an AccountBuilder with sensible defaults.
func NewAccount() *AccountBuilder {
	return &AccountBuilder{
		ID:          MakeID(),
		Name:        MakeAccountName("Test Account"),
		Type:        model.AccountTypeCash,
		Institution: "Test Bank",
	}
}

// WithID sets a custom ID.
func (b *AccountBuilder) WithID(id string) *AccountBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *AccountBuilder) WithName(name string) *AccountBuilder {
	b.Name = name
	return b
}

// WithType sets the account type.
func (b *AccountBuilder) WithType(accountType model.AccountType) *AccountBuilder {
	b.Type = accountType
	return b
}

// WithInstitution sets the institution.
func (b *AccountBuilder) WithInstitution(institution string) *AccountBuilder {
	b.Institution = institution
	return b
}

// WithPosition sets the display position.
func (b *AccountBuilder) WithPosition(position int) *AccountBuilder {
	b.Position = position
	return b
}

// Build creates the account in the database and returns it.
func (b *AccountBuilder) Build(t *testing.T, db *sql.DB) model.Account {
	t.Helper()

	query := `
		INSERT INTO account (id, name, type, institution, position)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, string(b.Type), b.Institution, b.Position)
	if err != nil {
		t.Fatalf("Failed to create test account: %v", err)
	}

	return model.Account{
		ID:          b.ID,
		Name:        b.Name,
		Type:        b.Type,
		Institution: b.Institution,
	}
}

// HoldingBuilder provides a fluent interface for creating test holdings.
//
// Example usage:
//
//	// Balance holding
//	holding := testutil.NewBalanceHoldingFor(account.ID).
//	    WithBalance(5000).
//	    Build(t, db)
//
//	// Security holding
//	holding := testutil.NewSecurityHoldingFor(account.ID).
//	    WithTicker("VTI").
//	    WithQuantity(10).
//	    WithPurchasePrice(220).
//	    Build(t, db)
type HoldingBuilder struct {
	ID            string
	AccountID     string
	Kind          model.HoldingKind
	Balance       float64
	Ticker        string
	Quantity      float64
	PurchasePrice *float64
	CostBasis     *float64
	PriceOverride *float64
	Position      int
}

// NewBalanceHoldingFor creates a balance HoldingBuilder for the given account.
func NewBalanceHoldingFor(accountID string) *HoldingBuilder {
	return &HoldingBuilder{
		ID:        MakeID(),
		AccountID: accountID,
		Kind:      model.HoldingKindBalance,
		Balance:   1000,
	}
}

// NewSecurityHoldingFor creates a security HoldingBuilder for the given account.
func NewSecurityHoldingFor(accountID string) *HoldingBuilder {
	return &HoldingBuilder{
		ID:        MakeID(),
		AccountID: accountID,
		Kind:      model.HoldingKindSecurity,
		Ticker:    MakeTicker("TEST"),
		Quantity:  1,
	}
}

// WithID sets a custom ID.
func (b *HoldingBuilder) WithID(id string) *HoldingBuilder {
	b.ID = id
	return b
}

// WithBalance sets the stored balance (balance holdings).
func (b *HoldingBuilder) WithBalance(balance float64) *HoldingBuilder {
	b.Balance = balance
	return b
}

// WithTicker sets the ticker symbol (security holdings).
func (b *HoldingBuilder) WithTicker(ticker string) *HoldingBuilder {
	b.Ticker = ticker
	return b
}

// WithQuantity sets the quantity (security holdings).
func (b *HoldingBuilder) WithQuantity(quantity float64) *HoldingBuilder {
	b.Quantity = quantity
	return b
}

// WithPurchasePrice sets the per-unit purchase price.
func (b *HoldingBuilder) WithPurchasePrice(price float64) *HoldingBuilder {
	b.PurchasePrice = &price
	return b
}

// WithCostBasis sets the legacy total cost basis.
func (b *HoldingBuilder) WithCostBasis(costBasis float64) *HoldingBuilder {
	b.CostBasis = &costBasis
	return b
}

// WithPriceOverride sets the manual price override.
func (b *HoldingBuilder) WithPriceOverride(price float64) *HoldingBuilder {
	b.PriceOverride = &price
	return b
}

// WithPosition sets the display position.
func (b *HoldingBuilder) WithPosition(position int) *HoldingBuilder {
	b.Position = position
	return b
}

// Build creates the holding in the database and returns it.
func (b *HoldingBuilder) Build(t *testing.T, db *sql.DB) model.Holding {
	t.Helper()

	query := `
		INSERT INTO holding (id, account_id, kind, balance, ticker, quantity, purchase_price, cost_basis, price_override, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var (
		balance  interface{}
		ticker   interface{}
		quantity interface{}
	)
	if b.Kind == model.HoldingKindBalance {
		balance = b.Balance
	} else {
		ticker = b.Ticker
		quantity = b.Quantity
	}

	_, err := db.Exec(query, b.ID, b.AccountID, string(b.Kind),
		balance, ticker, quantity, b.PurchasePrice, b.CostBasis, b.PriceOverride, b.Position)
	if err != nil {
		t.Fatalf("Failed to create test holding: %v", err)
	}

	holding := model.Holding{ID: b.ID, Kind: b.Kind}
	if b.Kind == model.HoldingKindBalance {
		holding.Balance = &model.BalanceHolding{Balance: b.Balance}
	} else {
		holding.Security = &model.SecurityHolding{
			Ticker:        b.Ticker,
			Quantity:      b.Quantity,
			PurchasePrice: b.PurchasePrice,
			CostBasis:     b.CostBasis,
			PriceOverride: b.PriceOverride,
		}
	}
	return holding
}

// SnapshotBuilder provides a fluent interface for creating test snapshots.
type SnapshotBuilder struct {
	ID            string
	Date          string
	TotalNetWorth float64
	Accounts      []model.SnapshotAccount
}

// NewSnapshot creates a SnapshotBuilder with sensible defaults.
func NewSnapshot() *SnapshotBuilder {
	return &SnapshotBuilder{
		ID:            MakeID(),
		Date:          "2026-01-01",
		TotalNetWorth: 10000,
	}
}

// WithDate sets the snapshot date.
func (b *SnapshotBuilder) WithDate(date string) *SnapshotBuilder {
	b.Date = date
	return b
}

// WithTotalNetWorth sets the frozen total.
func (b *SnapshotBuilder) WithTotalNetWorth(total float64) *SnapshotBuilder {
	b.TotalNetWorth = total
	return b
}

// WithAccountLine appends a per-account line.
func (b *SnapshotBuilder) WithAccountLine(accountID, name string, balance float64) *SnapshotBuilder {
	b.Accounts = append(b.Accounts, model.SnapshotAccount{
		AccountID: accountID,
		Name:      name,
		Balance:   balance,
	})
	return b
}

// Build creates the snapshot and its lines in the database and returns it.
func (b *SnapshotBuilder) Build(t *testing.T, db *sql.DB) model.Snapshot {
	t.Helper()

	_, err := db.Exec(`INSERT INTO snapshot (id, date, total_net_worth) VALUES (?, ?, ?)`,
		b.ID, b.Date, b.TotalNetWorth)
	if err != nil {
		t.Fatalf("Failed to create test snapshot: %v", err)
	}

	for _, line := range b.Accounts {
		_, err := db.Exec(`
			INSERT INTO snapshot_account (id, snapshot_id, account_id, name, balance)
			VALUES (?, ?, ?, ?, ?)
		`, MakeID(), b.ID, line.AccountID, line.Name, line.Balance)
		if err != nil {
			t.Fatalf("Failed to create test snapshot line: %v", err)
		}
	}

	return model.Snapshot{
		ID:            b.ID,
		Date:          b.Date,
		TotalNetWorth: b.TotalNetWorth,
		Accounts:      b.Accounts,
	}
}

// Convenience functions

// CreateAccount creates an account with the given name and type.
//
// Example usage:
//
//	account := testutil.CreateAccount(t, db, "Savings", model.AccountTypeCash)
func CreateAccount(t *testing.T, db *sql.DB, name string, accountType model.AccountType) model.Account {
	t.Helper()
	return NewAccount().WithName(name).WithType(accountType).Build(t, db)
}

// SaveForecastSettings stores forecast settings for an account directly.
func SaveForecastSettings(t *testing.T, db *sql.DB, settings model.ForecastSettings) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO forecast_settings
			(account_id, monthly_contribution, annual_return_percent, contribution_stop_date, loan_origination_date, term_months)
		VALUES (?, ?, ?, ?, ?, ?)
	`, settings.AccountID, settings.MonthlyContribution, settings.AnnualReturnPercent,
		nullString(settings.ContributionStopDate), nullString(settings.LoanOriginationDate), settings.TermMonths)
	if err != nil {
		t.Fatalf("Failed to save test forecast settings: %v", err)
	}
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
