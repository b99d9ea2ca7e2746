package repository

import (
	"database/sql"
	"fmt"

	"github.com/horizon60/Horizon60-Backend/internal/apperrors"
	"github.com/horizon60/Horizon60-Backend/internal/model"
)

// AccountRepository provides data access methods for the account and holding
// tables. Holdings are loaded and stored in user order via their position
// column; they belong exclusively to their account and cascade on delete.
type AccountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new AccountRepository with the provided database connection.
func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// GetAccounts retrieves all accounts with their holdings, in user order.
// Returns an empty slice when no accounts exist.
func (s *AccountRepository) GetAccounts() ([]model.Account, error) {
	rows, err := s.db.Query(`
		SELECT id, name, type, COALESCE(institution, '')
		FROM account
		ORDER BY position ASC, name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query account table: %w", err)
	}
	defer rows.Close()

	accounts := []model.Account{}
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Type, &a.Institution); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account table: %w", err)
	}

	for i := range accounts {
		holdings, err := s.getHoldings(accounts[i].ID)
		if err != nil {
			return nil, err
		}
		accounts[i].Holdings = holdings
	}
	return accounts, nil
}

// GetAccountOnID retrieves a single account and its holdings.
func (s *AccountRepository) GetAccountOnID(accountID string) (model.Account, error) {
	var a model.Account
	err := s.db.QueryRow(`
		SELECT id, name, type, COALESCE(institution, '')
		FROM account
		WHERE id = ?
	`, accountID).Scan(&a.ID, &a.Name, &a.Type, &a.Institution)
	if err == sql.ErrNoRows {
		return model.Account{}, apperrors.ErrAccountNotFound
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to query account: %w", err)
	}

	holdings, err := s.getHoldings(a.ID)
	if err != nil {
		return model.Account{}, err
	}
	a.Holdings = holdings
	return a, nil
}

// CreateAccount inserts a new account at the end of the display order.
func (s *AccountRepository) CreateAccount(a model.Account) error {
	_, err := s.db.Exec(`
		INSERT INTO account (id, name, type, institution, position)
		VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM account))
	`, a.ID, a.Name, a.Type, nullIfEmpty(a.Institution))
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return nil
}

// UpdateAccount updates an account's name and institution. The type is
// immutable after creation because it fixes the holding shape.
func (s *AccountRepository) UpdateAccount(a model.Account) error {
	result, err := s.db.Exec(`
		UPDATE account SET name = ?, institution = ?
		WHERE id = ?
	`, a.Name, nullIfEmpty(a.Institution), a.ID)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return requireRow(result, apperrors.ErrAccountNotFound)
}

// DeleteAccount removes an account; its holdings and forecast settings
// cascade away with it.
func (s *AccountRepository) DeleteAccount(accountID string) error {
	result, err := s.db.Exec(`DELETE FROM account WHERE id = ?`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return requireRow(result, apperrors.ErrAccountNotFound)
}

// getHoldings loads one account's holdings in user order.
func (s *AccountRepository) getHoldings(accountID string) ([]model.Holding, error) {
	rows, err := s.db.Query(`
		SELECT id, kind, balance, ticker, quantity, purchase_price, cost_basis, price_override
		FROM holding
		WHERE account_id = ?
		ORDER BY position ASC
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query holding table: %w", err)
	}
	defer rows.Close()

	holdings := []model.Holding{}
	for rows.Next() {
		h, err := scanHolding(rows)
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, h)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holding table: %w", err)
	}
	return holdings, nil
}

// GetHoldingOnID retrieves a single holding and the ID of the account that owns it.
func (s *AccountRepository) GetHoldingOnID(holdingID string) (model.Holding, string, error) {
	row := s.db.QueryRow(`
		SELECT id, kind, balance, ticker, quantity, purchase_price, cost_basis, price_override, account_id
		FROM holding
		WHERE id = ?
	`, holdingID)

	var (
		h         model.Holding
		kind      string
		balance   sql.NullFloat64
		ticker    sql.NullString
		quantity  sql.NullFloat64
		purchase  sql.NullFloat64
		costBasis sql.NullFloat64
		override  sql.NullFloat64
		accountID string
	)
	err := row.Scan(&h.ID, &kind, &balance, &ticker, &quantity, &purchase, &costBasis, &override, &accountID)
	if err == sql.ErrNoRows {
		return model.Holding{}, "", apperrors.ErrHoldingNotFound
	}
	if err != nil {
		return model.Holding{}, "", fmt.Errorf("failed to query holding: %w", err)
	}

	built, err := buildHolding(h.ID, kind, balance, ticker, quantity, purchase, costBasis, override)
	if err != nil {
		return model.Holding{}, "", err
	}
	return built, accountID, nil
}

// CreateHolding appends a holding to an account.
func (s *AccountRepository) CreateHolding(accountID string, h model.Holding) error {
	columns, err := holdingColumns(h)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO holding (id, account_id, kind, balance, ticker, quantity, purchase_price, cost_basis, price_override, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM holding WHERE account_id = ?))
	`, h.ID, accountID, h.Kind, columns.balance, columns.ticker, columns.quantity, columns.purchase, columns.costBasis, columns.override, accountID)
	if err != nil {
		return fmt.Errorf("failed to insert holding: %w", err)
	}
	return nil
}

// UpdateHolding replaces a holding's value fields, keeping its position.
func (s *AccountRepository) UpdateHolding(h model.Holding) error {
	columns, err := holdingColumns(h)
	if err != nil {
		return err
	}
	result, err := s.db.Exec(`
		UPDATE holding
		SET kind = ?, balance = ?, ticker = ?, quantity = ?, purchase_price = ?, cost_basis = ?, price_override = ?
		WHERE id = ?
	`, h.Kind, columns.balance, columns.ticker, columns.quantity, columns.purchase, columns.costBasis, columns.override, h.ID)
	if err != nil {
		return fmt.Errorf("failed to update holding: %w", err)
	}
	return requireRow(result, apperrors.ErrHoldingNotFound)
}

// DeleteHolding removes a single holding.
func (s *AccountRepository) DeleteHolding(holdingID string) error {
	result, err := s.db.Exec(`DELETE FROM holding WHERE id = ?`, holdingID)
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}
	return requireRow(result, apperrors.ErrHoldingNotFound)
}

// holdingRow is the flattened column set shared by insert and update.
type holdingRow struct {
	balance   any
	ticker    any
	quantity  any
	purchase  any
	costBasis any
	override  any
}

// holdingColumns flattens the tagged variant into nullable columns.
func holdingColumns(h model.Holding) (holdingRow, error) {
	switch h.Kind {
	case model.HoldingKindBalance:
		if h.Balance == nil {
			return holdingRow{}, apperrors.ErrDataInconsistency
		}
		return holdingRow{balance: h.Balance.Balance}, nil
	case model.HoldingKindSecurity:
		if h.Security == nil {
			return holdingRow{}, apperrors.ErrDataInconsistency
		}
		sec := h.Security
		return holdingRow{
			ticker:    sec.Ticker,
			quantity:  sec.Quantity,
			purchase:  nullableFloat(sec.PurchasePrice),
			costBasis: nullableFloat(sec.CostBasis),
			override:  nullableFloat(sec.PriceOverride),
		}, nil
	default:
		return holdingRow{}, apperrors.ErrDataInconsistency
	}
}

// scanHolding reads one holding row from a multi-row query.
func scanHolding(rows *sql.Rows) (model.Holding, error) {
	var (
		id        string
		kind      string
		balance   sql.NullFloat64
		ticker    sql.NullString
		quantity  sql.NullFloat64
		purchase  sql.NullFloat64
		costBasis sql.NullFloat64
		override  sql.NullFloat64
	)
	if err := rows.Scan(&id, &kind, &balance, &ticker, &quantity, &purchase, &costBasis, &override); err != nil {
		return model.Holding{}, fmt.Errorf("failed to scan holding row: %w", err)
	}
	return buildHolding(id, kind, balance, ticker, quantity, purchase, costBasis, override)
}

// buildHolding reassembles the tagged variant from nullable columns.
// A row whose kind matches neither shape is a data inconsistency.
func buildHolding(id, kind string, balance sql.NullFloat64, ticker sql.NullString, quantity, purchase, costBasis, override sql.NullFloat64) (model.Holding, error) {
	switch model.HoldingKind(kind) {
	case model.HoldingKindBalance:
		return model.NewBalanceHolding(id, balance.Float64), nil
	case model.HoldingKindSecurity:
		if !ticker.Valid {
			return model.Holding{}, apperrors.ErrDataInconsistency
		}
		sec := model.SecurityHolding{
			Ticker:        ticker.String,
			Quantity:      quantity.Float64,
			PurchasePrice: floatPtr(purchase),
			CostBasis:     floatPtr(costBasis),
			PriceOverride: floatPtr(override),
		}
		return model.NewSecurityHolding(id, sec), nil
	default:
		return model.Holding{}, apperrors.ErrDataInconsistency
	}
}
