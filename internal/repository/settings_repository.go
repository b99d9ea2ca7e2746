package repository

import (
	"database/sql"
	"fmt"

	"github.com/horizon60/Horizon60-Backend/internal/apperrors"
	"github.com/horizon60/Horizon60-Backend/internal/model"
)

// SettingsRepository provides data access methods for the per-account
// forecast settings and the global settings singleton row.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SettingsRepository with the provided database connection.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetForecastSettings retrieves the forecast settings for one account.
func (s *SettingsRepository) GetForecastSettings(accountID string) (model.ForecastSettings, error) {
	var (
		fs       model.ForecastSettings
		stopDate sql.NullString
		loanDate sql.NullString
		term     sql.NullInt64
	)
	err := s.db.QueryRow(`
		SELECT account_id, monthly_contribution, annual_return_percent,
		       contribution_stop_date, loan_origination_date, term_months
		FROM forecast_settings
		WHERE account_id = ?
	`, accountID).Scan(&fs.AccountID, &fs.MonthlyContribution, &fs.AnnualReturnPercent, &stopDate, &loanDate, &term)
	if err == sql.ErrNoRows {
		return model.ForecastSettings{}, apperrors.ErrForecastSettingsNotFound
	}
	if err != nil {
		return model.ForecastSettings{}, fmt.Errorf("failed to query forecast settings: %w", err)
	}
	fs.ContributionStopDate = stopDate.String
	fs.LoanOriginationDate = loanDate.String
	fs.TermMonths = int(term.Int64)
	return fs, nil
}

// GetAllForecastSettings retrieves forecast settings keyed by account ID.
func (s *SettingsRepository) GetAllForecastSettings() (map[string]model.ForecastSettings, error) {
	rows, err := s.db.Query(`
		SELECT account_id, monthly_contribution, annual_return_percent,
		       contribution_stop_date, loan_origination_date, term_months
		FROM forecast_settings
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query forecast settings table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]model.ForecastSettings)
	for rows.Next() {
		var (
			fs       model.ForecastSettings
			stopDate sql.NullString
			loanDate sql.NullString
			term     sql.NullInt64
		)
		if err := rows.Scan(&fs.AccountID, &fs.MonthlyContribution, &fs.AnnualReturnPercent, &stopDate, &loanDate, &term); err != nil {
			return nil, fmt.Errorf("failed to scan forecast settings row: %w", err)
		}
		fs.ContributionStopDate = stopDate.String
		fs.LoanOriginationDate = loanDate.String
		fs.TermMonths = int(term.Int64)
		out[fs.AccountID] = fs
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating forecast settings table: %w", err)
	}
	return out, nil
}

// SaveForecastSettings inserts or replaces an account's forecast settings.
func (s *SettingsRepository) SaveForecastSettings(fs model.ForecastSettings) error {
	_, err := s.db.Exec(`
		INSERT INTO forecast_settings
			(account_id, monthly_contribution, annual_return_percent, contribution_stop_date, loan_origination_date, term_months)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(account_id) DO UPDATE SET
			monthly_contribution = excluded.monthly_contribution,
			annual_return_percent = excluded.annual_return_percent,
			contribution_stop_date = excluded.contribution_stop_date,
			loan_origination_date = excluded.loan_origination_date,
			term_months = excluded.term_months
	`, fs.AccountID, fs.MonthlyContribution, fs.AnnualReturnPercent,
		nullIfEmpty(fs.ContributionStopDate), nullIfEmpty(fs.LoanOriginationDate), nullableInt(fs.TermMonths))
	if err != nil {
		return fmt.Errorf("failed to save forecast settings: %w", err)
	}
	return nil
}

// GetGlobalSettings retrieves the global settings row, falling back to
// defaults when the user has never saved any.
func (s *SettingsRepository) GetGlobalSettings() (model.GlobalSettings, error) {
	var gs model.GlobalSettings
	err := s.db.QueryRow(`
		SELECT horizon_years, annual_expenses, annual_expense_growth_percent
		FROM global_settings
		WHERE id = 1
	`).Scan(&gs.HorizonYears, &gs.AnnualExpenses, &gs.AnnualExpenseGrowthPercent)
	if err == sql.ErrNoRows {
		return model.DefaultGlobalSettings(), nil
	}
	if err != nil {
		return model.GlobalSettings{}, fmt.Errorf("failed to query global settings: %w", err)
	}
	return gs, nil
}

// SaveGlobalSettings inserts or replaces the global settings row.
func (s *SettingsRepository) SaveGlobalSettings(gs model.GlobalSettings) error {
	_, err := s.db.Exec(`
		INSERT INTO global_settings (id, horizon_years, annual_expenses, annual_expense_growth_percent)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			horizon_years = excluded.horizon_years,
			annual_expenses = excluded.annual_expenses,
			annual_expense_growth_percent = excluded.annual_expense_growth_percent
	`, gs.HorizonYears, gs.AnnualExpenses, gs.AnnualExpenseGrowthPercent)
	if err != nil {
		return fmt.Errorf("failed to save global settings: %w", err)
	}
	return nil
}

// nullableInt stores zero as NULL for optional integer columns.
func nullableInt(n int) any {
	if n == 0 {
		return nil
	}
	return n
}
