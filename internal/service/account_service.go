package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/horizon60/Horizon60-Backend/internal/importer"
	"github.com/horizon60/Horizon60-Backend/internal/model"
	"github.com/horizon60/Horizon60-Backend/internal/repository"
)

// AccountService handles account and holding lifecycle operations. Every
// mutation persists synchronously before returning; there is no write
// batching, so a completed request is a durable one.
type AccountService struct {
	accountRepo *repository.AccountRepository
}

// NewAccountService creates a new AccountService
func NewAccountService(accountRepo *repository.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// GetAllAccounts returns every account with its holdings, in user order.
func (s *AccountService) GetAllAccounts() ([]model.Account, error) {
	return s.accountRepo.GetAccounts()
}

// GetAccount returns a single account with its holdings.
func (s *AccountService) GetAccount(accountID string) (model.Account, error) {
	return s.accountRepo.GetAccountOnID(accountID)
}

// CreateAccount creates an account with a fresh ID. The caller validates the
// input first; the account type is immutable once assigned.
func (s *AccountService) CreateAccount(name string, acctType model.AccountType, institution string) (model.Account, error) {
	account := model.Account{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(name),
		Type:        acctType,
		Institution: strings.TrimSpace(institution),
		Holdings:    []model.Holding{},
	}
	if err := s.accountRepo.CreateAccount(account); err != nil {
		return model.Account{}, err
	}
	return account, nil
}

// UpdateAccount renames an account or changes its institution.
func (s *AccountService) UpdateAccount(accountID, name, institution string) (model.Account, error) {
	account, err := s.accountRepo.GetAccountOnID(accountID)
	if err != nil {
		return model.Account{}, err
	}
	account.Name = strings.TrimSpace(name)
	account.Institution = strings.TrimSpace(institution)
	if err := s.accountRepo.UpdateAccount(account); err != nil {
		return model.Account{}, err
	}
	return account, nil
}

// DeleteAccount removes an account and everything it owns.
func (s *AccountService) DeleteAccount(accountID string) error {
	return s.accountRepo.DeleteAccount(accountID)
}

// AddBalanceHolding appends a balance holding to a Cash or Debt account.
func (s *AccountService) AddBalanceHolding(accountID string, balance float64) (model.Holding, error) {
	account, err := s.accountRepo.GetAccountOnID(accountID)
	if err != nil {
		return model.Holding{}, err
	}
	if err := requireBalanceAccount(account); err != nil {
		return model.Holding{}, err
	}

	holding := model.NewBalanceHolding(uuid.New().String(), balance)
	if err := s.accountRepo.CreateHolding(accountID, holding); err != nil {
		return model.Holding{}, err
	}
	return holding, nil
}

// AddSecurityHolding appends a ticker position to a Retirement or Crypto
// account. The ticker is stored uppercased.
func (s *AccountService) AddSecurityHolding(accountID string, sec model.SecurityHolding) (model.Holding, error) {
	account, err := s.accountRepo.GetAccountOnID(accountID)
	if err != nil {
		return model.Holding{}, err
	}
	if err := requireSecurityAccount(account); err != nil {
		return model.Holding{}, err
	}

	sec.Ticker = strings.ToUpper(strings.TrimSpace(sec.Ticker))
	holding := model.NewSecurityHolding(uuid.New().String(), sec)
	if err := s.accountRepo.CreateHolding(accountID, holding); err != nil {
		return model.Holding{}, err
	}
	return holding, nil
}

// UpdateBalanceHolding replaces a balance holding's amount.
func (s *AccountService) UpdateBalanceHolding(holdingID string, balance float64) (model.Holding, error) {
	existing, accountID, err := s.accountRepo.GetHoldingOnID(holdingID)
	if err != nil {
		return model.Holding{}, err
	}
	account, err := s.accountRepo.GetAccountOnID(accountID)
	if err != nil {
		return model.Holding{}, err
	}
	if err := requireBalanceAccount(account); err != nil {
		return model.Holding{}, err
	}

	holding := model.NewBalanceHolding(existing.ID, balance)
	if err := s.accountRepo.UpdateHolding(holding); err != nil {
		return model.Holding{}, err
	}
	return holding, nil
}

// UpdateSecurityHolding replaces a security holding's position fields.
func (s *AccountService) UpdateSecurityHolding(holdingID string, sec model.SecurityHolding) (model.Holding, error) {
	existing, accountID, err := s.accountRepo.GetHoldingOnID(holdingID)
	if err != nil {
		return model.Holding{}, err
	}
	account, err := s.accountRepo.GetAccountOnID(accountID)
	if err != nil {
		return model.Holding{}, err
	}
	if err := requireSecurityAccount(account); err != nil {
		return model.Holding{}, err
	}

	sec.Ticker = strings.ToUpper(strings.TrimSpace(sec.Ticker))
	holding := model.NewSecurityHolding(existing.ID, sec)
	if err := s.accountRepo.UpdateHolding(holding); err != nil {
		return model.Holding{}, err
	}
	return holding, nil
}

// DeleteHolding removes a single holding.
func (s *AccountService) DeleteHolding(holdingID string) error {
	return s.accountRepo.DeleteHolding(holdingID)
}

// ImportHoldings bulk-loads security holdings from CSV into a security
// account. Bad rows are skipped, not errors; the skip count comes back to
// the caller for display.
func (s *AccountService) ImportHoldings(accountID string, csvData io.Reader) (importer.Result, error) {
	account, err := s.accountRepo.GetAccountOnID(accountID)
	if err != nil {
		return importer.Result{}, err
	}
	if err := requireSecurityAccount(account); err != nil {
		return importer.Result{}, err
	}

	result, err := importer.ParseHoldings(csvData)
	if err != nil {
		return importer.Result{}, fmt.Errorf("failed to parse import data: %w", err)
	}

	for _, holding := range result.Holdings {
		if err := s.accountRepo.CreateHolding(accountID, holding); err != nil {
			return importer.Result{}, err
		}
	}
	return result, nil
}
