package service

import (
	"errors"
	"time"

	"github.com/horizon60/Horizon60-Backend/internal/apperrors"
	"github.com/horizon60/Horizon60-Backend/internal/forecast"
	"github.com/horizon60/Horizon60-Backend/internal/model"
	"github.com/horizon60/Horizon60-Backend/internal/prices"
	"github.com/horizon60/Horizon60-Backend/internal/repository"
	"github.com/horizon60/Horizon60-Backend/internal/valuation"
)

// ProjectionService composes current balances, forecast settings, and the
// projection engine into portfolio projections. Results are always computed
// fresh: balances move with live prices and settings can change between
// calls, so nothing here is cached.
type ProjectionService struct {
	accountRepo  *repository.AccountRepository
	settingsRepo *repository.SettingsRepository
	cache        *prices.Cache
}

// NewProjectionService creates a new ProjectionService
func NewProjectionService(
	accountRepo *repository.AccountRepository,
	settingsRepo *repository.SettingsRepository,
	cache *prices.Cache,
) *ProjectionService {
	return &ProjectionService{
		accountRepo:  accountRepo,
		settingsRepo: settingsRepo,
		cache:        cache,
	}
}

// GetPortfolioPlan projects every account over the configured horizon and
// folds the results into a portfolio series. Accounts without saved forecast
// settings project flat (no contributions, zero growth).
func (s *ProjectionService) GetPortfolioPlan() (forecast.PortfolioPlan, error) {
	return s.getPortfolioPlanAt(time.Now())
}

func (s *ProjectionService) getPortfolioPlanAt(now time.Time) (forecast.PortfolioPlan, error) {
	accounts, err := s.accountRepo.GetAccounts()
	if err != nil {
		return forecast.PortfolioPlan{}, err
	}
	settings, err := s.settingsRepo.GetAllForecastSettings()
	if err != nil {
		return forecast.PortfolioPlan{}, err
	}
	global, err := s.settingsRepo.GetGlobalSettings()
	if err != nil {
		return forecast.PortfolioPlan{}, err
	}

	plans := make([]forecast.AccountPlan, 0, len(accounts))
	for _, acct := range accounts {
		balance := valuation.AccountBalance(acct, s.cache)
		plans = append(plans, forecast.ProjectAccount(
			acct.ID, acct.Name, acct.Type, balance,
			settings[acct.ID], global.HorizonYears, now,
		))
	}
	return forecast.CombinePlans(plans, global), nil
}

// GetAccountPlan projects a single account.
func (s *ProjectionService) GetAccountPlan(accountID string) (forecast.AccountPlan, error) {
	acct, err := s.accountRepo.GetAccountOnID(accountID)
	if err != nil {
		return forecast.AccountPlan{}, err
	}
	settings, err := s.forecastSettingsOrZero(accountID)
	if err != nil {
		return forecast.AccountPlan{}, err
	}
	global, err := s.settingsRepo.GetGlobalSettings()
	if err != nil {
		return forecast.AccountPlan{}, err
	}

	balance := valuation.AccountBalance(acct, s.cache)
	return forecast.ProjectAccount(acct.ID, acct.Name, acct.Type, balance, settings, global.HorizonYears, time.Now()), nil
}

// forecastSettingsOrZero treats unsaved settings as a flat projection.
func (s *ProjectionService) forecastSettingsOrZero(accountID string) (model.ForecastSettings, error) {
	settings, err := s.settingsRepo.GetForecastSettings(accountID)
	if err == nil {
		return settings, nil
	}
	if errors.Is(err, apperrors.ErrForecastSettingsNotFound) {
		return model.ForecastSettings{AccountID: accountID}, nil
	}
	return model.ForecastSettings{}, err
}
