package service

import (
	"errors"

	"github.com/horizon60/Horizon60-Backend/internal/apperrors"
	"github.com/horizon60/Horizon60-Backend/internal/model"
	"github.com/horizon60/Horizon60-Backend/internal/repository"
)

// SettingsService manages forecast settings, global settings, and the
// market-data credential.
type SettingsService struct {
	settingsRepo   *repository.SettingsRepository
	accountRepo    *repository.AccountRepository
	credentialRepo *repository.CredentialRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(
	settingsRepo *repository.SettingsRepository,
	accountRepo *repository.AccountRepository,
	credentialRepo *repository.CredentialRepository,
) *SettingsService {
	return &SettingsService{
		settingsRepo:   settingsRepo,
		accountRepo:    accountRepo,
		credentialRepo: credentialRepo,
	}
}

// GetForecastSettings returns an account's saved forecast settings, or zero
// settings when none are saved yet.
func (s *SettingsService) GetForecastSettings(accountID string) (model.ForecastSettings, error) {
	if _, err := s.accountRepo.GetAccountOnID(accountID); err != nil {
		return model.ForecastSettings{}, err
	}
	settings, err := s.settingsRepo.GetForecastSettings(accountID)
	if errors.Is(err, apperrors.ErrForecastSettingsNotFound) {
		return model.ForecastSettings{AccountID: accountID}, nil
	}
	return settings, err
}

// SaveForecastSettings stores an account's forecast settings.
func (s *SettingsService) SaveForecastSettings(settings model.ForecastSettings) error {
	if _, err := s.accountRepo.GetAccountOnID(settings.AccountID); err != nil {
		return err
	}
	return s.settingsRepo.SaveForecastSettings(settings)
}

// GetGlobalSettings returns the portfolio-wide settings.
func (s *SettingsService) GetGlobalSettings() (model.GlobalSettings, error) {
	return s.settingsRepo.GetGlobalSettings()
}

// SaveGlobalSettings stores the portfolio-wide settings.
func (s *SettingsService) SaveGlobalSettings(settings model.GlobalSettings) error {
	return s.settingsRepo.SaveGlobalSettings(settings)
}

// SaveCredential stores the market-data API token.
func (s *SettingsService) SaveCredential(token string) error {
	return s.credentialRepo.SaveToken(token)
}

// HasCredential reports whether a market-data API token is configured, so
// the client can gate the securities sync action.
func (s *SettingsService) HasCredential() bool {
	return s.credentialRepo.HasToken()
}

// DeleteCredential removes the stored market-data API token.
func (s *SettingsService) DeleteCredential() error {
	return s.credentialRepo.DeleteToken()
}
