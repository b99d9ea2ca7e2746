package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/horizon60/Horizon60-Backend/internal/api/request"
	"github.com/horizon60/Horizon60-Backend/internal/model"
	"github.com/horizon60/Horizon60-Backend/internal/service"
	"github.com/horizon60/Horizon60-Backend/internal/validation"
)

// SettingsHandler handles forecast settings, global settings, and
// market-data credential HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// ForecastSettings returns an account's forecast settings.
func (h *SettingsHandler) ForecastSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.GetForecastSettings(chi.URLParam(r, "uuid"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

// SaveForecastSettings stores an account's forecast settings.
func (h *SettingsHandler) SaveForecastSettings(w http.ResponseWriter, r *http.Request) {
	var req request.ForecastSettingsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validation.ValidateForecastSettings(req); err != nil {
		respondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	settings := model.ForecastSettings{
		AccountID:            chi.URLParam(r, "uuid"),
		MonthlyContribution:  req.MonthlyContribution,
		AnnualReturnPercent:  req.AnnualReturnPercent,
		ContributionStopDate: req.ContributionStopDate,
		LoanOriginationDate:  req.LoanOriginationDate,
		TermMonths:           req.TermMonths,
	}
	if err := h.settingsService.SaveForecastSettings(settings); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

// GlobalSettings returns the portfolio-wide settings.
func (h *SettingsHandler) GlobalSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.GetGlobalSettings()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load settings", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

// SaveGlobalSettings stores the portfolio-wide settings.
func (h *SettingsHandler) SaveGlobalSettings(w http.ResponseWriter, r *http.Request) {
	var req request.GlobalSettingsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validation.ValidateGlobalSettings(req); err != nil {
		respondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	settings := model.GlobalSettings{
		HorizonYears:               req.HorizonYears,
		AnnualExpenses:             req.AnnualExpenses,
		AnnualExpenseGrowthPercent: req.AnnualExpenseGrowthPercent,
	}
	if err := h.settingsService.SaveGlobalSettings(settings); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save settings", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

// CredentialStatusResponse reports whether a market-data API token is stored.
type CredentialStatusResponse struct {
	Configured bool `json:"configured"`
}

// CredentialStatus reports whether a market-data API token is configured.
func (h *SettingsHandler) CredentialStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, CredentialStatusResponse{Configured: h.settingsService.HasCredential()})
}

// SaveCredential stores the market-data API token.
func (h *SettingsHandler) SaveCredential(w http.ResponseWriter, r *http.Request) {
	var req request.CredentialRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validation.ValidateCredential(req); err != nil {
		respondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	if err := h.settingsService.SaveCredential(req.Token); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save credential", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, CredentialStatusResponse{Configured: true})
}

// DeleteCredential removes the stored market-data API token.
func (h *SettingsHandler) DeleteCredential(w http.ResponseWriter, r *http.Request) {
	if err := h.settingsService.DeleteCredential(); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete credential", err.Error())
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
