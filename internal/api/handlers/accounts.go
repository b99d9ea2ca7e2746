package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/horizon60/Horizon60-Backend/internal/api/request"
	"github.com/horizon60/Horizon60-Backend/internal/model"
	"github.com/horizon60/Horizon60-Backend/internal/service"
	"github.com/horizon60/Horizon60-Backend/internal/validation"
)

// AccountHandler handles account and holding HTTP requests
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// Accounts returns every account with its holdings.
func (h *AccountHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountService.GetAllAccounts()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve accounts", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, accounts)
}

// Account returns a single account.
func (h *AccountHandler) Account(w http.ResponseWriter, r *http.Request) {
	account, err := h.accountService.GetAccount(chi.URLParam(r, "uuid"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, account)
}

// CreateAccount creates a new account.
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAccountRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validation.ValidateCreateAccount(req); err != nil {
		respondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	account, err := h.accountService.CreateAccount(req.Name, model.AccountType(req.Type), req.Institution)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, account)
}

// UpdateAccount renames an account or changes its institution.
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateAccountRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validation.ValidateUpdateAccount(req); err != nil {
		respondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	account, err := h.accountService.UpdateAccount(chi.URLParam(r, "uuid"), req.Name, req.Institution)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, account)
}

// DeleteAccount removes an account and its holdings.
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.accountService.DeleteAccount(chi.URLParam(r, "uuid")); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// CreateHolding appends a holding to an account. The account's type decides
// which request fields apply.
func (h *AccountHandler) CreateHolding(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "uuid")

	account, err := h.accountService.GetAccount(accountID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	var req request.HoldingRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validation.ValidateHolding(req, account.Type); err != nil {
		respondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	var holding model.Holding
	if account.Type.IsSecurity() {
		holding, err = h.accountService.AddSecurityHolding(accountID, securityFromRequest(req))
	} else {
		holding, err = h.accountService.AddBalanceHolding(accountID, *req.Balance)
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, holding)
}

// UpdateHolding replaces a holding's value fields.
func (h *AccountHandler) UpdateHolding(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "uuid")
	holdingID := chi.URLParam(r, "holdingId")

	account, err := h.accountService.GetAccount(accountID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	var req request.HoldingRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validation.ValidateHolding(req, account.Type); err != nil {
		respondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	var holding model.Holding
	if account.Type.IsSecurity() {
		holding, err = h.accountService.UpdateSecurityHolding(holdingID, securityFromRequest(req))
	} else {
		holding, err = h.accountService.UpdateBalanceHolding(holdingID, *req.Balance)
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, holding)
}

// DeleteHolding removes a single holding.
func (h *AccountHandler) DeleteHolding(w http.ResponseWriter, r *http.Request) {
	if err := h.accountService.DeleteHolding(chi.URLParam(r, "holdingId")); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// ImportHoldings bulk-loads holdings from a CSV request body.
func (h *AccountHandler) ImportHoldings(w http.ResponseWriter, r *http.Request) {
	result, err := h.accountService.ImportHoldings(chi.URLParam(r, "uuid"), r.Body)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func securityFromRequest(req request.HoldingRequest) model.SecurityHolding {
	return model.SecurityHolding{
		Ticker:        req.Ticker,
		Quantity:      *req.Quantity,
		PurchasePrice: req.PurchasePrice,
		CostBasis:     req.CostBasis,
		PriceOverride: req.PriceOverride,
	}
}
