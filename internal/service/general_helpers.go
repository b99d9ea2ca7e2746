package service

import (
	"math"

	"github.com/horizon60/Horizon60-Backend/internal/apperrors"
	"github.com/horizon60/Horizon60-Backend/internal/model"
)

// requireSecurityAccount rejects holdings whose shape does not fit the
// account's valuation mode.
func requireSecurityAccount(account model.Account) error {
	if !account.Type.IsSecurity() {
		return apperrors.ErrHoldingKindMismatch
	}
	return nil
}

func requireBalanceAccount(account model.Account) error {
	if account.Type.IsSecurity() {
		return apperrors.ErrHoldingKindMismatch
	}
	return nil
}

// round2 rounds a dollar amount to two decimal places for API output.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round2Ptr rounds an optional amount, preserving nil.
func round2Ptr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := round2(*v)
	return &r
}
