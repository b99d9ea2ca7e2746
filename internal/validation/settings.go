package validation

import (
	"strings"

	"github.com/horizon60/Horizon60-Backend/internal/api/request"
)

func ValidateForecastSettings(req request.ForecastSettingsRequest) error {
	errors := make(map[string]string)

	if req.MonthlyContribution < 0 {
		errors["monthlyContribution"] = "monthly contribution cannot be negative"
	}
	if req.AnnualReturnPercent < -100 {
		errors["annualReturnPercent"] = "annual return cannot be below -100"
	}
	if req.ContributionStopDate != "" {
		if err := ValidateDate(req.ContributionStopDate); err != nil {
			errors["contributionStopDate"] = "must be a YYYY-MM-DD date"
		}
	}
	if req.LoanOriginationDate != "" {
		if err := ValidateDate(req.LoanOriginationDate); err != nil {
			errors["loanOriginationDate"] = "must be a YYYY-MM-DD date"
		}
	}
	if req.TermMonths < 0 {
		errors["termMonths"] = "term months cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateGlobalSettings(req request.GlobalSettingsRequest) error {
	errors := make(map[string]string)

	if req.HorizonYears <= 0 {
		errors["horizonYears"] = "horizon years must be greater than zero"
	} else if req.HorizonYears > 100 {
		errors["horizonYears"] = "horizon years must be 100 or less"
	}
	if req.AnnualExpenses < 0 {
		errors["annualExpenses"] = "annual expenses cannot be negative"
	}
	if req.AnnualExpenseGrowthPercent < -100 {
		errors["annualExpenseGrowthPercent"] = "expense growth cannot be below -100"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateCredential(req request.CredentialRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Token) == "" {
		errors["token"] = "token is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
