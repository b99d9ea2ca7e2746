package validation

import (
	"strings"

	"github.com/horizon60/Horizon60-Backend/internal/api/request"
	"github.com/horizon60/Horizon60-Backend/internal/model"
)

func ValidateCreateAccount(req request.CreateAccountRequest) error {
	errors := make(map[string]string)

	// Required field
	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if !model.AccountType(req.Type).IsValid() {
		errors["type"] = "type must be one of Cash, Retirement, Crypto, Debt"
	}

	// Optional but has constraints
	if len(req.Institution) > 100 {
		errors["institution"] = "institution must be 100 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateAccount(req request.UpdateAccountRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name cannot be empty"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if len(req.Institution) > 100 {
		errors["institution"] = "institution must be 100 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
