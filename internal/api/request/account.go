package request

// CreateAccountRequest creates a new account. Type is one of
// Cash/Retirement/Crypto/Debt and is immutable after creation.
type CreateAccountRequest struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Institution string `json:"institution"`
}

// UpdateAccountRequest renames an account or changes its institution.
type UpdateAccountRequest struct {
	Name        string `json:"name"`
	Institution string `json:"institution"`
}
