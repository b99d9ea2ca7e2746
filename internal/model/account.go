package model

// AccountType classifies an account and determines how its holdings are
// valued: security accounts hold ticker positions, balance accounts hold a
// directly-entered dollar amount.
type AccountType string

const (
	AccountTypeCash       AccountType = "Cash"
	AccountTypeRetirement AccountType = "Retirement"
	AccountTypeCrypto     AccountType = "Crypto"
	AccountTypeDebt       AccountType = "Debt"
)

// AccountTypes lists the closed set of account types in display order.
var AccountTypes = []AccountType{
	AccountTypeCash,
	AccountTypeRetirement,
	AccountTypeCrypto,
	AccountTypeDebt,
}

// IsValid reports whether t is one of the four known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeCash, AccountTypeRetirement, AccountTypeCrypto, AccountTypeDebt:
		return true
	}
	return false
}

// IsSecurity reports whether holdings of this account type are valued by
// ticker, quantity and price rather than a stored balance.
func (t AccountType) IsSecurity() bool {
	return t == AccountTypeRetirement || t == AccountTypeCrypto
}

// IsDebt reports whether balances of this account type subtract from net worth.
func (t AccountType) IsDebt() bool {
	return t == AccountTypeDebt
}

// Account represents a financial account and the holdings it owns.
// Holdings are owned exclusively by their account and kept in user order.
type Account struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        AccountType `json:"type"`
	Institution string      `json:"institution,omitempty"`
	Holdings    []Holding   `json:"holdings"`
}
