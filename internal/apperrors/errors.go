package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrAccountNotFound indicates that an account with the given ID does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrHoldingNotFound indicates that a holding with the given ID does not exist.
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrSnapshotNotFound indicates that a snapshot with the given ID does not exist.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrForecastSettingsNotFound indicates no forecast settings saved for an account.
	ErrForecastSettingsNotFound = errors.New("forecast settings not found")

	// ErrCredentialNotFound indicates no market-data API credential has been stored.
	ErrCredentialNotFound = errors.New("market data credential not found")

	// ErrQuoteNotFound indicates a price lookup returned no usable quote.
	ErrQuoteNotFound = errors.New("quote not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidAccountType indicates a type outside Cash/Retirement/Crypto/Debt.
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrHoldingKindMismatch indicates a holding shape that does not match the
	// account type (balance holding on a security account or vice versa).
	ErrHoldingKindMismatch = errors.New("holding kind does not match account type")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrEmptyTicker indicates a security holding without a ticker symbol.
	ErrEmptyTicker = errors.New("ticker cannot be empty")

	// ErrNonPositiveQuantity indicates a security holding with quantity <= 0.
	ErrNonPositiveQuantity = errors.New("quantity must be greater than zero")

	// ErrInvalidDate indicates a date that does not parse as YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date format")
)

// Data integrity errors represent inconsistencies or corruption in the data.
var (
	// ErrDataInconsistency indicates that the data is in an inconsistent state
	// (e.g., a holding row whose kind column matches neither shape).
	ErrDataInconsistency = errors.New("data inconsistency detected")

	// ErrMissingRequiredField indicates that a required field is missing or empty.
	ErrMissingRequiredField = errors.New("missing required field")
)
