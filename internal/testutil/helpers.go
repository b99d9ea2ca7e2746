package testutil

import (
	"database/sql"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/horizon60/Horizon60-Backend/internal/marketdata"
	"github.com/horizon60/Horizon60-Backend/internal/prices"
	"github.com/horizon60/Horizon60-Backend/internal/repository"
	"github.com/horizon60/Horizon60-Backend/internal/service"
)

func NewTestAccountService(t *testing.T, db *sql.DB) *service.AccountService {
	t.Helper()

	accountRepo := repository.NewAccountRepository(db)

	return service.NewAccountService(accountRepo)
}

func NewTestNetWorthService(t *testing.T, db *sql.DB, cache *prices.Cache) *service.NetWorthService {
	t.Helper()

	accountRepo := repository.NewAccountRepository(db)
	if cache == nil {
		cache = prices.NewCache()
	}

	return service.NewNetWorthService(accountRepo, cache)
}

func NewTestProjectionService(t *testing.T, db *sql.DB, cache *prices.Cache) *service.ProjectionService {
	t.Helper()

	accountRepo := repository.NewAccountRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	if cache == nil {
		cache = prices.NewCache()
	}

	return service.NewProjectionService(accountRepo, settingsRepo, cache)
}

// NewTestPriceService creates a PriceService with mock market-data clients
// and no inter-request delay.
func NewTestPriceService(t *testing.T, db *sql.DB, cache *prices.Cache, stock, crypto marketdata.Client) *service.PriceService {
	t.Helper()

	accountRepo := repository.NewAccountRepository(db)
	if cache == nil {
		cache = prices.NewCache()
	}

	return service.NewPriceService(accountRepo, cache, stock, crypto, 0)
}

func NewTestSnapshotService(t *testing.T, db *sql.DB, cache *prices.Cache) *service.SnapshotService {
	t.Helper()

	snapshotRepo := repository.NewSnapshotRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	if cache == nil {
		cache = prices.NewCache()
	}

	return service.NewSnapshotService(snapshotRepo, accountRepo, cache)
}

func NewTestSettingsService(t *testing.T, db *sql.DB) *service.SettingsService {
	t.Helper()

	settingsRepo := repository.NewSettingsRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	credentialRepo, err := repository.NewCredentialRepository(db, "")
	if err != nil {
		t.Fatalf("Failed to create test credential repository: %v", err)
	}

	return service.NewSettingsService(settingsRepo, accountRepo, credentialRepo)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeTicker generates a unique ticker symbol for testing.
//
// Example usage:
//
//	ticker := testutil.MakeTicker("VTI")
//	// Returns: "VTI1A2B"
func MakeTicker(base string) string {
	if base == "" {
		base = "TST"
	}
	return base + randomAlphanumeric(4)
}

// MakeAccountName generates a unique account name for testing.
//
// Example usage:
//
//	name := testutil.MakeAccountName("Savings")
//	// Returns: "Savings ABC123"
func MakeAccountName(base string) string {
	if base == "" {
		base = "Account"
	}
	return base + " " + randomAlphanumeric(6)
}

// MakeDate formats a time as the YYYY-MM-DD wire format used throughout.
func MakeDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
