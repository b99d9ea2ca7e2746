package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the production goose migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Account table
		CREATE TABLE account (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			type VARCHAR(16) NOT NULL CHECK (type IN ('Cash', 'Retirement', 'Crypto', 'Debt')),
			institution VARCHAR(100),
			position INTEGER NOT NULL DEFAULT 0
		);

		-- Holding table (tagged variant: balance or security columns are set)
		CREATE TABLE holding (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			account_id VARCHAR(36) NOT NULL REFERENCES account(id) ON DELETE CASCADE,
			kind VARCHAR(16) NOT NULL CHECK (kind IN ('balance', 'security')),
			balance REAL,
			ticker VARCHAR(16),
			quantity REAL,
			purchase_price REAL,
			cost_basis REAL,
			price_override REAL,
			position INTEGER NOT NULL DEFAULT 0
		);

		-- Per-account forecast settings table
		CREATE TABLE forecast_settings (
			account_id VARCHAR(36) NOT NULL PRIMARY KEY REFERENCES account(id) ON DELETE CASCADE,
			monthly_contribution REAL NOT NULL DEFAULT 0,
			annual_return_percent REAL NOT NULL DEFAULT 0,
			contribution_stop_date VARCHAR(10),
			loan_origination_date VARCHAR(10),
			term_months INTEGER
		);

		-- Global settings singleton table
		CREATE TABLE global_settings (
			id INTEGER NOT NULL PRIMARY KEY CHECK (id = 1),
			horizon_years INTEGER NOT NULL DEFAULT 30,
			annual_expenses REAL NOT NULL DEFAULT 0,
			annual_expense_growth_percent REAL NOT NULL DEFAULT 3
		);

		-- Snapshot table
		CREATE TABLE snapshot (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			date VARCHAR(10) NOT NULL,
			total_net_worth REAL NOT NULL
		);

		-- Snapshot account line table
		CREATE TABLE snapshot_account (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			snapshot_id VARCHAR(36) NOT NULL REFERENCES snapshot(id) ON DELETE CASCADE,
			account_id VARCHAR(36) NOT NULL,
			name VARCHAR(100) NOT NULL,
			balance REAL NOT NULL
		);

		-- Credential singleton table
		CREATE TABLE credential (
			id INTEGER NOT NULL PRIMARY KEY CHECK (id = 1),
			token BLOB NOT NULL,
			updated_at VARCHAR(32) NOT NULL
		);

		-- Indexes for performance
		CREATE INDEX idx_holding_account ON holding(account_id);
		CREATE INDEX idx_snapshot_date ON snapshot(date);
		CREATE INDEX idx_snapshot_account_snapshot ON snapshot_account(snapshot_id);
	`

	_, err := db.Exec(schema)
	return err
}

// CleanDatabase truncates all tables in dependency order.
// Useful for reusing the same database across multiple tests.
func CleanDatabase(t *testing.T, db *sql.DB) {
	t.Helper()

	// Order matters: delete children before parents due to foreign keys
	tables := []string{
		"snapshot_account",
		"snapshot",
		"forecast_settings",
		"holding",
		"account",
		"global_settings",
		"credential",
	}

	for _, table := range tables {
		query := "DELETE FROM " + table
		if _, err := db.Exec(query); err != nil {
			t.Fatalf("Failed to clean table %s: %v", table, err)
		}
	}
}

// CountRows returns the number of rows in a table.
// Useful for assertions in tests.
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	query := "SELECT COUNT(*) FROM " + table
	err := db.QueryRow(query).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}

	return count
}

// AssertRowCount asserts that a table has the expected number of rows.
func AssertRowCount(t *testing.T, db *sql.DB, table string, expected int) {
	t.Helper()

	actual := CountRows(t, db, table)
	if actual != expected {
		t.Errorf("Expected %d rows in %s, got %d", expected, table, actual)
	}
}
