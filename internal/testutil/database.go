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
		"PRAGMA timezone = 'UTC'",
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
// Schema is synchronized with the production migrations, triggers included.
//
//nolint:funlen // Database schema DDL
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Investor table
		CREATE TABLE investor (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			client_id VARCHAR(20) UNIQUE,
			full_name VARCHAR(100) NOT NULL,
			email VARCHAR(255),
			phone VARCHAR(20),
			address VARCHAR(200),
			investment_amount FLOAT DEFAULT 0 NOT NULL,
			promised_return FLOAT DEFAULT 0 NOT NULL,
			status VARCHAR(15) DEFAULT 'active' NOT NULL,
			waiting_period_start DATETIME,
			joining_date DATE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP NOT NULL
		);

		CREATE TABLE client_id_seq (
			seq INTEGER PRIMARY KEY AUTOINCREMENT
		);

		CREATE TRIGGER trg_investor_client_id
		AFTER INSERT ON investor
		WHEN NEW.client_id IS NULL
		BEGIN
			INSERT INTO client_id_seq (seq) VALUES (NULL);
			UPDATE investor
			SET client_id = 'S91-INV-' || printf('%03d', last_insert_rowid())
			WHERE id = NEW.id;
		END;

		-- Investment table
		CREATE TABLE investment (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			investor_id VARCHAR(36) NOT NULL,
			amount FLOAT NOT NULL,
			invested_date DATE NOT NULL,
			promised_return FLOAT,
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP NOT NULL,
			FOREIGN KEY(investor_id) REFERENCES investor(id) ON DELETE CASCADE
		);

		CREATE TRIGGER trg_investment_running_total
		AFTER INSERT ON investment
		BEGIN
			UPDATE investor
			SET investment_amount = investment_amount + NEW.amount,
			    updated_at = CURRENT_TIMESTAMP
			WHERE id = NEW.investor_id;
		END;

		-- Waiting period entry table
		CREATE TABLE waiting_period_entry (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			investor_id VARCHAR(36) NOT NULL,
			amount FLOAT NOT NULL,
			initialized_date DATETIME NOT NULL,
			delivered BOOLEAN DEFAULT FALSE NOT NULL,
			delivered_at DATETIME,
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP NOT NULL,
			FOREIGN KEY(investor_id) REFERENCES investor(id) ON DELETE CASCADE
		);

		-- Monthly return table
		CREATE TABLE monthly_return (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			investor_id VARCHAR(36) NOT NULL,
			month VARCHAR(7) NOT NULL,
			amount FLOAT NOT NULL,
			return_percent FLOAT NOT NULL,
			status VARCHAR(10) DEFAULT 'pending' NOT NULL,
			paid_at DATETIME,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP NOT NULL,
			FOREIGN KEY(investor_id) REFERENCES investor(id) ON DELETE CASCADE,
			CONSTRAINT unique_investor_month UNIQUE (investor_id, month)
		);

		-- Trading account table
		CREATE TABLE trading_account (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(50) NOT NULL,
			broker VARCHAR(50),
			capital_allocated FLOAT DEFAULT 0 NOT NULL,
			status VARCHAR(10) DEFAULT 'active' NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP NOT NULL
		);

		-- Daily P&L table
		CREATE TABLE daily_pnl (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			account_id VARCHAR(36) NOT NULL,
			date DATE NOT NULL,
			index_name VARCHAR(20) NOT NULL,
			pnl_amount FLOAT NOT NULL,
			capital_used FLOAT DEFAULT 0 NOT NULL,
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP NOT NULL,
			FOREIGN KEY(account_id) REFERENCES trading_account(id) ON DELETE CASCADE
		);

		-- Expense table
		CREATE TABLE expense (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			amount FLOAT NOT NULL,
			date DATE NOT NULL,
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP NOT NULL
		);

		-- Agreement table
		CREATE TABLE agreement (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			investor_id VARCHAR(36) NOT NULL,
			file_name VARCHAR(255) NOT NULL,
			file_path VARCHAR(500) NOT NULL,
			version INTEGER NOT NULL,
			uploaded_at DATETIME DEFAULT CURRENT_TIMESTAMP NOT NULL,
			FOREIGN KEY(investor_id) REFERENCES investor(id) ON DELETE CASCADE,
			CONSTRAINT unique_investor_version UNIQUE (investor_id, version)
		);

		-- Audit log table
		CREATE TABLE audit_log (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			action VARCHAR(100) NOT NULL,
			reference_id VARCHAR(36),
			module VARCHAR(50) NOT NULL,
			notes TEXT,
			timestamp DATETIME DEFAULT CURRENT_TIMESTAMP NOT NULL
		);

		-- Indexes for performance
		CREATE INDEX ix_investor_status ON investor(status);
		CREATE INDEX ix_investment_investor_id ON investment(investor_id);
		CREATE INDEX ix_waiting_period_entry_investor_id ON waiting_period_entry(investor_id);
		CREATE INDEX ix_monthly_return_investor_id ON monthly_return(investor_id);
		CREATE INDEX ix_daily_pnl_account_id ON daily_pnl(account_id);
		CREATE INDEX ix_daily_pnl_date ON daily_pnl(date);
		CREATE INDEX ix_audit_log_timestamp ON audit_log(timestamp);
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
		"audit_log",
		"agreement",
		"daily_pnl",
		"trading_account",
		"monthly_return",
		"waiting_period_entry",
		"investment",
		"expense",
		"investor",
	}

	for _, table := range tables {
		//nolint:gosec // G202: Table names are from hardcoded slice, no SQL injection risk
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
