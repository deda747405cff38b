package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/apperrors"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/model"
)

// TradingRepository provides data access methods for the trading_account and
// daily_pnl tables.
type TradingRepository struct {
	db *sql.DB
}

// NewTradingRepository creates a new TradingRepository with the provided database connection.
func NewTradingRepository(db *sql.DB) *TradingRepository {
	return &TradingRepository{db: db}
}

// CreateAccount inserts a new trading account.
func (s *TradingRepository) CreateAccount(account model.TradingAccount) (model.TradingAccount, error) {
	query := `
		INSERT INTO trading_account (id, name, broker, capital_allocated, status)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		account.ID,
		account.Name,
		account.Broker,
		account.CapitalAllocated,
		account.Status,
	)
	if err != nil {
		return model.TradingAccount{}, fmt.Errorf("failed to insert trading account: %w", err)
	}

	return s.GetAccountOnID(account.ID)
}

// GetAccounts retrieves all trading accounts, newest first.
func (s *TradingRepository) GetAccounts() ([]model.TradingAccount, error) {
	query := `
		SELECT id, name, broker, capital_allocated, status, created_at
		FROM trading_account
		ORDER BY created_at DESC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query trading_account table: %w", err)
	}
	defer rows.Close()

	accounts := []model.TradingAccount{}

	for rows.Next() {
		account, err := scanTradingAccount(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trading_account table results: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trading_account table: %w", err)
	}

	return accounts, nil
}

// GetAccountOnID retrieves a single trading account by ID.
func (s *TradingRepository) GetAccountOnID(accountID string) (model.TradingAccount, error) {
	query := `
		SELECT id, name, broker, capital_allocated, status, created_at
		FROM trading_account
		WHERE id = ?
	`

	account, err := scanTradingAccount(s.db.QueryRow(query, accountID).Scan)
	if err == sql.ErrNoRows {
		return model.TradingAccount{}, apperrors.ErrAccountNotFound
	}
	if err != nil {
		return model.TradingAccount{}, fmt.Errorf("failed to query trading account: %w", err)
	}

	return account, nil
}

// UpdateAccount applies the non-nil fields of the update to the account.
func (s *TradingRepository) UpdateAccount(accountID string, update model.TradingAccountUpdate) (model.TradingAccount, error) {
	setClauses := []string{}
	args := []any{}

	if update.Name != nil {
		setClauses = append(setClauses, "name = ?")
		args = append(args, *update.Name)
	}
	if update.Broker != nil {
		setClauses = append(setClauses, "broker = ?")
		args = append(args, *update.Broker)
	}
	if update.CapitalAllocated != nil {
		setClauses = append(setClauses, "capital_allocated = ?")
		args = append(args, *update.CapitalAllocated)
	}
	if update.Status != nil {
		setClauses = append(setClauses, "status = ?")
		args = append(args, *update.Status)
	}

	if len(setClauses) == 0 {
		return s.GetAccountOnID(accountID)
	}

	args = append(args, accountID)

	//#nosec G202 -- Safe: set clauses are built from a fixed list, not from user input
	query := `UPDATE trading_account SET ` + strings.Join(setClauses, ", ") + ` WHERE id = ?`

	result, err := s.db.Exec(query, args...)
	if err != nil {
		return model.TradingAccount{}, fmt.Errorf("failed to update trading account: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return model.TradingAccount{}, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return model.TradingAccount{}, apperrors.ErrAccountNotFound
	}

	return s.GetAccountOnID(accountID)
}

// DeleteAccount removes the account. Daily P&L entries are removed by cascade.
func (s *TradingRepository) DeleteAccount(accountID string) error {
	result, err := s.db.Exec(`DELETE FROM trading_account WHERE id = ?`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete trading account: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAccountNotFound
	}

	return nil
}

// CreatePnLEntry inserts a new daily P&L entry.
func (s *TradingRepository) CreatePnLEntry(entry model.DailyPnLEntry) (model.DailyPnLEntry, error) {
	query := `
		INSERT INTO daily_pnl (id, account_id, date, index_name, pnl_amount, capital_used, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		entry.ID,
		entry.AccountID,
		entry.Date.Format("2006-01-02"),
		entry.IndexName,
		entry.PnLAmount,
		entry.CapitalUsed,
		entry.Notes,
	)
	if err != nil {
		return model.DailyPnLEntry{}, fmt.Errorf("failed to insert daily pnl entry: %w", err)
	}

	return s.GetPnLEntryOnID(entry.ID)
}

// GetPnLEntryOnID retrieves a single daily P&L entry by ID.
func (s *TradingRepository) GetPnLEntryOnID(entryID string) (model.DailyPnLEntry, error) {
	query := `
		SELECT id, account_id, date, index_name, pnl_amount, capital_used, notes, created_at
		FROM daily_pnl
		WHERE id = ?
	`

	entry, err := scanPnLEntry(s.db.QueryRow(query, entryID).Scan)
	if err == sql.ErrNoRows {
		return model.DailyPnLEntry{}, apperrors.ErrPnLEntryNotFound
	}
	if err != nil {
		return model.DailyPnLEntry{}, fmt.Errorf("failed to query daily pnl entry: %w", err)
	}

	return entry, nil
}

// GetPnLEntriesOnAccountID retrieves all daily P&L entries for an account,
// newest first.
func (s *TradingRepository) GetPnLEntriesOnAccountID(accountID string) ([]model.DailyPnLEntry, error) {
	query := `
		SELECT id, account_id, date, index_name, pnl_amount, capital_used, notes, created_at
		FROM daily_pnl
		WHERE account_id = ?
		ORDER BY date DESC
	`
	return s.queryPnLEntries(query, accountID)
}

// GetAllPnLOrderedByDate retrieves every daily P&L entry across all accounts
// in chronological order. The equity curve depends on this ordering.
func (s *TradingRepository) GetAllPnLOrderedByDate() ([]model.DailyPnLEntry, error) {
	query := `
		SELECT id, account_id, date, index_name, pnl_amount, capital_used, notes, created_at
		FROM daily_pnl
		ORDER BY date ASC, created_at ASC
	`
	return s.queryPnLEntries(query)
}

// UpdatePnLEntry applies the non-nil fields of the update to the entry.
func (s *TradingRepository) UpdatePnLEntry(entryID string, update model.DailyPnLUpdate) (model.DailyPnLEntry, error) {
	setClauses := []string{}
	args := []any{}

	if update.Date != nil {
		setClauses = append(setClauses, "date = ?")
		args = append(args, update.Date.Format("2006-01-02"))
	}
	if update.IndexName != nil {
		setClauses = append(setClauses, "index_name = ?")
		args = append(args, *update.IndexName)
	}
	if update.PnLAmount != nil {
		setClauses = append(setClauses, "pnl_amount = ?")
		args = append(args, *update.PnLAmount)
	}
	if update.CapitalUsed != nil {
		setClauses = append(setClauses, "capital_used = ?")
		args = append(args, *update.CapitalUsed)
	}
	if update.Notes != nil {
		setClauses = append(setClauses, "notes = ?")
		args = append(args, *update.Notes)
	}

	if len(setClauses) == 0 {
		return s.GetPnLEntryOnID(entryID)
	}

	args = append(args, entryID)

	//#nosec G202 -- Safe: set clauses are built from a fixed list, not from user input
	query := `UPDATE daily_pnl SET ` + strings.Join(setClauses, ", ") + ` WHERE id = ?`

	result, err := s.db.Exec(query, args...)
	if err != nil {
		return model.DailyPnLEntry{}, fmt.Errorf("failed to update daily pnl entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return model.DailyPnLEntry{}, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return model.DailyPnLEntry{}, apperrors.ErrPnLEntryNotFound
	}

	return s.GetPnLEntryOnID(entryID)
}

// DeletePnLEntry removes a daily P&L entry.
func (s *TradingRepository) DeletePnLEntry(entryID string) error {
	result, err := s.db.Exec(`DELETE FROM daily_pnl WHERE id = ?`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete daily pnl entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPnLEntryNotFound
	}

	return nil
}

func (s *TradingRepository) queryPnLEntries(query string, args ...any) ([]model.DailyPnLEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily_pnl table: %w", err)
	}
	defer rows.Close()

	entries := []model.DailyPnLEntry{}

	for rows.Next() {
		entry, err := scanPnLEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily_pnl table results: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily_pnl table: %w", err)
	}

	return entries, nil
}

func scanTradingAccount(scan func(dest ...any) error) (model.TradingAccount, error) {
	var account model.TradingAccount
	var broker sql.NullString
	var createdAt string

	err := scan(
		&account.ID,
		&account.Name,
		&broker,
		&account.CapitalAllocated,
		&account.Status,
		&createdAt,
	)
	if err != nil {
		return model.TradingAccount{}, err
	}

	account.Broker = broker.String

	if account.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.TradingAccount{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return account, nil
}

func scanPnLEntry(scan func(dest ...any) error) (model.DailyPnLEntry, error) {
	var entry model.DailyPnLEntry
	var date, createdAt string
	var notes sql.NullString

	err := scan(
		&entry.ID,
		&entry.AccountID,
		&date,
		&entry.IndexName,
		&entry.PnLAmount,
		&entry.CapitalUsed,
		&notes,
		&createdAt,
	)
	if err != nil {
		return model.DailyPnLEntry{}, err
	}

	entry.Notes = notes.String

	if entry.Date, err = ParseTime(date); err != nil {
		return model.DailyPnLEntry{}, fmt.Errorf("failed to parse date: %w", err)
	}
	if entry.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.DailyPnLEntry{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return entry, nil
}
