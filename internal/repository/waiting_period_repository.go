package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/apperrors"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/model"
)

// WaitingPeriodRepository provides data access methods for the
// waiting_period_entry table. Entries are never deleted in normal flow; the
// only mutation is the one-way delivered flag.
type WaitingPeriodRepository struct {
	db *sql.DB
}

// NewWaitingPeriodRepository creates a new WaitingPeriodRepository with the provided database connection.
func NewWaitingPeriodRepository(db *sql.DB) *WaitingPeriodRepository {
	return &WaitingPeriodRepository{db: db}
}

// CreateEntry inserts a new waiting-period entry.
func (s *WaitingPeriodRepository) CreateEntry(entry model.WaitingPeriodEntry) (model.WaitingPeriodEntry, error) {
	query := `
		INSERT INTO waiting_period_entry (id, investor_id, amount, initialized_date, notes)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		entry.ID,
		entry.InvestorID,
		entry.Amount,
		entry.InitializedDate.UTC().Format("2006-01-02 15:04:05"),
		entry.Notes,
	)
	if err != nil {
		return model.WaitingPeriodEntry{}, fmt.Errorf("failed to insert waiting period entry: %w", err)
	}

	return entry, nil
}

// GetEntryOnID retrieves a single waiting-period entry by ID.
func (s *WaitingPeriodRepository) GetEntryOnID(entryID string) (model.WaitingPeriodEntry, error) {
	query := `
		SELECT id, investor_id, amount, initialized_date, delivered, delivered_at, notes, created_at
		FROM waiting_period_entry
		WHERE id = ?
	`

	entry, err := scanWaitingPeriodEntry(s.db.QueryRow(query, entryID).Scan)
	if err == sql.ErrNoRows {
		return model.WaitingPeriodEntry{}, apperrors.ErrEntryNotFound
	}
	if err != nil {
		return model.WaitingPeriodEntry{}, fmt.Errorf("failed to query waiting period entry: %w", err)
	}

	return entry, nil
}

// GetEntriesOnInvestorID retrieves all entries for an investor, newest first.
func (s *WaitingPeriodRepository) GetEntriesOnInvestorID(investorID string) ([]model.WaitingPeriodEntry, error) {
	query := `
		SELECT id, investor_id, amount, initialized_date, delivered, delivered_at, notes, created_at
		FROM waiting_period_entry
		WHERE investor_id = ?
		ORDER BY initialized_date DESC
	`
	return s.queryEntries(query, investorID)
}

// GetAllEntries retrieves every waiting-period entry across all investors,
// newest first.
func (s *WaitingPeriodRepository) GetAllEntries() ([]model.WaitingPeriodEntry, error) {
	query := `
		SELECT id, investor_id, amount, initialized_date, delivered, delivered_at, notes, created_at
		FROM waiting_period_entry
		ORDER BY initialized_date DESC
	`
	return s.queryEntries(query)
}

// MarkDelivered flips the delivered flag on an undelivered entry.
// Returns true when this call performed the transition, false when the entry
// was already delivered. The WHERE clause makes the transition one-way.
func (s *WaitingPeriodRepository) MarkDelivered(entryID string, deliveredAt time.Time) (bool, error) {
	query := `
		UPDATE waiting_period_entry
		SET delivered = TRUE, delivered_at = ?
		WHERE id = ? AND delivered = FALSE
	`

	result, err := s.db.Exec(query, deliveredAt.UTC().Format("2006-01-02 15:04:05"), entryID)
	if err != nil {
		return false, fmt.Errorf("failed to mark entry delivered: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

func (s *WaitingPeriodRepository) queryEntries(query string, args ...any) ([]model.WaitingPeriodEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query waiting_period_entry table: %w", err)
	}
	defer rows.Close()

	entries := []model.WaitingPeriodEntry{}

	for rows.Next() {
		entry, err := scanWaitingPeriodEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan waiting_period_entry table results: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating waiting_period_entry table: %w", err)
	}

	return entries, nil
}

func scanWaitingPeriodEntry(scan func(dest ...any) error) (model.WaitingPeriodEntry, error) {
	var entry model.WaitingPeriodEntry
	var initializedDate, createdAt string
	var deliveredAt, notes sql.NullString

	err := scan(
		&entry.ID,
		&entry.InvestorID,
		&entry.Amount,
		&initializedDate,
		&entry.Delivered,
		&deliveredAt,
		&notes,
		&createdAt,
	)
	if err != nil {
		return model.WaitingPeriodEntry{}, err
	}

	entry.Notes = notes.String

	if entry.InitializedDate, err = ParseTime(initializedDate); err != nil {
		return model.WaitingPeriodEntry{}, fmt.Errorf("failed to parse initialized_date: %w", err)
	}
	if entry.DeliveredAt, err = parseNullTime(deliveredAt); err != nil {
		return model.WaitingPeriodEntry{}, fmt.Errorf("failed to parse delivered_at: %w", err)
	}
	if entry.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.WaitingPeriodEntry{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return entry, nil
}
