package repository

import (
	"database/sql"
	"fmt"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/model"
)

// AuditRepository provides data access methods for the audit_log table.
// The table is append-only; there are no update or delete methods.
type AuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new AuditRepository with the provided database connection.
func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Append inserts a new audit log entry.
func (s *AuditRepository) Append(entry model.AuditLogEntry) error {
	query := `
		INSERT INTO audit_log (id, action, reference_id, module, notes)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		entry.ID,
		entry.Action,
		entry.ReferenceID,
		entry.Module,
		entry.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit log entry: %w", err)
	}

	return nil
}

// GetLogs retrieves the most recent audit log entries, newest first.
// A limit of 0 or less returns all entries.
func (s *AuditRepository) GetLogs(limit int) ([]model.AuditLogEntry, error) {
	query := `
		SELECT id, action, reference_id, module, notes, timestamp
		FROM audit_log
		ORDER BY timestamp DESC, id DESC
	`
	args := []any{}

	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit_log table: %w", err)
	}
	defer rows.Close()

	entries := []model.AuditLogEntry{}

	for rows.Next() {
		var entry model.AuditLogEntry
		var referenceID, notes sql.NullString
		var timestamp string

		err := rows.Scan(
			&entry.ID,
			&entry.Action,
			&referenceID,
			&entry.Module,
			&notes,
			&timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit_log table results: %w", err)
		}

		entry.ReferenceID = referenceID.String
		entry.Notes = notes.String

		if entry.Timestamp, err = ParseTime(timestamp); err != nil {
			return nil, fmt.Errorf("failed to parse timestamp: %w", err)
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit_log table: %w", err)
	}

	return entries, nil
}

// GetLogsOnReferenceID retrieves audit log entries for a given reference,
// newest first.
func (s *AuditRepository) GetLogsOnReferenceID(referenceID string) ([]model.AuditLogEntry, error) {
	query := `
		SELECT id, action, reference_id, module, notes, timestamp
		FROM audit_log
		WHERE reference_id = ?
		ORDER BY timestamp DESC, id DESC
	`

	rows, err := s.db.Query(query, referenceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit_log table: %w", err)
	}
	defer rows.Close()

	entries := []model.AuditLogEntry{}

	for rows.Next() {
		var entry model.AuditLogEntry
		var refID, notes sql.NullString
		var timestamp string

		err := rows.Scan(
			&entry.ID,
			&entry.Action,
			&refID,
			&entry.Module,
			&notes,
			&timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit_log table results: %w", err)
		}

		entry.ReferenceID = refID.String
		entry.Notes = notes.String

		if entry.Timestamp, err = ParseTime(timestamp); err != nil {
			return nil, fmt.Errorf("failed to parse timestamp: %w", err)
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit_log table: %w", err)
	}

	return entries, nil
}
