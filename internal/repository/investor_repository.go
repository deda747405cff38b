package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/apperrors"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/model"
)

// InvestorRepository provides data access methods for the investor table.
type InvestorRepository struct {
	db *sql.DB
}

// NewInvestorRepository creates a new InvestorRepository with the provided database connection.
func NewInvestorRepository(db *sql.DB) *InvestorRepository {
	return &InvestorRepository{db: db}
}

const investorColumns = `
	id, client_id, full_name, email, phone, address,
	investment_amount, promised_return, status, waiting_period_start,
	joining_date, created_at, updated_at
`

// scanInvestor scans one investor row. Kept in one place because every
// query on the investor table selects the same column set.
func scanInvestor(scan func(dest ...any) error) (model.Investor, error) {
	var inv model.Investor
	var clientID, email, phone, address sql.NullString
	var waitingStart, joiningDate sql.NullString
	var createdAt, updatedAt string

	err := scan(
		&inv.ID,
		&clientID,
		&inv.FullName,
		&email,
		&phone,
		&address,
		&inv.InvestmentAmount,
		&inv.PromisedReturn,
		&inv.Status,
		&waitingStart,
		&joiningDate,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return model.Investor{}, err
	}

	inv.ClientID = clientID.String
	inv.Email = email.String
	inv.Phone = phone.String
	inv.Address = address.String

	if inv.WaitingPeriodStart, err = parseNullTime(waitingStart); err != nil {
		return model.Investor{}, fmt.Errorf("failed to parse waiting_period_start: %w", err)
	}
	if joiningDate.Valid {
		if inv.JoiningDate, err = ParseTime(joiningDate.String); err != nil {
			return model.Investor{}, fmt.Errorf("failed to parse joining_date: %w", err)
		}
	}
	if inv.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.Investor{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if inv.UpdatedAt, err = ParseTime(updatedAt); err != nil {
		return model.Investor{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return inv, nil
}

// CreateInvestor inserts a new investor and returns the stored row,
// including the trigger-assigned client id.
func (s *InvestorRepository) CreateInvestor(inv model.Investor) (model.Investor, error) {
	query := `
		INSERT INTO investor (id, full_name, email, phone, address, promised_return, status, joining_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		inv.ID,
		inv.FullName,
		inv.Email,
		inv.Phone,
		inv.Address,
		inv.PromisedReturn,
		inv.Status,
		inv.JoiningDate.Format("2006-01-02"),
	)
	if err != nil {
		return model.Investor{}, fmt.Errorf("failed to insert investor: %w", err)
	}

	// Read back to pick up the client id assigned by the database.
	return s.GetInvestorOnID(inv.ID)
}

// GetInvestors retrieves all investors, newest first.
func (s *InvestorRepository) GetInvestors() ([]model.Investor, error) {
	query := `SELECT ` + investorColumns + ` FROM investor ORDER BY created_at DESC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query investor table: %w", err)
	}
	defer rows.Close()

	investors := []model.Investor{}

	for rows.Next() {
		inv, err := scanInvestor(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investor table results: %w", err)
		}
		investors = append(investors, inv)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating investor table: %w", err)
	}

	return investors, nil
}

// GetInvestorOnID retrieves a single investor by ID.
func (s *InvestorRepository) GetInvestorOnID(investorID string) (model.Investor, error) {
	query := `SELECT ` + investorColumns + ` FROM investor WHERE id = ?`

	inv, err := scanInvestor(s.db.QueryRow(query, investorID).Scan)
	if err == sql.ErrNoRows {
		return model.Investor{}, apperrors.ErrInvestorNotFound
	}
	if err != nil {
		return model.Investor{}, fmt.Errorf("failed to query investor: %w", err)
	}

	return inv, nil
}

// GetWaitingPeriodInvestorsBefore retrieves investors whose waiting period
// started on or before the cutoff. Used by the maturation sweep; investors
// without a waiting_period_start are never selected.
func (s *InvestorRepository) GetWaitingPeriodInvestorsBefore(cutoff time.Time) ([]model.Investor, error) {
	query := `
		SELECT ` + investorColumns + `
		FROM investor
		WHERE status = ?
		AND waiting_period_start IS NOT NULL
		AND waiting_period_start <= ?
	`

	rows, err := s.db.Query(query, model.InvestorStatusWaitingPeriod, cutoff.UTC().Format("2006-01-02 15:04:05"))
	if err != nil {
		return nil, fmt.Errorf("failed to query investor table: %w", err)
	}
	defer rows.Close()

	investors := []model.Investor{}

	for rows.Next() {
		inv, err := scanInvestor(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investor table results: %w", err)
		}
		investors = append(investors, inv)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating investor table: %w", err)
	}

	return investors, nil
}

// UpdateInvestorStatus sets the investor status. When the new status is
// waiting_period, waitingPeriodStart records when the 60-day window began.
func (s *InvestorRepository) UpdateInvestorStatus(investorID, status string, waitingPeriodStart *time.Time) error {
	query := `
		UPDATE investor
		SET status = ?,
		    waiting_period_start = COALESCE(?, waiting_period_start),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	var start any
	if waitingPeriodStart != nil {
		start = waitingPeriodStart.UTC().Format("2006-01-02 15:04:05")
	}

	result, err := s.db.Exec(query, status, start, investorID)
	if err != nil {
		return fmt.Errorf("failed to update investor status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrInvestorNotFound
	}

	return nil
}

// TransitionWaitingPeriodInvestors flips the given investors to inactive and
// appends one audit record per investor, in a single transaction so a status
// flip without its audit trail cannot be committed.
func (s *InvestorRepository) TransitionWaitingPeriodInvestors(investors []model.Investor, makeLog func(model.Investor) model.AuditLogEntry) error {
	if len(investors) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	placeholders := make([]string, len(investors))
	args := make([]any, 0, len(investors)+1)
	args = append(args, model.InvestorStatusInactive)
	for i, inv := range investors {
		placeholders[i] = "?"
		args = append(args, inv.ID)
	}

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	updateQuery := `
		UPDATE investor
		SET status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id IN (` + strings.Join(placeholders, ",") + `)
	`
	if _, err := tx.Exec(updateQuery, args...); err != nil {
		return fmt.Errorf("failed to transition investors: %w", err)
	}

	logQuery := `
		INSERT INTO audit_log (id, action, reference_id, module, notes)
		VALUES (?, ?, ?, ?, ?)
	`
	for _, inv := range investors {
		entry := makeLog(inv)
		if _, err := tx.Exec(logQuery, entry.ID, entry.Action, entry.ReferenceID, entry.Module, entry.Notes); err != nil {
			return fmt.Errorf("failed to append audit log: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transition: %w", err)
	}

	return nil
}

// UpdateInvestor applies the non-nil fields of the update to the investor.
func (s *InvestorRepository) UpdateInvestor(investorID string, update model.InvestorUpdate) (model.Investor, error) {
	setClauses := []string{}
	args := []any{}

	if update.FullName != nil {
		setClauses = append(setClauses, "full_name = ?")
		args = append(args, *update.FullName)
	}
	if update.Email != nil {
		setClauses = append(setClauses, "email = ?")
		args = append(args, *update.Email)
	}
	if update.Phone != nil {
		setClauses = append(setClauses, "phone = ?")
		args = append(args, *update.Phone)
	}
	if update.Address != nil {
		setClauses = append(setClauses, "address = ?")
		args = append(args, *update.Address)
	}
	if update.PromisedReturn != nil {
		setClauses = append(setClauses, "promised_return = ?")
		args = append(args, *update.PromisedReturn)
	}

	if len(setClauses) == 0 {
		return s.GetInvestorOnID(investorID)
	}

	setClauses = append(setClauses, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, investorID)

	//#nosec G202 -- Safe: set clauses are built from a fixed list, not from user input
	query := `UPDATE investor SET ` + strings.Join(setClauses, ", ") + ` WHERE id = ?`

	result, err := s.db.Exec(query, args...)
	if err != nil {
		return model.Investor{}, fmt.Errorf("failed to update investor: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return model.Investor{}, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return model.Investor{}, apperrors.ErrInvestorNotFound
	}

	return s.GetInvestorOnID(investorID)
}

// DeleteInvestor removes the investor. Dependent investments, waiting-period
// entries, monthly returns and agreements are removed by cascade.
func (s *InvestorRepository) DeleteInvestor(investorID string) error {
	result, err := s.db.Exec(`DELETE FROM investor WHERE id = ?`, investorID)
	if err != nil {
		return fmt.Errorf("failed to delete investor: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrInvestorNotFound
	}

	return nil
}
