package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/apperrors"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/model"
)

// MonthlyReturnRepository provides data access methods for the
// monthly_return table.
type MonthlyReturnRepository struct {
	db *sql.DB
}

// NewMonthlyReturnRepository creates a new MonthlyReturnRepository with the provided database connection.
func NewMonthlyReturnRepository(db *sql.DB) *MonthlyReturnRepository {
	return &MonthlyReturnRepository{db: db}
}

// CreateReturn inserts a new monthly return. The (investor, month) unique
// constraint maps to ErrDuplicateMonth.
func (s *MonthlyReturnRepository) CreateReturn(ret model.MonthlyReturn) (model.MonthlyReturn, error) {
	query := `
		INSERT INTO monthly_return (id, investor_id, month, amount, return_percent, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		ret.ID,
		ret.InvestorID,
		ret.Month,
		ret.Amount,
		ret.ReturnPercent,
		ret.Status,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return model.MonthlyReturn{}, apperrors.ErrDuplicateMonth
		}
		return model.MonthlyReturn{}, fmt.Errorf("failed to insert monthly return: %w", err)
	}

	return ret, nil
}

// GetReturnOnID retrieves a single monthly return by ID.
func (s *MonthlyReturnRepository) GetReturnOnID(returnID string) (model.MonthlyReturn, error) {
	query := `
		SELECT id, investor_id, month, amount, return_percent, status, paid_at, created_at
		FROM monthly_return
		WHERE id = ?
	`

	ret, err := scanMonthlyReturn(s.db.QueryRow(query, returnID).Scan)
	if err == sql.ErrNoRows {
		return model.MonthlyReturn{}, apperrors.ErrReturnNotFound
	}
	if err != nil {
		return model.MonthlyReturn{}, fmt.Errorf("failed to query monthly return: %w", err)
	}

	return ret, nil
}

// GetReturnsOnInvestorID retrieves all monthly returns for an investor,
// newest month first.
func (s *MonthlyReturnRepository) GetReturnsOnInvestorID(investorID string) ([]model.MonthlyReturn, error) {
	query := `
		SELECT id, investor_id, month, amount, return_percent, status, paid_at, created_at
		FROM monthly_return
		WHERE investor_id = ?
		ORDER BY month DESC
	`

	rows, err := s.db.Query(query, investorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly_return table: %w", err)
	}
	defer rows.Close()

	returns := []model.MonthlyReturn{}

	for rows.Next() {
		ret, err := scanMonthlyReturn(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly_return table results: %w", err)
		}
		returns = append(returns, ret)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly_return table: %w", err)
	}

	return returns, nil
}

// GetAllReturns retrieves every monthly return across all investors.
func (s *MonthlyReturnRepository) GetAllReturns() ([]model.MonthlyReturn, error) {
	query := `
		SELECT id, investor_id, month, amount, return_percent, status, paid_at, created_at
		FROM monthly_return
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly_return table: %w", err)
	}
	defer rows.Close()

	returns := []model.MonthlyReturn{}

	for rows.Next() {
		ret, err := scanMonthlyReturn(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly_return table results: %w", err)
		}
		returns = append(returns, ret)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly_return table: %w", err)
	}

	return returns, nil
}

// GetAllReturnsWithInvestor retrieves every monthly return joined with the
// investor's display fields, newest record first.
func (s *MonthlyReturnRepository) GetAllReturnsWithInvestor() ([]model.MonthlyReturnWithInvestor, error) {
	query := `
		SELECT mr.id, mr.investor_id, mr.month, mr.amount, mr.return_percent, mr.status,
		       mr.paid_at, mr.created_at, i.full_name, i.client_id
		FROM monthly_return mr
		JOIN investor i ON i.id = mr.investor_id
		ORDER BY mr.created_at DESC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly_return or investor table: %w", err)
	}
	defer rows.Close()

	returns := []model.MonthlyReturnWithInvestor{}

	for rows.Next() {
		var r model.MonthlyReturnWithInvestor
		var paidAt, clientID sql.NullString
		var createdAt string

		err := rows.Scan(
			&r.ID,
			&r.InvestorID,
			&r.Month,
			&r.Amount,
			&r.ReturnPercent,
			&r.Status,
			&paidAt,
			&createdAt,
			&r.InvestorName,
			&clientID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly_return join results: %w", err)
		}

		r.InvestorClientID = clientID.String

		if r.PaidAt, err = parseNullTime(paidAt); err != nil {
			return nil, fmt.Errorf("failed to parse paid_at: %w", err)
		}
		if r.CreatedAt, err = ParseTime(createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		returns = append(returns, r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly_return join: %w", err)
	}

	return returns, nil
}

// UpdateReturnStatus sets the status of a monthly return. paidAt is stored
// only when provided (the transition to paid).
func (s *MonthlyReturnRepository) UpdateReturnStatus(returnID, status string, paidAt *time.Time) (model.MonthlyReturn, error) {
	query := `
		UPDATE monthly_return
		SET status = ?, paid_at = COALESCE(?, paid_at)
		WHERE id = ?
	`

	var paid any
	if paidAt != nil {
		paid = paidAt.UTC().Format("2006-01-02 15:04:05")
	}

	result, err := s.db.Exec(query, status, paid, returnID)
	if err != nil {
		return model.MonthlyReturn{}, fmt.Errorf("failed to update monthly return status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return model.MonthlyReturn{}, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return model.MonthlyReturn{}, apperrors.ErrReturnNotFound
	}

	return s.GetReturnOnID(returnID)
}

func scanMonthlyReturn(scan func(dest ...any) error) (model.MonthlyReturn, error) {
	var ret model.MonthlyReturn
	var paidAt sql.NullString
	var createdAt string

	err := scan(
		&ret.ID,
		&ret.InvestorID,
		&ret.Month,
		&ret.Amount,
		&ret.ReturnPercent,
		&ret.Status,
		&paidAt,
		&createdAt,
	)
	if err != nil {
		return model.MonthlyReturn{}, err
	}

	if ret.PaidAt, err = parseNullTime(paidAt); err != nil {
		return model.MonthlyReturn{}, fmt.Errorf("failed to parse paid_at: %w", err)
	}
	if ret.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.MonthlyReturn{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return ret, nil
}
