package repository

import (
	"database/sql"
	"fmt"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/model"
)

// InvestmentRepository provides data access methods for the investment table.
// Investments are immutable; there are no update or delete methods.
type InvestmentRepository struct {
	db *sql.DB
}

// NewInvestmentRepository creates a new InvestmentRepository with the provided database connection.
func NewInvestmentRepository(db *sql.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

// CreateInvestment inserts a new capital contribution. A database trigger
// adds the amount to the investor's denormalized running total.
func (s *InvestmentRepository) CreateInvestment(inv model.Investment) (model.Investment, error) {
	query := `
		INSERT INTO investment (id, investor_id, amount, invested_date, promised_return, notes)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	var promisedReturn any
	if inv.PromisedReturn != nil {
		promisedReturn = *inv.PromisedReturn
	}

	_, err := s.db.Exec(query,
		inv.ID,
		inv.InvestorID,
		inv.Amount,
		inv.InvestedDate.Format("2006-01-02"),
		promisedReturn,
		inv.Notes,
	)
	if err != nil {
		return model.Investment{}, fmt.Errorf("failed to insert investment: %w", err)
	}

	return inv, nil
}

// GetInvestmentsOnInvestorID retrieves all investments for an investor,
// newest first.
func (s *InvestmentRepository) GetInvestmentsOnInvestorID(investorID string) ([]model.Investment, error) {
	query := `
		SELECT id, investor_id, amount, invested_date, promised_return, notes, created_at
		FROM investment
		WHERE investor_id = ?
		ORDER BY invested_date DESC
	`
	return s.queryInvestments(query, investorID)
}

// GetAllInvestments retrieves every investment across all investors.
func (s *InvestmentRepository) GetAllInvestments() ([]model.Investment, error) {
	query := `
		SELECT id, investor_id, amount, invested_date, promised_return, notes, created_at
		FROM investment
	`
	return s.queryInvestments(query)
}

func (s *InvestmentRepository) queryInvestments(query string, args ...any) ([]model.Investment, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query investment table: %w", err)
	}
	defer rows.Close()

	investments := []model.Investment{}

	for rows.Next() {
		var inv model.Investment
		var investedDate, createdAt string
		var promisedReturn sql.NullFloat64
		var notes sql.NullString

		err := rows.Scan(
			&inv.ID,
			&inv.InvestorID,
			&inv.Amount,
			&investedDate,
			&promisedReturn,
			&notes,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investment table results: %w", err)
		}

		if promisedReturn.Valid {
			inv.PromisedReturn = &promisedReturn.Float64
		}
		inv.Notes = notes.String

		if inv.InvestedDate, err = ParseTime(investedDate); err != nil {
			return nil, fmt.Errorf("failed to parse invested_date: %w", err)
		}
		if inv.CreatedAt, err = ParseTime(createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		investments = append(investments, inv)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating investment table: %w", err)
	}

	return investments, nil
}
