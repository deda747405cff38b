package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/apperrors"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/model"
)

// ExpenseRepository provides data access methods for the expense table.
type ExpenseRepository struct {
	db *sql.DB
}

// NewExpenseRepository creates a new ExpenseRepository with the provided database connection.
func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// CreateExpense inserts a new expense record.
func (s *ExpenseRepository) CreateExpense(expense model.Expense) (model.Expense, error) {
	query := `
		INSERT INTO expense (id, amount, date, notes)
		VALUES (?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		expense.ID,
		expense.Amount,
		expense.Date.Format("2006-01-02"),
		expense.Notes,
	)
	if err != nil {
		return model.Expense{}, fmt.Errorf("failed to insert expense: %w", err)
	}

	return s.GetExpenseOnID(expense.ID)
}

// GetExpenses retrieves all expenses, newest first.
func (s *ExpenseRepository) GetExpenses() ([]model.Expense, error) {
	query := `
		SELECT id, amount, date, notes, created_at
		FROM expense
		ORDER BY date DESC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense table: %w", err)
	}
	defer rows.Close()

	expenses := []model.Expense{}

	for rows.Next() {
		expense, err := scanExpense(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense table results: %w", err)
		}
		expenses = append(expenses, expense)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense table: %w", err)
	}

	return expenses, nil
}

// GetExpenseOnID retrieves a single expense by ID.
func (s *ExpenseRepository) GetExpenseOnID(expenseID string) (model.Expense, error) {
	query := `
		SELECT id, amount, date, notes, created_at
		FROM expense
		WHERE id = ?
	`

	expense, err := scanExpense(s.db.QueryRow(query, expenseID).Scan)
	if err == sql.ErrNoRows {
		return model.Expense{}, apperrors.ErrExpenseNotFound
	}
	if err != nil {
		return model.Expense{}, fmt.Errorf("failed to query expense: %w", err)
	}

	return expense, nil
}

// UpdateExpense applies the non-nil fields of the update to the expense.
func (s *ExpenseRepository) UpdateExpense(expenseID string, update model.ExpenseUpdate) (model.Expense, error) {
	setClauses := []string{}
	args := []any{}

	if update.Amount != nil {
		setClauses = append(setClauses, "amount = ?")
		args = append(args, *update.Amount)
	}
	if update.Date != nil {
		setClauses = append(setClauses, "date = ?")
		args = append(args, update.Date.Format("2006-01-02"))
	}
	if update.Notes != nil {
		setClauses = append(setClauses, "notes = ?")
		args = append(args, *update.Notes)
	}

	if len(setClauses) == 0 {
		return s.GetExpenseOnID(expenseID)
	}

	args = append(args, expenseID)

	//#nosec G202 -- Safe: set clauses are built from a fixed list, not from user input
	query := `UPDATE expense SET ` + strings.Join(setClauses, ", ") + ` WHERE id = ?`

	result, err := s.db.Exec(query, args...)
	if err != nil {
		return model.Expense{}, fmt.Errorf("failed to update expense: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return model.Expense{}, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return model.Expense{}, apperrors.ErrExpenseNotFound
	}

	return s.GetExpenseOnID(expenseID)
}

// DeleteExpense removes an expense record.
func (s *ExpenseRepository) DeleteExpense(expenseID string) error {
	result, err := s.db.Exec(`DELETE FROM expense WHERE id = ?`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrExpenseNotFound
	}

	return nil
}

func scanExpense(scan func(dest ...any) error) (model.Expense, error) {
	var expense model.Expense
	var date, createdAt string
	var notes sql.NullString

	err := scan(
		&expense.ID,
		&expense.Amount,
		&date,
		&notes,
		&createdAt,
	)
	if err != nil {
		return model.Expense{}, err
	}

	expense.Notes = notes.String

	if expense.Date, err = ParseTime(date); err != nil {
		return model.Expense{}, fmt.Errorf("failed to parse date: %w", err)
	}
	if expense.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.Expense{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return expense, nil
}
