package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/api/request"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/model"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/repository"
)

// ExpenseService handles firm expense records.
type ExpenseService struct {
	expenseRepo *repository.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService with the provided repository dependency.
func NewExpenseService(expenseRepo *repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// GetExpenses retrieves all expenses.
func (s *ExpenseService) GetExpenses() ([]model.Expense, error) {
	return s.expenseRepo.GetExpenses()
}

// CreateExpense records an expense.
func (s *ExpenseService) CreateExpense(req request.CreateExpenseRequest) (model.Expense, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return model.Expense{}, fmt.Errorf("failed to parse date: %w", err)
	}

	expense := model.Expense{
		ID:     uuid.New().String(),
		Amount: req.Amount,
		Date:   date,
		Notes:  req.Notes,
	}

	return s.expenseRepo.CreateExpense(expense)
}

// UpdateExpense applies partial field updates to an expense.
func (s *ExpenseService) UpdateExpense(expenseID string, req request.UpdateExpenseRequest) (model.Expense, error) {
	update := model.ExpenseUpdate{
		Amount: req.Amount,
		Notes:  req.Notes,
	}

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return model.Expense{}, fmt.Errorf("failed to parse date: %w", err)
		}
		update.Date = &date
	}

	return s.expenseRepo.UpdateExpense(expenseID, update)
}

// DeleteExpense removes an expense.
func (s *ExpenseService) DeleteExpense(expenseID string) error {
	return s.expenseRepo.DeleteExpense(expenseID)
}
