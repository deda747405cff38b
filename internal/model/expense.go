package model

import "time"

// Expense represents a firm expense record.
type Expense struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// ExpenseUpdate carries optional field updates for an expense.
type ExpenseUpdate struct {
	Amount *float64
	Date   *time.Time
	Notes  *string
}
