package model

import "time"

// Investment represents an immutable capital contribution. It is never
// updated after creation; the sum over an investor's investments is their
// gross contributed capital.
type Investment struct {
	ID             string    `json:"id"`
	InvestorID     string    `json:"investor_id"`
	Amount         float64   `json:"amount"`
	InvestedDate   time.Time `json:"invested_date"`
	PromisedReturn *float64  `json:"promised_return,omitempty"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
}
