package model

import "time"

// Investor statuses. Transitions are explicit user actions except the
// inactive transition performed by the maturation sweep.
const (
	InvestorStatusActive        = "active"
	InvestorStatusWaitingPeriod = "waiting_period"
	InvestorStatusInactive      = "inactive"
	InvestorStatusExited        = "exited"
)

// Investor represents an investor from the database.
//
// ClientID is the externally visible identifier (S91-INV-NNN), assigned once
// by a database trigger at creation and never reassigned.
// InvestmentAmount is a denormalized running total maintained by a database
// trigger on investment inserts; derived capital figures are computed from
// investment rows, not from this column.
type Investor struct {
	ID                 string     `json:"id"`
	ClientID           string     `json:"client_id"`
	FullName           string     `json:"full_name"`
	Email              string     `json:"email"`
	Phone              string     `json:"phone"`
	Address            string     `json:"address"`
	InvestmentAmount   float64    `json:"investment_amount"`
	PromisedReturn     float64    `json:"promised_return"`
	Status             string     `json:"status"`
	WaitingPeriodStart *time.Time `json:"waiting_period_start,omitempty"`
	JoiningDate        time.Time  `json:"joining_date"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// InvestorUpdate carries optional field updates for an investor.
// Nil fields are left unchanged.
type InvestorUpdate struct {
	FullName       *string
	Email          *string
	Phone          *string
	Address        *string
	PromisedReturn *float64
}
