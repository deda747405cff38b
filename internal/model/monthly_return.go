package model

import "time"

// Monthly return statuses.
const (
	ReturnStatusPending = "pending"
	ReturnStatusPaid    = "paid"
	ReturnStatusOverdue = "overdue"
)

// MonthlyReturn represents a payout record. Month is YYYY-MM and unique per
// investor. Amount is computed from remaining capital at creation time.
type MonthlyReturn struct {
	ID            string     `json:"id"`
	InvestorID    string     `json:"investor_id"`
	Month         string     `json:"month"`
	Amount        float64    `json:"amount"`
	ReturnPercent float64    `json:"return_percent"`
	Status        string     `json:"status"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// MonthlyReturnWithInvestor is a monthly return joined with the investor's
// display fields, used by the global returns listing.
type MonthlyReturnWithInvestor struct {
	MonthlyReturn
	InvestorName     string `json:"investor_name"`
	InvestorClientID string `json:"investor_client_id"`
}
