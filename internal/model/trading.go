package model

import "time"

// Trading account statuses.
const (
	AccountStatusActive   = "active"
	AccountStatusInactive = "inactive"
)

// TradingAccount represents a broker account with allocated capital.
type TradingAccount struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Broker           string    `json:"broker"`
	CapitalAllocated float64   `json:"capital_allocated"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

// TradingAccountUpdate carries optional field updates for a trading account.
type TradingAccountUpdate struct {
	Name             *string
	Broker           *string
	CapitalAllocated *float64
	Status           *string
}

// DailyPnLEntry represents one day's trading result for an account.
// PnLAmount may be negative.
type DailyPnLEntry struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"account_id"`
	Date        time.Time `json:"date"`
	IndexName   string    `json:"index_name"`
	PnLAmount   float64   `json:"pnl_amount"`
	CapitalUsed float64   `json:"capital_used"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

// DailyPnLUpdate carries optional field updates for a daily P&L entry.
type DailyPnLUpdate struct {
	Date        *time.Time
	IndexName   *string
	PnLAmount   *float64
	CapitalUsed *float64
	Notes       *string
}
