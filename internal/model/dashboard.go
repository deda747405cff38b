package model

// EquityPoint is one point of the firm's rolling equity curve.
type EquityPoint struct {
	Date   string  `json:"date"` // Date in YYYY-MM-DD format
	Equity float64 `json:"equity"`
}

// CapitalSplit partitions firm-wide capital between outside investors and
// the firm itself. Neither side is ever negative.
type CapitalSplit struct {
	InvestorCapital float64 `json:"investor_capital"`
	InternalCapital float64 `json:"internal_capital"`
}

// DashboardStats aggregates the firm-wide figures shown on the dashboard.
// All values are recomputed from raw rows on every read; nothing here is
// persisted derived state.
type DashboardStats struct {
	TotalInvestors   int           `json:"total_investors"`
	NewInvestors     int           `json:"new_investors"` // created this calendar month
	TotalCapital     float64       `json:"total_capital"`
	NetProfit        float64       `json:"net_profit"`
	PendingReturns   float64       `json:"pending_returns"`
	WinRate          float64       `json:"win_rate"`
	TotalTrades      int           `json:"total_trades"`
	EquityGrowth     float64       `json:"equity_growth"`
	EquityCurve      []EquityPoint `json:"equity_curve"`
	InvestorCapital  float64       `json:"investor_capital"`
	InternalCapital  float64       `json:"internal_capital"`
	TotalInvested    float64       `json:"total_invested"`
	TotalDelivered   float64       `json:"total_delivered"`
	AllocatedCapital float64       `json:"allocated_capital"`
}
