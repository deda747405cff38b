package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/model"
)

// InvestorBuilder provides a fluent interface for creating test investors.
//
// Example usage:
//
//	// Simple creation with defaults
//	investor := testutil.NewInvestor().Build(t, db)
//
//	// Customized investor
//	investor := testutil.NewInvestor().
//	    WithFullName("Asha Rao").
//	    InWaitingPeriodSince(start).
//	    Build(t, db)
type InvestorBuilder struct {
	ID                 string
	FullName           string
	Email              string
	Phone              string
	Address            string
	PromisedReturn     float64
	Status             string
	WaitingPeriodStart *time.Time
	JoiningDate        time.Time
}

// NewInvestor creates an InvestorBuilder with sensible defaults.
func NewInvestor() *InvestorBuilder {
	return &InvestorBuilder{
		ID:             MakeID(),
		FullName:       "Test Investor",
		Email:          "test.investor@example.com",
		Phone:          "+919900112233",
		Address:        "12 Test Street",
		PromisedReturn: 2.5,
		Status:         model.InvestorStatusActive,
		JoiningDate:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// WithID sets a custom ID.
func (b *InvestorBuilder) WithID(id string) *InvestorBuilder {
	b.ID = id
	return b
}

// WithFullName sets a custom full name.
func (b *InvestorBuilder) WithFullName(name string) *InvestorBuilder {
	b.FullName = name
	return b
}

// WithEmail sets a custom email.
func (b *InvestorBuilder) WithEmail(email string) *InvestorBuilder {
	b.Email = email
	return b
}

// WithPromisedReturn sets a custom promised monthly return percentage.
func (b *InvestorBuilder) WithPromisedReturn(pct float64) *InvestorBuilder {
	b.PromisedReturn = pct
	return b
}

// WithStatus sets a custom status.
func (b *InvestorBuilder) WithStatus(status string) *InvestorBuilder {
	b.Status = status
	return b
}

// InWaitingPeriodSince marks the investor as in the waiting period with the
// given start time.
func (b *InvestorBuilder) InWaitingPeriodSince(start time.Time) *InvestorBuilder {
	b.Status = model.InvestorStatusWaitingPeriod
	b.WaitingPeriodStart = &start
	return b
}

// Build creates the investor in the database and returns it.
// ClientID is assigned by a database trigger, so the row is read back.
func (b *InvestorBuilder) Build(t *testing.T, db *sql.DB) model.Investor {
	t.Helper()

	query := `
		INSERT INTO investor (id, full_name, email, phone, address, promised_return, status, waiting_period_start, joining_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	// Timestamps are bound as formatted strings, matching how the
	// repositories write them.
	var waitingStart any
	if b.WaitingPeriodStart != nil {
		waitingStart = b.WaitingPeriodStart.UTC().Format("2006-01-02 15:04:05")
	}

	_, err := db.Exec(query,
		b.ID, b.FullName, b.Email, b.Phone, b.Address,
		b.PromisedReturn, b.Status, waitingStart, b.JoiningDate.Format("2006-01-02"))
	if err != nil {
		t.Fatalf("Failed to create test investor: %v", err)
	}

	var clientID string
	err = db.QueryRow("SELECT client_id FROM investor WHERE id = ?", b.ID).Scan(&clientID)
	if err != nil {
		t.Fatalf("Failed to read back test investor client_id: %v", err)
	}

	return model.Investor{
		ID:                 b.ID,
		ClientID:           clientID,
		FullName:           b.FullName,
		Email:              b.Email,
		Phone:              b.Phone,
		Address:            b.Address,
		PromisedReturn:     b.PromisedReturn,
		Status:             b.Status,
		WaitingPeriodStart: b.WaitingPeriodStart,
		JoiningDate:        b.JoiningDate,
	}
}

// InvestmentBuilder provides a fluent interface for creating test investments.
type InvestmentBuilder struct {
	ID           string
	InvestorID   string
	Amount       float64
	InvestedDate time.Time
	Notes        string
}

// NewInvestment creates an InvestmentBuilder with sensible defaults.
// InvestorID must be set before Build.
func NewInvestment() *InvestmentBuilder {
	return &InvestmentBuilder{
		ID:           MakeID(),
		Amount:       100000,
		InvestedDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// WithInvestor sets the owning investor.
func (b *InvestmentBuilder) WithInvestor(investorID string) *InvestmentBuilder {
	b.InvestorID = investorID
	return b
}

// WithAmount sets a custom amount.
func (b *InvestmentBuilder) WithAmount(amount float64) *InvestmentBuilder {
	b.Amount = amount
	return b
}

// WithInvestedDate sets a custom invested date.
func (b *InvestmentBuilder) WithInvestedDate(date time.Time) *InvestmentBuilder {
	b.InvestedDate = date
	return b
}

// Build creates the investment in the database and returns it.
// A database trigger adds the amount to the investor's running total.
func (b *InvestmentBuilder) Build(t *testing.T, db *sql.DB) model.Investment {
	t.Helper()

	query := `
		INSERT INTO investment (id, investor_id, amount, invested_date, notes)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.InvestorID, b.Amount, b.InvestedDate.Format("2006-01-02"), b.Notes)
	if err != nil {
		t.Fatalf("Failed to create test investment: %v", err)
	}

	return model.Investment{
		ID:           b.ID,
		InvestorID:   b.InvestorID,
		Amount:       b.Amount,
		InvestedDate: b.InvestedDate,
		Notes:        b.Notes,
	}
}

// WaitingPeriodEntryBuilder provides a fluent interface for creating test
// waiting-period entries.
type WaitingPeriodEntryBuilder struct {
	ID              string
	InvestorID      string
	Amount          float64
	InitializedDate time.Time
	Delivered       bool
	DeliveredAt     *time.Time
	Notes           string
}

// NewWaitingPeriodEntry creates a WaitingPeriodEntryBuilder with sensible
// defaults. InvestorID must be set before Build.
func NewWaitingPeriodEntry() *WaitingPeriodEntryBuilder {
	return &WaitingPeriodEntryBuilder{
		ID:              MakeID(),
		Amount:          50000,
		InitializedDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

// WithInvestor sets the owning investor.
func (b *WaitingPeriodEntryBuilder) WithInvestor(investorID string) *WaitingPeriodEntryBuilder {
	b.InvestorID = investorID
	return b
}

// WithAmount sets a custom amount.
func (b *WaitingPeriodEntryBuilder) WithAmount(amount float64) *WaitingPeriodEntryBuilder {
	b.Amount = amount
	return b
}

// WithInitializedDate sets a custom initialization time.
func (b *WaitingPeriodEntryBuilder) WithInitializedDate(date time.Time) *WaitingPeriodEntryBuilder {
	b.InitializedDate = date
	return b
}

// DeliveredAtTime marks the entry delivered at the given time.
func (b *WaitingPeriodEntryBuilder) DeliveredAtTime(at time.Time) *WaitingPeriodEntryBuilder {
	b.Delivered = true
	b.DeliveredAt = &at
	return b
}

// Build creates the waiting-period entry in the database and returns it.
func (b *WaitingPeriodEntryBuilder) Build(t *testing.T, db *sql.DB) model.WaitingPeriodEntry {
	t.Helper()

	query := `
		INSERT INTO waiting_period_entry (id, investor_id, amount, initialized_date, delivered, delivered_at, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var deliveredAt any
	if b.DeliveredAt != nil {
		deliveredAt = b.DeliveredAt.UTC().Format("2006-01-02 15:04:05")
	}

	_, err := db.Exec(query,
		b.ID, b.InvestorID, b.Amount, b.InitializedDate.UTC().Format("2006-01-02 15:04:05"),
		b.Delivered, deliveredAt, b.Notes)
	if err != nil {
		t.Fatalf("Failed to create test waiting-period entry: %v", err)
	}

	return model.WaitingPeriodEntry{
		ID:              b.ID,
		InvestorID:      b.InvestorID,
		Amount:          b.Amount,
		InitializedDate: b.InitializedDate,
		Delivered:       b.Delivered,
		DeliveredAt:     b.DeliveredAt,
		Notes:           b.Notes,
	}
}

// MonthlyReturnBuilder provides a fluent interface for creating test monthly
// returns.
type MonthlyReturnBuilder struct {
	ID            string
	InvestorID    string
	Month         string
	Amount        float64
	ReturnPercent float64
	Status        string
	PaidAt        *time.Time
}

// NewMonthlyReturn creates a MonthlyReturnBuilder with sensible defaults.
// InvestorID must be set before Build.
func NewMonthlyReturn() *MonthlyReturnBuilder {
	return &MonthlyReturnBuilder{
		ID:            MakeID(),
		Month:         "2025-01",
		Amount:        2500,
		ReturnPercent: 2.5,
		Status:        model.ReturnStatusPending,
	}
}

// WithInvestor sets the owning investor.
func (b *MonthlyReturnBuilder) WithInvestor(investorID string) *MonthlyReturnBuilder {
	b.InvestorID = investorID
	return b
}

// WithMonth sets a custom month (YYYY-MM).
func (b *MonthlyReturnBuilder) WithMonth(month string) *MonthlyReturnBuilder {
	b.Month = month
	return b
}

// WithAmount sets a custom amount.
func (b *MonthlyReturnBuilder) WithAmount(amount float64) *MonthlyReturnBuilder {
	b.Amount = amount
	return b
}

// Paid marks the return as paid at the given time.
func (b *MonthlyReturnBuilder) Paid(at time.Time) *MonthlyReturnBuilder {
	b.Status = model.ReturnStatusPaid
	b.PaidAt = &at
	return b
}

// Build creates the monthly return in the database and returns it.
func (b *MonthlyReturnBuilder) Build(t *testing.T, db *sql.DB) model.MonthlyReturn {
	t.Helper()

	query := `
		INSERT INTO monthly_return (id, investor_id, month, amount, return_percent, status, paid_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var paidAt any
	if b.PaidAt != nil {
		paidAt = b.PaidAt.UTC().Format("2006-01-02 15:04:05")
	}

	_, err := db.Exec(query,
		b.ID, b.InvestorID, b.Month, b.Amount, b.ReturnPercent, b.Status, paidAt)
	if err != nil {
		t.Fatalf("Failed to create test monthly return: %v", err)
	}

	return model.MonthlyReturn{
		ID:            b.ID,
		InvestorID:    b.InvestorID,
		Month:         b.Month,
		Amount:        b.Amount,
		ReturnPercent: b.ReturnPercent,
		Status:        b.Status,
		PaidAt:        b.PaidAt,
	}
}

// TradingAccountBuilder provides a fluent interface for creating test trading
// accounts.
type TradingAccountBuilder struct {
	ID               string
	Name             string
	Broker           string
	CapitalAllocated float64
	Status           string
}

// NewTradingAccount creates a TradingAccountBuilder with sensible defaults.
func NewTradingAccount() *TradingAccountBuilder {
	return &TradingAccountBuilder{
		ID:               MakeID(),
		Name:             "Test Account",
		Broker:           "Test Broker",
		CapitalAllocated: 500000,
		Status:           model.AccountStatusActive,
	}
}

// WithName sets a custom name.
func (b *TradingAccountBuilder) WithName(name string) *TradingAccountBuilder {
	b.Name = name
	return b
}

// WithCapitalAllocated sets a custom allocated capital.
func (b *TradingAccountBuilder) WithCapitalAllocated(amount float64) *TradingAccountBuilder {
	b.CapitalAllocated = amount
	return b
}

// Build creates the trading account in the database and returns it.
func (b *TradingAccountBuilder) Build(t *testing.T, db *sql.DB) model.TradingAccount {
	t.Helper()

	query := `
		INSERT INTO trading_account (id, name, broker, capital_allocated, status)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, b.Broker, b.CapitalAllocated, b.Status)
	if err != nil {
		t.Fatalf("Failed to create test trading account: %v", err)
	}

	return model.TradingAccount{
		ID:               b.ID,
		Name:             b.Name,
		Broker:           b.Broker,
		CapitalAllocated: b.CapitalAllocated,
		Status:           b.Status,
	}
}

// DailyPnLBuilder provides a fluent interface for creating test daily P&L
// entries.
type DailyPnLBuilder struct {
	ID          string
	AccountID   string
	Date        time.Time
	IndexName   string
	PnLAmount   float64
	CapitalUsed float64
	Notes       string
}

// NewDailyPnL creates a DailyPnLBuilder with sensible defaults.
// AccountID must be set before Build.
func NewDailyPnL() *DailyPnLBuilder {
	return &DailyPnLBuilder{
		ID:          MakeID(),
		Date:        time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC),
		IndexName:   "NIFTY",
		PnLAmount:   5000,
		CapitalUsed: 100000,
	}
}

// WithAccount sets the owning trading account.
func (b *DailyPnLBuilder) WithAccount(accountID string) *DailyPnLBuilder {
	b.AccountID = accountID
	return b
}

// WithDate sets a custom trading date.
func (b *DailyPnLBuilder) WithDate(date time.Time) *DailyPnLBuilder {
	b.Date = date
	return b
}

// WithPnLAmount sets a custom P&L amount. Negative values record a loss.
func (b *DailyPnLBuilder) WithPnLAmount(amount float64) *DailyPnLBuilder {
	b.PnLAmount = amount
	return b
}

// Build creates the daily P&L entry in the database and returns it.
func (b *DailyPnLBuilder) Build(t *testing.T, db *sql.DB) model.DailyPnLEntry {
	t.Helper()

	query := `
		INSERT INTO daily_pnl (id, account_id, date, index_name, pnl_amount, capital_used, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.AccountID, b.Date.Format("2006-01-02"), b.IndexName, b.PnLAmount, b.CapitalUsed, b.Notes)
	if err != nil {
		t.Fatalf("Failed to create test daily P&L entry: %v", err)
	}

	return model.DailyPnLEntry{
		ID:          b.ID,
		AccountID:   b.AccountID,
		Date:        b.Date,
		IndexName:   b.IndexName,
		PnLAmount:   b.PnLAmount,
		CapitalUsed: b.CapitalUsed,
		Notes:       b.Notes,
	}
}

// ExpenseBuilder provides a fluent interface for creating test expenses.
type ExpenseBuilder struct {
	ID     string
	Amount float64
	Date   time.Time
	Notes  string
}

// NewExpense creates an ExpenseBuilder with sensible defaults.
func NewExpense() *ExpenseBuilder {
	return &ExpenseBuilder{
		ID:     MakeID(),
		Amount: 1200,
		Date:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		Notes:  "Test expense",
	}
}

// WithAmount sets a custom amount.
func (b *ExpenseBuilder) WithAmount(amount float64) *ExpenseBuilder {
	b.Amount = amount
	return b
}

// WithDate sets a custom date.
func (b *ExpenseBuilder) WithDate(date time.Time) *ExpenseBuilder {
	b.Date = date
	return b
}

// Build creates the expense in the database and returns it.
func (b *ExpenseBuilder) Build(t *testing.T, db *sql.DB) model.Expense {
	t.Helper()

	query := `
		INSERT INTO expense (id, amount, date, notes)
		VALUES (?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Amount, b.Date.Format("2006-01-02"), b.Notes)
	if err != nil {
		t.Fatalf("Failed to create test expense: %v", err)
	}

	return model.Expense{
		ID:     b.ID,
		Amount: b.Amount,
		Date:   b.Date,
		Notes:  b.Notes,
	}
}

// AgreementBuilder provides a fluent interface for creating test agreement
// records.
type AgreementBuilder struct {
	ID         string
	InvestorID string
	FileName   string
	FilePath   string
	Version    int
}

// NewAgreement creates an AgreementBuilder with sensible defaults.
// InvestorID must be set before Build.
func NewAgreement() *AgreementBuilder {
	return &AgreementBuilder{
		ID:       MakeID(),
		FileName: "agreement.pdf",
		FilePath: "/agreements/agreement.pdf",
		Version:  1,
	}
}

// WithInvestor sets the owning investor.
func (b *AgreementBuilder) WithInvestor(investorID string) *AgreementBuilder {
	b.InvestorID = investorID
	return b
}

// WithVersion sets a custom version.
func (b *AgreementBuilder) WithVersion(version int) *AgreementBuilder {
	b.Version = version
	return b
}

// Build creates the agreement record in the database and returns it.
func (b *AgreementBuilder) Build(t *testing.T, db *sql.DB) model.AgreementRecord {
	t.Helper()

	query := `
		INSERT INTO agreement (id, investor_id, file_name, file_path, version)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.InvestorID, b.FileName, b.FilePath, b.Version)
	if err != nil {
		t.Fatalf("Failed to create test agreement: %v", err)
	}

	return model.AgreementRecord{
		ID:         b.ID,
		InvestorID: b.InvestorID,
		FileName:   b.FileName,
		FilePath:   b.FilePath,
		Version:    b.Version,
	}
}

// Convenience functions

// CreateInvestor creates an investor with the given name and default values.
func CreateInvestor(t *testing.T, db *sql.DB, name string) model.Investor {
	t.Helper()
	return NewInvestor().WithFullName(name).Build(t, db)
}

// CreateInvestorWithCapital creates an investor and a single investment of the
// given amount.
func CreateInvestorWithCapital(t *testing.T, db *sql.DB, name string, amount float64) model.Investor {
	t.Helper()
	investor := NewInvestor().WithFullName(name).Build(t, db)
	NewInvestment().WithInvestor(investor.ID).WithAmount(amount).Build(t, db)
	return investor
}
