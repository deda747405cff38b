package testutil

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/repository"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/service"
)

// MakeID generates a unique UUID for test entities.
func MakeID() string {
	return uuid.New().String()
}

// Service constructors wire services exactly the way the server does, so
// tests exercise the production dependency graph against a test database.

// NewTestAuditService creates an AuditService backed by the test database.
func NewTestAuditService(db *sql.DB) *service.AuditService {
	return service.NewAuditService(repository.NewAuditRepository(db))
}

// NewTestCapitalService creates a CapitalService backed by the test database.
func NewTestCapitalService(db *sql.DB) *service.CapitalService {
	return service.NewCapitalService(
		repository.NewInvestmentRepository(db),
		repository.NewWaitingPeriodRepository(db),
	)
}

// NewTestWaitingPeriodService creates a WaitingPeriodService backed by the
// test database.
func NewTestWaitingPeriodService(db *sql.DB) *service.WaitingPeriodService {
	return service.NewWaitingPeriodService(
		repository.NewWaitingPeriodRepository(db),
		repository.NewInvestorRepository(db),
		NewTestCapitalService(db),
		NewTestAuditService(db),
	)
}

// NewTestInvestorService creates an InvestorService backed by the test
// database.
func NewTestInvestorService(db *sql.DB) *service.InvestorService {
	return service.NewInvestorService(
		repository.NewInvestorRepository(db),
		NewTestAuditService(db),
	)
}

// NewTestInvestmentService creates an InvestmentService backed by the test
// database.
func NewTestInvestmentService(db *sql.DB) *service.InvestmentService {
	return service.NewInvestmentService(
		repository.NewInvestmentRepository(db),
		repository.NewInvestorRepository(db),
		NewTestAuditService(db),
	)
}

// NewTestReturnService creates a ReturnService backed by the test database.
func NewTestReturnService(db *sql.DB) *service.ReturnService {
	return service.NewReturnService(
		repository.NewMonthlyReturnRepository(db),
		repository.NewInvestorRepository(db),
		NewTestCapitalService(db),
		NewTestAuditService(db),
	)
}

// NewTestTradingService creates a TradingService backed by the test database.
func NewTestTradingService(db *sql.DB) *service.TradingService {
	return service.NewTradingService(
		repository.NewTradingRepository(db),
		NewTestAuditService(db),
	)
}

// NewTestExpenseService creates an ExpenseService backed by the test database.
func NewTestExpenseService(db *sql.DB) *service.ExpenseService {
	return service.NewExpenseService(repository.NewExpenseRepository(db))
}

// NewTestAgreementService creates an AgreementService backed by the test
// database.
func NewTestAgreementService(db *sql.DB) *service.AgreementService {
	return service.NewAgreementService(
		repository.NewAgreementRepository(db),
		repository.NewInvestorRepository(db),
		NewTestAuditService(db),
	)
}

// NewTestDashboardService creates a DashboardService backed by the test
// database.
func NewTestDashboardService(db *sql.DB) *service.DashboardService {
	return service.NewDashboardService(
		repository.NewInvestorRepository(db),
		repository.NewInvestmentRepository(db),
		repository.NewWaitingPeriodRepository(db),
		repository.NewMonthlyReturnRepository(db),
		repository.NewTradingRepository(db),
		repository.NewExpenseRepository(db),
	)
}

// NewTestSweepService creates a SweepService backed by the test database.
func NewTestSweepService(db *sql.DB) *service.SweepService {
	return service.NewSweepService(repository.NewInvestorRepository(db))
}
