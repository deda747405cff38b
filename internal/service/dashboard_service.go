package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/apperrors"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/model"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/repository"
)

// DashboardService assembles the firm-wide dashboard aggregate. All inputs
// are loaded concurrently; any single failed read fails the whole aggregate,
// since a silently-zero component would understate capital figures.
type DashboardService struct {
	investorRepo   *repository.InvestorRepository
	investmentRepo *repository.InvestmentRepository
	entryRepo      *repository.WaitingPeriodRepository
	returnRepo     *repository.MonthlyReturnRepository
	tradingRepo    *repository.TradingRepository
	expenseRepo    *repository.ExpenseRepository
}

// NewDashboardService creates a new DashboardService with the provided repository dependencies.
func NewDashboardService(
	investorRepo *repository.InvestorRepository,
	investmentRepo *repository.InvestmentRepository,
	entryRepo *repository.WaitingPeriodRepository,
	returnRepo *repository.MonthlyReturnRepository,
	tradingRepo *repository.TradingRepository,
	expenseRepo *repository.ExpenseRepository,
) *DashboardService {
	return &DashboardService{
		investorRepo:   investorRepo,
		investmentRepo: investmentRepo,
		entryRepo:      entryRepo,
		returnRepo:     returnRepo,
		tradingRepo:    tradingRepo,
		expenseRepo:    expenseRepo,
	}
}

// dashboardData holds the raw rows the aggregate is computed from.
type dashboardData struct {
	investors   []model.Investor
	investments []model.Investment
	entries     []model.WaitingPeriodEntry
	returns     []model.MonthlyReturn
	accounts    []model.TradingAccount
	pnl         []model.DailyPnLEntry
	expenses    []model.Expense
}

func (s *DashboardService) load(ctx context.Context) (dashboardData, error) {
	var data dashboardData

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		investors, err := s.investorRepo.GetInvestors()
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveInvestors, err)
		}
		data.investors = investors
		return nil
	})
	g.Go(func() error {
		investments, err := s.investmentRepo.GetAllInvestments()
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveInvestments, err)
		}
		data.investments = investments
		return nil
	})
	g.Go(func() error {
		entries, err := s.entryRepo.GetAllEntries()
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveWaitingEntries, err)
		}
		data.entries = entries
		return nil
	})
	g.Go(func() error {
		returns, err := s.returnRepo.GetAllReturns()
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveReturns, err)
		}
		data.returns = returns
		return nil
	})
	g.Go(func() error {
		accounts, err := s.tradingRepo.GetAccounts()
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveAccounts, err)
		}
		data.accounts = accounts
		return nil
	})
	g.Go(func() error {
		pnl, err := s.tradingRepo.GetAllPnLOrderedByDate()
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrievePnL, err)
		}
		data.pnl = pnl
		return nil
	})
	g.Go(func() error {
		expenses, err := s.expenseRepo.GetExpenses()
		if err != nil {
			return fmt.Errorf("failed to retrieve expenses: %w", err)
		}
		data.expenses = expenses
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboardData{}, err
	}

	return data, nil
}

// GetDashboard computes the dashboard aggregate as of now.
func (s *DashboardService) GetDashboard(ctx context.Context) (model.DashboardStats, error) {
	data, err := s.load(ctx)
	if err != nil {
		return model.DashboardStats{}, err
	}

	return computeDashboard(data, time.Now()), nil
}

func computeDashboard(data dashboardData, asOf time.Time) model.DashboardStats {
	var totalInvested float64
	for _, inv := range data.investments {
		totalInvested += inv.Amount
	}

	totalDelivered := SumAmounts(Classify(data.entries, asOf).Delivered)

	var totalAllocated float64
	for _, account := range data.accounts {
		totalAllocated += account.CapitalAllocated
	}

	var totalPnL float64
	wins := 0
	for _, entry := range data.pnl {
		totalPnL += entry.PnLAmount
		if entry.PnLAmount > 0 {
			wins++
		}
	}

	winRate := 0.0
	if len(data.pnl) > 0 {
		winRate = math.Round(float64(wins)/float64(len(data.pnl))*1000) / 10
	}

	var pendingReturns float64
	for _, ret := range data.returns {
		if ret.Status == model.ReturnStatusPending {
			pendingReturns += ret.Amount
		}
	}

	var totalExpenses float64
	for _, expense := range data.expenses {
		totalExpenses += expense.Amount
	}

	newInvestors := 0
	monthStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC)
	for _, inv := range data.investors {
		if !inv.CreatedAt.Before(monthStart) {
			newInvestors++
		}
	}

	activeAllocated := max(0, totalAllocated-totalDelivered)
	totalCapital := FirmWideCapital(totalAllocated, totalDelivered, totalPnL)
	split := InvestorCapitalSplit(totalInvested, totalDelivered, totalCapital)

	curve := []model.EquityPoint{}
	for point := range EquityCurve(data.pnl, activeAllocated) {
		curve = append(curve, point)
	}

	equityGrowth := 0.0
	if len(curve) > 0 {
		equityGrowth = GrowthPercent(activeAllocated, curve[len(curve)-1].Equity)
	}

	return model.DashboardStats{
		TotalInvestors:   len(data.investors),
		NewInvestors:     newInvestors,
		TotalCapital:     totalCapital,
		NetProfit:        totalPnL - totalExpenses,
		PendingReturns:   pendingReturns,
		WinRate:          winRate,
		TotalTrades:      len(data.pnl),
		EquityGrowth:     equityGrowth,
		EquityCurve:      curve,
		InvestorCapital:  split.InvestorCapital,
		InternalCapital:  split.InternalCapital,
		TotalInvested:    totalInvested,
		TotalDelivered:   totalDelivered,
		AllocatedCapital: totalAllocated,
	}
}
