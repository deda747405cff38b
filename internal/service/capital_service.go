package service

import (
	"fmt"
	"iter"
	"time"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/model"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/repository"
)

// CapitalService computes derived capital figures from investments and the
// waiting-period ledger. Nothing here is persisted; every figure is
// recomputed from raw rows on each call.
type CapitalService struct {
	investmentRepo *repository.InvestmentRepository
	entryRepo      *repository.WaitingPeriodRepository
}

// NewCapitalService creates a new CapitalService with the provided repository dependencies.
func NewCapitalService(
	investmentRepo *repository.InvestmentRepository,
	entryRepo *repository.WaitingPeriodRepository,
) *CapitalService {
	return &CapitalService{
		investmentRepo: investmentRepo,
		entryRepo:      entryRepo,
	}
}

// RemainingCapital computes the investor's contributed capital that has not
// yet entered the return pipeline:
//
//	max(0, totalInvested − sum(all waiting-period entries))
//
// Every entry counts against remaining capital from the moment it is
// initialized, pending or delivered; the capital is earmarked for return
// either way. The floor keeps return-percentage calculations on a
// non-negative base.
func (s *CapitalService) RemainingCapital(investorID string) (float64, error) {
	investments, err := s.investmentRepo.GetInvestmentsOnInvestorID(investorID)
	if err != nil {
		return 0, fmt.Errorf("failed to load investments: %w", err)
	}

	entries, err := s.entryRepo.GetEntriesOnInvestorID(investorID)
	if err != nil {
		return 0, fmt.Errorf("failed to load waiting period entries: %w", err)
	}

	var invested float64
	for _, inv := range investments {
		invested += inv.Amount
	}

	return max(0, invested-SumAmounts(entries)), nil
}

// CapitalReturned computes the total matured capital for an investor as of
// the given time: the sum over entries the maturation predicate classifies
// as delivered.
func (s *CapitalService) CapitalReturned(investorID string, asOf time.Time) (float64, error) {
	entries, err := s.entryRepo.GetEntriesOnInvestorID(investorID)
	if err != nil {
		return 0, fmt.Errorf("failed to load waiting period entries: %w", err)
	}

	return SumAmounts(Classify(entries, asOf).Delivered), nil
}

// FirmWideCapital computes total capital under management:
//
//	max(0, allocated − delivered) + pnl
//
// Allocated-minus-delivered is floored before P&L is added. Two divergent
// historical formulas existed for this figure; this is the defensive one and
// the other is superseded.
func FirmWideCapital(allocated, delivered, pnl float64) float64 {
	return max(0, allocated-delivered) + pnl
}

// InvestorCapitalSplit partitions firm-wide capital between outside
// investors and the firm. Both sides are floored at zero independently.
func InvestorCapitalSplit(invested, delivered, firmWideCapital float64) model.CapitalSplit {
	investorCapital := max(0, invested-delivered)
	return model.CapitalSplit{
		InvestorCapital: investorCapital,
		InternalCapital: max(0, firmWideCapital-investorCapital),
	}
}

// EquityCurve returns a lazy prefix sum over P&L entries starting from the
// given base. The sequence is finite and restartable; iterating it twice
// yields the same points.
func EquityCurve(entries []model.DailyPnLEntry, startingBase float64) iter.Seq[model.EquityPoint] {
	return func(yield func(model.EquityPoint) bool) {
		equity := startingBase
		for _, entry := range entries {
			equity += entry.PnLAmount
			point := model.EquityPoint{
				Date:   entry.Date.Format("2006-01-02"),
				Equity: equity,
			}
			if !yield(point) {
				return
			}
		}
	}
}

// GrowthPercent computes percentage growth between the first and last equity
// value. Defined as 0 when the starting equity is not positive.
func GrowthPercent(startEquity, endEquity float64) float64 {
	if startEquity <= 0 {
		return 0
	}
	return (endEquity - startEquity) / startEquity * 100
}
