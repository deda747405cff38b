package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/model"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/repository"
)

// SweepService runs the investor-level maturation sweep: investors who have
// been in waiting_period for 60 days or more are moved to inactive, each
// with an audit record.
//
// This clock runs on investor.waiting_period_start and is independent of the
// per-entry maturation in the waiting-period ledger. The two measure
// different things: the ledger tracks capital portions, the sweep tracks the
// investor's overall status.
type SweepService struct {
	investorRepo *repository.InvestorRepository
}

// NewSweepService creates a new SweepService with the provided repository dependency.
func NewSweepService(investorRepo *repository.InvestorRepository) *SweepService {
	return &SweepService{investorRepo: investorRepo}
}

// SweepResult reports what a sweep run did.
type SweepResult struct {
	TransitionedCount int      `json:"transitioned_count"`
	InvestorIDs       []string `json:"investor_ids"`
}

// Run transitions every investor whose waiting period started at least 60
// days before now. Status flips and their audit records are committed in a
// single transaction. Idempotent: a second run finds no matching investors
// and writes nothing.
func (s *SweepService) Run(now time.Time) (SweepResult, error) {
	cutoff := now.UTC().AddDate(0, 0, -WaitingPeriodDays)

	investors, err := s.investorRepo.GetWaitingPeriodInvestorsBefore(cutoff)
	if err != nil {
		return SweepResult{}, fmt.Errorf("failed to load waiting period investors: %w", err)
	}

	result := SweepResult{InvestorIDs: []string{}}
	if len(investors) == 0 {
		return result, nil
	}

	err = s.investorRepo.TransitionWaitingPeriodInvestors(investors, func(inv model.Investor) model.AuditLogEntry {
		return model.AuditLogEntry{
			ID:          uuid.New().String(),
			Action:      "Auto-transitioned to Inactive",
			ReferenceID: inv.ID,
			Module:      "Investors",
			Notes:       fmt.Sprintf("%s moved to inactive after 60 days in waiting period", inv.FullName),
		}
	})
	if err != nil {
		return SweepResult{}, err
	}

	result.TransitionedCount = len(investors)
	for _, inv := range investors {
		result.InvestorIDs = append(result.InvestorIDs, inv.ID)
	}

	return result, nil
}
