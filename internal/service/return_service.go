package service

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/api/request"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/model"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/repository"
)

// ReturnService handles monthly payout records.
type ReturnService struct {
	returnRepo     *repository.MonthlyReturnRepository
	investorRepo   *repository.InvestorRepository
	capitalService *CapitalService
	auditService   *AuditService
}

// NewReturnService creates a new ReturnService with the provided dependencies.
func NewReturnService(
	returnRepo *repository.MonthlyReturnRepository,
	investorRepo *repository.InvestorRepository,
	capitalService *CapitalService,
	auditService *AuditService,
) *ReturnService {
	return &ReturnService{
		returnRepo:     returnRepo,
		investorRepo:   investorRepo,
		capitalService: capitalService,
		auditService:   auditService,
	}
}

// GetReturnsOnInvestor retrieves all monthly returns for one investor.
func (s *ReturnService) GetReturnsOnInvestor(investorID string) ([]model.MonthlyReturn, error) {
	return s.returnRepo.GetReturnsOnInvestorID(investorID)
}

// GetAllReturns retrieves every monthly return with investor display fields.
func (s *ReturnService) GetAllReturns() ([]model.MonthlyReturnWithInvestor, error) {
	return s.returnRepo.GetAllReturnsWithInvestor()
}

// CreateReturn creates a pending payout for a month. The amount is the
// investor's remaining capital times the return percentage, rounded to the
// nearest whole currency unit, captured at creation time. One return per
// investor per month.
func (s *ReturnService) CreateReturn(req request.CreateReturnRequest) (model.MonthlyReturn, error) {
	if _, err := s.investorRepo.GetInvestorOnID(req.InvestorID); err != nil {
		return model.MonthlyReturn{}, err
	}

	remaining, err := s.capitalService.RemainingCapital(req.InvestorID)
	if err != nil {
		return model.MonthlyReturn{}, fmt.Errorf("failed to compute remaining capital: %w", err)
	}

	ret := model.MonthlyReturn{
		ID:            uuid.New().String(),
		InvestorID:    req.InvestorID,
		Month:         req.Month,
		Amount:        math.Round(remaining * req.ReturnPercent / 100),
		ReturnPercent: req.ReturnPercent,
		Status:        model.ReturnStatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	ret, err = s.returnRepo.CreateReturn(ret)
	if err != nil {
		return model.MonthlyReturn{}, err
	}

	s.auditService.Record("Monthly return created", ret.ID, "Returns",
		fmt.Sprintf("Return of %.0f for %s created for investor %s", ret.Amount, ret.Month, ret.InvestorID))

	return ret, nil
}

// UpdateReturnStatus transitions a payout record. paid_at is stamped on the
// transition to paid and left untouched on any other transition.
func (s *ReturnService) UpdateReturnStatus(returnID string, req request.UpdateReturnStatusRequest) (model.MonthlyReturn, error) {
	var paidAt *time.Time
	if req.Status == model.ReturnStatusPaid {
		now := time.Now().UTC()
		paidAt = &now
	}

	ret, err := s.returnRepo.UpdateReturnStatus(returnID, req.Status, paidAt)
	if err != nil {
		return model.MonthlyReturn{}, err
	}

	s.auditService.Record("Return status changed", ret.ID, "Returns",
		fmt.Sprintf("Return for %s marked %s", ret.Month, ret.Status))

	return ret, nil
}
