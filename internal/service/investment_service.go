package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/api/request"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/model"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/repository"
)

// InvestmentService handles capital contribution records.
type InvestmentService struct {
	investmentRepo *repository.InvestmentRepository
	investorRepo   *repository.InvestorRepository
	auditService   *AuditService
}

// NewInvestmentService creates a new InvestmentService with the provided dependencies.
func NewInvestmentService(
	investmentRepo *repository.InvestmentRepository,
	investorRepo *repository.InvestorRepository,
	auditService *AuditService,
) *InvestmentService {
	return &InvestmentService{
		investmentRepo: investmentRepo,
		investorRepo:   investorRepo,
		auditService:   auditService,
	}
}

// GetInvestmentsOnInvestor retrieves all investments for one investor.
func (s *InvestmentService) GetInvestmentsOnInvestor(investorID string) ([]model.Investment, error) {
	return s.investmentRepo.GetInvestmentsOnInvestorID(investorID)
}

// CreateInvestment records a capital contribution. Investments are
// immutable; corrections are handled with offsetting records, not updates.
func (s *InvestmentService) CreateInvestment(req request.CreateInvestmentRequest) (model.Investment, error) {
	if _, err := s.investorRepo.GetInvestorOnID(req.InvestorID); err != nil {
		return model.Investment{}, err
	}

	investedDate, err := time.Parse("2006-01-02", req.InvestedDate)
	if err != nil {
		return model.Investment{}, fmt.Errorf("failed to parse invested date: %w", err)
	}

	investment := model.Investment{
		ID:             uuid.New().String(),
		InvestorID:     req.InvestorID,
		Amount:         req.Amount,
		InvestedDate:   investedDate,
		PromisedReturn: req.PromisedReturn,
		Notes:          req.Notes,
		CreatedAt:      time.Now().UTC(),
	}

	investment, err = s.investmentRepo.CreateInvestment(investment)
	if err != nil {
		return model.Investment{}, fmt.Errorf("failed to create investment: %w", err)
	}

	s.auditService.Record("Investment recorded", investment.ID, "Investments",
		fmt.Sprintf("Contribution of %.2f recorded for investor %s", investment.Amount, investment.InvestorID))

	return investment, nil
}
