package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/api/request"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/apperrors"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/model"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/repository"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/validation"
)

// InvestorService handles investor lifecycle operations.
type InvestorService struct {
	investorRepo *repository.InvestorRepository
	auditService *AuditService
}

// NewInvestorService creates a new InvestorService with the provided dependencies.
func NewInvestorService(
	investorRepo *repository.InvestorRepository,
	auditService *AuditService,
) *InvestorService {
	return &InvestorService{
		investorRepo: investorRepo,
		auditService: auditService,
	}
}

// GetInvestors retrieves all investors.
func (s *InvestorService) GetInvestors() ([]model.Investor, error) {
	return s.investorRepo.GetInvestors()
}

// GetInvestor retrieves a single investor by ID.
func (s *InvestorService) GetInvestor(investorID string) (model.Investor, error) {
	return s.investorRepo.GetInvestorOnID(investorID)
}

// CreateInvestor creates a new investor. The external client id is assigned
// by the database at insert time and returned on the created record.
func (s *InvestorService) CreateInvestor(req request.CreateInvestorRequest) (model.Investor, error) {
	joiningDate, err := time.Parse("2006-01-02", req.JoiningDate)
	if err != nil {
		return model.Investor{}, fmt.Errorf("failed to parse joining date: %w", err)
	}

	investor := model.Investor{
		ID:             uuid.New().String(),
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		PromisedReturn: req.PromisedReturn,
		Status:         model.InvestorStatusActive,
		JoiningDate:    joiningDate,
	}

	investor, err = s.investorRepo.CreateInvestor(investor)
	if err != nil {
		return model.Investor{}, err
	}

	s.auditService.Record("Investor created", investor.ID, "Investors",
		fmt.Sprintf("%s registered as %s", investor.FullName, investor.ClientID))

	return investor, nil
}

// UpdateInvestor applies partial field updates to an investor.
func (s *InvestorService) UpdateInvestor(investorID string, req request.UpdateInvestorRequest) (model.Investor, error) {
	update := model.InvestorUpdate{
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		PromisedReturn: req.PromisedReturn,
	}
	return s.investorRepo.UpdateInvestor(investorID, update)
}

// UpdateInvestorStatus transitions an investor to a new status. When the new
// status is waiting_period and no start date is given, the 60-day clock
// starts now.
func (s *InvestorService) UpdateInvestorStatus(investorID string, req request.UpdateInvestorStatusRequest) (model.Investor, error) {
	if !validation.ValidInvestorStatus[req.Status] {
		return model.Investor{}, apperrors.ErrInvalidStatus
	}

	var waitingStart *time.Time
	if req.Status == model.InvestorStatusWaitingPeriod {
		start := time.Now().UTC()
		if req.WaitingPeriodStart != nil {
			parsed, err := time.Parse("2006-01-02", *req.WaitingPeriodStart)
			if err != nil {
				return model.Investor{}, fmt.Errorf("failed to parse waiting period start: %w", err)
			}
			start = parsed
		}
		waitingStart = &start
	}

	if err := s.investorRepo.UpdateInvestorStatus(investorID, req.Status, waitingStart); err != nil {
		return model.Investor{}, err
	}

	investor, err := s.investorRepo.GetInvestorOnID(investorID)
	if err != nil {
		return model.Investor{}, err
	}

	s.auditService.Record("Investor status changed", investor.ID, "Investors",
		fmt.Sprintf("%s moved to %s", investor.FullName, investor.Status))

	return investor, nil
}

// DeleteInvestor removes an investor and all dependent records.
func (s *InvestorService) DeleteInvestor(investorID string) error {
	investor, err := s.investorRepo.GetInvestorOnID(investorID)
	if err != nil {
		return err
	}

	if err := s.investorRepo.DeleteInvestor(investorID); err != nil {
		return err
	}

	s.auditService.Record("Investor deleted", investorID, "Investors",
		fmt.Sprintf("%s removed with all dependent records", investor.FullName))

	return nil
}
