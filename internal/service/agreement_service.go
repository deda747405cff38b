package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/api/request"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/model"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/repository"
)

// AgreementService handles agreement file metadata. The files themselves
// live outside this system; only name, path and version are tracked.
type AgreementService struct {
	agreementRepo *repository.AgreementRepository
	investorRepo  *repository.InvestorRepository
	auditService  *AuditService
}

// NewAgreementService creates a new AgreementService with the provided dependencies.
func NewAgreementService(
	agreementRepo *repository.AgreementRepository,
	investorRepo *repository.InvestorRepository,
	auditService *AuditService,
) *AgreementService {
	return &AgreementService{
		agreementRepo: agreementRepo,
		investorRepo:  investorRepo,
		auditService:  auditService,
	}
}

// GetAgreements retrieves all agreements with investor display fields.
func (s *AgreementService) GetAgreements() ([]model.AgreementWithInvestor, error) {
	return s.agreementRepo.GetAgreementsWithInvestor()
}

// GetAgreementsOnInvestor retrieves all agreements for one investor.
func (s *AgreementService) GetAgreementsOnInvestor(investorID string) ([]model.AgreementRecord, error) {
	return s.agreementRepo.GetAgreementsOnInvestorID(investorID)
}

// CreateAgreement records an agreement. When no version is supplied, the
// next version for the investor is assigned.
func (s *AgreementService) CreateAgreement(req request.CreateAgreementRequest) (model.AgreementRecord, error) {
	if _, err := s.investorRepo.GetInvestorOnID(req.InvestorID); err != nil {
		return model.AgreementRecord{}, err
	}

	version := 0
	if req.Version != nil {
		version = *req.Version
	} else {
		latest, err := s.agreementRepo.GetLatestVersionOnInvestorID(req.InvestorID)
		if err != nil {
			return model.AgreementRecord{}, err
		}
		version = latest + 1
	}

	agreement := model.AgreementRecord{
		ID:         uuid.New().String(),
		InvestorID: req.InvestorID,
		FileName:   req.FileName,
		FilePath:   req.FilePath,
		Version:    version,
	}

	agreement, err := s.agreementRepo.CreateAgreement(agreement)
	if err != nil {
		return model.AgreementRecord{}, err
	}

	s.auditService.Record("Agreement recorded", agreement.ID, "Agreements",
		fmt.Sprintf("Version %d recorded for investor %s", agreement.Version, agreement.InvestorID))

	return agreement, nil
}

// DeleteAgreement removes an agreement record.
func (s *AgreementService) DeleteAgreement(agreementID string) error {
	return s.agreementRepo.DeleteAgreement(agreementID)
}
