package service

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/model"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/repository"
)

// AuditService handles the append-only audit trail.
type AuditService struct {
	auditRepo *repository.AuditRepository
}

// NewAuditService creates a new AuditService with the provided repository dependency.
func NewAuditService(auditRepo *repository.AuditRepository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// Record appends an audit entry. Audit writes are best-effort alongside the
// primary operation: a failure is logged, never propagated, so an audit
// outage cannot block business writes. Writes that must be atomic with
// their audit record (the maturation sweep) go through a repository
// transaction instead.
func (s *AuditService) Record(action, referenceID, module, notes string) {
	entry := model.AuditLogEntry{
		ID:          uuid.New().String(),
		Action:      action,
		ReferenceID: referenceID,
		Module:      module,
		Notes:       notes,
		Timestamp:   time.Now().UTC(),
	}

	if err := s.auditRepo.Append(entry); err != nil {
		log.Printf("failed to append audit log entry: %v", err)
	}
}

// GetLogs retrieves the most recent audit entries, newest first.
func (s *AuditService) GetLogs(limit int) ([]model.AuditLogEntry, error) {
	return s.auditRepo.GetLogs(limit)
}

// GetLogsOnReferenceID retrieves audit entries for a given reference.
func (s *AuditService) GetLogsOnReferenceID(referenceID string) ([]model.AuditLogEntry, error) {
	return s.auditRepo.GetLogsOnReferenceID(referenceID)
}
