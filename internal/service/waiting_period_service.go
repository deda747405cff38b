package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/api/request"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/apperrors"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/model"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/repository"
)

// WaitingPeriodDays is the maturation window for a capital return. An entry
// older than this is considered delivered even without the manual flag.
const WaitingPeriodDays = 60

// IsMatured reports whether a waiting-period entry has matured as of the
// given time: either the manual delivered flag is set, or at least 60 whole
// days have elapsed since the entry was initialized.
//
// This predicate is the single source of truth for maturation. Every
// consumer (dashboard, investor profile, capital aggregates, reports) must
// go through it or through Classify; the day arithmetic is never inlined
// elsewhere.
//
// The elapsed-day count uses whole days in UTC. A future initialized date
// yields a negative duration and therefore never matures early.
func IsMatured(entry model.WaitingPeriodEntry, asOf time.Time) bool {
	if entry.Delivered {
		return true
	}
	days := int(asOf.UTC().Sub(entry.InitializedDate.UTC()).Hours() / 24)
	return days >= WaitingPeriodDays
}

// Classify partitions entries into pending and delivered groups as of the
// given time. Pure function; every entry of the input lands in exactly one
// group.
func Classify(entries []model.WaitingPeriodEntry, asOf time.Time) model.WaitingPeriodClassification {
	result := model.WaitingPeriodClassification{
		Pending:   []model.WaitingPeriodEntry{},
		Delivered: []model.WaitingPeriodEntry{},
	}

	for _, entry := range entries {
		if IsMatured(entry, asOf) {
			result.Delivered = append(result.Delivered, entry)
		} else {
			result.Pending = append(result.Pending, entry)
		}
	}

	return result
}

// SumAmounts totals the amounts of the given entries.
func SumAmounts(entries []model.WaitingPeriodEntry) float64 {
	var total float64
	for _, entry := range entries {
		total += entry.Amount
	}
	return total
}

// WaitingPeriodService handles the waiting-period ledger: creation,
// maturation classification and the one-way manual delivery override.
type WaitingPeriodService struct {
	entryRepo      *repository.WaitingPeriodRepository
	investorRepo   *repository.InvestorRepository
	capitalService *CapitalService
	auditService   *AuditService
}

// NewWaitingPeriodService creates a new WaitingPeriodService with the provided dependencies.
func NewWaitingPeriodService(
	entryRepo *repository.WaitingPeriodRepository,
	investorRepo *repository.InvestorRepository,
	capitalService *CapitalService,
	auditService *AuditService,
) *WaitingPeriodService {
	return &WaitingPeriodService{
		entryRepo:      entryRepo,
		investorRepo:   investorRepo,
		capitalService: capitalService,
		auditService:   auditService,
	}
}

// GetEntries retrieves all waiting-period entries for an investor together
// with their pending/delivered classification as of now.
func (s *WaitingPeriodService) GetEntries(investorID string) (model.WaitingPeriodClassification, error) {
	entries, err := s.entryRepo.GetEntriesOnInvestorID(investorID)
	if err != nil {
		return model.WaitingPeriodClassification{}, err
	}
	return Classify(entries, time.Now()), nil
}

// InitializeReturn creates a waiting-period entry for an investor. The amount
// must be positive and must not exceed the investor's remaining capital at
// call time. Concurrent initializations are tolerated at least-effort; the
// check runs against the persisted sum immediately before the insert, with
// no cross-request locking.
//
// Investor status is not changed here; callers decide whether the investor
// also moves to waiting_period.
func (s *WaitingPeriodService) InitializeReturn(req request.InitializeReturnRequest) (model.WaitingPeriodEntry, error) {
	if req.Amount <= 0 {
		return model.WaitingPeriodEntry{}, apperrors.ErrAmountNotPositive
	}

	if _, err := s.investorRepo.GetInvestorOnID(req.InvestorID); err != nil {
		return model.WaitingPeriodEntry{}, err
	}

	remaining, err := s.capitalService.RemainingCapital(req.InvestorID)
	if err != nil {
		return model.WaitingPeriodEntry{}, fmt.Errorf("failed to compute remaining capital: %w", err)
	}
	if req.Amount > remaining {
		return model.WaitingPeriodEntry{}, apperrors.ErrAmountExceedsRemaining
	}

	initializedDate := time.Now().UTC()
	if req.InitializedDate != "" {
		initializedDate, err = time.Parse("2006-01-02", req.InitializedDate)
		if err != nil {
			return model.WaitingPeriodEntry{}, fmt.Errorf("failed to parse initialized date: %w", err)
		}
	}

	entry := model.WaitingPeriodEntry{
		ID:              uuid.New().String(),
		InvestorID:      req.InvestorID,
		Amount:          req.Amount,
		InitializedDate: initializedDate,
		Notes:           req.Notes,
		CreatedAt:       time.Now().UTC(),
	}

	entry, err = s.entryRepo.CreateEntry(entry)
	if err != nil {
		return model.WaitingPeriodEntry{}, fmt.Errorf("failed to create waiting period entry: %w", err)
	}

	s.auditService.Record("Capital return initialized", entry.ID, "WaitingPeriod",
		fmt.Sprintf("Return of %.2f initialized for investor %s", entry.Amount, entry.InvestorID))

	return entry, nil
}

// MarkDelivered sets the delivered flag on an entry. The transition is
// one-way and idempotent: a second call on an already-delivered entry is a
// no-op success and leaves delivered_at untouched.
func (s *WaitingPeriodService) MarkDelivered(entryID string) (model.WaitingPeriodEntry, error) {
	// Existence check first so a missing entry is not reported as
	// "already delivered".
	if _, err := s.entryRepo.GetEntryOnID(entryID); err != nil {
		return model.WaitingPeriodEntry{}, err
	}

	transitioned, err := s.entryRepo.MarkDelivered(entryID, time.Now())
	if err != nil {
		return model.WaitingPeriodEntry{}, err
	}

	if transitioned {
		s.auditService.Record("Capital return delivered", entryID, "WaitingPeriod",
			"Waiting period entry manually marked delivered")
	}

	return s.entryRepo.GetEntryOnID(entryID)
}
