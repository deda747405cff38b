package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/api/request"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/model"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/repository"
)

// TradingService handles trading accounts and daily P&L entries.
type TradingService struct {
	tradingRepo  *repository.TradingRepository
	auditService *AuditService
}

// NewTradingService creates a new TradingService with the provided dependencies.
func NewTradingService(
	tradingRepo *repository.TradingRepository,
	auditService *AuditService,
) *TradingService {
	return &TradingService{
		tradingRepo:  tradingRepo,
		auditService: auditService,
	}
}

// GetAccounts retrieves all trading accounts.
func (s *TradingService) GetAccounts() ([]model.TradingAccount, error) {
	return s.tradingRepo.GetAccounts()
}

// GetAccount retrieves a single trading account by ID.
func (s *TradingService) GetAccount(accountID string) (model.TradingAccount, error) {
	return s.tradingRepo.GetAccountOnID(accountID)
}

// CreateAccount creates a trading account. Status defaults to active.
func (s *TradingService) CreateAccount(req request.CreateAccountRequest) (model.TradingAccount, error) {
	status := req.Status
	if status == "" {
		status = model.AccountStatusActive
	}

	account := model.TradingAccount{
		ID:               uuid.New().String(),
		Name:             req.Name,
		Broker:           req.Broker,
		CapitalAllocated: req.CapitalAllocated,
		Status:           status,
	}

	account, err := s.tradingRepo.CreateAccount(account)
	if err != nil {
		return model.TradingAccount{}, err
	}

	s.auditService.Record("Trading account created", account.ID, "Trading",
		fmt.Sprintf("Account %s created with %.2f allocated", account.Name, account.CapitalAllocated))

	return account, nil
}

// UpdateAccount applies partial field updates to a trading account.
func (s *TradingService) UpdateAccount(accountID string, req request.UpdateAccountRequest) (model.TradingAccount, error) {
	update := model.TradingAccountUpdate{
		Name:             req.Name,
		Broker:           req.Broker,
		CapitalAllocated: req.CapitalAllocated,
		Status:           req.Status,
	}
	return s.tradingRepo.UpdateAccount(accountID, update)
}

// DeleteAccount removes a trading account and its P&L entries.
func (s *TradingService) DeleteAccount(accountID string) error {
	return s.tradingRepo.DeleteAccount(accountID)
}

// GetPnLEntriesOnAccount retrieves daily P&L entries for one account.
func (s *TradingService) GetPnLEntriesOnAccount(accountID string) ([]model.DailyPnLEntry, error) {
	return s.tradingRepo.GetPnLEntriesOnAccountID(accountID)
}

// GetAllPnL retrieves all daily P&L entries in chronological order.
func (s *TradingService) GetAllPnL() ([]model.DailyPnLEntry, error) {
	return s.tradingRepo.GetAllPnLOrderedByDate()
}

// CreatePnLEntry records one day's trading result. Negative amounts record
// losing days.
func (s *TradingService) CreatePnLEntry(req request.CreatePnLRequest) (model.DailyPnLEntry, error) {
	if _, err := s.tradingRepo.GetAccountOnID(req.AccountID); err != nil {
		return model.DailyPnLEntry{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return model.DailyPnLEntry{}, fmt.Errorf("failed to parse date: %w", err)
	}

	entry := model.DailyPnLEntry{
		ID:          uuid.New().String(),
		AccountID:   req.AccountID,
		Date:        date,
		IndexName:   req.IndexName,
		PnLAmount:   req.PnLAmount,
		CapitalUsed: req.CapitalUsed,
		Notes:       req.Notes,
	}

	return s.tradingRepo.CreatePnLEntry(entry)
}

// UpdatePnLEntry applies partial field updates to a daily P&L entry.
func (s *TradingService) UpdatePnLEntry(entryID string, req request.UpdatePnLRequest) (model.DailyPnLEntry, error) {
	update := model.DailyPnLUpdate{
		IndexName:   req.IndexName,
		PnLAmount:   req.PnLAmount,
		CapitalUsed: req.CapitalUsed,
		Notes:       req.Notes,
	}

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return model.DailyPnLEntry{}, fmt.Errorf("failed to parse date: %w", err)
		}
		update.Date = &date
	}

	return s.tradingRepo.UpdatePnLEntry(entryID, update)
}

// DeletePnLEntry removes a daily P&L entry.
func (s *TradingService) DeletePnLEntry(entryID string) error {
	return s.tradingRepo.DeletePnLEntry(entryID)
}
