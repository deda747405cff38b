package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/api/request"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/api/response"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/apperrors"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/service"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/validation"
)

// TradingHandler handles HTTP requests for trading account and daily P&L endpoints.
type TradingHandler struct {
	tradingService *service.TradingService
}

// NewTradingHandler creates a new TradingHandler with the provided service dependency.
func NewTradingHandler(tradingService *service.TradingService) *TradingHandler {
	return &TradingHandler{tradingService: tradingService}
}

// Accounts handles GET requests to retrieve all trading accounts.
//
// Endpoint: GET /api/trading/account
// Response: 200 OK with array of TradingAccount
// Error: 500 Internal Server Error if retrieval fails
func (h *TradingHandler) Accounts(w http.ResponseWriter, _ *http.Request) {
	accounts, err := h.tradingService.GetAccounts()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveAccounts.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, accounts)
}

// CreateAccount handles POST requests to create a trading account.
//
// Endpoint: POST /api/trading/account
// Request Body: CreateAccountRequest (name, broker, capitalAllocated, status)
// Response: 201 Created with TradingAccount
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *TradingHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateAccountRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateAccount(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	account, err := h.tradingService.CreateAccount(req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create trading account", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, account)
}

// UpdateAccount handles PUT requests to update a trading account.
//
// Endpoint: PUT /api/trading/account/{uuid}
// Request Body: UpdateAccountRequest (all fields optional)
// Response: 200 OK with updated TradingAccount
// Error: 400 Bad Request if account ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if account not found
// Error: 500 Internal Server Error if update fails
func (h *TradingHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateAccountRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateAccount(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	account, err := h.tradingService.UpdateAccount(accountID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAccountNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update trading account", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, account)
}

// DeleteAccount handles DELETE requests to remove a trading account.
// Daily P&L entries for the account are removed as well.
//
// Endpoint: DELETE /api/trading/account/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if account ID is invalid (validated by middleware)
// Error: 404 Not Found if account not found
// Error: 500 Internal Server Error if deletion fails
func (h *TradingHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "uuid")

	err := h.tradingService.DeleteAccount(accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAccountNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete trading account", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// AccountPnL handles GET requests to retrieve daily P&L entries for one account.
//
// Endpoint: GET /api/trading/account/{uuid}/pnl
// Response: 200 OK with array of DailyPnLEntry
// Error: 400 Bad Request if account ID is invalid (validated by middleware)
// Error: 500 Internal Server Error if retrieval fails
func (h *TradingHandler) AccountPnL(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "uuid")

	entries, err := h.tradingService.GetPnLEntriesOnAccount(accountID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePnL.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, entries)
}

// AllPnL handles GET requests to retrieve all daily P&L entries in date order.
//
// Endpoint: GET /api/trading/pnl
// Response: 200 OK with array of DailyPnLEntry
// Error: 500 Internal Server Error if retrieval fails
func (h *TradingHandler) AllPnL(w http.ResponseWriter, _ *http.Request) {
	entries, err := h.tradingService.GetAllPnL()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePnL.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, entries)
}

// CreatePnL handles POST requests to record one day's trading result.
//
// Endpoint: POST /api/trading/pnl
// Request Body: CreatePnLRequest (accountId, date, indexName, pnlAmount)
// Response: 201 Created with DailyPnLEntry
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the account does not exist
// Error: 500 Internal Server Error if creation fails
func (h *TradingHandler) CreatePnL(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreatePnLRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreatePnL(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	entry, err := h.tradingService.CreatePnLEntry(req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAccountNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create daily P&L entry", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, entry)
}

// UpdatePnL handles PUT requests to update a daily P&L entry.
//
// Endpoint: PUT /api/trading/pnl/{uuid}
// Request Body: UpdatePnLRequest (all fields optional)
// Response: 200 OK with updated DailyPnLEntry
// Error: 400 Bad Request if entry ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if entry not found
// Error: 500 Internal Server Error if update fails
func (h *TradingHandler) UpdatePnL(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdatePnLRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdatePnL(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	entry, err := h.tradingService.UpdatePnLEntry(entryID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrPnLEntryNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPnLEntryNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update daily P&L entry", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, entry)
}

// DeletePnL handles DELETE requests to remove a daily P&L entry.
//
// Endpoint: DELETE /api/trading/pnl/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if entry ID is invalid (validated by middleware)
// Error: 404 Not Found if entry not found
// Error: 500 Internal Server Error if deletion fails
func (h *TradingHandler) DeletePnL(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "uuid")

	err := h.tradingService.DeletePnLEntry(entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPnLEntryNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPnLEntryNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete daily P&L entry", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
