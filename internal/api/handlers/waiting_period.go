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

// WaitingPeriodHandler handles HTTP requests for waiting-period ledger endpoints.
type WaitingPeriodHandler struct {
	waitingPeriodService *service.WaitingPeriodService
	capitalService       *service.CapitalService
}

// NewWaitingPeriodHandler creates a new WaitingPeriodHandler with the provided service dependencies.
func NewWaitingPeriodHandler(
	waitingPeriodService *service.WaitingPeriodService,
	capitalService *service.CapitalService,
) *WaitingPeriodHandler {
	return &WaitingPeriodHandler{
		waitingPeriodService: waitingPeriodService,
		capitalService:       capitalService,
	}
}

// InvestorEntries handles GET requests to retrieve an investor's
// waiting-period entries, partitioned into pending and delivered as of now.
//
// Endpoint: GET /api/investor/{uuid}/waiting-period
// Response: 200 OK with WaitingPeriodClassification
// Error: 400 Bad Request if investor ID is invalid (validated by middleware)
// Error: 500 Internal Server Error if retrieval fails
func (h *WaitingPeriodHandler) InvestorEntries(w http.ResponseWriter, r *http.Request) {
	investorID := chi.URLParam(r, "uuid")

	classification, err := h.waitingPeriodService.GetEntries(investorID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveWaitingEntries.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, classification)
}

// InvestorRemainingCapital handles GET requests for an investor's remaining capital.
//
// Endpoint: GET /api/investor/{uuid}/remaining-capital
// Response: 200 OK with {"remaining_capital": ...}
// Error: 400 Bad Request if investor ID is invalid (validated by middleware)
// Error: 500 Internal Server Error if computation fails
func (h *WaitingPeriodHandler) InvestorRemainingCapital(w http.ResponseWriter, r *http.Request) {
	investorID := chi.URLParam(r, "uuid")

	remaining, err := h.capitalService.RemainingCapital(investorID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to compute remaining capital", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]float64{"remaining_capital": remaining})
}

// InitializeReturn handles POST requests to start a capital return.
// The amount may not exceed the investor's remaining capital at call time.
//
// Endpoint: POST /api/waiting-period
// Request Body: InitializeReturnRequest (investorId, amount, optional initializedDate, notes)
// Response: 201 Created with WaitingPeriodEntry
// Error: 400 Bad Request if validation fails or the amount exceeds remaining capital
// Error: 404 Not Found if the investor does not exist
// Error: 500 Internal Server Error if creation fails
func (h *WaitingPeriodHandler) InitializeReturn(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.InitializeReturnRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateInitializeReturn(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	entry, err := h.waitingPeriodService.InitializeReturn(req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvestorNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestorNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrAmountNotPositive), errors.Is(err, apperrors.ErrAmountExceedsRemaining):
			response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to initialize return", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusCreated, entry)
}

// MarkDelivered handles POST requests to manually deliver a waiting-period entry.
// The transition is one-way and idempotent; delivering an already-delivered
// entry is a no-op success.
//
// Endpoint: POST /api/waiting-period/{uuid}/deliver
// Response: 200 OK with the entry in its delivered state
// Error: 400 Bad Request if entry ID is invalid (validated by middleware)
// Error: 404 Not Found if entry not found
// Error: 500 Internal Server Error if the transition fails
func (h *WaitingPeriodHandler) MarkDelivered(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "uuid")

	entry, err := h.waitingPeriodService.MarkDelivered(entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrEntryNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrEntryNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to mark entry delivered", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, entry)
}
