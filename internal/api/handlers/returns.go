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

// ReturnHandler handles HTTP requests for monthly return endpoints.
type ReturnHandler struct {
	returnService *service.ReturnService
}

// NewReturnHandler creates a new ReturnHandler with the provided service dependency.
func NewReturnHandler(returnService *service.ReturnService) *ReturnHandler {
	return &ReturnHandler{returnService: returnService}
}

// AllReturns handles GET requests to retrieve all monthly returns across investors.
//
// Endpoint: GET /api/return
// Response: 200 OK with array of MonthlyReturnWithInvestor
// Error: 500 Internal Server Error if retrieval fails
func (h *ReturnHandler) AllReturns(w http.ResponseWriter, _ *http.Request) {
	returns, err := h.returnService.GetAllReturns()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveReturns.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, returns)
}

// InvestorReturns handles GET requests to retrieve one investor's monthly returns.
//
// Endpoint: GET /api/investor/{uuid}/returns
// Response: 200 OK with array of MonthlyReturn
// Error: 400 Bad Request if investor ID is invalid (validated by middleware)
// Error: 500 Internal Server Error if retrieval fails
func (h *ReturnHandler) InvestorReturns(w http.ResponseWriter, r *http.Request) {
	investorID := chi.URLParam(r, "uuid")

	returns, err := h.returnService.GetReturnsOnInvestor(investorID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveReturns.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, returns)
}

// CreateReturn handles POST requests to create a pending monthly payout.
// The amount is computed from the investor's remaining capital at creation time.
//
// Endpoint: POST /api/return
// Request Body: CreateReturnRequest (investorId, month, returnPercent)
// Response: 201 Created with MonthlyReturn
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the investor does not exist
// Error: 409 Conflict if a return already exists for the month
// Error: 500 Internal Server Error if creation fails
func (h *ReturnHandler) CreateReturn(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateReturnRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateReturn(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	ret, err := h.returnService.CreateReturn(req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvestorNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestorNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrDuplicateMonth):
			response.RespondError(w, http.StatusConflict, apperrors.ErrDuplicateMonth.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to create return", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusCreated, ret)
}

// UpdateReturnStatus handles PUT requests to transition a payout record.
// The transition to paid stamps paid_at.
//
// Endpoint: PUT /api/return/{uuid}/status
// Request Body: UpdateReturnStatusRequest (status)
// Response: 200 OK with updated MonthlyReturn
// Error: 400 Bad Request if return ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if return not found
// Error: 500 Internal Server Error if update fails
func (h *ReturnHandler) UpdateReturnStatus(w http.ResponseWriter, r *http.Request) {
	returnID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateReturnStatusRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateReturnStatus(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	ret, err := h.returnService.UpdateReturnStatus(returnID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrReturnNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrReturnNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update return status", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, ret)
}
