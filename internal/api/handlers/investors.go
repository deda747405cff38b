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

// InvestorHandler handles HTTP requests for investor endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the investor and investment services.
type InvestorHandler struct {
	investorService   *service.InvestorService
	investmentService *service.InvestmentService
}

// NewInvestorHandler creates a new InvestorHandler with the provided service dependencies.
func NewInvestorHandler(
	investorService *service.InvestorService,
	investmentService *service.InvestmentService,
) *InvestorHandler {
	return &InvestorHandler{
		investorService:   investorService,
		investmentService: investmentService,
	}
}

// Investors handles GET requests to retrieve all investors.
//
// Endpoint: GET /api/investor
// Response: 200 OK with array of Investor
// Error: 500 Internal Server Error if retrieval fails
func (h *InvestorHandler) Investors(w http.ResponseWriter, _ *http.Request) {
	investors, err := h.investorService.GetInvestors()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveInvestors.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, investors)
}

// GetInvestor handles GET requests to retrieve a single investor by ID.
//
// Endpoint: GET /api/investor/{uuid}
// Response: 200 OK with Investor
// Error: 400 Bad Request if investor ID is invalid (validated by middleware)
// Error: 404 Not Found if investor not found
// Error: 500 Internal Server Error if retrieval fails
func (h *InvestorHandler) GetInvestor(w http.ResponseWriter, r *http.Request) {
	investorID := chi.URLParam(r, "uuid")

	investor, err := h.investorService.GetInvestor(investorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvestorNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestorNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveInvestors.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, investor)
}

// CreateInvestor handles POST requests to register a new investor.
// The external client id is assigned by the database and returned on the
// created record.
//
// Endpoint: POST /api/investor
// Request Body: CreateInvestorRequest (fullName, joiningDate, optional contact fields)
// Response: 201 Created with Investor
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *InvestorHandler) CreateInvestor(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateInvestorRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateInvestor(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	investor, err := h.investorService.CreateInvestor(req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create investor", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, investor)
}

// UpdateInvestor handles PUT requests to update an existing investor.
//
// Endpoint: PUT /api/investor/{uuid}
// Request Body: UpdateInvestorRequest (all fields optional)
// Response: 200 OK with updated Investor
// Error: 400 Bad Request if investor ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if investor not found
// Error: 500 Internal Server Error if update fails
func (h *InvestorHandler) UpdateInvestor(w http.ResponseWriter, r *http.Request) {
	investorID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateInvestorRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateInvestor(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	investor, err := h.investorService.UpdateInvestor(investorID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvestorNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestorNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update investor", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, investor)
}

// UpdateInvestorStatus handles PUT requests to transition an investor's status.
// Moving to waiting_period starts the 60-day clock.
//
// Endpoint: PUT /api/investor/{uuid}/status
// Request Body: UpdateInvestorStatusRequest (status, optional waitingPeriodStart)
// Response: 200 OK with updated Investor
// Error: 400 Bad Request if investor ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if investor not found
// Error: 500 Internal Server Error if update fails
func (h *InvestorHandler) UpdateInvestorStatus(w http.ResponseWriter, r *http.Request) {
	investorID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateInvestorStatusRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateInvestorStatus(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	investor, err := h.investorService.UpdateInvestorStatus(investorID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvestorNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestorNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update investor status", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, investor)
}

// DeleteInvestor handles DELETE requests to remove an investor.
// Dependent investments, entries, returns and agreements are removed as well.
//
// Endpoint: DELETE /api/investor/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if investor ID is invalid (validated by middleware)
// Error: 404 Not Found if investor not found
// Error: 500 Internal Server Error if deletion fails
func (h *InvestorHandler) DeleteInvestor(w http.ResponseWriter, r *http.Request) {
	investorID := chi.URLParam(r, "uuid")

	err := h.investorService.DeleteInvestor(investorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvestorNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestorNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete investor", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// InvestorInvestments handles GET requests to retrieve all investments for one investor.
//
// Endpoint: GET /api/investor/{uuid}/investments
// Response: 200 OK with array of Investment
// Error: 400 Bad Request if investor ID is invalid (validated by middleware)
// Error: 500 Internal Server Error if retrieval fails
func (h *InvestorHandler) InvestorInvestments(w http.ResponseWriter, r *http.Request) {
	investorID := chi.URLParam(r, "uuid")

	investments, err := h.investmentService.GetInvestmentsOnInvestor(investorID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveInvestments.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, investments)
}

// CreateInvestment handles POST requests to record a capital contribution.
//
// Endpoint: POST /api/investment
// Request Body: CreateInvestmentRequest (investorId, amount, investedDate)
// Response: 201 Created with Investment
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the investor does not exist
// Error: 500 Internal Server Error if creation fails
func (h *InvestorHandler) CreateInvestment(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateInvestmentRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateInvestment(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	investment, err := h.investmentService.CreateInvestment(req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvestorNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestorNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create investment", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, investment)
}
