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

// AgreementHandler handles HTTP requests for agreement metadata endpoints.
type AgreementHandler struct {
	agreementService *service.AgreementService
}

// NewAgreementHandler creates a new AgreementHandler with the provided service dependency.
func NewAgreementHandler(agreementService *service.AgreementService) *AgreementHandler {
	return &AgreementHandler{agreementService: agreementService}
}

// Agreements handles GET requests to retrieve all agreements with investor details.
//
// Endpoint: GET /api/agreement
// Response: 200 OK with array of AgreementWithInvestor
// Error: 500 Internal Server Error if retrieval fails
func (h *AgreementHandler) Agreements(w http.ResponseWriter, _ *http.Request) {
	agreements, err := h.agreementService.GetAgreements()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve agreements", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, agreements)
}

// InvestorAgreements handles GET requests to retrieve one investor's agreements.
//
// Endpoint: GET /api/investor/{uuid}/agreements
// Response: 200 OK with array of AgreementRecord
// Error: 400 Bad Request if investor ID is invalid (validated by middleware)
// Error: 500 Internal Server Error if retrieval fails
func (h *AgreementHandler) InvestorAgreements(w http.ResponseWriter, r *http.Request) {
	investorID := chi.URLParam(r, "uuid")

	agreements, err := h.agreementService.GetAgreementsOnInvestor(investorID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve agreements", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, agreements)
}

// CreateAgreement handles POST requests to record agreement file metadata.
// When no version is supplied the next version for the investor is assigned.
//
// Endpoint: POST /api/agreement
// Request Body: CreateAgreementRequest (investorId, fileName, filePath, optional version)
// Response: 201 Created with AgreementRecord
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the investor does not exist
// Error: 409 Conflict if the version already exists for the investor
// Error: 500 Internal Server Error if creation fails
func (h *AgreementHandler) CreateAgreement(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateAgreementRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateAgreement(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	agreement, err := h.agreementService.CreateAgreement(req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvestorNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestorNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrDuplicateAgreementVersion):
			response.RespondError(w, http.StatusConflict, apperrors.ErrDuplicateAgreementVersion.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to create agreement", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusCreated, agreement)
}

// DeleteAgreement handles DELETE requests to remove an agreement record.
//
// Endpoint: DELETE /api/agreement/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if agreement ID is invalid (validated by middleware)
// Error: 404 Not Found if agreement not found
// Error: 500 Internal Server Error if deletion fails
func (h *AgreementHandler) DeleteAgreement(w http.ResponseWriter, r *http.Request) {
	agreementID := chi.URLParam(r, "uuid")

	err := h.agreementService.DeleteAgreement(agreementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAgreementNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAgreementNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete agreement", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
