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

// ExpenseHandler handles HTTP requests for expense endpoints.
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler with the provided service dependency.
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// Expenses handles GET requests to retrieve all expenses.
//
// Endpoint: GET /api/expense
// Response: 200 OK with array of Expense
// Error: 500 Internal Server Error if retrieval fails
func (h *ExpenseHandler) Expenses(w http.ResponseWriter, _ *http.Request) {
	expenses, err := h.expenseService.GetExpenses()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve expenses", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, expenses)
}

// CreateExpense handles POST requests to record an expense.
//
// Endpoint: POST /api/expense
// Request Body: CreateExpenseRequest (amount, date, notes)
// Response: 201 Created with Expense
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateExpenseRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateExpense(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	expense, err := h.expenseService.CreateExpense(req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create expense", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, expense)
}

// UpdateExpense handles PUT requests to update an expense.
//
// Endpoint: PUT /api/expense/{uuid}
// Request Body: UpdateExpenseRequest (all fields optional)
// Response: 200 OK with updated Expense
// Error: 400 Bad Request if expense ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if expense not found
// Error: 500 Internal Server Error if update fails
func (h *ExpenseHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateExpenseRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateExpense(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	expense, err := h.expenseService.UpdateExpense(expenseID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrExpenseNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrExpenseNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update expense", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, expense)
}

// DeleteExpense handles DELETE requests to remove an expense.
//
// Endpoint: DELETE /api/expense/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if expense ID is invalid (validated by middleware)
// Error: 404 Not Found if expense not found
// Error: 500 Internal Server Error if deletion fails
func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "uuid")

	err := h.expenseService.DeleteExpense(expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrExpenseNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrExpenseNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete expense", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
