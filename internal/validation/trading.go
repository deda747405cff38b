package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/api/request"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/model"
)

// ValidAccountStatus contains the allowed trading account status values.
var ValidAccountStatus = map[string]bool{
	model.AccountStatusActive:   true,
	model.AccountStatusInactive: true,
}

// ValidateCreateAccount validates a trading account creation request.
func ValidateCreateAccount(req request.CreateAccountRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 50 {
		errors["name"] = "name must be at most 50 characters"
	}

	if req.CapitalAllocated < 0 {
		errors["capitalAllocated"] = "capitalAllocated must not be negative"
	}

	if req.Status != "" && !ValidAccountStatus[req.Status] {
		errors["status"] = fmt.Sprintf("invalid status: %s", req.Status)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateAccount validates a trading account update request.
func ValidateUpdateAccount(req request.UpdateAccountRequest) error {
	errors := make(map[string]string)

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			errors["name"] = "name is required"
		} else if len(*req.Name) > 50 {
			errors["name"] = "name must be at most 50 characters"
		}
	}
	if req.CapitalAllocated != nil && *req.CapitalAllocated < 0 {
		errors["capitalAllocated"] = "capitalAllocated must not be negative"
	}
	if req.Status != nil && !ValidAccountStatus[*req.Status] {
		errors["status"] = fmt.Sprintf("invalid status: %s", *req.Status)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateCreatePnL validates a daily P&L creation request. The amount may be
// negative; losing days are recorded as-is.
func ValidateCreatePnL(req request.CreatePnLRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.AccountID); err != nil {
		return err
	}

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		errors["date"] = err.Error()
	}

	if strings.TrimSpace(req.IndexName) == "" {
		errors["indexName"] = "indexName is required"
	} else if len(req.IndexName) > 20 {
		errors["indexName"] = "indexName must be at most 20 characters"
	}

	if req.CapitalUsed < 0 {
		errors["capitalUsed"] = "capitalUsed must not be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdatePnL validates a daily P&L update request.
func ValidateUpdatePnL(req request.UpdatePnLRequest) error {
	errors := make(map[string]string)

	if req.Date != nil {
		if _, err := time.Parse("2006-01-02", *req.Date); err != nil {
			errors["date"] = err.Error()
		}
	}
	if req.IndexName != nil {
		if strings.TrimSpace(*req.IndexName) == "" {
			errors["indexName"] = "indexName is required"
		} else if len(*req.IndexName) > 20 {
			errors["indexName"] = "indexName must be at most 20 characters"
		}
	}
	if req.CapitalUsed != nil && *req.CapitalUsed < 0 {
		errors["capitalUsed"] = "capitalUsed must not be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
