package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/api/request"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/model"
)

// ValidInvestorStatus contains the allowed investor status values.
var ValidInvestorStatus = map[string]bool{
	model.InvestorStatusActive:        true,
	model.InvestorStatusWaitingPeriod: true,
	model.InvestorStatusInactive:      true,
	model.InvestorStatusExited:        true,
}

var (
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s\.]+$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

func validateName(name string, errors map[string]string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		errors["fullName"] = "fullName is required"
		return
	}
	if len(trimmed) < 2 || len(trimmed) > 100 {
		errors["fullName"] = "fullName must be between 2 and 100 characters"
		return
	}
	if !namePattern.MatchString(trimmed) {
		errors["fullName"] = "fullName may only contain letters, spaces and periods"
	}
}

// ValidateCreateInvestor validates an investor creation request.
//
// Required fields:
//   - fullName: 2-100 characters, letters, spaces and periods only
//   - joiningDate: Must be in YYYY-MM-DD format
//
// Optional fields (validated if provided):
//   - email: Must be a plausible email address
//   - phone: 10-15 digits with an optional leading +
//   - promisedReturn: Must not be negative
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateInvestor(req request.CreateInvestorRequest) error {
	errors := make(map[string]string)

	validateName(req.FullName, errors)

	if strings.TrimSpace(req.JoiningDate) == "" {
		errors["joiningDate"] = "joiningDate is required"
	} else if _, err := time.Parse("2006-01-02", req.JoiningDate); err != nil {
		errors["joiningDate"] = err.Error()
	}

	if req.Email != "" && !emailPattern.MatchString(req.Email) {
		errors["email"] = fmt.Sprintf("invalid email: %s", req.Email)
	}

	if req.Phone != "" && !phonePattern.MatchString(req.Phone) {
		errors["phone"] = fmt.Sprintf("invalid phone number: %s", req.Phone)
	}

	if req.PromisedReturn < 0 {
		errors["promisedReturn"] = "promisedReturn must not be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateInvestor validates an investor update request.
// All fields are optional, but if provided, they must meet the same constraints as create.
func ValidateUpdateInvestor(req request.UpdateInvestorRequest) error {
	errors := make(map[string]string)

	if req.FullName != nil {
		validateName(*req.FullName, errors)
	}
	if req.Email != nil && *req.Email != "" && !emailPattern.MatchString(*req.Email) {
		errors["email"] = fmt.Sprintf("invalid email: %s", *req.Email)
	}
	if req.Phone != nil && *req.Phone != "" && !phonePattern.MatchString(*req.Phone) {
		errors["phone"] = fmt.Sprintf("invalid phone number: %s", *req.Phone)
	}
	if req.PromisedReturn != nil && *req.PromisedReturn < 0 {
		errors["promisedReturn"] = "promisedReturn must not be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateInvestorStatus validates a status transition request.
func ValidateUpdateInvestorStatus(req request.UpdateInvestorStatusRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Status) == "" {
		errors["status"] = "status is required"
	} else if !ValidInvestorStatus[req.Status] {
		errors["status"] = fmt.Sprintf("invalid status: %s", req.Status)
	}

	if req.WaitingPeriodStart != nil {
		if _, err := time.Parse("2006-01-02", *req.WaitingPeriodStart); err != nil {
			errors["waitingPeriodStart"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
