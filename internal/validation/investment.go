package validation

import (
	"strings"
	"time"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/api/request"
)

// ValidateCreateInvestment validates a capital contribution request.
//
// Required fields:
//   - investorId: Must be a valid UUID
//   - amount: Must be positive
//   - investedDate: Must be in YYYY-MM-DD format
func ValidateCreateInvestment(req request.CreateInvestmentRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.InvestorID); err != nil {
		return err
	}

	if req.Amount <= 0.0 {
		errors["amount"] = "amount must be positive"
	}

	if strings.TrimSpace(req.InvestedDate) == "" {
		errors["investedDate"] = "investedDate is required"
	} else if _, err := time.Parse("2006-01-02", req.InvestedDate); err != nil {
		errors["investedDate"] = err.Error()
	}

	if req.PromisedReturn != nil && *req.PromisedReturn < 0 {
		errors["promisedReturn"] = "promisedReturn must not be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
