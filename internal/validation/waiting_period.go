package validation

import (
	"github.com/s91capital/Investor-Backoffice-Backend/internal/api/request"
)

// ValidateInitializeReturn validates a capital-return initialization request.
// The remaining-capital ceiling is checked in the service layer against
// current data; only shape constraints are checked here.
func ValidateInitializeReturn(req request.InitializeReturnRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.InvestorID); err != nil {
		return err
	}

	if req.Amount <= 0.0 {
		errors["amount"] = "amount must be positive"
	}

	if req.InitializedDate != "" {
		if err := ValidateDate(req.InitializedDate); err != nil {
			errors["initializedDate"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
