package validation

import (
	"fmt"
	"strings"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/api/request"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/model"
)

// ValidReturnStatus contains the allowed monthly return status values.
var ValidReturnStatus = map[string]bool{
	model.ReturnStatusPending: true,
	model.ReturnStatusPaid:    true,
	model.ReturnStatusOverdue: true,
}

// ValidateCreateReturn validates a monthly return creation request.
//
// Required fields:
//   - investorId: Must be a valid UUID
//   - month: Must be in YYYY-MM format
//   - returnPercent: Must be positive
func ValidateCreateReturn(req request.CreateReturnRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.InvestorID); err != nil {
		return err
	}

	if strings.TrimSpace(req.Month) == "" {
		errors["month"] = "month is required"
	} else if err := ValidateMonth(req.Month); err != nil {
		errors["month"] = err.Error()
	}

	if req.ReturnPercent <= 0.0 {
		errors["returnPercent"] = "returnPercent must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateReturnStatus validates a return status update request.
func ValidateUpdateReturnStatus(req request.UpdateReturnStatusRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Status) == "" {
		errors["status"] = "status is required"
	} else if !ValidReturnStatus[req.Status] {
		errors["status"] = fmt.Sprintf("invalid status: %s", req.Status)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
