package validation

import (
	"strings"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/api/request"
)

// ValidateCreateAgreement validates an agreement record creation request.
func ValidateCreateAgreement(req request.CreateAgreementRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.InvestorID); err != nil {
		return err
	}

	if strings.TrimSpace(req.FileName) == "" {
		errors["fileName"] = "fileName is required"
	}
	if strings.TrimSpace(req.FilePath) == "" {
		errors["filePath"] = "filePath is required"
	}
	if req.Version != nil && *req.Version < 1 {
		errors["version"] = "version must be at least 1"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
