package validation_test

import (
	"errors"
	"testing"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/api/request"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/validation"
)

// TestValidateCreateInvestor tests investor creation validation.
//
// WHY: Invalid investor records poison every downstream aggregate, so bad
// names, dates and contact details must be rejected before they hit the
// database.
func TestValidateCreateInvestor(t *testing.T) {
	valid := request.CreateInvestorRequest{
		FullName:       "Asha Rao",
		Email:          "asha@example.com",
		Phone:          "+919900112233",
		JoiningDate:    "2025-01-01",
		PromisedReturn: 2.5,
	}

	t.Run("accepts a valid request", func(t *testing.T) {
		if err := validation.ValidateCreateInvestor(valid); err != nil {
			t.Errorf("Expected valid request to pass, got %v", err)
		}
	})

	tests := []struct {
		name      string
		mutate    func(r *request.CreateInvestorRequest)
		wantField string
	}{
		{
			name:      "missing name",
			mutate:    func(r *request.CreateInvestorRequest) { r.FullName = "" },
			wantField: "fullName",
		},
		{
			name:      "name too short",
			mutate:    func(r *request.CreateInvestorRequest) { r.FullName = "A" },
			wantField: "fullName",
		},
		{
			name:      "name with digits",
			mutate:    func(r *request.CreateInvestorRequest) { r.FullName = "Asha Rao 2" },
			wantField: "fullName",
		},
		{
			name:      "missing joining date",
			mutate:    func(r *request.CreateInvestorRequest) { r.JoiningDate = "" },
			wantField: "joiningDate",
		},
		{
			name:      "malformed joining date",
			mutate:    func(r *request.CreateInvestorRequest) { r.JoiningDate = "01/01/2025" },
			wantField: "joiningDate",
		},
		{
			name:      "malformed email",
			mutate:    func(r *request.CreateInvestorRequest) { r.Email = "not-an-email" },
			wantField: "email",
		},
		{
			name:      "malformed phone",
			mutate:    func(r *request.CreateInvestorRequest) { r.Phone = "12345" },
			wantField: "phone",
		},
		{
			name:      "negative promised return",
			mutate:    func(r *request.CreateInvestorRequest) { r.PromisedReturn = -1 },
			wantField: "promisedReturn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := validation.ValidateCreateInvestor(req)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}

			var vErr *validation.Error
			if !errors.As(err, &vErr) {
				t.Fatalf("Expected *validation.Error, got %T", err)
			}
			if _, ok := vErr.Fields[tt.wantField]; !ok {
				t.Errorf("Expected error on field %q, got %v", tt.wantField, vErr.Fields)
			}
		})
	}

	t.Run("email and phone are optional", func(t *testing.T) {
		req := valid
		req.Email = ""
		req.Phone = ""
		if err := validation.ValidateCreateInvestor(req); err != nil {
			t.Errorf("Expected request without contact details to pass, got %v", err)
		}
	})
}

// TestValidateUpdateInvestorStatus tests status transition validation.
func TestValidateUpdateInvestorStatus(t *testing.T) {
	t.Run("accepts all known statuses", func(t *testing.T) {
		for _, status := range []string{"active", "waiting_period", "inactive", "exited"} {
			err := validation.ValidateUpdateInvestorStatus(request.UpdateInvestorStatusRequest{Status: status})
			if err != nil {
				t.Errorf("Status %q: expected pass, got %v", status, err)
			}
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		err := validation.ValidateUpdateInvestorStatus(request.UpdateInvestorStatusRequest{Status: "paused"})
		if err == nil {
			t.Error("Expected validation error for unknown status")
		}
	})

	t.Run("rejects empty status", func(t *testing.T) {
		err := validation.ValidateUpdateInvestorStatus(request.UpdateInvestorStatusRequest{})
		if err == nil {
			t.Error("Expected validation error for empty status")
		}
	})

	t.Run("rejects malformed waiting period start", func(t *testing.T) {
		bad := "yesterday"
		err := validation.ValidateUpdateInvestorStatus(request.UpdateInvestorStatusRequest{
			Status:             "waiting_period",
			WaitingPeriodStart: &bad,
		})
		if err == nil {
			t.Error("Expected validation error for malformed waiting period start")
		}
	})
}
