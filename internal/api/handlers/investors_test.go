package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/api/handlers"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/api/request"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/model"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/testutil"
)

// TestInvestorHandler_CreateInvestor tests investor registration.
//
// WHY: The created record must carry the database-assigned client ID so the
// frontend can display it immediately without a follow-up fetch.
func TestInvestorHandler_CreateInvestor(t *testing.T) {
	t.Run("creates an investor and returns 201 with client id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewInvestorHandler(
			testutil.NewTestInvestorService(db),
			testutil.NewTestInvestmentService(db),
		)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/investor", request.CreateInvestorRequest{
			FullName:       "Asha Rao",
			Email:          "asha@example.com",
			PromisedReturn: 2.5,
			JoiningDate:    "2025-01-01",
		}, nil)
		rec := httptest.NewRecorder()

		handler.CreateInvestor(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}

		investor := testutil.DecodeResponse[model.Investor](t, rec)
		if investor.FullName != "Asha Rao" {
			t.Errorf("Unexpected investor in response: %+v", investor)
		}
		if investor.ClientID != "S91-INV-001" {
			t.Errorf("Expected client ID S91-INV-001, got %q", investor.ClientID)
		}
		if investor.Status != model.InvestorStatusActive {
			t.Errorf("Expected new investor to be active, got %q", investor.Status)
		}
	})

	t.Run("returns 400 on validation failure", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewInvestorHandler(
			testutil.NewTestInvestorService(db),
			testutil.NewTestInvestmentService(db),
		)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/investor", request.CreateInvestorRequest{
			FullName:    "",
			JoiningDate: "2025-01-01",
		}, nil)
		rec := httptest.NewRecorder()

		handler.CreateInvestor(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})

	t.Run("rejects unknown fields in the body", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewInvestorHandler(
			testutil.NewTestInvestorService(db),
			testutil.NewTestInvestmentService(db),
		)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/investor", map[string]any{
			"fullName":    "Asha Rao",
			"joiningDate": "2025-01-01",
			"clientId":    "S91-INV-999",
		}, nil)
		rec := httptest.NewRecorder()

		handler.CreateInvestor(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400 for unknown field, got %d", rec.Code)
		}
	})
}

// TestInvestorHandler_GetInvestor tests single investor retrieval.
func TestInvestorHandler_GetInvestor(t *testing.T) {
	t.Run("returns the investor", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewInvestorHandler(
			testutil.NewTestInvestorService(db),
			testutil.NewTestInvestmentService(db),
		)
		investor := testutil.CreateInvestor(t, db, "Asha Rao")

		req := testutil.NewRequestWithURLParams(http.MethodGet,
			"/api/investor/"+investor.ID, map[string]string{"uuid": investor.ID})
		rec := httptest.NewRecorder()

		handler.GetInvestor(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}

		stored := testutil.DecodeResponse[model.Investor](t, rec)
		if stored.ID != investor.ID {
			t.Errorf("Expected investor %s, got %s", investor.ID, stored.ID)
		}
	})

	t.Run("returns 404 for unknown investor", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewInvestorHandler(
			testutil.NewTestInvestorService(db),
			testutil.NewTestInvestmentService(db),
		)

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(http.MethodGet,
			"/api/investor/"+id, map[string]string{"uuid": id})
		rec := httptest.NewRecorder()

		handler.GetInvestor(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", rec.Code)
		}
	})
}

// TestInvestorHandler_UpdateInvestorStatus tests the status endpoint.
//
// WHY: Moving to waiting_period starts the 60-day sweep clock, so the
// transition must persist the start time it was given.
func TestInvestorHandler_UpdateInvestorStatus(t *testing.T) {
	t.Run("moves investor to waiting period", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewInvestorHandler(
			testutil.NewTestInvestorService(db),
			testutil.NewTestInvestmentService(db),
		)
		investor := testutil.CreateInvestor(t, db, "Asha Rao")

		start := "2025-03-01"
		req := testutil.NewJSONRequest(t, http.MethodPut,
			"/api/investor/"+investor.ID+"/status",
			request.UpdateInvestorStatusRequest{
				Status:             model.InvestorStatusWaitingPeriod,
				WaitingPeriodStart: &start,
			},
			map[string]string{"uuid": investor.ID})
		rec := httptest.NewRecorder()

		handler.UpdateInvestorStatus(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}

		updated := testutil.DecodeResponse[model.Investor](t, rec)
		if updated.Status != model.InvestorStatusWaitingPeriod {
			t.Errorf("Expected status waiting_period, got %q", updated.Status)
		}
		if updated.WaitingPeriodStart == nil {
			t.Error("Expected waiting_period_start to be set")
		}
	})

	t.Run("returns 400 for unknown status", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewInvestorHandler(
			testutil.NewTestInvestorService(db),
			testutil.NewTestInvestmentService(db),
		)
		investor := testutil.CreateInvestor(t, db, "Asha Rao")

		req := testutil.NewJSONRequest(t, http.MethodPut,
			"/api/investor/"+investor.ID+"/status",
			request.UpdateInvestorStatusRequest{Status: "paused"},
			map[string]string{"uuid": investor.ID})
		rec := httptest.NewRecorder()

		handler.UpdateInvestorStatus(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})
}

// TestInvestorHandler_CreateInvestment tests capital contribution recording.
func TestInvestorHandler_CreateInvestment(t *testing.T) {
	t.Run("creates an investment and returns 201", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewInvestorHandler(
			testutil.NewTestInvestorService(db),
			testutil.NewTestInvestmentService(db),
		)
		investor := testutil.CreateInvestor(t, db, "Asha Rao")

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/investment", request.CreateInvestmentRequest{
			InvestorID:   investor.ID,
			Amount:       250000,
			InvestedDate: "2025-01-15",
		}, nil)
		rec := httptest.NewRecorder()

		handler.CreateInvestment(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}

		investment := testutil.DecodeResponse[model.Investment](t, rec)
		if investment.Amount != 250000 || investment.InvestorID != investor.ID {
			t.Errorf("Unexpected investment in response: %+v", investment)
		}
	})

	t.Run("returns 404 for unknown investor", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewInvestorHandler(
			testutil.NewTestInvestorService(db),
			testutil.NewTestInvestmentService(db),
		)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/investment", request.CreateInvestmentRequest{
			InvestorID:   testutil.MakeID(),
			Amount:       250000,
			InvestedDate: "2025-01-15",
		}, nil)
		rec := httptest.NewRecorder()

		handler.CreateInvestment(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", rec.Code)
		}
	})
}
