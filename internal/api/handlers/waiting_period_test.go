package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/api/handlers"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/api/request"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/model"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/testutil"
)

// TestWaitingPeriodHandler_InitializeReturn tests the return creation endpoint.
//
// WHY: This endpoint is the write path into the waiting-period ledger. The
// HTTP layer must map each failure class to the right status code so clients
// can distinguish bad input from missing investors.
func TestWaitingPeriodHandler_InitializeReturn(t *testing.T) {
	t.Run("creates an entry and returns 201", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewWaitingPeriodHandler(
			testutil.NewTestWaitingPeriodService(db),
			testutil.NewTestCapitalService(db),
		)
		investor := testutil.CreateInvestorWithCapital(t, db, "Asha Rao", 500000)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/waiting-period", request.InitializeReturnRequest{
			InvestorID: investor.ID,
			Amount:     200000,
		}, nil)
		rec := httptest.NewRecorder()

		handler.InitializeReturn(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}

		entry := testutil.DecodeResponse[model.WaitingPeriodEntry](t, rec)
		if entry.Amount != 200000 || entry.InvestorID != investor.ID {
			t.Errorf("Unexpected entry in response: %+v", entry)
		}
		if entry.Delivered {
			t.Error("New entry should not be delivered")
		}
	})

	t.Run("returns 400 when amount exceeds remaining capital", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewWaitingPeriodHandler(
			testutil.NewTestWaitingPeriodService(db),
			testutil.NewTestCapitalService(db),
		)
		investor := testutil.CreateInvestorWithCapital(t, db, "Asha Rao", 100000)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/waiting-period", request.InitializeReturnRequest{
			InvestorID: investor.ID,
			Amount:     150000,
		}, nil)
		rec := httptest.NewRecorder()

		handler.InitializeReturn(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 for unknown investor", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewWaitingPeriodHandler(
			testutil.NewTestWaitingPeriodService(db),
			testutil.NewTestCapitalService(db),
		)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/waiting-period", request.InitializeReturnRequest{
			InvestorID: testutil.MakeID(),
			Amount:     1000,
		}, nil)
		rec := httptest.NewRecorder()

		handler.InitializeReturn(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", rec.Code)
		}
	})

	t.Run("returns 400 for malformed body", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewWaitingPeriodHandler(
			testutil.NewTestWaitingPeriodService(db),
			testutil.NewTestCapitalService(db),
		)

		req := httptest.NewRequest(http.MethodPost, "/api/waiting-period", nil)
		rec := httptest.NewRecorder()

		handler.InitializeReturn(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})
}

// TestWaitingPeriodHandler_MarkDelivered tests the manual delivery endpoint.
func TestWaitingPeriodHandler_MarkDelivered(t *testing.T) {
	t.Run("delivers the entry and returns it", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewWaitingPeriodHandler(
			testutil.NewTestWaitingPeriodService(db),
			testutil.NewTestCapitalService(db),
		)
		investor := testutil.CreateInvestor(t, db, "Asha Rao")
		entry := testutil.NewWaitingPeriodEntry().WithInvestor(investor.ID).Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodPost,
			"/api/waiting-period/"+entry.ID+"/deliver",
			map[string]string{"uuid": entry.ID})
		rec := httptest.NewRecorder()

		handler.MarkDelivered(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}

		delivered := testutil.DecodeResponse[model.WaitingPeriodEntry](t, rec)
		if !delivered.Delivered || delivered.DeliveredAt == nil {
			t.Errorf("Expected delivered entry in response, got %+v", delivered)
		}
	})

	t.Run("returns 404 for unknown entry", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewWaitingPeriodHandler(
			testutil.NewTestWaitingPeriodService(db),
			testutil.NewTestCapitalService(db),
		)

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(http.MethodPost,
			"/api/waiting-period/"+id+"/deliver",
			map[string]string{"uuid": id})
		rec := httptest.NewRecorder()

		handler.MarkDelivered(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", rec.Code)
		}
	})
}

// TestWaitingPeriodHandler_InvestorEntries tests the classification endpoint.
//
// WHY: The response partitions entries as of request time; a client showing
// an entry in both groups, or neither, would misreport capital.
func TestWaitingPeriodHandler_InvestorEntries(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewWaitingPeriodHandler(
		testutil.NewTestWaitingPeriodService(db),
		testutil.NewTestCapitalService(db),
	)
	investor := testutil.CreateInvestor(t, db, "Asha Rao")

	now := time.Now().UTC()
	testutil.NewWaitingPeriodEntry().WithInvestor(investor.ID).
		WithAmount(100000).WithInitializedDate(now.AddDate(0, 0, -70)).Build(t, db)
	testutil.NewWaitingPeriodEntry().WithInvestor(investor.ID).
		WithAmount(50000).WithInitializedDate(now).Build(t, db)

	req := testutil.NewRequestWithURLParams(http.MethodGet,
		"/api/investor/"+investor.ID+"/waiting-period",
		map[string]string{"uuid": investor.ID})
	rec := httptest.NewRecorder()

	handler.InvestorEntries(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	classification := testutil.DecodeResponse[model.WaitingPeriodClassification](t, rec)
	if len(classification.Delivered) != 1 || len(classification.Pending) != 1 {
		t.Errorf("Expected 1 delivered and 1 pending entry, got %d and %d",
			len(classification.Delivered), len(classification.Pending))
	}
}

// TestWaitingPeriodHandler_InvestorRemainingCapital tests the capital endpoint.
func TestWaitingPeriodHandler_InvestorRemainingCapital(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewWaitingPeriodHandler(
		testutil.NewTestWaitingPeriodService(db),
		testutil.NewTestCapitalService(db),
	)
	investor := testutil.CreateInvestorWithCapital(t, db, "Asha Rao", 300000)
	testutil.NewWaitingPeriodEntry().WithInvestor(investor.ID).WithAmount(100000).Build(t, db)

	req := testutil.NewRequestWithURLParams(http.MethodGet,
		"/api/investor/"+investor.ID+"/remaining-capital",
		map[string]string{"uuid": investor.ID})
	rec := httptest.NewRecorder()

	handler.InvestorRemainingCapital(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := testutil.DecodeResponse[map[string]float64](t, rec)
	if body["remaining_capital"] != 200000 {
		t.Errorf("Expected remaining capital 200000, got %v", body)
	}
}
