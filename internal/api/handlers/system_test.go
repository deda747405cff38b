package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/api/handlers"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/service"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/testutil"
)

// TestSystemHandler_Health tests the health check endpoint.
//
// WHY: Deploys and monitors gate on this endpoint. It must report healthy
// only while the database answers, and flip to 503 the moment it does not.
func TestSystemHandler_Health(t *testing.T) {
	t.Run("returns healthy with a live database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSystemHandler(service.NewSystemService(db), testutil.NewTestSweepService(db))

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		rec := httptest.NewRecorder()

		handler.Health(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}

		body := testutil.DecodeResponse[map[string]string](t, rec)
		if body["status"] != "healthy" {
			t.Errorf("Expected status healthy, got %v", body)
		}
	})

	t.Run("returns 503 when the database is unreachable", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSystemHandler(service.NewSystemService(db), testutil.NewTestSweepService(db))

		db.Close()

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		rec := httptest.NewRecorder()

		handler.Health(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("Expected status 503, got %d", rec.Code)
		}
	})
}

// TestSystemHandler_Version tests the version endpoint.
func TestSystemHandler_Version(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewSystemHandler(service.NewSystemService(db), testutil.NewTestSweepService(db))

	req := httptest.NewRequest(http.MethodGet, "/api/system/version", nil)
	rec := httptest.NewRecorder()

	handler.Version(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	body := testutil.DecodeResponse[map[string]string](t, rec)
	if body["version"] == "" {
		t.Error("Expected non-empty version")
	}
}

// TestSystemHandler_RunSweep tests the externally triggered sweep endpoint.
//
// WHY: External schedulers poll this endpoint instead of the in-process
// cron. The response must report how many investors moved so the scheduler
// can log and alert on it.
func TestSystemHandler_RunSweep(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewSystemHandler(service.NewSystemService(db), testutil.NewTestSweepService(db))

	testutil.NewInvestor().WithFullName("Aged Investor").
		InWaitingPeriodSince(time.Now().UTC().AddDate(0, 0, -70)).Build(t, db)

	req := httptest.NewRequest(http.MethodPost, "/api/system/waiting-period-sweep", nil)
	rec := httptest.NewRecorder()

	handler.RunSweep(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	result := testutil.DecodeResponse[service.SweepResult](t, rec)
	if result.TransitionedCount != 1 {
		t.Errorf("Expected 1 transition, got %d", result.TransitionedCount)
	}
	if len(result.InvestorIDs) != 1 {
		t.Errorf("Expected 1 investor ID, got %v", result.InvestorIDs)
	}
}
