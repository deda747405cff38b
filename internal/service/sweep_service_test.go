package service_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/model"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/testutil"
)

// TestSweepService_Run tests the investor-level maturation sweep.
//
// WHY: The sweep is the only automated status transition in the system. It
// must catch exactly the investors whose waiting period has run 60 days,
// audit each one, and do nothing at all on a repeat run.
func TestSweepService_Run(t *testing.T) {
	now := time.Date(2025, 6, 1, 1, 0, 0, 0, time.UTC)

	t.Run("transitions investors past the window", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSweepService(db)

		aged := testutil.NewInvestor().WithFullName("Aged Investor").
			InWaitingPeriodSince(now.AddDate(0, 0, -70)).Build(t, db)
		boundary := testutil.NewInvestor().WithFullName("Boundary Investor").
			InWaitingPeriodSince(now.AddDate(0, 0, -60)).Build(t, db)
		fresh := testutil.NewInvestor().WithFullName("Fresh Investor").
			InWaitingPeriodSince(now.AddDate(0, 0, -59)).Build(t, db)
		active := testutil.NewInvestor().WithFullName("Active Investor").Build(t, db)

		result, err := svc.Run(now)
		if err != nil {
			t.Fatalf("Run() returned unexpected error: %v", err)
		}

		if result.TransitionedCount != 2 {
			t.Errorf("Expected 2 transitions, got %d", result.TransitionedCount)
		}

		assertStatus(t, db, aged.ID, model.InvestorStatusInactive)
		assertStatus(t, db, boundary.ID, model.InvestorStatusInactive)
		assertStatus(t, db, fresh.ID, model.InvestorStatusWaitingPeriod)
		assertStatus(t, db, active.ID, model.InvestorStatusActive)

		// One audit record per transitioned investor.
		testutil.AssertRowCount(t, db, "audit_log", 2)
	})

	t.Run("audit record carries the investor name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSweepService(db)

		investor := testutil.NewInvestor().WithFullName("Asha Rao").
			InWaitingPeriodSince(now.AddDate(0, 0, -61)).Build(t, db)

		if _, err := svc.Run(now); err != nil {
			t.Fatalf("Run() returned unexpected error: %v", err)
		}

		var action, refID, notes string
		err := db.QueryRow(
			"SELECT action, reference_id, notes FROM audit_log").Scan(&action, &refID, &notes)
		if err != nil {
			t.Fatalf("Failed to read audit record: %v", err)
		}

		if action != "Auto-transitioned to Inactive" {
			t.Errorf("Unexpected audit action: %q", action)
		}
		if refID != investor.ID {
			t.Errorf("Audit reference_id = %q, want %q", refID, investor.ID)
		}
		if notes != "Asha Rao moved to inactive after 60 days in waiting period" {
			t.Errorf("Unexpected audit notes: %q", notes)
		}
	})

	t.Run("second run is a no-op", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSweepService(db)

		testutil.NewInvestor().WithFullName("Aged Investor").
			InWaitingPeriodSince(now.AddDate(0, 0, -70)).Build(t, db)

		first, err := svc.Run(now)
		if err != nil {
			t.Fatalf("First Run() returned unexpected error: %v", err)
		}
		if first.TransitionedCount != 1 {
			t.Fatalf("Expected 1 transition on first run, got %d", first.TransitionedCount)
		}

		second, err := svc.Run(now)
		if err != nil {
			t.Fatalf("Second Run() returned unexpected error: %v", err)
		}
		if second.TransitionedCount != 0 {
			t.Errorf("Expected 0 transitions on second run, got %d", second.TransitionedCount)
		}

		// No extra audit records from the repeat run.
		testutil.AssertRowCount(t, db, "audit_log", 1)
	})

	t.Run("empty database is a clean no-op", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSweepService(db)

		result, err := svc.Run(now)
		if err != nil {
			t.Fatalf("Run() returned unexpected error: %v", err)
		}
		if result.TransitionedCount != 0 {
			t.Errorf("Expected 0 transitions, got %d", result.TransitionedCount)
		}
		if result.InvestorIDs == nil {
			t.Error("Expected initialized empty InvestorIDs slice, got nil")
		}
	})
}

func assertStatus(t *testing.T, db *sql.DB, investorID, want string) {
	t.Helper()

	var status string
	err := db.QueryRow("SELECT status FROM investor WHERE id = ?", investorID).Scan(&status)
	if err != nil {
		t.Fatalf("Failed to read investor status: %v", err)
	}
	if status != want {
		t.Errorf("Investor %s status = %q, want %q", investorID, status, want)
	}
}
