package repository_test

import (
	"errors"
	"testing"
	"time"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/apperrors"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/model"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/repository"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/testutil"
)

// TestInvestorRepository_CreateInvestor tests investor creation.
//
// WHY: Client IDs are assigned by a database trigger, not by application
// code. Creation must read the row back so callers always see the assigned
// ID, and the sequence must never reuse a number.
func TestInvestorRepository_CreateInvestor(t *testing.T) {
	t.Run("assigns sequential client ids", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewInvestorRepository(db)

		first, err := repo.CreateInvestor(model.Investor{
			ID:          testutil.MakeID(),
			FullName:    "Asha Rao",
			Status:      model.InvestorStatusActive,
			JoiningDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("CreateInvestor() returned unexpected error: %v", err)
		}

		second, err := repo.CreateInvestor(model.Investor{
			ID:          testutil.MakeID(),
			FullName:    "Vikram Shah",
			Status:      model.InvestorStatusActive,
			JoiningDate: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("CreateInvestor() returned unexpected error: %v", err)
		}

		if first.ClientID != "S91-INV-001" {
			t.Errorf("Expected first client ID S91-INV-001, got %q", first.ClientID)
		}
		if second.ClientID != "S91-INV-002" {
			t.Errorf("Expected second client ID S91-INV-002, got %q", second.ClientID)
		}
	})

	t.Run("client id survives investor deletion", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewInvestorRepository(db)

		first, err := repo.CreateInvestor(model.Investor{
			ID:          testutil.MakeID(),
			FullName:    "Asha Rao",
			Status:      model.InvestorStatusActive,
			JoiningDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("CreateInvestor() returned unexpected error: %v", err)
		}

		if err := repo.DeleteInvestor(first.ID); err != nil {
			t.Fatalf("DeleteInvestor() returned unexpected error: %v", err)
		}

		// The AUTOINCREMENT sequence must not hand out 001 again.
		second, err := repo.CreateInvestor(model.Investor{
			ID:          testutil.MakeID(),
			FullName:    "Vikram Shah",
			Status:      model.InvestorStatusActive,
			JoiningDate: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("CreateInvestor() returned unexpected error: %v", err)
		}

		if second.ClientID == first.ClientID {
			t.Errorf("Client ID %q was reused after deletion", second.ClientID)
		}
	})
}

// TestInvestorRepository_InvestmentRunningTotal tests the denormalized total.
//
// WHY: investor.investment_amount is maintained by a database trigger.
// Application code never updates it, so the trigger is the only thing
// keeping the display column in line with investment rows.
func TestInvestorRepository_InvestmentRunningTotal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	investorRepo := repository.NewInvestorRepository(db)
	investmentRepo := repository.NewInvestmentRepository(db)

	investor := testutil.CreateInvestor(t, db, "Asha Rao")

	for _, amount := range []float64{100000, 50000} {
		_, err := investmentRepo.CreateInvestment(model.Investment{
			ID:           testutil.MakeID(),
			InvestorID:   investor.ID,
			Amount:       amount,
			InvestedDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("CreateInvestment(%.0f) returned unexpected error: %v", amount, err)
		}
	}

	stored, err := investorRepo.GetInvestorOnID(investor.ID)
	if err != nil {
		t.Fatalf("GetInvestorOnID() returned unexpected error: %v", err)
	}

	if stored.InvestmentAmount != 150000 {
		t.Errorf("Expected running total 150000, got %.0f", stored.InvestmentAmount)
	}
}

// TestInvestorRepository_GetWaitingPeriodInvestorsBefore tests sweep input.
//
// WHY: The sweep depends on this query selecting exactly the investors whose
// window has run out. An off-by-one at the cutoff moves investors a day
// early or late.
func TestInvestorRepository_GetWaitingPeriodInvestorsBefore(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewInvestorRepository(db)

	cutoff := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	onCutoff := testutil.NewInvestor().WithFullName("On Cutoff").
		InWaitingPeriodSince(cutoff).Build(t, db)
	before := testutil.NewInvestor().WithFullName("Before Cutoff").
		InWaitingPeriodSince(cutoff.AddDate(0, 0, -10)).Build(t, db)
	after := testutil.NewInvestor().WithFullName("After Cutoff").
		InWaitingPeriodSince(cutoff.Add(time.Second)).Build(t, db)
	// Active investors are never selected regardless of dates.
	testutil.NewInvestor().WithFullName("Active").Build(t, db)

	investors, err := repo.GetWaitingPeriodInvestorsBefore(cutoff)
	if err != nil {
		t.Fatalf("GetWaitingPeriodInvestorsBefore() returned unexpected error: %v", err)
	}

	found := map[string]bool{}
	for _, inv := range investors {
		found[inv.ID] = true
	}

	if len(investors) != 2 {
		t.Errorf("Expected 2 investors, got %d", len(investors))
	}
	if !found[onCutoff.ID] {
		t.Error("Investor starting exactly at the cutoff was not selected")
	}
	if !found[before.ID] {
		t.Error("Investor starting before the cutoff was not selected")
	}
	if found[after.ID] {
		t.Error("Investor starting after the cutoff was selected")
	}
}

// TestInvestorRepository_TransitionWaitingPeriodInvestors tests the sweep
// write path.
//
// WHY: Status flips and audit records commit in one transaction. A partial
// result, flipped status without audit or vice versa, would corrupt the
// trail the sweep exists to maintain.
func TestInvestorRepository_TransitionWaitingPeriodInvestors(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewInvestorRepository(db)

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	first := testutil.NewInvestor().WithFullName("First").InWaitingPeriodSince(start).Build(t, db)
	second := testutil.NewInvestor().WithFullName("Second").InWaitingPeriodSince(start).Build(t, db)

	investors := []model.Investor{first, second}
	err := repo.TransitionWaitingPeriodInvestors(investors, func(inv model.Investor) model.AuditLogEntry {
		return model.AuditLogEntry{
			ID:          testutil.MakeID(),
			Action:      "Auto-transitioned to Inactive",
			ReferenceID: inv.ID,
			Module:      "Investors",
			Notes:       inv.FullName,
		}
	})
	if err != nil {
		t.Fatalf("TransitionWaitingPeriodInvestors() returned unexpected error: %v", err)
	}

	for _, inv := range investors {
		stored, err := repo.GetInvestorOnID(inv.ID)
		if err != nil {
			t.Fatalf("GetInvestorOnID() returned unexpected error: %v", err)
		}
		if stored.Status != model.InvestorStatusInactive {
			t.Errorf("Investor %s status = %q, want inactive", inv.ID, stored.Status)
		}
	}

	testutil.AssertRowCount(t, db, "audit_log", 2)
}

// TestInvestorRepository_GetInvestorOnID tests single-row lookup.
func TestInvestorRepository_GetInvestorOnID(t *testing.T) {
	t.Run("missing investor reports not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewInvestorRepository(db)

		_, err := repo.GetInvestorOnID(testutil.MakeID())
		if !errors.Is(err, apperrors.ErrInvestorNotFound) {
			t.Errorf("Expected ErrInvestorNotFound, got %v", err)
		}
	})

	t.Run("round-trips stored fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewInvestorRepository(db)

		created := testutil.NewInvestor().WithFullName("Asha Rao").
			WithEmail("asha@example.com").WithPromisedReturn(3).Build(t, db)

		stored, err := repo.GetInvestorOnID(created.ID)
		if err != nil {
			t.Fatalf("GetInvestorOnID() returned unexpected error: %v", err)
		}

		if stored.FullName != "Asha Rao" || stored.Email != "asha@example.com" {
			t.Errorf("Stored fields do not match: %+v", stored)
		}
		if stored.PromisedReturn != 3 {
			t.Errorf("Expected promised return 3, got %v", stored.PromisedReturn)
		}
		if stored.ClientID == "" {
			t.Error("Expected trigger-assigned client ID")
		}
	})
}
