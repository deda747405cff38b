package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/api/request"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/apperrors"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/model"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/service"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/testutil"
)

// TestIsMatured tests the maturation predicate.
//
// WHY: Every capital figure in the system depends on this single predicate.
// The 60-day boundary, the manual override and the future-date case must all
// behave exactly as documented or delivered/pending totals drift apart
// between views.
func TestIsMatured(t *testing.T) {
	asOf := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		entry     model.WaitingPeriodEntry
		asOf      time.Time
		wantMatur bool
	}{
		{
			name:      "exactly 60 days elapsed is matured",
			entry:     model.WaitingPeriodEntry{InitializedDate: asOf.AddDate(0, 0, -60)},
			asOf:      asOf,
			wantMatur: true,
		},
		{
			name:      "one second short of 60 days is pending",
			entry:     model.WaitingPeriodEntry{InitializedDate: asOf.Add(-60*24*time.Hour + time.Second)},
			asOf:      asOf,
			wantMatur: false,
		},
		{
			name:      "freshly initialized entry is pending",
			entry:     model.WaitingPeriodEntry{InitializedDate: asOf},
			asOf:      asOf,
			wantMatur: false,
		},
		{
			name:      "well past the window is matured",
			entry:     model.WaitingPeriodEntry{InitializedDate: asOf.AddDate(0, 0, -90)},
			asOf:      asOf,
			wantMatur: true,
		},
		{
			name:      "future initialized date never matures",
			entry:     model.WaitingPeriodEntry{InitializedDate: asOf.AddDate(0, 0, 30)},
			asOf:      asOf,
			wantMatur: false,
		},
		{
			name:      "delivered flag matures regardless of age",
			entry:     model.WaitingPeriodEntry{InitializedDate: asOf, Delivered: true},
			asOf:      asOf,
			wantMatur: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.IsMatured(tt.entry, tt.asOf)
			if got != tt.wantMatur {
				t.Errorf("IsMatured() = %v, want %v", got, tt.wantMatur)
			}
		})
	}

	t.Run("maturation is monotonic in time", func(t *testing.T) {
		entry := model.WaitingPeriodEntry{InitializedDate: asOf.AddDate(0, 0, -60)}

		if !service.IsMatured(entry, asOf) {
			t.Fatal("Expected entry to be matured at the boundary")
		}

		// Once matured, later observation times never flip it back.
		for _, later := range []time.Time{asOf.Add(time.Hour), asOf.AddDate(0, 1, 0), asOf.AddDate(1, 0, 0)} {
			if !service.IsMatured(entry, later) {
				t.Errorf("Entry matured at %v but not at later time %v", asOf, later)
			}
		}
	})
}

// TestClassify tests the pending/delivered partition.
//
// WHY: Classify feeds the dashboard, investor profiles and capital
// aggregates. Every input entry must land in exactly one group or totals
// double-count or drop capital.
func TestClassify(t *testing.T) {
	asOf := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("partitions entries into exactly two groups", func(t *testing.T) {
		entries := []model.WaitingPeriodEntry{
			{ID: "a", InitializedDate: asOf.AddDate(0, 0, -90)},
			{ID: "b", InitializedDate: asOf.AddDate(0, 0, -10)},
			{ID: "c", InitializedDate: asOf.AddDate(0, 0, -5), Delivered: true},
			{ID: "d", InitializedDate: asOf.AddDate(0, 0, -60)},
		}

		result := service.Classify(entries, asOf)

		if len(result.Pending)+len(result.Delivered) != len(entries) {
			t.Errorf("Partition lost entries: %d pending + %d delivered != %d input",
				len(result.Pending), len(result.Delivered), len(entries))
		}

		seen := map[string]int{}
		for _, e := range result.Pending {
			seen[e.ID]++
		}
		for _, e := range result.Delivered {
			seen[e.ID]++
		}
		for _, e := range entries {
			if seen[e.ID] != 1 {
				t.Errorf("Entry %s appears %d times across groups, want exactly 1", e.ID, seen[e.ID])
			}
		}

		if len(result.Delivered) != 3 {
			t.Errorf("Expected 3 delivered entries, got %d", len(result.Delivered))
		}
		if len(result.Pending) != 1 || result.Pending[0].ID != "b" {
			t.Errorf("Expected only entry b pending, got %v", result.Pending)
		}
	})

	t.Run("empty input yields empty non-nil groups", func(t *testing.T) {
		result := service.Classify([]model.WaitingPeriodEntry{}, asOf)

		if result.Pending == nil || result.Delivered == nil {
			t.Error("Expected initialized empty slices, got nil")
		}
		if len(result.Pending) != 0 || len(result.Delivered) != 0 {
			t.Errorf("Expected empty groups, got %d pending, %d delivered",
				len(result.Pending), len(result.Delivered))
		}
	})
}

// TestWaitingPeriodService_InitializeReturn tests return initialization.
//
// WHY: The remaining-capital precondition is the only guard against
// over-returning an investor's capital. The full deposit-return-deliver
// lifecycle is exercised end to end.
func TestWaitingPeriodService_InitializeReturn(t *testing.T) {
	t.Run("rejects non-positive amounts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestWaitingPeriodService(db)
		investor := testutil.CreateInvestorWithCapital(t, db, "Asha Rao", 100000)

		for _, amount := range []float64{0, -500} {
			_, err := svc.InitializeReturn(request.InitializeReturnRequest{
				InvestorID: investor.ID,
				Amount:     amount,
			})
			if !errors.Is(err, apperrors.ErrAmountNotPositive) {
				t.Errorf("Amount %.0f: expected ErrAmountNotPositive, got %v", amount, err)
			}
		}
	})

	t.Run("rejects unknown investor", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestWaitingPeriodService(db)

		_, err := svc.InitializeReturn(request.InitializeReturnRequest{
			InvestorID: testutil.MakeID(),
			Amount:     1000,
		})
		if !errors.Is(err, apperrors.ErrInvestorNotFound) {
			t.Errorf("Expected ErrInvestorNotFound, got %v", err)
		}
	})

	t.Run("full lifecycle against remaining capital", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestWaitingPeriodService(db)
		capital := testutil.NewTestCapitalService(db)
		investor := testutil.CreateInvestorWithCapital(t, db, "Asha Rao", 500000)

		// First return of 200k is accepted.
		first, err := svc.InitializeReturn(request.InitializeReturnRequest{
			InvestorID: investor.ID,
			Amount:     200000,
		})
		if err != nil {
			t.Fatalf("InitializeReturn(200000) returned unexpected error: %v", err)
		}
		if first.Delivered {
			t.Error("New entry should not be delivered")
		}

		remaining, err := capital.RemainingCapital(investor.ID)
		if err != nil {
			t.Fatalf("RemainingCapital() returned unexpected error: %v", err)
		}
		if remaining != 300000 {
			t.Errorf("Expected remaining capital 300000, got %.0f", remaining)
		}

		// 400k now exceeds the 300k remaining.
		_, err = svc.InitializeReturn(request.InitializeReturnRequest{
			InvestorID: investor.ID,
			Amount:     400000,
		})
		if !errors.Is(err, apperrors.ErrAmountExceedsRemaining) {
			t.Errorf("Expected ErrAmountExceedsRemaining, got %v", err)
		}

		// The full remaining 300k is accepted.
		second, err := svc.InitializeReturn(request.InitializeReturnRequest{
			InvestorID: investor.ID,
			Amount:     300000,
		})
		if err != nil {
			t.Fatalf("InitializeReturn(300000) returned unexpected error: %v", err)
		}

		remaining, err = capital.RemainingCapital(investor.ID)
		if err != nil {
			t.Fatalf("RemainingCapital() returned unexpected error: %v", err)
		}
		if remaining != 0 {
			t.Errorf("Expected remaining capital 0, got %.0f", remaining)
		}

		// Delivering an entry moves its amount into returned capital.
		if _, err := svc.MarkDelivered(second.ID); err != nil {
			t.Fatalf("MarkDelivered() returned unexpected error: %v", err)
		}

		returned, err := capital.CapitalReturned(investor.ID, time.Now())
		if err != nil {
			t.Fatalf("CapitalReturned() returned unexpected error: %v", err)
		}
		if returned != 300000 {
			t.Errorf("Expected capital returned 300000, got %.0f", returned)
		}
	})

	t.Run("honors explicit initialized date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestWaitingPeriodService(db)
		investor := testutil.CreateInvestorWithCapital(t, db, "Asha Rao", 100000)

		entry, err := svc.InitializeReturn(request.InitializeReturnRequest{
			InvestorID:      investor.ID,
			Amount:          50000,
			InitializedDate: "2025-01-15",
		})
		if err != nil {
			t.Fatalf("InitializeReturn() returned unexpected error: %v", err)
		}

		want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
		if !entry.InitializedDate.Equal(want) {
			t.Errorf("Expected initialized date %v, got %v", want, entry.InitializedDate)
		}
	})

	t.Run("writes an audit record", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestWaitingPeriodService(db)
		investor := testutil.CreateInvestorWithCapital(t, db, "Asha Rao", 100000)

		_, err := svc.InitializeReturn(request.InitializeReturnRequest{
			InvestorID: investor.ID,
			Amount:     25000,
		})
		if err != nil {
			t.Fatalf("InitializeReturn() returned unexpected error: %v", err)
		}

		testutil.AssertRowCount(t, db, "audit_log", 1)
	})
}

// TestWaitingPeriodService_MarkDelivered tests the manual delivery override.
//
// WHY: The transition is one-way and idempotent. A repeated call must not
// move delivered_at, or audit history and maturation timestamps become
// unreliable.
func TestWaitingPeriodService_MarkDelivered(t *testing.T) {
	t.Run("sets delivered flag and timestamp", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestWaitingPeriodService(db)
		investor := testutil.CreateInvestor(t, db, "Asha Rao")
		entry := testutil.NewWaitingPeriodEntry().WithInvestor(investor.ID).Build(t, db)

		updated, err := svc.MarkDelivered(entry.ID)
		if err != nil {
			t.Fatalf("MarkDelivered() returned unexpected error: %v", err)
		}

		if !updated.Delivered {
			t.Error("Expected entry to be delivered")
		}
		if updated.DeliveredAt == nil {
			t.Error("Expected delivered_at to be set")
		}
	})

	t.Run("second call is a no-op success", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestWaitingPeriodService(db)
		investor := testutil.CreateInvestor(t, db, "Asha Rao")
		entry := testutil.NewWaitingPeriodEntry().WithInvestor(investor.ID).Build(t, db)

		first, err := svc.MarkDelivered(entry.ID)
		if err != nil {
			t.Fatalf("First MarkDelivered() returned unexpected error: %v", err)
		}

		second, err := svc.MarkDelivered(entry.ID)
		if err != nil {
			t.Fatalf("Second MarkDelivered() returned unexpected error: %v", err)
		}

		if second.DeliveredAt == nil || first.DeliveredAt == nil {
			t.Fatal("Expected delivered_at to be set on both reads")
		}
		if !second.DeliveredAt.Equal(*first.DeliveredAt) {
			t.Errorf("delivered_at moved on repeat call: %v then %v", first.DeliveredAt, second.DeliveredAt)
		}

		// Only the first transition is audited.
		testutil.AssertRowCount(t, db, "audit_log", 1)
	})

	t.Run("missing entry reports not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestWaitingPeriodService(db)

		_, err := svc.MarkDelivered(testutil.MakeID())
		if !errors.Is(err, apperrors.ErrEntryNotFound) {
			t.Errorf("Expected ErrEntryNotFound, got %v", err)
		}
	})
}
