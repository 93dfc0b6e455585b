package booking

import (
	"errors"
	"testing"
	"time"
)

func TestLedgerHasConflict(t *testing.T) {
	l := NewLedger()
	now := time.Now()
	l.Create("V1", "alice", mustRange(t, "2024-01-01", "2024-01-05"), 100, now)

	t.Run("pending reservations conflict", func(t *testing.T) {
		if !l.HasConflict("V1", mustRange(t, "2024-01-03", "2024-01-06")) {
			t.Fatalf("expected conflict with pending reservation")
		}
	})

	t.Run("vehicle id matches case-insensitively", func(t *testing.T) {
		if !l.HasConflict("v1", mustRange(t, "2024-01-05", "2024-01-07")) {
			t.Fatalf("expected conflict for lower-cased id")
		}
	})

	t.Run("other vehicle does not conflict", func(t *testing.T) {
		if l.HasConflict("V2", mustRange(t, "2024-01-03", "2024-01-06")) {
			t.Fatalf("unexpected conflict for other vehicle")
		}
	})

	t.Run("disjoint range does not conflict", func(t *testing.T) {
		if l.HasConflict("V1", mustRange(t, "2024-01-06", "2024-01-08")) {
			t.Fatalf("unexpected conflict for disjoint range")
		}
	})

	t.Run("cancelled reservations are ignored", func(t *testing.T) {
		if _, err := l.SetStatus("V1", "alice", ReservationCancelled); err != nil {
			t.Fatalf("SetStatus: %v", err)
		}
		if l.HasConflict("V1", mustRange(t, "2024-01-03", "2024-01-06")) {
			t.Fatalf("unexpected conflict with cancelled reservation")
		}
	})
}

func TestLedgerSetStatus(t *testing.T) {
	l := NewLedger()
	now := time.Now()

	if _, err := l.SetStatus("V1", "alice", ReservationConfirmed); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty ledger, got %v", err)
	}

	l.Create("V1", "alice", mustRange(t, "2024-01-01", "2024-01-05"), 100, now)
	res, err := l.SetStatus("V1", "alice", ReservationCancelled)
	if err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if res.Status != ReservationCancelled || res.Payment != PaymentCancelled {
		t.Fatalf("cancellation must cancel payment too, got %+v", res)
	}

	// A later booking for the same pair becomes the target; the cancelled
	// one stays terminal.
	l.Create("V1", "alice", mustRange(t, "2024-02-01", "2024-02-03"), 60, now.Add(time.Minute))
	res, err = l.SetStatus("v1", "alice", ReservationConfirmed)
	if err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if res.Range.Start.String() != "2024-02-01" || res.Status != ReservationConfirmed {
		t.Fatalf("expected most recent non-terminal reservation, got %+v", res)
	}
}

func TestLedgerSetPayment(t *testing.T) {
	l := NewLedger()
	now := time.Now()
	l.Create("V1", "alice", mustRange(t, "2024-01-01", "2024-01-05"), 100, now)

	if _, err := l.SetPayment("V1", "alice"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("paying a pending reservation must fail with ErrNotFound, got %v", err)
	}

	if _, err := l.SetStatus("V1", "alice", ReservationConfirmed); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	res, err := l.SetPayment("V1", "alice")
	if err != nil {
		t.Fatalf("SetPayment: %v", err)
	}
	if res.Payment != PaymentPaid {
		t.Fatalf("expected paid, got %s", res.Payment)
	}

	if _, err := l.SetPayment("V1", "alice"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("paying twice must fail with ErrNotFound, got %v", err)
	}
}

func TestLedgerForUser(t *testing.T) {
	l := NewLedger()
	now := time.Now()
	l.Create("V1", "alice", mustRange(t, "2024-01-01", "2024-01-02"), 40, now)
	l.Create("V2", "bob", mustRange(t, "2024-01-01", "2024-01-02"), 40, now)
	l.Create("V2", "alice", mustRange(t, "2024-02-01", "2024-02-02"), 40, now)

	got := l.ForUser("alice")
	if len(got) != 2 || got[0].VehicleID != "V1" || got[1].VehicleID != "V2" {
		t.Fatalf("expected alice's reservations in creation order, got %+v", got)
	}
	if got := l.ForUser("carol"); len(got) != 0 {
		t.Fatalf("expected empty result for unknown user, got %+v", got)
	}
}

func TestLedgerHasNonTerminal(t *testing.T) {
	l := NewLedger()
	now := time.Now()
	l.Create("V1", "alice", mustRange(t, "2024-01-01", "2024-01-02"), 40, now)

	if !l.HasNonTerminal("v1") {
		t.Fatalf("expected non-terminal reservation for V1")
	}
	if _, err := l.SetStatus("V1", "alice", ReservationCancelled); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if l.HasNonTerminal("V1") {
		t.Fatalf("expected no non-terminal reservations after cancel")
	}
}
