package service

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"rentacar/internal/booking"
)

type frozenClock struct{ at time.Time }

func (c frozenClock) Now() time.Time { return c.at }

func mustDateRange(t *testing.T, start, end string) booking.DateRange {
	t.Helper()
	rng, err := booking.NewDateRange(start, end)
	if err != nil {
		t.Fatalf("NewDateRange(%s, %s): %v", start, end, err)
	}
	return rng
}

func TestCancelStalePendingReservations(t *testing.T) {
	ctx := context.Background()

	t.Run("stale pending is cancelled and frees the vehicle", func(t *testing.T) {
		engine := booking.NewEngine(nil, nil, frozenClock{at: time.Now().Add(-48 * time.Hour)})
		if _, err := engine.AddVehicle(ctx, "V1", "Toyota Corolla", "ABC-123"); err != nil {
			t.Fatalf("AddVehicle: %v", err)
		}
		if _, err := engine.BookVehicle(ctx, "V1", "alice", "2024-01-01", "2024-01-05", nil); err != nil {
			t.Fatalf("BookVehicle: %v", err)
		}

		jobs := NewJobService(engine, logrus.New())
		jobs.CancelStalePendingReservations(ctx, 24*time.Hour)

		res, ok := engine.Reservation("V1", "alice")
		if !ok {
			t.Fatal("reservation disappeared")
		}
		if res.Status != booking.ReservationCancelled {
			t.Fatalf("expected cancelled, got %s", res.Status)
		}
		v, _ := engine.FindVehicle("V1")
		if v.Status != booking.VehicleAvailable {
			t.Fatalf("expected V1 available after sweep, got %s", v.Status)
		}
	})

	t.Run("fresh pending survives", func(t *testing.T) {
		engine := booking.NewEngine(nil, nil, nil)
		if _, err := engine.AddVehicle(ctx, "V1", "Toyota Corolla", "ABC-123"); err != nil {
			t.Fatalf("AddVehicle: %v", err)
		}
		if _, err := engine.BookVehicle(ctx, "V1", "alice", "2024-01-01", "2024-01-05", nil); err != nil {
			t.Fatalf("BookVehicle: %v", err)
		}

		jobs := NewJobService(engine, logrus.New())
		jobs.CancelStalePendingReservations(ctx, 24*time.Hour)

		res, _ := engine.Reservation("V1", "alice")
		if res.Status != booking.ReservationPending {
			t.Fatalf("fresh reservation must stay pending, got %s", res.Status)
		}
		v, _ := engine.FindVehicle("V1")
		if v.Status != booking.VehicleReserved {
			t.Fatalf("expected V1 still reserved, got %s", v.Status)
		}
	})

	t.Run("superseded stale entry is skipped", func(t *testing.T) {
		// A pair whose most recent reservation is fresh: the older stale
		// row is no longer addressable and must be left alone.
		engine := booking.NewEngine(nil, nil, nil)
		engine.Restore(
			[]booking.Vehicle{{ID: "V1", Model: "Toyota Corolla", Plate: "ABC-123", Status: booking.VehicleReserved}},
			[]booking.Reservation{
				{
					ID:        "stale",
					VehicleID: "V1",
					UserID:    "alice",
					Range:     mustDateRange(t, "2024-01-01", "2024-01-05"),
					Price:     100,
					Status:    booking.ReservationPending,
					Payment:   booking.PaymentPending,
					CreatedAt: time.Now().Add(-48 * time.Hour),
				},
				{
					ID:        "fresh",
					VehicleID: "V1",
					UserID:    "alice",
					Range:     mustDateRange(t, "2024-02-01", "2024-02-05"),
					Price:     100,
					Status:    booking.ReservationPending,
					Payment:   booking.PaymentPending,
					CreatedAt: time.Now(),
				},
			},
		)

		jobs := NewJobService(engine, logrus.New())
		jobs.CancelStalePendingReservations(ctx, 24*time.Hour)

		for _, r := range engine.ListReservations() {
			if r.Status != booking.ReservationPending {
				t.Fatalf("reservation %s must stay pending, got %s", r.ID, r.Status)
			}
		}
		v, _ := engine.FindVehicle("V1")
		if v.Status != booking.VehicleReserved {
			t.Fatalf("expected V1 still reserved, got %s", v.Status)
		}
	})
}
