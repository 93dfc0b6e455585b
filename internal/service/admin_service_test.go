package service

import (
	"context"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"

	"rentacar/internal/booking"
)

type sentNotification struct {
	status string
	to     string
}

type recordingSender struct {
	mu     sync.Mutex
	emails []sentNotification
	sms    []sentNotification
}

func (s *recordingSender) SendReservationEmail(_ booking.Reservation, status, toEmail string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if toEmail != "" {
		s.emails = append(s.emails, sentNotification{status: status, to: toEmail})
	}
}

func (s *recordingSender) SendReservationSMS(_ booking.Reservation, status, toPhone string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if toPhone != "" {
		s.sms = append(s.sms, sentNotification{status: status, to: toPhone})
	}
}

type mapContacts map[string][2]string

func (m mapContacts) GetContact(_ context.Context, reservationID string) (string, string, error) {
	c := m[reservationID]
	return c[0], c[1], nil
}

func TestUpdateReservationStatusNotifies(t *testing.T) {
	ctx := context.Background()
	engine := booking.NewEngine(nil, nil, nil)
	if _, err := engine.AddVehicle(ctx, "V1", "Toyota Corolla", "ABC-123"); err != nil {
		t.Fatalf("AddVehicle: %v", err)
	}
	res, err := engine.BookVehicle(ctx, "V1", "alice", "2024-01-01", "2024-01-05", nil)
	if err != nil {
		t.Fatalf("BookVehicle: %v", err)
	}

	sender := &recordingSender{}
	contacts := mapContacts{res.ID: {"alice@example.com", "+15550100"}}
	svc := NewAdminService(engine, nil, contacts, sender, logrus.New())

	t.Run("confirm notifies the stored contact", func(t *testing.T) {
		if err := svc.UpdateReservationStatus(ctx, "V1", "alice", "Confirmed"); err != nil {
			t.Fatalf("UpdateReservationStatus: %v", err)
		}
		if len(sender.emails) != 1 || sender.emails[0].status != "confirmed" || sender.emails[0].to != "alice@example.com" {
			t.Fatalf("unexpected emails: %+v", sender.emails)
		}
		if len(sender.sms) != 1 || sender.sms[0].status != "confirmed" || sender.sms[0].to != "+15550100" {
			t.Fatalf("unexpected sms: %+v", sender.sms)
		}
	})

	t.Run("cancel notifies too", func(t *testing.T) {
		if err := svc.UpdateReservationStatus(ctx, "V1", "alice", "cancelled"); err != nil {
			t.Fatalf("UpdateReservationStatus: %v", err)
		}
		if len(sender.emails) != 2 || sender.emails[1].status != "cancelled" {
			t.Fatalf("unexpected emails: %+v", sender.emails)
		}
	})

	t.Run("failed transition sends nothing", func(t *testing.T) {
		if err := svc.UpdateReservationStatus(ctx, "V1", "alice", "confirmed"); err == nil {
			t.Fatal("expected error on a terminal reservation")
		}
		if len(sender.emails) != 2 || len(sender.sms) != 2 {
			t.Fatalf("no notification expected after a failed transition: emails=%d sms=%d",
				len(sender.emails), len(sender.sms))
		}
	})

	t.Run("missing contact sends nothing", func(t *testing.T) {
		if _, err := engine.BookVehicle(ctx, "V1", "bob", "2024-02-01", "2024-02-03", nil); err != nil {
			t.Fatalf("BookVehicle: %v", err)
		}
		if err := svc.UpdateReservationStatus(ctx, "V1", "bob", "confirmed"); err != nil {
			t.Fatalf("UpdateReservationStatus: %v", err)
		}
		if len(sender.emails) != 2 || len(sender.sms) != 2 {
			t.Fatalf("no notification expected without stored contact: emails=%d sms=%d",
				len(sender.emails), len(sender.sms))
		}
	})
}
