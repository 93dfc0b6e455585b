package service

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"rentacar/internal/booking"
)

// ContactStore resolves the contact details stored with a reservation.
type ContactStore interface {
	GetContact(ctx context.Context, reservationID string) (email, phone string, err error)
}

// AdminService wraps the fleet-management and approval operations that
// only authenticated admins may perform.
type AdminService struct {
	Engine   *booking.Engine
	Stripe   *StripeService
	Contacts ContactStore
	Sender   Sender
	Log      *logrus.Logger
}

func NewAdminService(engine *booking.Engine, stripeService *StripeService, contacts ContactStore, sender Sender, log *logrus.Logger) *AdminService {
	return &AdminService{Engine: engine, Stripe: stripeService, Contacts: contacts, Sender: sender, Log: log}
}

func (s *AdminService) AddVehicle(ctx context.Context, id, model, plate string) (booking.Vehicle, error) {
	return s.Engine.AddVehicle(ctx, id, model, plate)
}

func (s *AdminService) UpdateVehicleModel(ctx context.Context, id, model string) error {
	return s.Engine.UpdateVehicleModel(ctx, id, model)
}

func (s *AdminService) DeleteVehicle(ctx context.Context, id string) error {
	return s.Engine.RemoveVehicle(ctx, id)
}

func (s *AdminService) UpdateVehicleStatus(ctx context.Context, id, status string) error {
	return s.Engine.SetVehicleStatus(ctx, id, booking.VehicleStatus(strings.ToLower(status)))
}

func (s *AdminService) ListVehicles(modelFilter string) []booking.Vehicle {
	if modelFilter != "" {
		return s.Engine.FilterByModel(modelFilter)
	}
	return s.Engine.ListVehicles()
}

func (s *AdminService) ListReservations() []booking.Reservation {
	return s.Engine.ListReservations()
}

// UpdateReservationStatus applies an approval decision and notifies the
// user at the contact details stored when the reservation was booked.
func (s *AdminService) UpdateReservationStatus(ctx context.Context, vehicleID, userID, status string) error {
	decision := strings.ToLower(status)
	if err := s.Engine.SetReservationStatus(ctx, vehicleID, userID, booking.ReservationStatus(decision)); err != nil {
		return err
	}

	if s.Sender == nil {
		return nil
	}
	res, ok := s.Engine.Reservation(vehicleID, userID)
	if !ok {
		return nil
	}
	var email, phone string
	if s.Contacts != nil {
		var err error
		email, phone, err = s.Contacts.GetContact(ctx, res.ID)
		if err != nil {
			s.Log.Warnf("could not look up contact for reservation %s: %v", res.ID, err)
			return nil
		}
	}
	s.Sender.SendReservationEmail(res, decision, email)
	s.Sender.SendReservationSMS(res, decision, phone)
	return nil
}
