package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"rentacar/internal/booking"
	"rentacar/internal/entities"
	"rentacar/internal/repository"
)

const checkoutCurrency = "usd"

// ReservationService drives the booking engine for end users and calls
// the outer collaborators (checkout, notifications) once a state change
// has completed.
type ReservationService struct {
	Engine *booking.Engine
	Repo   *repository.ReservationRepository
	Stripe *StripeService
	Sender Sender
	Log    *logrus.Logger
}

func NewReservationService(engine *booking.Engine, repo *repository.ReservationRepository, stripeSvc *StripeService, sender Sender, log *logrus.Logger) *ReservationService {
	return &ReservationService{Engine: engine, Repo: repo, Stripe: stripeSvc, Sender: sender, Log: log}
}

// Book places a reservation. Requests either carry an explicit date
// range or a day count starting today. The request's contact details
// are kept with the reservation so approval decisions can notify later.
func (s *ReservationService) Book(ctx context.Context, req entities.BookingRequest) (booking.Reservation, error) {
	policy, err := booking.PolicyFromName(req.Policy)
	if err != nil {
		return booking.Reservation{}, err
	}

	var res booking.Reservation
	if req.StartDate == "" && req.Days > 0 {
		res, err = s.Engine.RentForDays(ctx, req.VehicleID, req.UserID, req.Days, policy)
	} else {
		res, err = s.Engine.BookVehicle(ctx, req.VehicleID, req.UserID, req.StartDate, req.EndDate, policy)
	}
	if err != nil {
		return booking.Reservation{}, err
	}

	if s.Repo != nil && (req.Email != "" || req.Phone != "") {
		if err := s.Repo.SetContact(ctx, res.ID, req.Email, req.Phone); err != nil {
			s.Log.Warnf("could not store contact for reservation %s: %v", res.ID, err)
		}
	}
	if s.Sender != nil {
		s.Sender.SendReservationEmail(res, "pending approval", req.Email)
		s.Sender.SendReservationSMS(res, "pending approval", req.Phone)
	}
	return res, nil
}

// Cancel runs the user-initiated cancellation and refunds the checkout
// session when the reservation had already been paid.
func (s *ReservationService) Cancel(ctx context.Context, req entities.CancelRequest) error {
	res, known := s.Engine.Reservation(req.VehicleID, req.UserID)
	if err := s.Engine.CancelReservation(ctx, req.VehicleID, req.UserID); err != nil {
		return err
	}

	if known && res.Payment == booking.PaymentPaid && s.Stripe != nil && s.Repo != nil {
		sessionID, err := s.Repo.GetStripeSession(ctx, res.ID)
		if err != nil {
			s.Log.Warnf("could not look up stripe session for reservation %s: %v", res.ID, err)
		} else if sessionID != "" {
			if err := s.Stripe.RefundPaymentBySessionID(sessionID); err != nil {
				s.Log.Warnf("refund for reservation %s failed: %v", res.ID, err)
			}
		}
	}

	email, phone := req.Email, req.Phone
	if known && email == "" && phone == "" && s.Repo != nil {
		email, phone, _ = s.Repo.GetContact(ctx, res.ID)
	}
	if s.Sender != nil {
		res.Status = booking.ReservationCancelled
		s.Sender.SendReservationEmail(res, "cancelled", email)
		s.Sender.SendReservationSMS(res, "cancelled", phone)
	}
	return nil
}

// Pay marks the confirmed reservation as paid and opens a checkout
// session for it. The returned URL is empty when Stripe is not
// configured.
func (s *ReservationService) Pay(ctx context.Context, req entities.PaymentRequest) (string, error) {
	res, err := s.Engine.SetPaymentStatus(ctx, req.VehicleID, req.UserID)
	if err != nil {
		return "", err
	}
	if s.Stripe == nil {
		return "", nil
	}

	description := fmt.Sprintf("Vehicle %s, %s to %s", res.VehicleID, res.Range.Start, res.Range.End)
	url, sessionID, err := s.Stripe.CreateCheckoutSession(int64(res.Price*100), checkoutCurrency, description, req.Email)
	if err != nil {
		s.Log.Warnf("checkout session for reservation %s failed: %v", res.ID, err)
		return "", nil
	}
	if s.Repo != nil {
		if err := s.Repo.SetStripeSession(ctx, res.ID, sessionID); err != nil {
			s.Log.Warnf("could not store stripe session for reservation %s: %v", res.ID, err)
		}
	}
	return url, nil
}

func (s *ReservationService) ListAvailableVehicles() []booking.Vehicle {
	return s.Engine.ListAvailable()
}

func (s *ReservationService) ListForUser(userID string) []booking.Reservation {
	return s.Engine.ListReservationsFor(userID)
}
