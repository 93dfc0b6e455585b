package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"rentacar/internal/booking"
)

// Sender delivers reservation notifications. Implementations must not
// block the calling workflow.
type Sender interface {
	SendReservationEmail(res booking.Reservation, status, toEmail string)
	SendReservationSMS(res booking.Reservation, status, toPhone string)
}

// SenderService sends notifications through SendGrid and Twilio,
// asynchronously, for booking, approval and cancellation events.
type SenderService struct {
	Log *logrus.Logger
}

func NewSenderService(log *logrus.Logger) *SenderService {
	return &SenderService{Log: log}
}

func (s *SenderService) SendReservationEmail(res booking.Reservation, status, toEmail string) {
	if toEmail == "" {
		return
	}

	subject := fmt.Sprintf("Your RentACar reservation is %s - Vehicle: %s", status, res.VehicleID)
	body := fmt.Sprintf(
		"Hello,\n\nYour reservation at RentACar is %s.\n\n"+
			"Reservation details:\n"+
			"Vehicle: %s\n"+
			"From: %s\n"+
			"To: %s\n"+
			"Price: $%.2f\n\n"+
			"Thank you for choosing RentACar.",
		status, res.VehicleID, res.Range.Start, res.Range.End, res.Price,
	)

	go func() {
		if err := SendEmailWithSendGrid(toEmail, "", subject, body, body); err != nil {
			s.Log.Warnf("email for reservation %s failed: %v", res.ID, err)
		}
	}()
}

func (s *SenderService) SendReservationSMS(res booking.Reservation, status, toPhone string) {
	if toPhone == "" {
		return
	}

	msg := fmt.Sprintf("RentACar: your reservation for %s (%s to %s) is %s. Details in your email.",
		res.VehicleID, res.Range.Start, res.Range.End, status)

	go func() {
		if err := SendSMS(toPhone, msg); err != nil {
			s.Log.Warnf("SMS for reservation %s failed: %v", res.ID, err)
		}
	}()
}
