package logger

import (
	"os"

	"github.com/sirupsen/logrus"

	"rentacar/internal/booking"
)

// New builds the application logger from LOG_LEVEL and LOG_FORMAT.
func New() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if os.Getenv("LOG_FORMAT") == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return log
}

// EventLog records booking lifecycle events as structured log entries.
type EventLog struct {
	Log *logrus.Logger
}

func NewEventLog(log *logrus.Logger) *EventLog {
	return &EventLog{Log: log}
}

func (e *EventLog) ReservationCreated(r booking.Reservation) {
	e.Log.WithFields(logrus.Fields{
		"reservation": r.ID,
		"vehicle":     r.VehicleID,
		"user":        r.UserID,
		"from":        r.Range.Start.String(),
		"to":          r.Range.End.String(),
		"price":       r.Price,
	}).Info("reservation created")
}

func (e *EventLog) ReservationStatusChanged(r booking.Reservation, from booking.ReservationStatus) {
	e.Log.WithFields(logrus.Fields{
		"reservation": r.ID,
		"vehicle":     r.VehicleID,
		"user":        r.UserID,
		"from":        string(from),
		"to":          string(r.Status),
	}).Info("reservation status changed")
}

func (e *EventLog) PaymentReceived(r booking.Reservation) {
	e.Log.WithFields(logrus.Fields{
		"reservation": r.ID,
		"vehicle":     r.VehicleID,
		"user":        r.UserID,
		"price":       r.Price,
	}).Info("payment received")
}
