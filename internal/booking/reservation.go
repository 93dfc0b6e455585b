package booking

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

func (s ReservationStatus) valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further lifecycle transitions are
// permitted.
func (s ReservationStatus) Terminal() bool {
	return s == ReservationCancelled
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentCancelled PaymentStatus = "cancelled"
)

// Reservation is one booking of a vehicle by a user. Records are never
// deleted, only transitioned to Cancelled.
type Reservation struct {
	ID        string
	VehicleID string
	UserID    string
	Range     DateRange
	Price     float64
	Status    ReservationStatus
	Payment   PaymentStatus
	CreatedAt time.Time
}
