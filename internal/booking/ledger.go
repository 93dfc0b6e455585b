package booking

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Ledger owns every reservation ever made, in creation order. Records
// are appended and transitioned, never removed.
type Ledger struct {
	mu  sync.RWMutex
	all []Reservation
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// HasConflict reports whether any non-cancelled reservation for the
// vehicle overlaps the range. Pending reservations count: a second
// request cannot bypass an unapproved hold.
func (l *Ledger) HasConflict(vehicleID string, r DateRange) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for i := range l.all {
		res := &l.all[i]
		if res.Status == ReservationCancelled || !strings.EqualFold(res.VehicleID, vehicleID) {
			continue
		}
		if res.Range.Overlaps(r) {
			return true
		}
	}
	return false
}

// Create appends a new Pending reservation. Conflict and availability
// checks are the caller's responsibility.
func (l *Ledger) Create(vehicleID, userID string, rng DateRange, price float64, now time.Time) Reservation {
	l.mu.Lock()
	defer l.mu.Unlock()

	res := Reservation{
		ID:        uuid.NewString(),
		VehicleID: vehicleID,
		UserID:    userID,
		Range:     rng,
		Price:     price,
		Status:    ReservationPending,
		Payment:   PaymentPending,
		CreatedAt: now,
	}
	l.all = append(l.all, res)
	return res
}

func (l *Ledger) latestLocked(vehicleID, userID string, includeTerminal bool) int {
	for i := len(l.all) - 1; i >= 0; i-- {
		res := &l.all[i]
		if !strings.EqualFold(res.VehicleID, vehicleID) || res.UserID != userID {
			continue
		}
		if res.Status.Terminal() && !includeTerminal {
			continue
		}
		return i
	}
	return -1
}

// SetStatus overwrites the lifecycle status of the most recent
// non-terminal reservation for the (vehicle, user) pair. It does not
// touch vehicle status; the caller must do that atomically with this
// call. Cancelling also cancels the payment.
func (l *Ledger) SetStatus(vehicleID, userID string, status ReservationStatus) (Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.latestLocked(vehicleID, userID, false)
	if i < 0 {
		return Reservation{}, ErrNotFound
	}
	l.all[i].Status = status
	if status == ReservationCancelled {
		l.all[i].Payment = PaymentCancelled
	}
	return l.all[i], nil
}

// SetPayment marks the most recent Confirmed reservation with a pending
// payment as Paid.
func (l *Ledger) SetPayment(vehicleID, userID string) (Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := len(l.all) - 1; i >= 0; i-- {
		res := &l.all[i]
		if !strings.EqualFold(res.VehicleID, vehicleID) || res.UserID != userID {
			continue
		}
		if res.Status == ReservationConfirmed && res.Payment == PaymentPending {
			res.Payment = PaymentPaid
			return *res, nil
		}
	}
	return Reservation{}, ErrNotFound
}

// Latest returns the most recent reservation for the pair regardless of
// status.
func (l *Ledger) Latest(vehicleID, userID string) (Reservation, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i := l.latestLocked(vehicleID, userID, true)
	if i < 0 {
		return Reservation{}, false
	}
	return l.all[i], true
}

// HasNonTerminal reports whether the vehicle is referenced by any
// reservation still in a non-terminal state.
func (l *Ledger) HasNonTerminal(vehicleID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for i := range l.all {
		if strings.EqualFold(l.all[i].VehicleID, vehicleID) && !l.all[i].Status.Terminal() {
			return true
		}
	}
	return false
}

// ForUser returns the user's reservations in creation order.
func (l *Ledger) ForUser(userID string) []Reservation {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Reservation, 0)
	for _, res := range l.all {
		if res.UserID == userID {
			out = append(out, res)
		}
	}
	return out
}

// List returns every reservation in creation order.
func (l *Ledger) List() []Reservation {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Reservation, len(l.all))
	copy(out, l.all)
	return out
}

// Restore replaces the ledger wholesale. Used once at boot to load the
// persisted state.
func (l *Ledger) Restore(reservations []Reservation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.all = make([]Reservation, len(reservations))
	copy(l.all, reservations)
}
