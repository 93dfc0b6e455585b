package booking

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Clock supplies the current date for rent-by-days bookings.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Store durably records the fleet and the ledger after each successful
// mutation. Implementations receive full snapshots.
type Store interface {
	SaveVehicles(ctx context.Context, vehicles []Vehicle) error
	SaveReservations(ctx context.Context, reservations []Reservation) error
}

// EventLog is notified after booking and cancellation state changes
// complete, never inside them.
type EventLog interface {
	ReservationCreated(r Reservation)
	ReservationStatusChanged(r Reservation, from ReservationStatus)
	PaymentReceived(r Reservation)
}

// Engine couples the fleet registry and the reservation ledger and is
// the only writer allowed to touch both. Workflows run under a lock
// keyed by (lower-cased) vehicle id, so bookings and approvals for the
// same vehicle serialize while different vehicles proceed
// independently.
//
// Memory is mutated first, then the store is flushed before success is
// reported. A flush failure is returned to the caller unmodified while
// the in-memory change stands; the next successful flush resolves the
// divergence.
type Engine struct {
	fleet  *Registry
	ledger *Ledger

	store  Store
	events EventLog
	clock  Clock

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewEngine(store Store, events EventLog, clock Clock) *Engine {
	if clock == nil {
		clock = realClock{}
	}
	return &Engine{
		fleet:  NewRegistry(),
		ledger: NewLedger(),
		store:  store,
		events: events,
		clock:  clock,
		locks:  make(map[string]*sync.Mutex),
	}
}

// Restore loads the persisted fleet and ledger. Call once at boot,
// before serving requests.
func (e *Engine) Restore(vehicles []Vehicle, reservations []Reservation) {
	e.fleet.Restore(vehicles)
	e.ledger.Restore(reservations)
}

func (e *Engine) vehicleLock(id string) *sync.Mutex {
	key := strings.ToLower(id)
	e.mu.Lock()
	defer e.mu.Unlock()

	m, ok := e.locks[key]
	if !ok {
		m = &sync.Mutex{}
		e.locks[key] = m
	}
	return m
}

func (e *Engine) flush(ctx context.Context, vehicles, reservations bool) error {
	if e.store == nil {
		return nil
	}
	if vehicles {
		if err := e.store.SaveVehicles(ctx, e.fleet.List()); err != nil {
			return err
		}
	}
	if reservations {
		if err := e.store.SaveReservations(ctx, e.ledger.List()); err != nil {
			return err
		}
	}
	return nil
}

// BookVehicle runs the booking workflow: the vehicle must exist and be
// Available, the range must parse and not be inverted, and no
// non-cancelled reservation may overlap it. On success a Pending
// reservation priced by the policy is created and the vehicle is marked
// Reserved, both visible together. On any failure nothing is mutated.
func (e *Engine) BookVehicle(ctx context.Context, vehicleID, userID, start, end string, policy PricingPolicy) (Reservation, error) {
	if policy == nil {
		policy = StandardPricing{}
	}
	lock := e.vehicleLock(vehicleID)
	lock.Lock()
	defer lock.Unlock()

	v, ok := e.fleet.Find(vehicleID)
	if !ok {
		return Reservation{}, ErrNotFound
	}

	rng, err := NewDateRange(start, end)
	if err != nil {
		return Reservation{}, err
	}
	if rng.End.Before(rng.Start) {
		return Reservation{}, ErrInvalidDateRange
	}

	// An overlapping request reports the conflict even when the hold has
	// already flipped the vehicle to Reserved; only then is plain
	// unavailability (maintenance, a non-overlapping hold) reported.
	if e.ledger.HasConflict(v.ID, rng) {
		return Reservation{}, ErrReservationConflict
	}
	if v.Status != VehicleAvailable {
		return Reservation{}, ErrNotAvailable
	}

	price := policy.CalculatePrice(rng.DurationDays())
	res := e.ledger.Create(v.ID, userID, rng, price, e.clock.Now())
	// Cannot fail: the vehicle was just found and the per-vehicle lock
	// keeps it from being removed mid-workflow.
	_ = e.fleet.SetStatus(v.ID, VehicleReserved)

	if err := e.flush(ctx, true, true); err != nil {
		return Reservation{}, err
	}
	if e.events != nil {
		e.events.ReservationCreated(res)
	}
	return res, nil
}

// RentForDays books the vehicle starting today for n days, today
// included.
func (e *Engine) RentForDays(ctx context.Context, vehicleID, userID string, days int, policy PricingPolicy) (Reservation, error) {
	if days <= 0 {
		return Reservation{}, ErrInvalidDateRange
	}
	now := e.clock.Now()
	start := Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
	if start.Day > daysPerMonth {
		// the 31st does not exist on the booking calendar
		start.Day = daysPerMonth
	}
	end := start.AddDays(days - 1)
	return e.BookVehicle(ctx, vehicleID, userID, start.String(), end.String(), policy)
}

// SetReservationStatus runs the approval workflow for the most recent
// reservation of the (vehicle, user) pair and keeps vehicle status in
// step:
//
//	pending   -> confirmed  vehicle rented
//	pending   -> cancelled  vehicle available, payment cancelled
//	confirmed -> cancelled  vehicle available, payment cancelled
//	pending   -> pending    no-op, vehicle re-pinned to reserved
//
// Touching a cancelled reservation fails with ErrAlreadyTerminal; the
// lifecycle never moves backwards.
func (e *Engine) SetReservationStatus(ctx context.Context, vehicleID, userID string, status ReservationStatus) error {
	if !status.valid() {
		return ErrInvalidStatus
	}
	lock := e.vehicleLock(vehicleID)
	lock.Lock()
	defer lock.Unlock()

	cur, ok := e.ledger.Latest(vehicleID, userID)
	if !ok {
		return ErrNotFound
	}
	if cur.Status.Terminal() {
		return ErrAlreadyTerminal
	}

	var vehicleStatus VehicleStatus
	switch {
	case status == ReservationCancelled:
		vehicleStatus = VehicleAvailable
	case status == ReservationConfirmed:
		vehicleStatus = VehicleRented
	case cur.Status == ReservationPending && status == ReservationPending:
		vehicleStatus = VehicleReserved
	default:
		return ErrInvalidStatus
	}

	res := cur
	if status != cur.Status {
		var err error
		res, err = e.ledger.SetStatus(vehicleID, userID, status)
		if err != nil {
			return err
		}
	}
	if err := e.fleet.SetStatus(vehicleID, vehicleStatus); err != nil {
		return err
	}

	if err := e.flush(ctx, true, status != cur.Status); err != nil {
		return err
	}
	if e.events != nil && status != cur.Status {
		e.events.ReservationStatusChanged(res, cur.Status)
	}
	return nil
}

// CancelReservation is the user-initiated cancellation; it frees the
// vehicle and cancels the payment like any other cancellation.
func (e *Engine) CancelReservation(ctx context.Context, vehicleID, userID string) error {
	return e.SetReservationStatus(ctx, vehicleID, userID, ReservationCancelled)
}

// SetPaymentStatus marks the pair's Confirmed reservation as paid.
// Payment may only move pending -> paid while the lifecycle is
// Confirmed; anything else is ErrNotFound.
func (e *Engine) SetPaymentStatus(ctx context.Context, vehicleID, userID string) (Reservation, error) {
	lock := e.vehicleLock(vehicleID)
	lock.Lock()
	defer lock.Unlock()

	res, err := e.ledger.SetPayment(vehicleID, userID)
	if err != nil {
		return Reservation{}, err
	}
	if err := e.flush(ctx, false, true); err != nil {
		return Reservation{}, err
	}
	if e.events != nil {
		e.events.PaymentReceived(res)
	}
	return res, nil
}

// AddVehicle registers a new vehicle with status Available.
func (e *Engine) AddVehicle(ctx context.Context, id, model, plate string) (Vehicle, error) {
	id = strings.TrimSpace(id)
	model = strings.TrimSpace(model)
	plate = strings.TrimSpace(plate)
	if id == "" || model == "" || plate == "" {
		return Vehicle{}, fmt.Errorf("%w: vehicle id, model and plate are required", ErrMissingField)
	}

	lock := e.vehicleLock(id)
	lock.Lock()
	defer lock.Unlock()

	if err := e.fleet.Add(id, model, plate); err != nil {
		return Vehicle{}, err
	}
	if err := e.flush(ctx, true, false); err != nil {
		return Vehicle{}, err
	}
	v, _ := e.fleet.Find(id)
	return v, nil
}

func (e *Engine) UpdateVehicleModel(ctx context.Context, id, model string) error {
	lock := e.vehicleLock(id)
	lock.Lock()
	defer lock.Unlock()

	if err := e.fleet.SetModel(id, model); err != nil {
		return err
	}
	return e.flush(ctx, true, false)
}

// RemoveVehicle deletes a vehicle from the fleet. Deletion is blocked
// while any non-terminal reservation references it; cancel those first.
func (e *Engine) RemoveVehicle(ctx context.Context, id string) error {
	lock := e.vehicleLock(id)
	lock.Lock()
	defer lock.Unlock()

	if _, ok := e.fleet.Find(id); !ok {
		return ErrNotFound
	}
	if e.ledger.HasNonTerminal(id) {
		return ErrVehicleInUse
	}
	if err := e.fleet.Remove(id); err != nil {
		return err
	}
	return e.flush(ctx, true, false)
}

// SetVehicleStatus lets an administrator toggle a vehicle between
// Available and Maintenance. Reserved and Rented are owned by the
// workflows and cannot be set by hand, and a vehicle with live
// reservations cannot be toggled at all.
func (e *Engine) SetVehicleStatus(ctx context.Context, id string, status VehicleStatus) error {
	if !status.valid() || status == VehicleReserved || status == VehicleRented {
		return ErrInvalidStatus
	}
	lock := e.vehicleLock(id)
	lock.Lock()
	defer lock.Unlock()

	if _, ok := e.fleet.Find(id); !ok {
		return ErrNotFound
	}
	if e.ledger.HasNonTerminal(id) {
		return ErrVehicleInUse
	}
	if err := e.fleet.SetStatus(id, status); err != nil {
		return err
	}
	return e.flush(ctx, true, false)
}

func (e *Engine) FindVehicle(id string) (Vehicle, bool) {
	return e.fleet.Find(id)
}

// ListAvailable returns the vehicles currently open for booking.
func (e *Engine) ListAvailable() []Vehicle {
	all := e.fleet.List()
	out := make([]Vehicle, 0, len(all))
	for _, v := range all {
		if v.Status == VehicleAvailable {
			out = append(out, v)
		}
	}
	return out
}

func (e *Engine) ListVehicles() []Vehicle {
	return e.fleet.List()
}

func (e *Engine) FilterByModel(keyword string) []Vehicle {
	return e.fleet.FilterByModel(keyword)
}

// Reservation returns the most recent reservation for the pair.
func (e *Engine) Reservation(vehicleID, userID string) (Reservation, bool) {
	return e.ledger.Latest(vehicleID, userID)
}

func (e *Engine) ListReservationsFor(userID string) []Reservation {
	return e.ledger.ForUser(userID)
}

func (e *Engine) ListReservations() []Reservation {
	return e.ledger.List()
}
