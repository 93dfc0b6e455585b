package repository

import (
	"context"
	"database/sql"
	"fmt"

	"rentacar/internal/booking"
	"rentacar/internal/db"
)

// Store adapts the Postgres repositories to the engine's persistence
// collaborator: it receives full snapshots after each successful
// workflow and loads them back at boot.
type Store struct {
	Vehicles     *VehicleRepository
	Reservations *ReservationRepository
}

func NewStore(sqlDB *sql.DB) *Store {
	return &Store{
		Vehicles:     NewVehicleRepository(sqlDB),
		Reservations: NewReservationRepository(sqlDB),
	}
}

func (s *Store) SaveVehicles(ctx context.Context, vehicles []booking.Vehicle) error {
	records := make([]db.VehicleRecord, 0, len(vehicles))
	for _, v := range vehicles {
		records = append(records, db.VehicleRecord{
			ID:     v.ID,
			Model:  v.Model,
			Plate:  v.Plate,
			Status: string(v.Status),
		})
	}
	return s.Vehicles.UpsertAll(ctx, records)
}

func (s *Store) SaveReservations(ctx context.Context, reservations []booking.Reservation) error {
	records := make([]db.ReservationRecord, 0, len(reservations))
	for _, res := range reservations {
		records = append(records, db.ReservationRecord{
			ID:            res.ID,
			VehicleID:     res.VehicleID,
			UserID:        res.UserID,
			StartDate:     res.Range.Start.String(),
			EndDate:       res.Range.End.String(),
			Price:         res.Price,
			Status:        string(res.Status),
			PaymentStatus: string(res.Payment),
			CreatedAt:     res.CreatedAt,
		})
	}
	return s.Reservations.UpsertAll(ctx, records)
}

// Load reads both collections back into engine form.
func (s *Store) Load(ctx context.Context) ([]booking.Vehicle, []booking.Reservation, error) {
	vehicleRecords, err := s.Vehicles.LoadAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	vehicles := make([]booking.Vehicle, 0, len(vehicleRecords))
	for _, v := range vehicleRecords {
		vehicles = append(vehicles, booking.Vehicle{
			ID:     v.ID,
			Model:  v.Model,
			Plate:  v.Plate,
			Status: booking.VehicleStatus(v.Status),
		})
	}

	reservationRecords, err := s.Reservations.LoadAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	reservations := make([]booking.Reservation, 0, len(reservationRecords))
	for _, res := range reservationRecords {
		rng, err := booking.NewDateRange(res.StartDate, res.EndDate)
		if err != nil {
			return nil, nil, fmt.Errorf("reservation %s has corrupt dates %q..%q: %w", res.ID, res.StartDate, res.EndDate, err)
		}
		reservations = append(reservations, booking.Reservation{
			ID:        res.ID,
			VehicleID: res.VehicleID,
			UserID:    res.UserID,
			Range:     rng,
			Price:     res.Price,
			Status:    booking.ReservationStatus(res.Status),
			Payment:   booking.PaymentStatus(res.PaymentStatus),
			CreatedAt: res.CreatedAt,
		})
	}

	return vehicles, reservations, nil
}
