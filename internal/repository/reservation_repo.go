package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"rentacar/internal/db"
)

type ReservationRepository struct {
	DB *sql.DB
}

func NewReservationRepository(sqlDB *sql.DB) *ReservationRepository {
	return &ReservationRepository{DB: sqlDB}
}

// UpsertAll writes the full ledger snapshot in one transaction. The
// ledger is append-only, so rows are never deleted here.
func (r *ReservationRepository) UpsertAll(ctx context.Context, reservations []db.ReservationRecord) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting reservation upsert tx: %w", err)
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO reservations (id, vehicle_id, user_id, start_date, end_date, price, status, payment_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (id) DO UPDATE
		SET status = EXCLUDED.status, payment_status = EXCLUDED.payment_status, updated_at = NOW()`

	for _, res := range reservations {
		_, err := tx.ExecContext(ctx, query,
			res.ID, res.VehicleID, res.UserID, res.StartDate, res.EndDate,
			res.Price, res.Status, res.PaymentStatus, res.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("error upserting reservation %s: %w", res.ID, err)
		}
	}

	return tx.Commit()
}

func (r *ReservationRepository) LoadAll(ctx context.Context) ([]db.ReservationRecord, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, vehicle_id, user_id, start_date, end_date, price, status, payment_status, COALESCE(stripe_session_id, ''), COALESCE(user_email, ''), COALESCE(user_phone, ''), created_at, updated_at
		FROM reservations ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("error querying reservations: %w", err)
	}
	defer rows.Close()

	var reservations []db.ReservationRecord
	for rows.Next() {
		var res db.ReservationRecord
		err := rows.Scan(
			&res.ID, &res.VehicleID, &res.UserID, &res.StartDate, &res.EndDate,
			&res.Price, &res.Status, &res.PaymentStatus, &res.StripeSessionID,
			&res.UserEmail, &res.UserPhone,
			&res.CreatedAt, &res.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating reservations: %w", err)
	}
	return reservations, nil
}

// SetStripeSession attaches a checkout session to a reservation row.
// Session ids are a persistence-layer concern only.
func (r *ReservationRepository) SetStripeSession(ctx context.Context, reservationID, sessionID string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE reservations SET stripe_session_id = $1, updated_at = NOW() WHERE id = $2`,
		sessionID, reservationID)
	if err != nil {
		return fmt.Errorf("error storing stripe session for reservation %s: %w", reservationID, err)
	}
	return nil
}

// SetContact stores the booking request's contact details on the
// reservation row so later notifications can reach the user.
func (r *ReservationRepository) SetContact(ctx context.Context, reservationID, email, phone string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE reservations SET user_email = $1, user_phone = $2, updated_at = NOW() WHERE id = $3`,
		email, phone, reservationID)
	if err != nil {
		return fmt.Errorf("error storing contact for reservation %s: %w", reservationID, err)
	}
	return nil
}

func (r *ReservationRepository) GetContact(ctx context.Context, reservationID string) (string, string, error) {
	var email, phone string
	err := r.DB.QueryRowContext(ctx,
		`SELECT COALESCE(user_email, ''), COALESCE(user_phone, '') FROM reservations WHERE id = $1`,
		reservationID).Scan(&email, &phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", nil
		}
		return "", "", fmt.Errorf("error querying contact for reservation %s: %w", reservationID, err)
	}
	return email, phone, nil
}

func (r *ReservationRepository) GetStripeSession(ctx context.Context, reservationID string) (string, error) {
	var sessionID string
	err := r.DB.QueryRowContext(ctx,
		`SELECT COALESCE(stripe_session_id, '') FROM reservations WHERE id = $1`,
		reservationID).Scan(&sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("error querying stripe session for reservation %s: %w", reservationID, err)
	}
	return sessionID, nil
}
