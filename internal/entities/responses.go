package entities

import (
	"time"

	"rentacar/internal/booking"
)

type VehicleResponse struct {
	ID     string `json:"id"`
	Model  string `json:"model"`
	Plate  string `json:"plate"`
	Status string `json:"status"`
}

func FromVehicle(v booking.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:     v.ID,
		Model:  v.Model,
		Plate:  v.Plate,
		Status: string(v.Status),
	}
}

func FromVehicles(vs []booking.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromVehicle(v))
	}
	return out
}

type ReservationResponse struct {
	ID            string    `json:"id"`
	VehicleID     string    `json:"vehicle_id"`
	UserID        string    `json:"user_id"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	Price         float64   `json:"price"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromReservation(r booking.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:            r.ID,
		VehicleID:     r.VehicleID,
		UserID:        r.UserID,
		StartDate:     r.Range.Start.String(),
		EndDate:       r.Range.End.String(),
		Price:         r.Price,
		Status:        string(r.Status),
		PaymentStatus: string(r.Payment),
		CreatedAt:     r.CreatedAt,
	}
}

func FromReservations(rs []booking.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromReservation(r))
	}
	return out
}
