package db

import "time"

type VehicleRecord struct {
	ID        string
	Model     string
	Plate     string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ReservationRecord struct {
	ID              string
	VehicleID       string
	UserID          string
	StartDate       string
	EndDate         string
	Price           float64
	Status          string
	PaymentStatus   string
	StripeSessionID string
	UserEmail       string
	UserPhone       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
