package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"rentacar/internal/booking"
)

type JobService struct {
	Engine *booking.Engine
	Log    *logrus.Logger
}

func NewJobService(engine *booking.Engine, log *logrus.Logger) *JobService {
	return &JobService{Engine: engine, Log: log}
}

// CancelStalePendingReservations cancels reservations that have been
// waiting for approval longer than ttl, freeing their vehicles.
func (s *JobService) CancelStalePendingReservations(ctx context.Context, ttl time.Duration) {
	s.Log.Info("cron: checking for stale pending reservations")

	cutoff := time.Now().Add(-ttl)
	cancelled := 0
	for _, r := range s.Engine.ListReservations() {
		if r.Status != booking.ReservationPending || r.CreatedAt.After(cutoff) {
			continue
		}
		// Only the most recent reservation for the pair is addressable;
		// skip stale entries that have been superseded.
		current, ok := s.Engine.Reservation(r.VehicleID, r.UserID)
		if !ok || current.ID != r.ID {
			continue
		}
		if err := s.Engine.CancelReservation(ctx, r.VehicleID, r.UserID); err != nil {
			s.Log.Warnf("cron: could not cancel stale reservation %s: %v", r.ID, err)
			continue
		}
		cancelled++
	}

	if cancelled > 0 {
		s.Log.Infof("cron: cancelled %d stale pending reservations", cancelled)
	}
}
