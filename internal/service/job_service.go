package service

import (
	"context"
	"fmt"
	"log"

	"carrental/internal/db"
)

type JobService struct {
	Reservations *ReservationService
}

func NewJobService(reservations *ReservationService) *JobService {
	return &JobService{Reservations: reservations}
}

// ReportOccupancy logs how many cars of each type are out and free on the
// simulated current date.
func (s *JobService) ReportOccupancy(ctx context.Context) error {
	log.Println("Cron Job: Building occupancy report...")

	clock, err := s.Reservations.CurrentDate(ctx)
	if err != nil {
		return fmt.Errorf("cron job: failed to read current date: %w", err)
	}
	if clock == nil {
		log.Println("Cron Job: Current date not set, skipping occupancy report.")
		return nil
	}

	days, err := s.Reservations.DayAvailability(ctx, *clock)
	if err != nil {
		return fmt.Errorf("cron job: failed to compute availability: %w", err)
	}
	for _, d := range days {
		log.Printf("Cron Job: %s on %s: %d booked, %d of %d available",
			d.CarType, clock.Format(db.DateLayout), d.Booked, d.Available, d.Total)
	}
	return nil
}
