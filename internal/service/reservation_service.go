package service

import (
	"context"
	"log"
	"time"

	"carrental/internal/db"
	"carrental/internal/entities"
	apperrors "carrental/internal/errors"
	"carrental/internal/repository"
	"carrental/internal/utils"
)

// ReservationService is the booking engine. It keeps no state of its own;
// every call reads and writes through Repo.
type ReservationService struct {
	Repo repository.Store
}

func NewReservationService(repo repository.Store) *ReservationService {
	return &ReservationService{Repo: repo}
}

// Reserve books one car of carType for [from, to] and returns how many cars
// of that type were still free for the range after this booking.
//
// Checks run in a fixed order and the first failure is returned: car type,
// date format, date order, simulated date set, start not in the past,
// availability.
func (s *ReservationService) Reserve(ctx context.Context, carType, from, to string) (int, error) {
	ct, err := utils.ParseCarType(carType)
	if err != nil {
		return 0, err
	}
	fromDate, toDate, err := utils.ParseDateRange(from, to)
	if err != nil {
		return 0, err
	}

	clock, err := s.Repo.GetClock(ctx)
	if err != nil {
		log.Printf("Error reading current date: %v", err)
		return 0, err
	}
	if clock == nil {
		return 0, apperrors.ErrClockNotSet
	}
	if fromDate.Before(*clock) {
		return 0, apperrors.ErrStartBeforeCurrentDate
	}

	var remaining int
	err = s.Repo.Atomically(ctx, ct, func(tx repository.Store) error {
		total, booked, err := countAvailability(ctx, tx, ct, fromDate, toDate)
		if err != nil {
			return err
		}
		available := total - booked
		if available <= 0 {
			return apperrors.ErrNoAvailability
		}
		if err := tx.AddReservation(ctx, ct, fromDate, toDate); err != nil {
			return err
		}
		remaining = available - 1
		return nil
	})
	if err != nil {
		if apperrors.IsStoreError(err) {
			log.Printf("Error saving %s reservation %s → %s: %v", ct, from, to, err)
		}
		return 0, err
	}
	return remaining, nil
}

// CheckAvailability reports free cars for a range without booking. It does
// not require the simulated date to be set.
func (s *ReservationService) CheckAvailability(ctx context.Context, req entities.ReservationRequest) (*entities.AvailabilityResponse, error) {
	ct, err := utils.ParseCarType(req.CarType)
	if err != nil {
		return nil, err
	}
	fromDate, toDate, err := utils.ParseDateRange(req.From, req.To)
	if err != nil {
		return nil, err
	}

	total, booked, err := countAvailability(ctx, s.Repo, ct, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	available := total - booked
	return &entities.AvailabilityResponse{
		CarType:     ct.String(),
		From:        fromDate,
		To:          toDate,
		Total:       total,
		Booked:      booked,
		Available:   available,
		IsAvailable: available > 0,
	}, nil
}

// SetInventory overwrites the number of cars owned for carType. Existing
// bookings are not re-checked, so the amount may drop below them.
func (s *ReservationService) SetInventory(ctx context.Context, carType string, amount int) error {
	ct, err := utils.ParseCarType(carType)
	if err != nil {
		return err
	}
	if amount < 0 {
		return apperrors.ErrInvalidAmount
	}
	return s.Repo.SetInventory(ctx, ct, amount)
}

func (s *ReservationService) SetSimulatedDate(ctx context.Context, date string) error {
	d, err := utils.ParseDate(date)
	if err != nil {
		return err
	}
	return s.Repo.SetClock(ctx, d)
}

// CurrentDate returns the simulated date, or nil while it is unset.
func (s *ReservationService) CurrentDate(ctx context.Context) (*time.Time, error) {
	return s.Repo.GetClock(ctx)
}

// ListReservations returns bookings that end on or after the simulated
// date, or every booking while the date is unset, oldest start first.
func (s *ReservationService) ListReservations(ctx context.Context) ([]db.Reservation, error) {
	clock, err := s.Repo.GetClock(ctx)
	if err != nil {
		return nil, err
	}
	floor := db.ListingFloor
	if clock != nil {
		floor = *clock
	}
	return s.Repo.ListReservations(ctx, floor)
}

// ResetAll wipes every booking and restores default inventory and date.
func (s *ReservationService) ResetAll(ctx context.Context) error {
	if err := s.Repo.ResetAll(ctx); err != nil {
		log.Printf("Error resetting store: %v", err)
		return err
	}
	return nil
}

// DayAvailability returns, per car type, how many cars are out and free on date.
func (s *ReservationService) DayAvailability(ctx context.Context, date time.Time) ([]entities.DayAvailability, error) {
	out := make([]entities.DayAvailability, 0, len(db.CarTypes))
	for _, ct := range db.CarTypes {
		total, booked, err := countAvailability(ctx, s.Repo, ct, date, date)
		if err != nil {
			return nil, err
		}
		out = append(out, entities.DayAvailability{
			CarType:   ct.String(),
			Total:     total,
			Booked:    booked,
			Available: total - booked,
		})
	}
	return out, nil
}

// Info gathers the simulated date, inventory, today's availability and the
// current reservations.
func (s *ReservationService) Info(ctx context.Context) (*entities.SystemInfo, error) {
	clock, err := s.Repo.GetClock(ctx)
	if err != nil {
		return nil, err
	}
	inv, err := s.Repo.GetInventoryMap(ctx)
	if err != nil {
		return nil, err
	}

	info := &entities.SystemInfo{
		CurrentDate: clock,
		Cars:        make(map[string]int, len(inv)),
	}
	for ct, amount := range inv {
		info.Cars[ct.String()] = amount
	}

	if clock != nil {
		if info.Today, err = s.DayAvailability(ctx, *clock); err != nil {
			return nil, err
		}
	}

	if info.Reservations, err = s.ListReservations(ctx); err != nil {
		return nil, err
	}
	return info, nil
}

func countAvailability(ctx context.Context, store repository.Store, ct db.CarType, from, to time.Time) (total, booked int, err error) {
	total, err = store.TotalInventory(ctx, ct)
	if err != nil {
		return 0, 0, err
	}
	booked, err = store.CountOverlapping(ctx, ct, from, to)
	if err != nil {
		return 0, 0, err
	}
	return total, booked, nil
}
