package repository

import (
	"context"
	"time"

	"carrental/internal/db"
)

// Store is everything the reservation engine needs from persistence.
// Implementations return errors wrapped as *errors.StoreError.
type Store interface {
	AddReservation(ctx context.Context, carType db.CarType, from, to time.Time) error
	// TotalInventory returns 0 for a car type that was never stocked.
	TotalInventory(ctx context.Context, carType db.CarType) (int, error)
	CountOverlapping(ctx context.Context, carType db.CarType, from, to time.Time) (int, error)

	// GetClock returns nil while the simulated date is unset.
	GetClock(ctx context.Context) (*time.Time, error)
	SetClock(ctx context.Context, date time.Time) error

	GetInventoryMap(ctx context.Context) (map[db.CarType]int, error)
	SetInventory(ctx context.Context, carType db.CarType, amount int) error

	// ListReservations returns bookings ending on or after lowerBound, by start date.
	ListReservations(ctx context.Context, lowerBound time.Time) ([]db.Reservation, error)
	ResetAll(ctx context.Context) error

	// Atomically runs fn while no other Atomically call for the same car type
	// can interleave. Writes made through the Store passed to fn are kept
	// only if fn returns nil.
	Atomically(ctx context.Context, carType db.CarType, fn func(Store) error) error
}
