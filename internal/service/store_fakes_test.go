package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"carrental/internal/db"
	apperrors "carrental/internal/errors"
	"carrental/internal/repository"
)

// spyStore counts every call that reaches the wrapped store.
type spyStore struct {
	repository.Store
	mu    sync.Mutex
	calls map[string]int
}

func newSpyStore(inner repository.Store) *spyStore {
	return &spyStore{Store: inner, calls: make(map[string]int)}
}

func (s *spyStore) record(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[op]++
}

func (s *spyStore) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		n += c
	}
	return n
}

func (s *spyStore) count(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

func (s *spyStore) AddReservation(ctx context.Context, ct db.CarType, from, to time.Time) error {
	s.record("AddReservation")
	return s.Store.AddReservation(ctx, ct, from, to)
}

func (s *spyStore) TotalInventory(ctx context.Context, ct db.CarType) (int, error) {
	s.record("TotalInventory")
	return s.Store.TotalInventory(ctx, ct)
}

func (s *spyStore) CountOverlapping(ctx context.Context, ct db.CarType, from, to time.Time) (int, error) {
	s.record("CountOverlapping")
	return s.Store.CountOverlapping(ctx, ct, from, to)
}

func (s *spyStore) GetClock(ctx context.Context) (*time.Time, error) {
	s.record("GetClock")
	return s.Store.GetClock(ctx)
}

func (s *spyStore) SetClock(ctx context.Context, date time.Time) error {
	s.record("SetClock")
	return s.Store.SetClock(ctx, date)
}

func (s *spyStore) GetInventoryMap(ctx context.Context) (map[db.CarType]int, error) {
	s.record("GetInventoryMap")
	return s.Store.GetInventoryMap(ctx)
}

func (s *spyStore) SetInventory(ctx context.Context, ct db.CarType, amount int) error {
	s.record("SetInventory")
	return s.Store.SetInventory(ctx, ct, amount)
}

func (s *spyStore) ListReservations(ctx context.Context, lowerBound time.Time) ([]db.Reservation, error) {
	s.record("ListReservations")
	return s.Store.ListReservations(ctx, lowerBound)
}

func (s *spyStore) ResetAll(ctx context.Context) error {
	s.record("ResetAll")
	return s.Store.ResetAll(ctx)
}

func (s *spyStore) Atomically(ctx context.Context, ct db.CarType, fn func(repository.Store) error) error {
	s.record("Atomically")
	return s.Store.Atomically(ctx, ct, func(repository.Store) error { return fn(s) })
}

// failingStore fails the named operation with a store error.
type failingStore struct {
	*spyStore
	failOp string
}

var errDisk = errors.New("disk unavailable")

func (f *failingStore) fail(op string) error {
	if op == f.failOp {
		return apperrors.NewStoreError(op, errDisk)
	}
	return nil
}

func (f *failingStore) AddReservation(ctx context.Context, ct db.CarType, from, to time.Time) error {
	if err := f.fail("AddReservation"); err != nil {
		return err
	}
	return f.spyStore.AddReservation(ctx, ct, from, to)
}

func (f *failingStore) GetClock(ctx context.Context) (*time.Time, error) {
	if err := f.fail("GetClock"); err != nil {
		return nil, err
	}
	return f.spyStore.GetClock(ctx)
}

func (f *failingStore) CountOverlapping(ctx context.Context, ct db.CarType, from, to time.Time) (int, error) {
	if err := f.fail("CountOverlapping"); err != nil {
		return 0, err
	}
	return f.spyStore.CountOverlapping(ctx, ct, from, to)
}

func (f *failingStore) Atomically(ctx context.Context, ct db.CarType, fn func(repository.Store) error) error {
	return f.spyStore.Store.Atomically(ctx, ct, func(repository.Store) error { return fn(f) })
}

func day(s string) time.Time {
	d, err := time.ParseInLocation(db.DateLayout, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return d
}
