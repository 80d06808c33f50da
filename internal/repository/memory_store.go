package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"carrental/internal/db"
)

// MemoryStore keeps all state in process memory. It starts out the way a
// freshly created database does: default inventory, simulated date unset.
type MemoryStore struct {
	mu           sync.RWMutex
	reserveMu    sync.Mutex
	reservations []db.Reservation
	cars         map[db.CarType]int
	clock        *time.Time
	nextID       int
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cars:   db.DefaultInventory(),
		nextID: 1,
	}
}

func (m *MemoryStore) AddReservation(ctx context.Context, carType db.CarType, from, to time.Time) error {
	if err := ctx.Err(); err != nil {
		return storeErr("add reservation", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reservations = append(m.reservations, db.Reservation{
		ID:      m.nextID,
		CarType: carType,
		From:    from,
		To:      to,
	})
	m.nextID++
	return nil
}

func (m *MemoryStore) TotalInventory(ctx context.Context, carType db.CarType) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, storeErr("total inventory", err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cars[carType], nil
}

func (m *MemoryStore) CountOverlapping(ctx context.Context, carType db.CarType, from, to time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, storeErr("count overlapping", err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, r := range m.reservations {
		if r.CarType == carType && db.Overlaps(r.From, r.To, from, to) {
			count++
		}
	}
	return count, nil
}

func (m *MemoryStore) GetClock(ctx context.Context) (*time.Time, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeErr("get clock", err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.clock == nil {
		return nil, nil
	}
	c := *m.clock
	return &c, nil
}

func (m *MemoryStore) SetClock(ctx context.Context, date time.Time) error {
	if err := ctx.Err(); err != nil {
		return storeErr("set clock", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clock = &date
	return nil
}

func (m *MemoryStore) GetInventoryMap(ctx context.Context) (map[db.CarType]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeErr("get inventory", err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[db.CarType]int, len(m.cars))
	for k, v := range m.cars {
		out[k] = v
	}
	return out, nil
}

func (m *MemoryStore) SetInventory(ctx context.Context, carType db.CarType, amount int) error {
	if err := ctx.Err(); err != nil {
		return storeErr("set inventory", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cars[carType] = amount
	return nil
}

func (m *MemoryStore) ListReservations(ctx context.Context, lowerBound time.Time) ([]db.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeErr("list reservations", err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []db.Reservation
	for _, r := range m.reservations {
		if !r.To.Before(lowerBound) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].From.Equal(out[j].From) {
			return out[i].ID < out[j].ID
		}
		return out[i].From.Before(out[j].From)
	})
	return out, nil
}

func (m *MemoryStore) ResetAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return storeErr("reset", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	clock := db.DefaultCurrentDate
	m.reservations = nil
	m.cars = db.DefaultInventory()
	m.clock = &clock
	m.nextID = 1
	return nil
}

// Atomically serializes callers on a single mutex; the memory store has no
// rollback, so fn should only write as its last step.
func (m *MemoryStore) Atomically(ctx context.Context, carType db.CarType, fn func(Store) error) error {
	m.reserveMu.Lock()
	defer m.reserveMu.Unlock()
	if err := ctx.Err(); err != nil {
		return storeErr("lock "+carType.String(), err)
	}
	return fn(m)
}
