package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func d(s string) time.Time {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

// Each clause evaluated alone, so the boundary cases below document which
// clause makes a touching range count as a conflict.
func clause1(exFrom, exTo, from, to time.Time) bool { return !exFrom.After(to) && exTo.After(from) }
func clause2(exFrom, exTo, from, to time.Time) bool { return exFrom.Before(to) && !exTo.Before(from) }
func clause3(exFrom, exTo, from, to time.Time) bool { return !exFrom.Before(from) && !exTo.After(to) }

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                 string
		exFrom, exTo         string
		from, to             string
		c1, c2, c3, overlaps bool
	}{
		{"disjoint before", "2025-01-01", "2025-01-04", "2025-01-05", "2025-01-08", false, false, false, false},
		{"disjoint after", "2025-01-09", "2025-01-10", "2025-01-05", "2025-01-08", false, false, false, false},
		{"partial overlap", "2025-01-01", "2025-01-05", "2025-01-03", "2025-01-06", true, true, false, true},
		{"existing ends on new start", "2025-01-01", "2025-01-05", "2025-01-05", "2025-01-08", false, true, false, true},
		{"existing starts on new end", "2025-01-08", "2025-01-10", "2025-01-05", "2025-01-08", true, false, false, true},
		{"same single day", "2025-01-03", "2025-01-03", "2025-01-03", "2025-01-03", false, false, true, true},
		{"existing contained", "2025-01-04", "2025-01-05", "2025-01-01", "2025-01-10", true, true, true, true},
		{"existing contains new", "2025-01-01", "2025-01-10", "2025-01-04", "2025-01-05", true, true, false, true},
		{"identical range", "2025-01-01", "2025-01-05", "2025-01-01", "2025-01-05", true, true, true, true},
		{"single day on existing end", "2025-01-01", "2025-01-05", "2025-01-05", "2025-01-05", false, true, false, true},
		{"single day on existing start", "2025-01-05", "2025-01-07", "2025-01-05", "2025-01-05", true, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ef, et, f, to := d(tt.exFrom), d(tt.exTo), d(tt.from), d(tt.to)
			assert.Equal(t, tt.c1, clause1(ef, et, f, to), "clause 1")
			assert.Equal(t, tt.c2, clause2(ef, et, f, to), "clause 2")
			assert.Equal(t, tt.c3, clause3(ef, et, f, to), "clause 3")
			assert.Equal(t, tt.overlaps, Overlaps(ef, et, f, to))
		})
	}
}

func TestDefaultInventory(t *testing.T) {
	inv := DefaultInventory()
	assert.Equal(t, map[CarType]int{CarTypeSedan: 5, CarTypeSUV: 5, CarTypeVan: 5}, inv)

	inv[CarTypeSedan] = 0
	assert.Equal(t, 5, DefaultInventory()[CarTypeSedan], "each call returns a fresh map")
}

func TestReservation_String(t *testing.T) {
	r := Reservation{ID: 1, CarType: CarTypeSUV, From: d("2025-01-01"), To: d("2025-01-05")}
	assert.Equal(t, "SUV 2025-01-01 → 2025-01-05", r.String())
}
