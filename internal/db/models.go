package db

import "time"

type CarType string

const (
	CarTypeSedan CarType = "SEDAN"
	CarTypeSUV   CarType = "SUV"
	CarTypeVan   CarType = "VAN"
)

// CarTypes lists every rentable car type in display order.
var CarTypes = []CarType{CarTypeSedan, CarTypeSUV, CarTypeVan}

// DateLayout is the only accepted calendar date format.
const DateLayout = "2006-01-02"

// DefaultCarAmount is the inventory every car type starts with.
const DefaultCarAmount = 5

// DefaultCurrentDate is the simulated date restored by a full reset.
var DefaultCurrentDate = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// ListingFloor replaces the simulated date when it has never been set.
var ListingFloor = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// DefaultInventory returns a fresh copy of the initial car amounts.
func DefaultInventory() map[CarType]int {
	inv := make(map[CarType]int, len(CarTypes))
	for _, ct := range CarTypes {
		inv[ct] = DefaultCarAmount
	}
	return inv
}

type Reservation struct {
	ID      int       `json:"id"`
	CarType CarType   `json:"car_type"`
	From    time.Time `json:"from"`
	To      time.Time `json:"to"`
}

func (r Reservation) String() string {
	return r.CarType.String() + " " + r.From.Format(DateLayout) + " → " + r.To.Format(DateLayout)
}

func (c CarType) String() string {
	return string(c)
}

// Overlaps reports whether an existing booking [exFrom, exTo] conflicts with
// a requested range [from, to]. The three clauses are kept as written, they
// disagree on ranges that only touch at a boundary date.
func Overlaps(exFrom, exTo, from, to time.Time) bool {
	return (!exFrom.After(to) && exTo.After(from)) ||
		(exFrom.Before(to) && !exTo.Before(from)) ||
		(!exFrom.Before(from) && !exTo.After(to))
}
