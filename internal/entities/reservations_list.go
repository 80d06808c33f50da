package entities

import (
	"time"

	"carrental/internal/db"
)

type ReservationsList struct {
	Total        int              `json:"total"`
	Reservations []db.Reservation `json:"reservations"`
}

// SystemInfo is everything the info command shows.
type SystemInfo struct {
	CurrentDate  *time.Time        `json:"current_date"`
	Cars         map[string]int    `json:"cars"`
	Today        []DayAvailability `json:"today,omitempty"`
	Reservations []db.Reservation  `json:"reservations"`
}
