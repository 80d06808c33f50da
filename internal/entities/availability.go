package entities

import "time"

type AvailabilityResponse struct {
	CarType     string    `json:"car_type"`
	From        time.Time `json:"from"`
	To          time.Time `json:"to"`
	Total       int       `json:"total"`
	Booked      int       `json:"booked"`
	Available   int       `json:"available"`
	IsAvailable bool      `json:"is_available"`
}

// DayAvailability is the availability of one car type on a single day.
type DayAvailability struct {
	CarType   string `json:"car_type"`
	Total     int    `json:"total"`
	Booked    int    `json:"booked"`
	Available int    `json:"available"`
}
