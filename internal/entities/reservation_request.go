package entities

// ReservationRequest carries raw user input; the service validates it.
type ReservationRequest struct {
	CarType string `json:"car_type"`
	From    string `json:"from"`
	To      string `json:"to"`
}

type ReservationResponse struct {
	Message   string `json:"message"`
	Remaining int    `json:"remaining"`
}
