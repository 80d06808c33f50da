package api

// Inventory
type SetCarAmountRequest struct {
	Amount *int `json:"amount"`
}

// Simulated date
type SetDateRequest struct {
	Date string `json:"date"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
