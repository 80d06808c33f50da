package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"carrental/internal/auth"
	apperrors "carrental/internal/errors"
	"carrental/internal/service"

	"github.com/gorilla/mux"
)

type AdminHandler struct {
	Service *service.ReservationService
}

func NewAdminHandler(svc *service.ReservationService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// PUT /admin/cars/{car_type}
func (h *AdminHandler) SetCarAmount(w http.ResponseWriter, r *http.Request) {
	carType := mux.Vars(r)["car_type"]

	var req SetCarAmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Amount == nil {
		writeError(w, r, apperrors.ErrInvalidAmount)
		return
	}
	if err := h.Service.SetInventory(r.Context(), carType, *req.Amount); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Set %s amount to %d", strings.ToUpper(strings.TrimSpace(carType)), *req.Amount),
	})
}

// PUT /admin/date
func (h *AdminHandler) SetDate(w http.ResponseWriter, r *http.Request) {
	var req SetDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperrors.ErrBadRequest("Invalid request body"))
		return
	}
	if err := h.Service.SetSimulatedDate(r.Context(), req.Date); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Date set to " + req.Date})
}

// POST /admin/reset
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.ResetAll(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	if admin, ok := auth.AdminFromContext(r.Context()); ok {
		log.Printf("[%s] Database reset by %s", RequestID(r.Context()), admin.Email)
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Database reset."})
}
