package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"carrental/internal/entities"
	apperrors "carrental/internal/errors"
	"carrental/internal/service"
)

type UserReservationHandler struct {
	Service *service.ReservationService
}

func NewUserReservationHandler(svc *service.ReservationService) *UserReservationHandler {
	return &UserReservationHandler{Service: svc}
}

func (h *UserReservationHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req entities.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperrors.ErrBadRequest("Invalid request"))
		return
	}
	res, err := h.Service.CheckAvailability(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *UserReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req entities.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperrors.ErrBadRequest("Invalid request"))
		return
	}
	remaining, err := h.Service.Reserve(r.Context(), req.CarType, req.From, req.To)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entities.ReservationResponse{
		Message:   fmt.Sprintf("Reservation saved! (%d %s(s) still available)", remaining, strings.ToLower(req.CarType)),
		Remaining: remaining,
	})
}

func (h *UserReservationHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.Service.ListReservations(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entities.ReservationsList{
		Total:        len(reservations),
		Reservations: reservations,
	})
}

func (h *UserReservationHandler) Info(w http.ResponseWriter, r *http.Request) {
	info, err := h.Service.Info(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
