package api

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "carrental/internal/errors"
	"carrental/internal/service"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type AdminAuthHandler struct {
	service service.AdminAuthService
}

func NewAdminAuthHandler(svc service.AdminAuthService) *AdminAuthHandler {
	return &AdminAuthHandler{service: svc}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func (h *AdminAuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperrors.ErrBadRequest("Invalid request body"))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, r, apperrors.ErrBadRequest("A valid email and a password are required"))
		return
	}

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, r, apperrors.ErrUnauthorized("Invalid credentials"))
		return
	case errors.Is(err, service.ErrSecretNotSet):
		writeError(w, r, apperrors.NewHTTPError(http.StatusServiceUnavailable, "Admin login is disabled"))
		return
	case err != nil:
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}
