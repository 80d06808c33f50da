package api

import (
	"net/http"

	"carrental/internal/auth"
	"carrental/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// NewRouter wires the public reservation API and the token-protected admin
// routes. The login route stays outside the protected subrouter.
func NewRouter(reservations *service.ReservationService, adminAuth service.AdminAuthService, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()
	r.Use(RequestIDMiddleware)

	userHandler := NewUserReservationHandler(reservations)
	adminHandler := NewAdminHandler(reservations)
	authHandler := NewAdminAuthHandler(adminAuth)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", Health).Methods("GET")
	api.HandleFunc("/availability", userHandler.CheckAvailability).Methods("POST")
	api.HandleFunc("/reservations", userHandler.CreateReservation).Methods("POST")
	api.HandleFunc("/reservations", userHandler.ListReservations).Methods("GET")
	api.HandleFunc("/info", userHandler.Info).Methods("GET")

	r.HandleFunc("/admin/login", authHandler.Login).Methods("POST")

	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware(adminAuth))
	admin.HandleFunc("/cars/{car_type}", adminHandler.SetCarAmount).Methods("PUT")
	admin.HandleFunc("/date", adminHandler.SetDate).Methods("PUT")
	admin.HandleFunc("/reset", adminHandler.Reset).Methods("POST")

	cors := handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", requestIDHeader}),
	)
	return handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(cors(r))
}
