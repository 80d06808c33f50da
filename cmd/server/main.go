package main

import (
	"context"
	"log"
	"net/http"

	"carrental/internal/api"
	"carrental/internal/config"
	"carrental/internal/repository"
	"carrental/internal/service"

	"github.com/gorilla/handlers"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	conn, err := repository.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer conn.Close()

	if err := repository.EnsureSchema(ctx, conn); err != nil {
		log.Fatalf("Failed to prepare schema: %v", err)
	}

	repo := repository.NewReservationRepository(conn)
	svc := service.NewReservationService(repo)

	adminRepo := repository.NewAdminAuthRepository(conn)
	authSvc := service.NewAdminAuthService(adminRepo, cfg.JWTSecret)
	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set, admin endpoints are disabled")
	}
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := authSvc.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Fatalf("Failed to create admin account: %v", err)
		}
	}

	jobService := service.NewJobService(svc)
	c := cron.New()
	_, err = c.AddFunc(cfg.ReportSchedule, func() {
		if err := jobService.ReportOccupancy(context.Background()); err != nil {
			log.Printf("Error running occupancy report: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Error scheduling occupancy report %q: %v", cfg.ReportSchedule, err)
	}
	c.Start()
	defer c.Stop()

	router := api.NewRouter(svc, authSvc, cfg.AllowedOrigins)

	log.Printf("Server running on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handlers.CombinedLoggingHandler(log.Writer(), router)))
}
