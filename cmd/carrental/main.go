package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	"carrental/internal/command"
	"carrental/internal/config"
	"carrental/internal/repository"
	"carrental/internal/service"
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

	svc := service.NewReservationService(repository.NewReservationRepository(conn))
	handler := command.NewHandler(svc, os.Stdout)

	fmt.Println("Type 'help' for commands.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		if handler.Execute(ctx, scanner.Text()) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("Error reading input: %v", err)
	}
}
