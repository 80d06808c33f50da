package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"carrental/internal/db"
	apperrors "carrental/internal/errors"

	_ "github.com/lib/pq"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS reservations (
		id SERIAL PRIMARY KEY,
		car VARCHAR(50) NOT NULL,
		from_date DATE NOT NULL,
		to_date DATE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS cars (
		car_type VARCHAR(50) PRIMARY KEY,
		amount INT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		setting_key VARCHAR(50) PRIMARY KEY,
		setting_value VARCHAR(255)
	)`,
	`CREATE TABLE IF NOT EXISTS admins (
		id SERIAL PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL
	)`,
}

// Open connects to PostgreSQL and verifies the connection.
func Open(ctx context.Context, dbURL string) (*sql.DB, error) {
	conn, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	return conn, nil
}

// EnsureSchema creates missing tables and stocks the default inventory when
// the cars table is empty. The simulated date is left unset.
func EnsureSchema(ctx context.Context, conn *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return storeErr("create schema", err)
		}
	}

	var count int
	if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM cars`).Scan(&count); err != nil {
		return storeErr("count cars", err)
	}
	if count > 0 {
		return nil
	}
	for _, ct := range db.CarTypes {
		if err := upsertCar(ctx, conn, ct, db.DefaultCarAmount); err != nil {
			return err
		}
	}
	log.Printf("Initialized default inventory (%d per car type)", db.DefaultCarAmount)
	return nil
}

func storeErr(op string, err error) error {
	return apperrors.NewStoreError(op, err)
}
