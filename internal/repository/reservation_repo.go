package repository

import (
	"context"
	"database/sql"
	"time"

	"carrental/internal/db"
	"carrental/internal/utils"
)

// ReservationRepository is the PostgreSQL Store.
type ReservationRepository struct {
	DB *sql.DB
	q  querier
}

var _ Store = (*ReservationRepository)(nil)

func NewReservationRepository(conn *sql.DB) *ReservationRepository {
	return &ReservationRepository{DB: conn, q: conn}
}

func (r *ReservationRepository) AddReservation(ctx context.Context, carType db.CarType, from, to time.Time) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO reservations (car, from_date, to_date) VALUES ($1, $2, $3)`,
		string(carType), from.Format(db.DateLayout), to.Format(db.DateLayout))
	if err != nil {
		return storeErr("add reservation", err)
	}
	return nil
}

// CountOverlapping applies the same three clauses as db.Overlaps.
func (r *ReservationRepository) CountOverlapping(ctx context.Context, carType db.CarType, from, to time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM reservations
		WHERE car = $1 AND (
			(from_date <= $3 AND to_date > $2) OR
			(from_date < $3 AND to_date >= $2) OR
			(from_date >= $2 AND to_date <= $3)
		)`

	var count int
	if err := r.q.QueryRowContext(ctx, query, string(carType), from.Format(db.DateLayout), to.Format(db.DateLayout)).Scan(&count); err != nil {
		return 0, storeErr("count overlapping", err)
	}
	return count, nil
}

func (r *ReservationRepository) ListReservations(ctx context.Context, lowerBound time.Time) ([]db.Reservation, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, car, from_date, to_date FROM reservations WHERE to_date >= $1 ORDER BY from_date, id`,
		lowerBound.Format(db.DateLayout))
	if err != nil {
		return nil, storeErr("list reservations", err)
	}
	defer rows.Close()

	var reservations []db.Reservation
	for rows.Next() {
		var (
			res db.Reservation
			car string
		)
		if err := rows.Scan(&res.ID, &car, &res.From, &res.To); err != nil {
			return nil, storeErr("scan reservation", err)
		}
		res.CarType = db.CarType(car)
		res.From = utils.DateOnly(res.From)
		res.To = utils.DateOnly(res.To)
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate reservations", err)
	}
	return reservations, nil
}

// ResetAll empties every domain table and restores the defaults in one
// transaction. Admin accounts are kept.
func (r *ReservationRepository) ResetAll(ctx context.Context) error {
	return r.inTx(ctx, func(tx *ReservationRepository) error {
		for _, stmt := range []string{
			`TRUNCATE TABLE reservations RESTART IDENTITY`,
			`DELETE FROM cars`,
			`DELETE FROM settings`,
		} {
			if _, err := tx.q.ExecContext(ctx, stmt); err != nil {
				return storeErr("reset", err)
			}
		}
		for _, ct := range db.CarTypes {
			if err := upsertCar(ctx, tx.q, ct, db.DefaultCarAmount); err != nil {
				return err
			}
		}
		return tx.SetClock(ctx, db.DefaultCurrentDate)
	})
}

// Atomically takes a transaction-scoped advisory lock on the car type so
// the availability check and the insert cannot interleave with another
// booking of the same type.
func (r *ReservationRepository) Atomically(ctx context.Context, carType db.CarType, fn func(Store) error) error {
	return r.inTx(ctx, func(tx *ReservationRepository) error {
		if _, err := tx.q.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, "reserve:"+string(carType)); err != nil {
			return storeErr("lock "+carType.String(), err)
		}
		return fn(tx)
	})
}

func (r *ReservationRepository) inTx(ctx context.Context, fn func(tx *ReservationRepository) error) error {
	if _, ok := r.q.(*sql.Tx); ok {
		return fn(r)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return storeErr("begin transaction", err)
	}
	if err := fn(&ReservationRepository{DB: r.DB, q: tx}); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return storeErr("commit", err)
	}
	return nil
}
