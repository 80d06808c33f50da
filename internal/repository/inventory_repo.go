package repository

import (
	"context"
	"database/sql"
	"errors"

	"carrental/internal/db"
)

func (r *ReservationRepository) TotalInventory(ctx context.Context, carType db.CarType) (int, error) {
	var amount int
	err := r.q.QueryRowContext(ctx, `SELECT amount FROM cars WHERE car_type = $1`, string(carType)).Scan(&amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, storeErr("total inventory", err)
	}
	return amount, nil
}

func (r *ReservationRepository) GetInventoryMap(ctx context.Context) (map[db.CarType]int, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT car_type, amount FROM cars`)
	if err != nil {
		return nil, storeErr("get inventory", err)
	}
	defer rows.Close()

	cars := make(map[db.CarType]int)
	for rows.Next() {
		var (
			carType string
			amount  int
		)
		if err := rows.Scan(&carType, &amount); err != nil {
			return nil, storeErr("scan inventory", err)
		}
		cars[db.CarType(carType)] = amount
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate inventory", err)
	}
	return cars, nil
}

func (r *ReservationRepository) SetInventory(ctx context.Context, carType db.CarType, amount int) error {
	return upsertCar(ctx, r.q, carType, amount)
}

func upsertCar(ctx context.Context, q querier, carType db.CarType, amount int) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO cars (car_type, amount) VALUES ($1, $2)
		ON CONFLICT (car_type) DO UPDATE SET amount = EXCLUDED.amount`,
		string(carType), amount)
	if err != nil {
		return storeErr("set inventory", err)
	}
	return nil
}
