package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"carrental/internal/db"
	"carrental/internal/utils"
)

const currentDateKey = "current_date"

func (r *ReservationRepository) GetClock(ctx context.Context) (*time.Time, error) {
	var value sql.NullString
	err := r.q.QueryRowContext(ctx,
		`SELECT setting_value FROM settings WHERE setting_key = $1`, currentDateKey).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get clock", err)
	}
	if !value.Valid {
		return nil, nil
	}

	date, err := utils.ParseDate(value.String)
	if err != nil {
		return nil, storeErr("get clock", fmt.Errorf("stored %s %q is not a date", currentDateKey, value.String))
	}
	return &date, nil
}

func (r *ReservationRepository) SetClock(ctx context.Context, date time.Time) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO settings (setting_key, setting_value) VALUES ($1, $2)
		ON CONFLICT (setting_key) DO UPDATE SET setting_value = EXCLUDED.setting_value`,
		currentDateKey, date.Format(db.DateLayout))
	if err != nil {
		return storeErr("set clock", err)
	}
	return nil
}
