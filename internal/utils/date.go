package utils

import (
	"time"

	"carrental/internal/db"
	apperrors "carrental/internal/errors"
)

// ParseDate parses a yyyy-mm-dd calendar date into UTC midnight.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(db.DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, apperrors.ErrInvalidDateFormat
	}
	return d, nil
}

// ParseDateRange parses both ends and checks that from is not after to.
func ParseDateRange(from, to string) (time.Time, time.Time, error) {
	f, err := ParseDate(from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	t, err := ParseDate(to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if f.After(t) {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidDateRange
	}
	return f, t, nil
}

// DateOnly drops the clock part of t, keeping its calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
