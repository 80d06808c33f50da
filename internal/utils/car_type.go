package utils

import (
	"strings"

	"carrental/internal/db"
	apperrors "carrental/internal/errors"
)

// ParseCarType matches name case-insensitively against the known car types
// and returns the normalized upper-case value.
func ParseCarType(name string) (db.CarType, error) {
	ct := db.CarType(strings.ToUpper(strings.TrimSpace(name)))
	for _, known := range db.CarTypes {
		if ct == known {
			return ct, nil
		}
	}
	return "", apperrors.ErrInvalidCarType
}
