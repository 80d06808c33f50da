package errors

import (
	stderrors "errors"
	"fmt"
)

// Validation failures. The messages are shown to the user as-is.
var (
	ErrInvalidCarType         = stderrors.New("Invalid car type. Must be one of: sedan, suv, van")
	ErrInvalidDateFormat      = stderrors.New("Invalid date format. Use yyyy-mm-dd")
	ErrInvalidDateRange       = stderrors.New("Start date must not be after end date")
	ErrClockNotSet            = stderrors.New("Current date must be set to reserve a car")
	ErrStartBeforeCurrentDate = stderrors.New("Start date must not be before current date")
	ErrNoAvailability         = stderrors.New("No cars available for the selected dates")
	ErrInvalidAmount          = stderrors.New("Amount must be a non-negative number")
)

var validationErrors = []error{
	ErrInvalidCarType,
	ErrInvalidDateFormat,
	ErrInvalidDateRange,
	ErrClockNotSet,
	ErrStartBeforeCurrentDate,
	ErrNoAvailability,
	ErrInvalidAmount,
}

// IsValidation reports whether err is one of the user-facing validation failures.
func IsValidation(err error) bool {
	for _, v := range validationErrors {
		if stderrors.Is(err, v) {
			return true
		}
	}
	return false
}

// StoreError wraps a failure of the persistence layer.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err for op. A nil err stays nil.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if stderrors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}

// IsStoreError reports whether err came from the persistence layer.
func IsStoreError(err error) bool {
	var se *StoreError
	return stderrors.As(err, &se)
}
