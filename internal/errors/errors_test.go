package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStoreError(t *testing.T) {
	assert.Nil(t, NewStoreError("ping", nil))

	cause := stderrors.New("connection refused")
	err := NewStoreError("add reservation", cause)
	assert.True(t, IsStoreError(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "store add reservation: connection refused", err.Error())

	// Wrapping twice keeps the innermost operation.
	again := NewStoreError("reserve", fmt.Errorf("tx: %w", err))
	var se *StoreError
	assert.True(t, stderrors.As(again, &se))
	assert.Equal(t, "add reservation", se.Op)
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(ErrInvalidCarType))
	assert.True(t, IsValidation(fmt.Errorf("setcar: %w", ErrInvalidAmount)))
	assert.False(t, IsValidation(NewStoreError("x", stderrors.New("boom"))))
	assert.False(t, IsValidation(nil))
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"no availability", ErrNoAvailability, http.StatusConflict},
		{"invalid range", ErrInvalidDateRange, http.StatusBadRequest},
		{"clock not set", fmt.Errorf("reserve: %w", ErrClockNotSet), http.StatusBadRequest},
		{"store", NewStoreError("list", stderrors.New("io")), http.StatusInternalServerError},
		{"http passthrough", ErrUnauthorized("nope"), http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, FromError(tt.err).Code)
		})
	}
	assert.Equal(t, "Internal server error", FromError(stderrors.New("secret")).Message)
}
