package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantKind Kind
		wantCode int
	}{
		{"validation", NewValidationError("Quantity must be positive"), KindValidation, http.StatusUnprocessableEntity},
		{"not found", NewNotFoundError("Product"), KindNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("Email is already registered"), KindConflict, http.StatusConflict},
		{"insufficient stock", NewInsufficientStockError("Flour"), KindInsufficientStock, http.StatusConflict},
		{"bad request", NewBadRequestError("Invalid ID format"), KindValidation, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, tt.err.Kind)
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestNotFoundMessage(t *testing.T) {
	assert.Equal(t, "Product not found", NewNotFoundError("Product").Error())
}

func TestInsufficientStockMessage(t *testing.T) {
	err := NewInsufficientStockError("Flour")
	assert.Contains(t, err.Error(), `"Flour"`)
}

func TestIsKind(t *testing.T) {
	err := NewConflictError("taken")
	assert.True(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(err, KindNotFound))

	wrapped := fmt.Errorf("registering: %w", err)
	assert.True(t, IsKind(wrapped, KindConflict))

	assert.False(t, IsKind(errors.New("plain"), KindConflict))
	assert.False(t, IsKind(nil, KindConflict))
}

func TestGetAppError(t *testing.T) {
	t.Run("passes an AppError through", func(t *testing.T) {
		appErr := NewNotFoundError("Client")
		assert.Equal(t, appErr, GetAppError(appErr))
	})

	t.Run("unwraps a wrapped AppError", func(t *testing.T) {
		appErr := NewValidationError("bad input")
		wrapped := fmt.Errorf("handling request: %w", appErr)
		assert.Equal(t, appErr, GetAppError(wrapped))
	})

	t.Run("falls back to an internal error", func(t *testing.T) {
		got := GetAppError(errors.New("connection reset"))
		assert.Equal(t, KindInternal, got.Kind)
		assert.Equal(t, http.StatusInternalServerError, got.Code)
		assert.Equal(t, "connection reset", got.Message)
	})
}

func TestFieldValidationError(t *testing.T) {
	err := NewFieldValidationError([]FieldError{
		{Field: "items.0.quantity", Message: "Quantity must be at least 1"},
	})
	assert.Equal(t, KindValidation, err.Kind)
	assert.Len(t, err.Errors, 1)
	assert.Equal(t, "items.0.quantity", err.Errors[0].Field)
}
