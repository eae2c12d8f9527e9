package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTypeString(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeValidation, "validation"},
		{ErrorTypeNotFound, "not_found"},
		{ErrorTypeDatabase, "database"},
		{ErrorTypeInvalidInput, "invalid_input"},
		{ErrorTypeTimeout, "timeout"},
		{ErrorType(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.errorType.String())
	}
}

func TestAppError_Error(t *testing.T) {
	err := &AppError{Type: ErrorTypeNotFound, Message: "task not found: 1"}
	assert.Equal(t, "not_found: task not found: 1", err.Error())

	withCause := &AppError{Type: ErrorTypeDatabase, Message: "open failed", Cause: errors.New("locked")}
	assert.Contains(t, withCause.Error(), "caused by: locked")
}

func TestAppError_Is(t *testing.T) {
	a := NewNotFoundError("task", "1")
	b := NewNotFoundError("task", "2")
	c := NewValidationError("bad", nil)

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
}

func TestAppError_Context(t *testing.T) {
	err := &AppError{Type: ErrorTypeValidation, Message: "bad"}

	_, ok := err.GetContext("field")
	assert.False(t, ok)

	err.WithContext("field", "priority")
	value, ok := err.GetContext("field")
	assert.True(t, ok)
	assert.Equal(t, "priority", value)
}

func TestAppError_IsType(t *testing.T) {
	err := NewTimeoutError("list tasks", "10s")
	assert.True(t, err.IsType(ErrorTypeTimeout))
	assert.False(t, err.IsType(ErrorTypeDatabase))
}
