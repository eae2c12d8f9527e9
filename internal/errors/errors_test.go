package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("priority out of range", nil)

	assert.Equal(t, ErrorTypeValidation, err.Type)
	assert.Equal(t, "VALIDATION_FAILED", err.Code)
	assert.Contains(t, err.Error(), "priority out of range")
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("task", "42")

	assert.Equal(t, ErrorTypeNotFound, err.Type)
	assert.Contains(t, err.Error(), "task not found: 42")

	resource, ok := err.GetContext("resource")
	require.True(t, ok)
	assert.Equal(t, "task", resource)
}

func TestNewDatabaseError(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := NewDatabaseError("execute query", cause)

	assert.Equal(t, ErrorTypeDatabase, err.Type)
	assert.Contains(t, err.Error(), "execute query")
	assert.Contains(t, err.Error(), "disk I/O error")
	assert.Equal(t, cause, err.Unwrap())
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("priority", "abc", "must be an integer")

	assert.Equal(t, ErrorTypeInvalidInput, err.Type)
	assert.Contains(t, err.Error(), "priority")
	assert.Contains(t, err.Error(), "must be an integer")
}

func TestWrapError(t *testing.T) {
	cause := errors.New("underlying")
	err := WrapError(cause, ErrorTypeDatabase, "wrapped")

	assert.Equal(t, ErrorTypeDatabase, err.Type)
	assert.True(t, errors.Is(err, cause))
}

func TestIsAppError(t *testing.T) {
	assert.True(t, IsAppError(NewNotFoundError("task", "1")))
	assert.False(t, IsAppError(errors.New("plain")))
}

func TestIsErrorType(t *testing.T) {
	notFound := NewNotFoundError("task", "1")

	assert.True(t, IsErrorType(notFound, ErrorTypeNotFound))
	assert.False(t, IsErrorType(notFound, ErrorTypeValidation))
	assert.False(t, IsErrorType(errors.New("plain"), ErrorTypeNotFound))
}

func TestGetUserMessage(t *testing.T) {
	// User errors pass their message through
	notFound := NewNotFoundError("task", "42")
	assert.Equal(t, notFound.Message, GetUserMessage(notFound))

	// System errors are masked
	dbErr := NewDatabaseError("execute query", errors.New("disk I/O error"))
	assert.Equal(t, "A database error occurred. Please try again.", GetUserMessage(dbErr))

	// Plain errors fall back to Error()
	plain := errors.New("plain error")
	assert.Equal(t, "plain error", GetUserMessage(plain))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", GetErrorCode(NewNotFoundError("task", "1")))
	assert.Equal(t, "UNKNOWN_ERROR", GetErrorCode(errors.New("plain")))
}

func TestShouldLogError(t *testing.T) {
	assert.False(t, ShouldLogError(NewValidationError("bad input", nil)))
	assert.False(t, ShouldLogError(NewNotFoundError("task", "1")))
	assert.True(t, ShouldLogError(NewDatabaseError("open", errors.New("locked"))))
	assert.True(t, ShouldLogError(errors.New("plain")))
}
