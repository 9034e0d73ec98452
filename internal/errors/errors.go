package errors

import (
	"errors"
	"fmt"
)

// ErrInvalidInput matches any invalid input AppError via errors.Is.
var ErrInvalidInput = &AppError{Type: ErrorTypeInvalidInput}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: message,
		Code:    "INVALID_INPUT",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewDatabaseError creates a new database error
func NewDatabaseError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeDatabase,
		Message: fmt.Sprintf("database operation failed: %s", operation),
		Code:    "DATABASE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(source string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeConfiguration,
		Message: fmt.Sprintf("invalid configuration from %s", source),
		Code:    "CONFIGURATION_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"source": source,
		},
	}
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeInvalidInput, ErrorTypeConfiguration:
			return appErr.Message
		case ErrorTypeDatabase:
			return "A storage error occurred. Please try again."
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeInvalidInput:
			return false
		default:
			return true
		}
	}
	return true
}
