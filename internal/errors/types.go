package errors

import (
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	ErrorTypeInvalidInput ErrorType = iota
	ErrorTypeDatabase
	ErrorTypeConfiguration
)

// String returns the string representation of the error type
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeInvalidInput:
		return "invalid_input"
	case ErrorTypeDatabase:
		return "database"
	case ErrorTypeConfiguration:
		return "configuration"
	default:
		return "unknown"
	}
}

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an AppError of the same type and code.
// A target with an empty Code matches on type alone, which is what the
// package sentinels rely on.
func (e *AppError) Is(target error) bool {
	appErr, ok := target.(*AppError)
	if !ok {
		return false
	}
	if appErr.Code == "" {
		return e.Type == appErr.Type
	}
	return e.Type == appErr.Type && e.Code == appErr.Code
}

// IsType checks if this error is of the specified type
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// GetContext retrieves context information from the error
func (e *AppError) GetContext(key string) (interface{}, bool) {
	if e.Context == nil {
		return nil, false
	}
	value, exists := e.Context[key]
	return value, exists
}
