// Package errors provides structured error handling for the readlog backend.
// It defines error types with codes, messages, causes, and contextual
// information so failures can be mapped to HTTP responses at the rest layer
// without leaking internals to clients.
package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode represents a categorized error type for structured error handling.
type ErrorCode string

const (
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeValidation   ErrorCode = "VALIDATION_ERROR"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeConflict     ErrorCode = "CONFLICT"
	ErrCodeExternalAPI  ErrorCode = "EXTERNAL_API_ERROR"
	ErrCodeDatabase     ErrorCode = "DATABASE_ERROR"
	ErrCodeUnknown      ErrorCode = "UNKNOWN_ERROR"
)

// AppError represents a structured application error with code, message,
// cause, and context. It implements the error interface and supports error
// unwrapping.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// HTTPStatusCode maps the error code to the response status.
func (e *AppError) HTTPStatusCode() int {
	switch e.Code {
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeExternalAPI, ErrCodeDatabase:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// ToHTTPResponse renders the client-facing body. Cause and context are
// logged, never exposed.
func (e *AppError) ToHTTPResponse() map[string]string {
	return map[string]string{"error": e.Message}
}

// UnauthorizedError creates an AppError for missing or invalid sessions.
func UnauthorizedError(message string) *AppError {
	return &AppError{Code: ErrCodeUnauthorized, Message: message}
}

// ValidationError creates an AppError for input validation failures.
func ValidationError(message string, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Context: context}
}

// NotFoundError creates an AppError for rows that are absent or owned by
// someone else. The two cases are deliberately indistinguishable to callers.
func NotFoundError(message string, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message, Context: context}
}

// ConflictError creates an AppError for uniqueness violations.
func ConflictError(message string, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeConflict, Message: message, Context: context}
}

// ExternalAPIError creates an AppError for upstream fetch failures.
func ExternalAPIError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeExternalAPI, Message: message, Cause: cause, Context: context}
}

// DatabaseError creates an AppError for store failures.
func DatabaseError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeDatabase, Message: message, Cause: cause, Context: context}
}

// UnknownError wraps an unexpected error with a generic client message.
func UnknownError(message string, cause error) *AppError {
	return &AppError{Code: ErrCodeUnknown, Message: message, Cause: cause}
}
