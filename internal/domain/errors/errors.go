// Package errors defines the application error taxonomy: NotFound,
// Validation/Conflict and Internal, each carrying an HTTP status and a
// business error code for the delivery layer.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrEmailAlreadyExists = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_EXISTS",
		"Email already exist",
		"",
	)

	ErrUserNotActive = NewBaseError(
		http.StatusBadRequest,
		"USER_NOT_ACTIVE",
		"User is not active",
		"",
	)

	ErrUserAlreadyActive = NewBaseError(
		http.StatusBadRequest,
		"USER_ALREADY_ACTIVE",
		"User is already active",
		"",
	)

	ErrUserBanned = NewBaseError(
		http.StatusBadRequest,
		"USER_BANNED",
		"User is banned",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Invalid password",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"TOKEN_INVALID",
		"Invalid token",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusBadRequest,
		"TOKEN_EXPIRED",
		"Token expired",
		"",
	)

	ErrRefreshTokenMismatch = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_MISMATCH",
		"Refresh token is not recognized",
		"",
	)

	ErrActivationMailFailed = NewBaseError(
		http.StatusBadRequest,
		"ACTIVATION_MAIL_FAILED",
		"Failed to send activation email",
		"",
	)

	ErrResetMailFailed = NewBaseError(
		http.StatusBadRequest,
		"RESET_MAIL_FAILED",
		"Failed to send password reset email",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrOrderNotPending = NewBaseError(
		http.StatusBadRequest,
		"ORDER_NOT_PENDING",
		"Order must be in pending status to create a delivery",
		"",
	)

	ErrOrderAlreadyConfirmed = NewBaseError(
		http.StatusBadRequest,
		"ORDER_ALREADY_CONFIRMED",
		"Order is already confirmed",
		"",
	)

	// Delivery-related errors
	ErrDeliveryNotFound = NewBaseError(
		http.StatusNotFound,
		"DELIVERY_NOT_FOUND",
		"Delivery not found",
		"",
	)

	ErrDeliveryExists = NewBaseError(
		http.StatusBadRequest,
		"DELIVERY_EXISTS",
		"Delivery UID already exists",
		"",
	)

	ErrNoDeliveriesFound = NewBaseError(
		http.StatusNotFound,
		"NO_DELIVERIES_FOUND",
		"No deliveries found for the given criteria",
		"",
	)

	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrAttributeNotFound = NewBaseError(
		http.StatusNotFound,
		"ATTRIBUTE_NOT_FOUND",
		"Attribute not found",
		"",
	)

	ErrVariantNotFound = NewBaseError(
		http.StatusNotFound,
		"VARIANT_NOT_FOUND",
		"Variant not found",
		"",
	)

	// Review-related errors
	ErrReviewNotFound = NewBaseError(
		http.StatusNotFound,
		"REVIEW_NOT_FOUND",
		"Review not found",
		"",
	)

	ErrNoReviewsFound = NewBaseError(
		http.StatusNotFound,
		"NO_REVIEWS_FOUND",
		"No reviews found for the specified product UID",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidPagination = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PAGINATION",
		"Page and limit must be positive integers",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
