package model

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// Standard error codes for API responses
const (
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeDatabase   = "DATABASE_ERROR"
	ErrCodeInternal   = "INTERNAL_ERROR"
)

// ErrorKind is the closed classification used to pick an HTTP status
// and a safe user-facing message.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindNotFound
	KindDatabase
	KindInternal
)

// Safe default messages per kind. Route-specific messages may override
// the validation and not-found defaults; database and internal errors
// always use the fixed text so store detail never reaches the client.
const (
	MsgInvalidRequest     = "Invalid request format or parameters."
	MsgNotFound           = "The requested resource was not found."
	MsgDatabaseConnection = "Unable to connect to database. Please try again later."
	MsgInternalError      = "An internal error occurred. Please try again later."
)

// AppError is an error classified into one of the four kinds, carrying
// an optional wrapped cause.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Code returns the machine-readable error code for the wire payload.
func (e *AppError) Code() string {
	switch e.Kind {
	case KindValidation:
		return ErrCodeValidation
	case KindNotFound:
		return ErrCodeNotFound
	case KindDatabase:
		return ErrCodeDatabase
	default:
		return ErrCodeInternal
	}
}

// StatusCode returns the HTTP status for the error kind.
func (e *AppError) StatusCode() int {
	switch e.Kind {
	case KindValidation:
		return 400
	case KindNotFound:
		return 404
	default:
		return 500
	}
}

// PublicMessage returns the text safe to expose to the client.
func (e *AppError) PublicMessage() string {
	switch e.Kind {
	case KindValidation:
		if e.Message != "" {
			return e.Message
		}
		return MsgInvalidRequest
	case KindNotFound:
		if e.Message != "" {
			return e.Message
		}
		return MsgNotFound
	case KindDatabase:
		return MsgDatabaseConnection
	default:
		return MsgInternalError
	}
}

// NewValidationError creates a validation error with a route-specific message.
func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

// NewNotFoundError creates a not-found error.
func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

// NewDatabaseError wraps a store failure. The cause is annotated with a
// stack trace so development logs can surface it; it is never exposed
// to the client.
func NewDatabaseError(message string, cause error) *AppError {
	return &AppError{Kind: KindDatabase, Message: message, Err: pkgerrors.WithStack(cause)}
}

// NewInternalError wraps an unclassified failure.
func NewInternalError(cause error) *AppError {
	return &AppError{Kind: KindInternal, Err: pkgerrors.WithStack(cause)}
}

// Common domain errors
var (
	ErrProductNotFound  = NewNotFoundError("Product not found")
	ErrNameQuantity     = NewValidationError("Name and quantity are required")
	ErrInvalidProductID = NewValidationError("Invalid product ID")
)

// Classify maps any error onto an AppError. Already-classified errors
// pass through; everything else degrades to the internal kind.
func Classify(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError(err)
}

// ErrorResponse is the standardised error payload.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	StatusCode    int    `json:"statusCode"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// NewErrorResponse builds the wire payload for a classified error.
func NewErrorResponse(e *AppError, correlationID string) ErrorResponse {
	return ErrorResponse{
		Error:         e.Code(),
		Message:       e.PublicMessage(),
		StatusCode:    e.StatusCode(),
		CorrelationID: correlationID,
	}
}
