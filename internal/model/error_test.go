package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedKind   ErrorKind
		expectedCode   string
		expectedStatus int
	}{
		{
			name:           "Validation error",
			err:            NewValidationError("Name and quantity are required"),
			expectedKind:   KindValidation,
			expectedCode:   ErrCodeValidation,
			expectedStatus: 400,
		},
		{
			name:           "Not found error",
			err:            ErrProductNotFound,
			expectedKind:   KindNotFound,
			expectedCode:   ErrCodeNotFound,
			expectedStatus: 404,
		},
		{
			name:           "Database error",
			err:            NewDatabaseError("failed to query products", errors.New("connection refused")),
			expectedKind:   KindDatabase,
			expectedCode:   ErrCodeDatabase,
			expectedStatus: 500,
		},
		{
			name:           "Wrapped app error",
			err:            fmt.Errorf("list products: %w", ErrProductNotFound),
			expectedKind:   KindNotFound,
			expectedCode:   ErrCodeNotFound,
			expectedStatus: 404,
		},
		{
			name:           "Unclassified error degrades to internal",
			err:            errors.New("something unexpected"),
			expectedKind:   KindInternal,
			expectedCode:   ErrCodeInternal,
			expectedStatus: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := Classify(tt.err)

			assert.Equal(t, tt.expectedKind, appErr.Kind)
			assert.Equal(t, tt.expectedCode, appErr.Code())
			assert.Equal(t, tt.expectedStatus, appErr.StatusCode())
		})
	}
}

func TestAppError_PublicMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "Validation uses route-specific message",
			err:      NewValidationError("Invalid product ID"),
			expected: "Invalid product ID",
		},
		{
			name:     "Validation falls back to default",
			err:      &AppError{Kind: KindValidation},
			expected: MsgInvalidRequest,
		},
		{
			name:     "Not found uses error message",
			err:      ErrProductNotFound,
			expected: "Product not found",
		},
		{
			name:     "Not found falls back to default",
			err:      &AppError{Kind: KindNotFound},
			expected: MsgNotFound,
		},
		{
			name:     "Database never exposes internal detail",
			err:      NewDatabaseError("pq: password authentication failed", errors.New("pq: password authentication failed")),
			expected: MsgDatabaseConnection,
		},
		{
			name:     "Internal never exposes internal detail",
			err:      NewInternalError(errors.New("nil pointer dereference")),
			expected: MsgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.PublicMessage())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	appErr := NewDatabaseError("query failed", cause)

	assert.ErrorIs(t, appErr, cause)
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(ErrProductNotFound, "req-123")

	assert.Equal(t, ErrCodeNotFound, resp.Error)
	assert.Equal(t, "Product not found", resp.Message)
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "req-123", resp.CorrelationID)
}
