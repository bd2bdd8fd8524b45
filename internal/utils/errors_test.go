package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/khairuladnan/StudentMS_Backend/internal/constants"
)

func TestParseError_PassesThroughAppError(t *testing.T) {
	original := NewConflictError(constants.MsgEmailRegistered)
	parsed := ParseError(fmt.Errorf("create failed: %w", original))

	assert.Same(t, original, parsed)
}

func TestParseError_Sentinels(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", ErrNotFound, http.StatusNotFound, constants.MsgResourceNotFound},
		{"unauthenticated", ErrUnauthenticated, http.StatusUnauthorized, constants.MsgNoToken},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized, constants.MsgInvalidCredentials},
		{"expired token", ErrExpiredToken, http.StatusForbidden, constants.MsgInvalidToken},
		{"invalid token", ErrInvalidToken, http.StatusForbidden, constants.MsgInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := ParseError(tt.err)
			assert.Equal(t, tt.wantStatus, parsed.StatusCode)
			assert.Equal(t, tt.wantMsg, parsed.Message)
		})
	}
}

func TestParseError_UniqueViolationOnEmail(t *testing.T) {
	pqErr := &pq.Error{
		Code:       "23505",
		Constraint: constants.ConstraintStudentsEmail,
	}

	parsed := ParseError(pqErr)
	assert.Equal(t, http.StatusConflict, parsed.StatusCode)
	assert.Equal(t, constants.MsgEmailRegistered, parsed.Message)
	assert.True(t, IsConflictError(parsed))
}

func TestParseError_NotNullViolation(t *testing.T) {
	pqErr := &pq.Error{
		Code:   "23502",
		Column: "name",
	}

	parsed := ParseError(pqErr)
	assert.Equal(t, http.StatusBadRequest, parsed.StatusCode)
	assert.Contains(t, parsed.Message, "name")
}

func TestParseError_UnknownErrorBecomesInternal(t *testing.T) {
	parsed := ParseError(errors.New("connection reset by peer"))

	assert.Equal(t, http.StatusInternalServerError, parsed.StatusCode)
	assert.Equal(t, constants.MsgInternalServerError, parsed.Message)
	// The raw error is kept for logs, never for the client message.
	assert.Equal(t, "connection reset by peer", parsed.DevInfo)
}

func TestValidationError(t *testing.T) {
	err := NewValidationFailedError([]string{constants.MsgNameEmpty, constants.MsgEmailInvalid})

	assert.True(t, IsValidationError(err))
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Contains(t, err.Error(), constants.MsgNameEmpty)
	assert.Contains(t, err.Error(), constants.MsgEmailInvalid)
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusCode(NewNotFoundError("")))
	assert.Equal(t, http.StatusUnauthorized, StatusCode(NewInvalidCredentialsError()))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("plain")))
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("wrapped: %w", ErrNotFound)))
	assert.True(t, IsNotFoundError(NewNotFoundError(constants.MsgStudentNotFound)))
	assert.False(t, IsNotFoundError(NewConflictError("dup")))
}
