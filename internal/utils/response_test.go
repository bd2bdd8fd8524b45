package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khairuladnan/StudentMS_Backend/internal/constants"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusCreated, constants.MsgStudentAdded, map[string]int{"id": 7})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, constants.ContentTypeJSON, rec.Header().Get(constants.HeaderContentType))

	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, constants.MsgStudentAdded, resp.Message)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Errors)
}

func TestValidationFailed(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationFailed(rec, []string{constants.MsgNameEmpty, constants.MsgPhoneInvalid})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, constants.MsgValidationFailed, resp.Message)
	assert.Equal(t, []string{constants.MsgNameEmpty, constants.MsgPhoneInvalid}, resp.Errors)
}

func TestStatusHelpers(t *testing.T) {
	tests := []struct {
		name       string
		send       func(w http.ResponseWriter)
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "unauthorized default message",
			send:       func(w http.ResponseWriter) { Unauthorized(w, "") },
			wantStatus: http.StatusUnauthorized,
			wantMsg:    constants.MsgNoToken,
		},
		{
			name:       "forbidden default message",
			send:       func(w http.ResponseWriter) { Forbidden(w, "") },
			wantStatus: http.StatusForbidden,
			wantMsg:    constants.MsgInvalidToken,
		},
		{
			name:       "not found custom message",
			send:       func(w http.ResponseWriter) { NotFound(w, constants.MsgStudentNotFound) },
			wantStatus: http.StatusNotFound,
			wantMsg:    constants.MsgStudentNotFound,
		},
		{
			name:       "conflict",
			send:       func(w http.ResponseWriter) { Conflict(w, constants.MsgEmailRegistered) },
			wantStatus: http.StatusConflict,
			wantMsg:    constants.MsgEmailRegistered,
		},
		{
			name:       "internal server error",
			send:       func(w http.ResponseWriter) { InternalServerError(w, assert.AnError) },
			wantStatus: http.StatusInternalServerError,
			wantMsg:    constants.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.send(rec)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeEnvelope(t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestErrorFromAppError(t *testing.T) {
	rec := httptest.NewRecorder()
	ErrorFromAppError(rec, NewValidationFailedError([]string{constants.MsgEmailInvalid}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, constants.MsgValidationFailed, resp.Message)
	assert.Equal(t, []string{constants.MsgEmailInvalid}, resp.Errors)

	rec = httptest.NewRecorder()
	ErrorFromAppError(rec, NewInvalidCredentialsError())

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resp = decodeEnvelope(t, rec)
	assert.Equal(t, constants.MsgInvalidCredentials, resp.Message)
	assert.Empty(t, resp.Errors)
}
