// Package utils provides utility functions and helpers for the application.
// This file implements the standardized API response envelope used by every
// endpoint:
//
//	{ "success": bool, "message": string, "data"?, "errors"?, "error"? }
//
// A consistent envelope keeps client handling predictable across success,
// validation failure, and error outcomes.
package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/khairuladnan/StudentMS_Backend/internal/constants"
)

// Response is the envelope returned by every API endpoint.
type Response struct {
	Success bool        `json:"success"`          // Whether the request succeeded
	Message string      `json:"message"`          // Human-readable outcome summary
	Data    interface{} `json:"data,omitempty"`   // Response payload on success
	Errors  []string    `json:"errors,omitempty"` // Field violations, in input order
	Error   string      `json:"error,omitempty"`  // Additional error detail, when safe to expose
}

// JSON sends a successful response with the given status code, message, and
// payload.
func JSON(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	SendJSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse sends a failure response with the given status code and
// message.
func ErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	SendJSON(w, statusCode, Response{
		Success: false,
		Message: message,
	})
}

// ValidationFailed sends a 400 response carrying every collected violation.
func ValidationFailed(w http.ResponseWriter, violations []string) {
	SendJSON(w, http.StatusBadRequest, Response{
		Success: false,
		Message: constants.MsgValidationFailed,
		Errors:  violations,
	})
}

// Unauthorized sends a 401 response.
func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = constants.MsgNoToken
	}
	ErrorResponse(w, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 response.
func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = constants.MsgInvalidToken
	}
	ErrorResponse(w, http.StatusForbidden, message)
}

// NotFound sends a 404 response.
func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = constants.MsgResourceNotFound
	}
	ErrorResponse(w, http.StatusNotFound, message)
}

// Conflict sends a 409 response.
func Conflict(w http.ResponseWriter, message string) {
	ErrorResponse(w, http.StatusConflict, message)
}

// InternalServerError sends a 500 response. The error is logged; the client
// only sees a generic message.
func InternalServerError(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("Internal server error")
	ErrorResponse(w, http.StatusInternalServerError, constants.MsgInternalServerError)
}

// ErrorFromAppError sends the response matching an AppError, logging any
// developer detail it carries.
func ErrorFromAppError(w http.ResponseWriter, appErr *AppError) {
	if appErr.DevInfo != "" {
		log.Error().
			Str("detail", appErr.DevInfo).
			Int("status", appErr.StatusCode).
			Msg(appErr.Message)
	}

	if errors.Is(appErr.Err, ErrValidation) && len(appErr.Violations) > 0 {
		ValidationFailed(w, appErr.Violations)
		return
	}

	ErrorResponse(w, appErr.StatusCode, appErr.Message)
}

// SendJSON writes a Response with proper headers.
func SendJSON(w http.ResponseWriter, statusCode int, response Response) {
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)

	jsonData, err := json.Marshal(response)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal JSON response")
		if _, err := w.Write([]byte(`{"success":false,"message":"Failed to generate response"}`)); err != nil {
			log.Error().Err(err).Msg("Failed to write error response")
		}
		return
	}

	if _, err := w.Write(jsonData); err != nil {
		log.Error().Err(err).Msg("Failed to write JSON response")
	}
}
