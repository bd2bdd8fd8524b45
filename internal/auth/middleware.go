// Package auth provides authentication for the StudentMS API: password
// hashing, JWT issuing and validation, and the middleware that gates
// protected routes.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/khairuladnan/StudentMS_Backend/internal/constants"
	"github.com/khairuladnan/StudentMS_Backend/internal/utils"
)

// ContextKey is a custom type for context keys to prevent collisions.
type ContextKey string

// Context keys for storing authenticated account information and request metadata.
const (
	// AccountIDContextKey is the context key for the authenticated account ID.
	AccountIDContextKey ContextKey = constants.AccountIDContextKey

	// EmailContextKey is the context key for the authenticated account's email.
	EmailContextKey ContextKey = constants.EmailContextKey

	// RequestIDContextKey is the context key for the unique request ID.
	RequestIDContextKey ContextKey = constants.RequestIDContextKey
)

// AuthProvider defines methods for authentication mechanisms. It allows for
// pluggable strategies behind the same middleware.
type AuthProvider interface {
	// Authenticate checks the request and returns the account ID and email
	// if the presented credentials are valid.
	Authenticate(r *http.Request) (int64, string, error)
}

// JWTAuthProvider implements bearer-token authentication. It extracts and
// validates JWT tokens from the Authorization header.
type JWTAuthProvider struct {
	jwtService JWTValidator
}

// NewJWTAuthProvider creates a new JWTAuthProvider with the specified JWT validator.
func NewJWTAuthProvider(jwtService JWTValidator) *JWTAuthProvider {
	return &JWTAuthProvider{
		jwtService: jwtService,
	}
}

// Authenticate implements the AuthProvider interface for JWT authentication.
// A request without any usable bearer token fails with an unauthenticated
// error; a request that presents a token which does not verify (bad
// signature, malformed, expired) fails with the token's validation error.
func (p *JWTAuthProvider) Authenticate(r *http.Request) (int64, string, error) {
	authHeader := r.Header.Get(constants.HeaderAuthorization)
	if authHeader == "" {
		return 0, "", utils.NewUnauthenticatedError("")
	}

	if !strings.HasPrefix(authHeader, constants.BearerTokenPrefix) {
		return 0, "", utils.NewUnauthenticatedError("")
	}

	token := strings.TrimPrefix(authHeader, constants.BearerTokenPrefix)
	if token == "" {
		return 0, "", utils.NewUnauthenticatedError("")
	}

	claims, err := p.jwtService.ValidateToken(token)
	if err != nil {
		return 0, "", err
	}

	return claims.AccountID, claims.Email, nil
}

// AuthMiddleware wraps an HTTP handler with authentication. The request only
// proceeds if at least one provider accepts it; on success the account ID and
// email are placed in the request context for handlers.
func AuthMiddleware(next http.Handler, providers ...AuthProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constants.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
			r.Header.Set(constants.HeaderXRequestID, requestID)
		}

		ctx := context.WithValue(r.Context(), RequestIDContextKey, requestID)

		var lastErr error
		for _, provider := range providers {
			accountID, email, err := provider.Authenticate(r)
			if err == nil {
				ctx = context.WithValue(ctx, AccountIDContextKey, accountID)
				ctx = context.WithValue(ctx, EmailContextKey, email)

				log.Debug().
					Int64("account_id", accountID).
					Str("request_id", requestID).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("Request authenticated")

				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
			lastErr = err
		}

		log.Info().
			Err(lastErr).
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Authentication failed")

		// A request with no token at all gets 401; a token that failed
		// verification gets 403.
		var appErr *utils.AppError
		if errors.As(lastErr, &appErr) {
			utils.ErrorFromAppError(w, appErr)
			return
		}
		utils.Unauthorized(w, constants.MsgNoToken)
	})
}

// RequireAuth returns a middleware function that enforces authentication,
// suitable for use with chi's Use().
func RequireAuth(providers ...AuthProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return AuthMiddleware(next, providers...)
	}
}

// GetAccountID extracts the authenticated account ID from the request context.
func GetAccountID(r *http.Request) (int64, bool) {
	accountID, ok := r.Context().Value(AccountIDContextKey).(int64)
	return accountID, ok
}

// GetEmail extracts the authenticated email from the request context.
func GetEmail(r *http.Request) (string, bool) {
	email, ok := r.Context().Value(EmailContextKey).(string)
	return email, ok
}

// GetRequestID extracts the request ID from the request context.
func GetRequestID(r *http.Request) (string, bool) {
	requestID, ok := r.Context().Value(RequestIDContextKey).(string)
	return requestID, ok
}

// IsAuthenticated reports whether the request carries an authenticated account.
func IsAuthenticated(r *http.Request) bool {
	_, ok := GetAccountID(r)
	return ok
}
