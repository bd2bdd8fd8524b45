// Package constants provides shared constant values used throughout the application.
//
// The general_const.go file defines routing, header, and context-key constants.
// These keep URL structure and request metadata naming consistent across the
// router, middleware, and handlers.
package constants

// Base Routes define the root URL paths for different parts of the API.
const (
	// APIBasePath is the root path prefix for all API endpoints.
	APIBasePath = "/api"

	// HealthPath is the endpoint for health checks and system status.
	HealthPath = "/health"

	// VersionPath is the endpoint reporting build information.
	VersionPath = "/version"
)

// URL Parameters define path parameter names used in route definitions.
const (
	// ParamID is the URL parameter for resource identifiers.
	ParamID = "id"
)

// HTTP Headers define header names used by the API.
const (
	// HeaderAuthorization carries the bearer token on protected calls.
	HeaderAuthorization = "Authorization"

	// HeaderContentType declares the body media type.
	HeaderContentType = "Content-Type"

	// HeaderXRequestID carries the request correlation identifier.
	HeaderXRequestID = "X-Request-ID"

	// BearerTokenPrefix is the expected prefix of the Authorization header.
	BearerTokenPrefix = "Bearer "

	// ContentTypeJSON is the JSON media type with charset.
	ContentTypeJSON = "application/json; charset=utf-8"
)

// Context Keys name the values the access gate attaches to a request context.
const (
	// AccountIDContextKey stores the authenticated account ID.
	AccountIDContextKey = "account_id"

	// EmailContextKey stores the authenticated account email.
	EmailContextKey = "email"

	// RequestIDContextKey stores the unique request ID.
	RequestIDContextKey = "request_id"
)
