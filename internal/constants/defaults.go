// Package constants provides shared constant values used throughout the application.
//
// The defaults.go file defines fallback configuration values and security
// parameters. Changes to these values affect server behavior, password hashing
// cost, and token lifetimes, so they should be adjusted with care.
package constants

import "time"

// Default Configuration Values define fallback settings when not specified in
// the configuration file or environment.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 3000

	// DefaultReadTimeout is the default timeout for reading a request.
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout is the default timeout for writing a response.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultShutdownTimeout is how long graceful shutdown waits for
	// in-flight requests.
	DefaultShutdownTimeout = 15 * time.Second

	// DefaultIdleTimeout is the keep-alive timeout for idle connections.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultDBMaxConnections is the default maximum number of database connections.
	DefaultDBMaxConnections = 20

	// DefaultDBMinConnections is the default number of idle database connections.
	DefaultDBMinConnections = 5

	// DefaultLogLevel is the default logging verbosity level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default logging output format.
	DefaultLogFormat = "json"
)

// Environment Types define the recognized application running environments.
const (
	// EnvDevelopment identifies a development environment with debugging features enabled.
	EnvDevelopment = "development"

	// EnvTesting identifies a testing environment for automated tests.
	EnvTesting = "testing"

	// EnvProduction identifies a production environment with hardened settings.
	EnvProduction = "production"
)

// Security Parameters define authentication and hashing settings.
const (
	// DefaultJWTExpiry is the validity window of an issued token.
	DefaultJWTExpiry = time.Hour

	// DefaultJWTIssuer identifies this service in issued tokens.
	DefaultJWTIssuer = "studentms-api"

	// DefaultBcryptCost is the bcrypt work factor for password hashing.
	DefaultBcryptCost = 10

	// MinPasswordLength is the minimum accepted password length.
	MinPasswordLength = 8

	// MaxRequestBodySize is the maximum size in bytes for HTTP request bodies.
	MaxRequestBodySize = 1 << 20 // 1 MB
)

// Logging Values define shared logging behavior.
const (
	// LogRedactedValue replaces sensitive values in log output.
	LogRedactedValue = "[REDACTED]"
)
