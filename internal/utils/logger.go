package utils

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/khairuladnan/StudentMS_Backend/internal/config"
)

// InitLogger initializes the application logger with the given configuration.
func InitLogger(cfg *config.AppConfig) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Logging.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var output io.Writer = os.Stdout
	if strings.ToLower(cfg.Logging.Format) == "console" && !cfg.App.IsProduction() {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	log.Logger = zerolog.New(output).
		With().
		Timestamp().
		Str("app", cfg.App.Name).
		Str("version", cfg.App.Version).
		Str("env", cfg.App.Environment).
		Logger()

	log.Info().Msg("Logger initialized")
}

// LogDBQuery logs a database query execution at debug level. Password hashes
// must be replaced with a redaction marker by the caller before logging.
func LogDBQuery(query string, args []interface{}, duration time.Duration, err error) {
	event := log.Debug().
		Str("query", strings.Join(strings.Fields(query), " ")).
		Dur("duration", duration)

	if len(args) > 0 {
		event = event.Interface("args", args)
	}

	if err != nil {
		event.Err(err).Msg("Database query failed")
		return
	}
	event.Msg("Database query executed")
}

// LogAuth logs an authentication event without recording credentials.
func LogAuth(event, accountID, email string, success bool, reason string) {
	logEvent := log.Info()
	if !success {
		logEvent = log.Warn()
	}

	logEvent = logEvent.
		Str("event", event).
		Str("account_id", accountID).
		Bool("success", success)

	if email != "" {
		logEvent = logEvent.Str("email", email)
	}
	if reason != "" {
		logEvent = logEvent.Str("reason", reason)
	}

	logEvent.Msg("Authentication event")
}
