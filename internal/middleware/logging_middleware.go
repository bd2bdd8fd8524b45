package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/khairuladnan/StudentMS_Backend/internal/constants"
)

// RequestLogger logs one line per request with method, path, status, size,
// and duration.
func RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				log.Info().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Int("status", ww.Status()).
					Int("bytes", ww.BytesWritten()).
					Dur("duration", time.Since(start)).
					Str("request_id", r.Header.Get(constants.HeaderXRequestID)).
					Str("remote_addr", r.RemoteAddr).
					Msg("Request handled")
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
