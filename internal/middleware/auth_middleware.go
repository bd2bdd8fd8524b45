package middleware

import (
	"net/http"

	"github.com/khairuladnan/StudentMS_Backend/internal/auth"
)

// JWTAuth returns middleware that requires a valid bearer token issued by
// the given JWT service. Requests without a token are rejected with 401;
// requests with a token that fails verification are rejected with 403.
func JWTAuth(jwtService auth.JWTValidator) func(http.Handler) http.Handler {
	provider := auth.NewJWTAuthProvider(jwtService)
	return auth.RequireAuth(provider)
}
