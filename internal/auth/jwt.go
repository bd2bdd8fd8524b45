package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/khairuladnan/StudentMS_Backend/internal/config"
	"github.com/khairuladnan/StudentMS_Backend/internal/constants"
	"github.com/khairuladnan/StudentMS_Backend/internal/utils"
)

// JWT errors
var (
	ErrInvalidSigningMethod = errors.New("invalid signing method")
	ErrInvalidTokenClaims   = errors.New("invalid token claims")
)

// CustomClaims represents the claims in a JWT token. The account ID and email
// travel under the short names the clients rely on.
type CustomClaims struct {
	AccountID int64  `json:"id"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService provides JWT token generation and validation functionality
type JWTService struct {
	Config *config.JWTSettings
}

// NewJWTService creates a new JWTService instance
func NewJWTService(config *config.JWTSettings) *JWTService {
	return &JWTService{
		Config: config,
	}
}

// GetConfig returns the JWT settings used for signing and validation.
func (s *JWTService) GetConfig() *config.JWTSettings {
	if s.Config == nil {
		return &config.JWTSettings{
			Expiry: constants.DefaultJWTExpiry,
			Issuer: constants.DefaultJWTIssuer,
		}
	}
	return s.Config
}

// GenerateToken creates a signed access token for an account. It returns the
// compact token string and the unique JWT ID assigned to it.
func (s *JWTService) GenerateToken(accountID int64, email string) (string, string, error) {
	jwtID := uuid.New().String()

	now := time.Now()
	claims := CustomClaims{
		AccountID: accountID,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.GetConfig().Issuer,
			Subject:   fmt.Sprintf("%d", accountID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.GetConfig().Expiry)),
			NotBefore: jwt.NewNumericDate(now),
			ID:        jwtID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.GetConfig().Secret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, jwtID, nil
}

// ValidateToken validates a JWT token and returns its claims if valid. An
// expired token and a malformed or badly signed one surface as distinct
// errors so callers can log the difference, though both are rejected.
func (s *JWTService) ValidateToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Only HMAC signatures are acceptable; anything else (including
		// alg=none) is rejected before the signature is checked.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSigningMethod
		}
		return []byte(s.GetConfig().Secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, utils.NewExpiredTokenError()
		}
		return nil, utils.NewInvalidTokenError()
	}

	if !token.Valid {
		return nil, utils.NewInvalidTokenError()
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok {
		return nil, utils.NewInvalidTokenError()
	}

	return claims, nil
}

// ParseTokenWithoutValidation parses a token without checking its signature
// to extract the JWT ID. Useful for audit logging of rejected tokens.
func (s *JWTService) ParseTokenWithoutValidation(tokenString string) (string, error) {
	token, _ := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(""), nil
	})

	if token != nil {
		if claims, ok := token.Claims.(*CustomClaims); ok && claims.RegisteredClaims.ID != "" {
			return claims.RegisteredClaims.ID, nil
		}
	}

	return "", ErrInvalidTokenClaims
}
