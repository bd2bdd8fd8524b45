package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khairuladnan/StudentMS_Backend/internal/config"
	"github.com/khairuladnan/StudentMS_Backend/internal/utils"
)

func testJWTSettings() *config.JWTSettings {
	return &config.JWTSettings{
		Secret: "test-secret-key",
		Expiry: time.Hour,
		Issuer: "studentms-test",
	}
}

func TestGenerateToken(t *testing.T) {
	service := NewJWTService(testJWTSettings())

	token, jwtID, err := service.GenerateToken(42, "ana@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, jwtID)

	// Compact JWS form: header.payload.signature
	assert.Len(t, strings.Split(token, "."), 3)
}

func TestValidateToken_RoundTrip(t *testing.T) {
	service := NewJWTService(testJWTSettings())

	token, jwtID, err := service.GenerateToken(42, "ana@example.com")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.AccountID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, jwtID, claims.RegisteredClaims.ID)
	assert.Equal(t, "studentms-test", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateToken_Expired(t *testing.T) {
	settings := testJWTSettings()
	settings.Expiry = -time.Minute
	service := NewJWTService(settings)

	token, _, err := service.GenerateToken(42, "ana@example.com")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	require.Error(t, err)

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.ErrorIs(t, appErr.Err, utils.ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service := NewJWTService(testJWTSettings())

	other := testJWTSettings()
	other.Secret = "a-different-secret"
	token, _, err := NewJWTService(other).GenerateToken(42, "ana@example.com")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	require.Error(t, err)

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.ErrorIs(t, appErr.Err, utils.ErrInvalidToken)
}

func TestValidateToken_Malformed(t *testing.T) {
	service := NewJWTService(testJWTSettings())

	for _, token := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := service.ValidateToken(token)
		assert.Error(t, err, "token %q should be rejected", token)
	}
}

func TestValidateToken_RejectsNonHMAC(t *testing.T) {
	service := NewJWTService(testJWTSettings())

	// alg=none token with plausible claims.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, CustomClaims{
		AccountID: 42,
		Email:     "ana@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	require.Error(t, err)

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.ErrorIs(t, appErr.Err, utils.ErrInvalidToken)
}

func TestParseTokenWithoutValidation(t *testing.T) {
	service := NewJWTService(testJWTSettings())

	token, jwtID, err := service.GenerateToken(42, "ana@example.com")
	require.NoError(t, err)

	parsedID, err := service.ParseTokenWithoutValidation(token)
	require.NoError(t, err)
	assert.Equal(t, jwtID, parsedID)
}

func TestGetConfig_NilFallsBackToDefaults(t *testing.T) {
	service := &JWTService{}

	cfg := service.GetConfig()
	assert.Equal(t, time.Hour, cfg.Expiry)
	assert.NotEmpty(t, cfg.Issuer)
}
