package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secret"

func sessionClaims(ttl time.Duration) SessionClaims {
	now := time.Now()
	return SessionClaims{
		UserID: "user-123",
		Email:  "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    "signsync-api",
			Audience:  jwt.ClaimStrings{"signsync-api"},
		},
	}
}

func TestValidateSessionToken_RoundTrip(t *testing.T) {
	a := NewJWTAuthenticator("signsync-api", "signsync-api")

	token, err := a.GenerateToken(sessionClaims(time.Hour), testSecret)
	require.NoError(t, err)

	claims, err := a.ValidateSessionToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestValidateSessionToken_Expired(t *testing.T) {
	a := NewJWTAuthenticator("signsync-api", "signsync-api")

	token, err := a.GenerateToken(sessionClaims(-time.Second), testSecret)
	require.NoError(t, err)

	_, err = a.ValidateSessionToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateSessionToken_WrongSecret(t *testing.T) {
	a := NewJWTAuthenticator("signsync-api", "signsync-api")

	token, err := a.GenerateToken(sessionClaims(time.Hour), testSecret)
	require.NoError(t, err)

	_, err = a.ValidateSessionToken(token, "other-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateSessionToken_Malformed(t *testing.T) {
	a := NewJWTAuthenticator("signsync-api", "signsync-api")

	_, err := a.ValidateSessionToken("not-a-token", testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateSessionToken_WrongIssuer(t *testing.T) {
	issuing := NewJWTAuthenticator("other-api", "other-api")
	validating := NewJWTAuthenticator("signsync-api", "signsync-api")

	claims := sessionClaims(time.Hour)
	claims.Issuer = "other-api"
	claims.Audience = jwt.ClaimStrings{"other-api"}

	token, err := issuing.GenerateToken(claims, testSecret)
	require.NoError(t, err)

	_, err = validating.ValidateSessionToken(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
