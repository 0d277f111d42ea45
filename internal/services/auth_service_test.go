package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"futurewear/internal/errs"
	"futurewear/internal/services"
)

func newAuth() *services.AuthService {
	return services.NewAuthService("admin", "secret123", "test_jwt_secret", 24*time.Hour)
}

func TestAuthService_LoginSuccess(t *testing.T) {
	auth := newAuth()

	token, err := auth.Login("admin", "secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	auth := newAuth()

	_, err := auth.Login("admin", "wrong")
	assert.ErrorIs(t, err, errs.ErrUnauthorized)

	_, err = auth.Login("root", "secret123")
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestAuthService_ValidateAcceptsActiveSession(t *testing.T) {
	auth := newAuth()

	token, err := auth.Login("admin", "secret123")
	assert.NoError(t, err)

	assert.True(t, auth.Validate(token))
	assert.True(t, auth.Validate(token))
}

func TestAuthService_ValidateRejectsEmptyAndGarbage(t *testing.T) {
	auth := newAuth()

	assert.False(t, auth.Validate(""))
	assert.False(t, auth.Validate("not-a-token"))
}

func TestAuthService_ValidateRejectsForeignSignature(t *testing.T) {
	auth := newAuth()
	other := services.NewAuthService("admin", "secret123", "different_secret", 24*time.Hour)

	token, err := other.Login("admin", "secret123")
	assert.NoError(t, err)

	assert.False(t, auth.Validate(token))
}

func TestAuthService_ExpiredSessionIsRejected(t *testing.T) {
	auth := services.NewAuthService("admin", "secret123", "test_jwt_secret", -time.Hour)

	token, err := auth.Login("admin", "secret123")
	assert.NoError(t, err)

	// The session record is already stale, and the token's own expiry is
	// in the past, so neither path accepts it.
	assert.False(t, auth.Validate(token))
	assert.False(t, auth.Validate(token))
}

func TestAuthService_LogoutOnlyRevokesAuthoritativePath(t *testing.T) {
	auth := newAuth()

	token, err := auth.Login("admin", "secret123")
	assert.NoError(t, err)
	assert.True(t, auth.Validate(token))

	auth.Logout(token)

	// The record is gone, but the unexpired token still passes the weak
	// fallback parser.
	fallback := services.NewWeakFallbackValidator("test_jwt_secret")
	assert.True(t, fallback.Validate(token))
	assert.True(t, auth.Validate(token))
}

func TestWeakFallbackValidator_RejectsExpiredAndMalformed(t *testing.T) {
	issuer := services.NewAuthService("admin", "secret123", "test_jwt_secret", -time.Hour)
	expired, err := issuer.Login("admin", "secret123")
	assert.NoError(t, err)

	fallback := services.NewWeakFallbackValidator("test_jwt_secret")
	assert.False(t, fallback.Validate(expired))
	assert.False(t, fallback.Validate("garbage"))
	assert.False(t, fallback.Validate(""))
}
