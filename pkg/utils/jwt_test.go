package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer("unit-test-secret-1234", time.Hour)
	require.NoError(t, err)

	id := uuid.New()
	token, err := issuer.CreateToken(id)
	require.NoError(t, err)

	got, err := issuer.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestTokenIssuer_RejectsInvalidTokens(t *testing.T) {
	issuer, err := NewTokenIssuer("unit-test-secret-1234", time.Hour)
	require.NoError(t, err)
	other, err := NewTokenIssuer("some-other-secret-1234", time.Hour)
	require.NoError(t, err)

	foreign, err := other.CreateToken(uuid.New())
	require.NoError(t, err)

	expiredIssuer, err := NewTokenIssuer("unit-test-secret-1234", time.Hour)
	require.NoError(t, err)
	expiredIssuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredIssuer.CreateToken(uuid.New())
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("unit-test-secret-1234"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: uuid.NewString(),
	}).SignedString([]byte("unit-test-secret-1234"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "abc.def.ghi"},
		{"foreign secret", foreign},
		{"expired", expired},
		{"alg none", unsigned},
		{"bad subject", badSubject},
		{"no expiry", noExpiry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := issuer.ValidateToken(tt.token)
			assert.ErrorIs(t, err, ErrUnauthorized)
		})
	}
}

func TestNewTokenIssuer_Validation(t *testing.T) {
	_, err := NewTokenIssuer("", time.Hour)
	assert.Error(t, err)
	_, err = NewTokenIssuer("secret", 0)
	assert.Error(t, err)
}
