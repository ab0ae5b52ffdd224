package identity_test

import (
	"context"
	"testing"
	"time"

	"tcgurt/internal/identity"
	apperrors "tcgurt/pkg/app_errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSigningKey = []byte("verifier-test-secret")

func hmacKeyfunc(*jwt.Token) (interface{}, error) {
	return testSigningKey, nil
}

func signToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSigningKey)
	require.NoError(t, err)
	return token
}

func TestJWTVerifier_Verify(t *testing.T) {
	ctx := context.Background()
	verifier := identity.NewJWTVerifier(hmacKeyfunc, "https://clerk.tcgurt.test", "HS256")

	validClaims := func() jwt.RegisteredClaims {
		return jwt.RegisteredClaims{
			Subject:   "user_2abc",
			Issuer:    "https://clerk.tcgurt.test",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}
	}

	t.Run("Success", func(t *testing.T) {
		userID, err := verifier.Verify(ctx, signToken(t, validClaims()))

		require.NoError(t, err)
		assert.Equal(t, "user_2abc", userID)
	})

	t.Run("Failed - expired", func(t *testing.T) {
		claims := validClaims()
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

		_, err := verifier.Verify(ctx, signToken(t, claims))

		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	})

	t.Run("Failed - missing expiry", func(t *testing.T) {
		claims := validClaims()
		claims.ExpiresAt = nil

		_, err := verifier.Verify(ctx, signToken(t, claims))

		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	})

	t.Run("Failed - wrong issuer", func(t *testing.T) {
		claims := validClaims()
		claims.Issuer = "https://evil.example"

		_, err := verifier.Verify(ctx, signToken(t, claims))

		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	})

	t.Run("Failed - missing subject", func(t *testing.T) {
		claims := validClaims()
		claims.Subject = ""

		_, err := verifier.Verify(ctx, signToken(t, claims))

		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	})

	t.Run("Failed - signing method not allowed", func(t *testing.T) {
		strict := identity.NewJWTVerifier(hmacKeyfunc, "", "RS256")

		_, err := strict.Verify(ctx, signToken(t, validClaims()))

		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	})

	t.Run("Failed - garbage token", func(t *testing.T) {
		_, err := verifier.Verify(ctx, "not.a.jwt")

		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	})

	t.Run("Failed - empty token", func(t *testing.T) {
		_, err := verifier.Verify(ctx, "  ")

		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	})
}
