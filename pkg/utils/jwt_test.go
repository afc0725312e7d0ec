package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	accountID := uuid.New()

	token, err := CreateToken(accountID, "a@x.com", "TRAINER", false)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, accountID.String(), claims.Subject)
	require.Equal(t, "a@x.com", claims.Email)
	require.Equal(t, "TRAINER", claims.Role)
	require.False(t, claims.IsAdmin)
}

func TestTokenCarriesAdminFlag(t *testing.T) {
	token, err := CreateToken(uuid.New(), "root@x.com", "ADMIN", true)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	require.True(t, claims.IsAdmin)
}

func TestTokenUsesSecretSetAfterStartup(t *testing.T) {
	// The secret is typically loaded from .env after package init; signing
	// must pick up the value current at call time.
	t.Setenv("JWT_SECRET", "first-secret")

	token, err := CreateToken(uuid.New(), "a@x.com", "MEMBER", false)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	require.NoError(t, err)

	// A token signed under the old secret must not verify under a new one.
	t.Setenv("JWT_SECRET", "rotated-secret")
	_, err = ValidateToken(token)
	require.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	require.Error(t, err)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	token, err := CreateToken(uuid.New(), "a@x.com", "MEMBER", false)
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	require.Error(t, err)
}
