package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateTokenPair(t *testing.T) {
	manager := NewJWTManager("test-secret", 1, 30)

	pair, err := manager.GenerateTokenPair("u1", "customer", "u1@example.com")
	require.NoError(t, err)

	claims, err := manager.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "u1", claims.UserID)
	require.Equal(t, "customer", claims.Role)
	require.Equal(t, AccessToken, claims.TokenType)

	refreshClaims, err := manager.ValidateToken(pair.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, RefreshToken, refreshClaims.TokenType)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", 1, 30).GenerateToken("u1", "customer", "u1@example.com")
	require.NoError(t, err)

	_, err = NewJWTManager("secret-b", 1, 30).ValidateToken(token)
	require.Error(t, err)
}

func TestRefreshAccessTokenRequiresRefreshType(t *testing.T) {
	manager := NewJWTManager("test-secret", 1, 30)
	pair, err := manager.GenerateTokenPair("u1", "admin", "u1@example.com")
	require.NoError(t, err)

	_, err = manager.RefreshAccessToken(pair.AccessToken)
	require.Error(t, err)

	access, err := manager.RefreshAccessToken(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := manager.ValidateToken(access)
	require.NoError(t, err)
	require.Equal(t, "admin", claims.Role)
	require.Equal(t, AccessToken, claims.TokenType)
}
