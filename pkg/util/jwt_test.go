package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestGenerateTokenPair(t *testing.T) {
	pair, err := GenerateTokenPair(1, "customer@example.com", "user", testSecret, 15*time.Minute, 7*24*time.Hour)

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
}

func TestValidateToken(t *testing.T) {
	pair, err := GenerateTokenPair(42, "admin@example.com", "admin", testSecret, 15*time.Minute, 7*24*time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		secret  string
		wantErr error
	}{
		{
			name:   "Valid access token",
			token:  pair.AccessToken,
			secret: testSecret,
		},
		{
			name:    "Wrong secret",
			token:   pair.AccessToken,
			secret:  "wrong-secret",
			wantErr: ErrInvalidToken,
		},
		{
			name:    "Garbage token",
			token:   "not-a-jwt",
			secret:  testSecret,
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.token, tt.secret)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
			} else {
				require.NoError(t, err)
				assert.Equal(t, uint(42), claims.UserID)
				assert.Equal(t, "admin@example.com", claims.Email)
				assert.Equal(t, "admin", claims.Role)
				assert.Equal(t, "access", claims.TokenType)
			}
		})
	}
}

func TestValidateToken_Expired(t *testing.T) {
	pair, err := GenerateTokenPair(1, "customer@example.com", "user", testSecret, -time.Minute, 7*24*time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(pair.AccessToken, testSecret)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.Nil(t, claims)
}

func TestValidateToken_RefreshTokenType(t *testing.T) {
	pair, err := GenerateTokenPair(7, "customer@example.com", "user", testSecret, 15*time.Minute, 7*24*time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(pair.RefreshToken, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims.TokenType)
}
