package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateTokenPair(t *testing.T) {
	userID := uuid.New()

	pair, err := GenerateTokenPair(userID, "staff@gym.test", true)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Greater(t, pair.ExpiresIn, int64(0))

	claims, err := ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "staff@gym.test", claims.Email)
	assert.True(t, claims.IsAdmin)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)

	_, err = ValidateToken("")
	assert.Error(t, err)
}

func TestGenerateReceiptNumber(t *testing.T) {
	first := GenerateReceiptNumber()
	second := GenerateReceiptNumber()

	assert.Contains(t, first, "RCP_")
	assert.NotEqual(t, first, second)
}
