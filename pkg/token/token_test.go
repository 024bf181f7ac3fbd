package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	t.Parallel()

	tokenString, err := GenerateJWT(7, "user", "test-secret", 15)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := ValidateJWT(tokenString, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "user", claims.Role)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	t.Parallel()

	tokenString, err := GenerateJWT(7, "user", "test-secret", 15)
	require.NoError(t, err)

	_, err = ValidateJWT(tokenString, "other-secret")
	assert.Error(t, err)
}

func TestValidateJWT_Expired(t *testing.T) {
	t.Parallel()

	tokenString, err := GenerateJWT(7, "user", "test-secret", -1)
	require.NoError(t, err)

	_, err = ValidateJWT(tokenString, "test-secret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestValidateJWT_EmptyInputs(t *testing.T) {
	t.Parallel()

	_, err := ValidateJWT("", "secret")
	assert.Error(t, err)

	_, err = ValidateJWT("not-a-token", "")
	assert.Error(t, err)
}
