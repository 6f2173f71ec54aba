package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)
}

func TestValidateJWT_Garbage(t *testing.T) {
	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)
}
