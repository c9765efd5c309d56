package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("abc123", "secret", time.Hour)
	require.NoError(t, err)

	sessionID, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "abc123", sessionID)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("abc123", "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	token, err := GenerateToken("abc123", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, "secret")
	assert.Error(t, err)
}
