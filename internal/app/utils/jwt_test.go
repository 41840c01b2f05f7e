package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateJWT("alice", "key", 30*time.Minute)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "key")
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestParseRejectsWrongKey(t *testing.T) {
	token, err := GenerateJWT("alice", "key", 30*time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "other-key")
	require.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	token, err := GenerateJWT("alice", "key", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "key")
	require.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := ParseJWT("not-a-token", "key")
	require.Error(t, err)
}
