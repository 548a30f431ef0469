package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractUID(t *testing.T) {
	token, err := GenerateToken("uid-1", "noura@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	uid, err := ExtractUIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", uid)
}

func TestExtractUIDRejectsExpiredToken(t *testing.T) {
	token, err := GenerateToken("uid-1", "noura@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractUIDFromToken(token)
	assert.Error(t, err)
}

func TestExtractUIDRejectsGarbage(t *testing.T) {
	_, err := ExtractUIDFromToken("not-a-token")
	assert.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	h1 := HashToken("abc")
	h2 := HashToken("abc")
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
	assert.NotEqual(t, h1, HashToken("abd"))
}
