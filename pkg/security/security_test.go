package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestAuthTokenRoundtrip(t *testing.T) {
	claims := NewTokenClaims("u1", "dev@example.com", time.Now().Add(time.Hour).Unix())

	token, err := GenAuthToken(claims, testSecret)
	require.NoError(t, err)

	parsed, err := ParseAuthToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "u1", parsed.User)
	assert.Equal(t, "dev@example.com", parsed.Email)
}

func TestParseAuthTokenWrongSecret(t *testing.T) {
	claims := NewTokenClaims("u1", "dev@example.com", time.Now().Add(time.Hour).Unix())

	token, err := GenAuthToken(claims, testSecret)
	require.NoError(t, err)

	_, err = ParseAuthToken(token, "another-secret")
	assert.Error(t, err)
}

func TestParseAuthTokenExpired(t *testing.T) {
	claims := NewTokenClaims("u1", "dev@example.com", time.Now().Add(-time.Hour).Unix())

	token, err := GenAuthToken(claims, testSecret)
	require.NoError(t, err)

	_, err = ParseAuthToken(token, testSecret)
	assert.Error(t, err)
}

func TestTokenClaimsValid(t *testing.T) {
	assert.Error(t, TokenClaims{}.Valid(), "empty user is invalid")

	ok := NewTokenClaims("u1", "dev@example.com", time.Now().Add(time.Hour).Unix())
	assert.NoError(t, ok.Valid())

	notYet := NewTokenClaims("u1", "dev@example.com", time.Now().Add(time.Hour).Unix())
	notYet.NotBefore = time.Now().Add(time.Hour).Unix()
	assert.Error(t, notYet.Valid())
}
