// internal/auth/session_test.go
package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	require.NoError(t, Init(time.Hour))

	playerID := uuid.New().String()
	token, err := CreateJWT(playerID)
	require.NoError(t, err)

	sub, err := AuthenticateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, playerID, sub)
}

func TestJWTRejectsTampering(t *testing.T) {
	require.NoError(t, Init(time.Hour))

	token, err := CreateJWT(uuid.New().String())
	require.NoError(t, err)

	_, err = AuthenticateJWT(token + "x")
	assert.Error(t, err)

	_, err = AuthenticateJWT("not.a.jwt")
	assert.Error(t, err)
}

func TestJWTExpires(t *testing.T) {
	require.NoError(t, Init(time.Nanosecond))

	token, err := CreateJWT(uuid.New().String())
	require.NoError(t, err)

	// exp has second granularity; wait past the boundary.
	time.Sleep(1500 * time.Millisecond)
	_, err = AuthenticateJWT(token)
	assert.Error(t, err, "expired token must not authenticate")
}

func TestJWTNoExpiry(t *testing.T) {
	require.NoError(t, Init(0))

	token, err := CreateJWT(uuid.New().String())
	require.NoError(t, err)

	_, err = AuthenticateJWT(token)
	assert.NoError(t, err)
}
