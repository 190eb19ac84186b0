package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	ts := NewTokenService("test-secret-key", 24*time.Hour)

	token, err := ts.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ts.Verify(token)
	require.NoError(t, err)
	require.Equal(t, uint64(42), userID)
}

func TestTokenService_Expired(t *testing.T) {
	ts := NewTokenService("test-secret-key", 24*time.Hour)

	// Issue a token whose lifetime has already elapsed
	ts.timeFunc = func() time.Time { return time.Now().Add(-25 * time.Hour) }
	token, err := ts.Issue(42)
	require.NoError(t, err)

	ts.timeFunc = time.Now
	_, err = ts.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_WrongKey(t *testing.T) {
	issuer := NewTokenService("test-secret-key", 24*time.Hour)
	verifier := NewTokenService("another-secret-key", 24*time.Hour)

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Malformed(t *testing.T) {
	ts := NewTokenService("test-secret-key", 24*time.Hour)

	for _, input := range []string{"", "garbage", "a.b.c"} {
		_, err := ts.Verify(input)
		require.ErrorIs(t, err, ErrInvalidToken)
	}
}
