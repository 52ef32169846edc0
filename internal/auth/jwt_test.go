package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkroell/splitpot/internal/auth"
)

func TestIssueAndVerify(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret")

	signed, err := tokens.Issue(42, 7, true)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.ParticipantID)
	assert.Equal(t, int64(7), claims.EventID)
	assert.True(t, claims.IsAdmin)
}

func TestVerifyWrongSecret(t *testing.T) {
	signed, err := auth.NewTokenManager("secret-a").Issue(1, 1, false)
	require.NoError(t, err)

	_, err = auth.NewTokenManager("secret-b").Verify(signed)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret")

	for _, tokenString := range []string{"", "not-a-token", "a.b.c"} {
		_, err := tokens.Verify(tokenString)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	}
}
