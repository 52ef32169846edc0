package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkroell/splitpot/internal/auth"
)

func TestHashAndVerifyPIN(t *testing.T) {
	hash, err := auth.HashPIN("1234")
	require.NoError(t, err)
	require.NotEqual(t, "1234", hash)

	assert.NoError(t, auth.VerifyPIN(hash, "1234"))
	assert.ErrorIs(t, auth.VerifyPIN(hash, "4321"), auth.ErrPINMismatch)
}

func TestHashPINTooLong(t *testing.T) {
	_, err := auth.HashPIN(strings.Repeat("9", 100))
	assert.ErrorIs(t, err, auth.ErrPINTooLong)
}
