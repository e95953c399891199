package credential

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaintext(t *testing.T) {
	t.Parallel()

	var v Plaintext

	stored, err := v.Hash("password123")
	require.NoError(t, err)
	require.Equal(t, "password123", stored)

	require.NoError(t, v.Verify("password123", stored))
	require.ErrorIs(t, v.Verify("Password123", stored), ErrMismatch)
	require.ErrorIs(t, v.Verify("", stored), ErrMismatch)
}

func TestArgon2(t *testing.T) {
	t.Parallel()

	v := NewArgon2()

	stored, err := v.Hash("hunter2hunter2")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stored, "$argon2id$v=19$"))
	require.NotContains(t, stored, "hunter2")

	t.Run("round trip", func(t *testing.T) {
		require.NoError(t, v.Verify("hunter2hunter2", stored))
		require.ErrorIs(t, v.Verify("hunter2", stored), ErrMismatch)
	})

	t.Run("salted", func(t *testing.T) {
		again, err := v.Hash("hunter2hunter2")
		require.NoError(t, err)
		require.NotEqual(t, stored, again)
		require.NoError(t, v.Verify("hunter2hunter2", again))
	})

	t.Run("malformed stored value", func(t *testing.T) {
		require.ErrorIs(t, v.Verify("x", "not-a-phc-string"), ErrMismatch)
		require.ErrorIs(t, v.Verify("x", "$argon2id$v=19$m=a,t=b,p=c$!$!"), ErrMismatch)
	})
}
