package sessiontoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMintVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	m := NewMinter([]byte("test-secret"), "blakeprintz", time.Hour)

	tok, err := m.Mint("01ARZ3NDEKTSV4RRFFQ69G5FAV", "blake@blakeprintz.com", "Blake Printz", "10001", "Admin")
	require.NoError(t, err)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", claims.Subject)
	require.Equal(t, "blake@blakeprintz.com", claims.Email)
	require.Equal(t, "Blake Printz", claims.Name)
	require.Equal(t, "10001", claims.StaffID)
	require.Equal(t, "Admin", claims.Role)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	m := NewMinter([]byte("secret-a"), "blakeprintz", time.Hour)
	other := NewMinter([]byte("secret-b"), "blakeprintz", time.Hour)

	tok, err := m.Mint("id", "e@x.com", "E", "9999", "Staff")
	require.NoError(t, err)

	_, err = other.Verify(tok)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	m := NewMinter([]byte("secret"), "someone-else", time.Hour)
	tok, err := m.Mint("id", "e@x.com", "E", "9999", "Staff")
	require.NoError(t, err)

	v := NewMinter([]byte("secret"), "blakeprintz", time.Hour)
	_, err = v.Verify(tok)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	m := NewMinter([]byte("secret"), "blakeprintz", -time.Minute)
	// NewMinter clamps non-positive TTLs to the default, so build one directly.
	m.ttl = -time.Minute

	tok, err := m.Mint("id", "e@x.com", "E", "9999", "Staff")
	require.NoError(t, err)

	_, err = m.Verify(tok)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	m := NewMinter([]byte("secret"), "blakeprintz", time.Hour)
	_, err := m.Verify("not.a.token")
	require.ErrorIs(t, err, ErrInvalid)
}
