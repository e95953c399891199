package service

import (
	"context"
	"testing"
	"time"

	"github.com/blakekali/blakeprintz/domain"
	"github.com/blakekali/blakeprintz/pkg/sessiontoken"
	"github.com/blakekali/blakeprintz/store/drivers/memory"
	"github.com/stretchr/testify/require"
)

func newSessionService(t *testing.T) *SessionService {
	t.Helper()
	return &SessionService{
		Store:  memory.NewStore(),
		Tokens: sessiontoken.NewMinter([]byte("test-secret"), "blakeprintz", time.Hour),
	}
}

func sampleSession() domain.Session {
	return domain.Session{
		ID:      "1",
		Email:   "blake@blakeprintz.com",
		Name:    "Blake Printz",
		StaffID: "10001",
		Role:    domain.RoleAdmin,
	}
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newSessionService(t)

	_, err := s.Current(ctx)
	require.ErrorIs(t, err, domain.ErrNotFound)

	want := sampleSession()
	require.NoError(t, s.Install(ctx, want))

	got, err := s.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)

	require.NoError(t, s.Clear(ctx))
	_, err = s.Current(ctx)
	require.ErrorIs(t, err, domain.ErrNotFound)

	// Clearing an already empty slot is fine.
	require.NoError(t, s.Clear(ctx))
}

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Parallel()

	s := newSessionService(t)
	want := sampleSession()

	token, err := s.Token(want)
	require.NoError(t, err)

	got, err := s.FromToken(token)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSessionFromTokenRejectsBadTokens(t *testing.T) {
	t.Parallel()

	s := newSessionService(t)

	_, err := s.FromToken("not-a-token")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// A token minted under a different secret fails verification.
	other := &SessionService{
		Store:  memory.NewStore(),
		Tokens: sessiontoken.NewMinter([]byte("other-secret"), "blakeprintz", time.Hour),
	}
	token, err := other.Token(sampleSession())
	require.NoError(t, err)

	_, err = s.FromToken(token)
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestCanManageStaff(t *testing.T) {
	t.Parallel()

	s := newSessionService(t)

	cases := map[domain.Role]bool{
		domain.RoleOwner:      true,
		domain.RoleAdmin:      true,
		domain.RoleSupervisor: false,
		domain.RoleStaff:      false,
	}
	for role, want := range cases {
		require.Equal(t, want, s.CanManageStaff(domain.Session{Role: role}), string(role))
	}
}
