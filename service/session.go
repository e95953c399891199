package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/blakekali/blakeprintz/domain"
	"github.com/blakekali/blakeprintz/pkg/sessiontoken"
	"github.com/blakekali/blakeprintz/store"
)

// SessionService exposes the current session to the rest of the application
// and gates role-based visibility. At most one session exists at a time
// (single-user device); it lives in the persistent `user` slot, never in
// ambient package state, and can be carried as a signed token so callers
// pass the acting principal explicitly.
type SessionService struct {
	Store  store.Store
	Tokens *sessiontoken.Minter
}

// Current returns the persisted session, or domain.ErrNotFound when nobody
// is signed in.
func (s *SessionService) Current(ctx context.Context) (domain.Session, error) {
	session, found, err := loadJSON[domain.Session](ctx, s.Store, keySession)
	if err != nil {
		return domain.Session{}, err
	}
	if !found {
		return domain.Session{}, fmt.Errorf("no active session: %w", domain.ErrNotFound)
	}
	return session, nil
}

// Install persists the session record.
func (s *SessionService) Install(ctx context.Context, session domain.Session) error {
	return storeJSON(ctx, s.Store, keySession, session)
}

// Clear removes the persisted session record.
func (s *SessionService) Clear(ctx context.Context) error {
	if err := s.Store.Delete(ctx, keySession); err != nil {
		return persistErr("delete", keySession, err)
	}
	return nil
}

// Token mints a signed token for the session.
func (s *SessionService) Token(session domain.Session) (string, error) {
	return s.Tokens.Mint(session.ID, session.Email, session.Name, session.StaffID, string(session.Role))
}

// FromToken verifies a token and reconstructs the session it carries.
func (s *SessionService) FromToken(token string) (domain.Session, error) {
	claims, err := s.Tokens.Verify(token)
	if err != nil {
		if errors.Is(err, sessiontoken.ErrExpired) {
			return domain.Session{}, fmt.Errorf("session expired: %w", domain.ErrInvalidCredentials)
		}
		return domain.Session{}, fmt.Errorf("bad session token: %w", domain.ErrInvalidCredentials)
	}

	role := domain.Role(claims.Role)
	if !role.Valid() {
		return domain.Session{}, fmt.Errorf("bad session token: %w", domain.ErrInvalidCredentials)
	}

	return domain.Session{
		ID:      claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		StaffID: claims.StaffID,
		Role:    role,
	}, nil
}

// CanManageStaff reports whether the session's role opens the admin menu
// (onboarding, termination, account listing). Re-derived from the role
// string on every call.
func (s *SessionService) CanManageStaff(session domain.Session) bool {
	return session.Role.Privileged()
}
