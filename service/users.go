package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/blakekali/blakeprintz/domain"
	"github.com/blakekali/blakeprintz/pkg/credential"
	"github.com/blakekali/blakeprintz/pkg/idx"
	"github.com/blakekali/blakeprintz/pkg/slogx"
	"github.com/blakekali/blakeprintz/store"
)

const (
	minPasswordLen = 6
	minStaffIDLen  = 4
)

// UserService owns the authoritative account list (`users`) and the session
// slot (`user`). Every mutation is a whole-collection read-modify-write
// serialized by mu, so two rapid-fire operations cannot clobber each other's
// writes.
//
// Authorization for privileged operations is checked here, against the
// acting principal the caller passes in, not in whatever UI sits on top.
type UserService struct {
	Store    store.Store
	Verifier credential.Verifier

	// Throttle optionally rate-limits sign-in attempts per email. Nil
	// disables throttling, which is the legacy-compatible default.
	Throttle *SignInThrottle

	mu sync.Mutex
}

// SignUpInput is a self-registration submission. Role is not accepted here;
// self-registration always produces Staff.
type SignUpInput struct {
	Email    string
	Password string
	Name     string
	StaffID  string
}

// OnboardInput is an administrator's onboarding submission.
type OnboardInput struct {
	Email    string
	Password string
	Name     string
	StaffID  string
	Role     domain.Role
}

// Initialize seeds the account list on first run, guarded by the
// `users_initialized` sentinel so later launches skip it. Idempotent.
func (s *UserService) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := slogx.FromContext(ctx)

	flag, err := s.Store.Get(ctx, keyUsersInitialized)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return persistErr("read", keyUsersInitialized, err)
	}
	if flag == "true" {
		return nil
	}

	accounts := seedAccounts()
	for i := range accounts {
		stored, err := s.Verifier.Hash(accounts[i].Password)
		if err != nil {
			return fmt.Errorf("hash seed credential: %w", err)
		}
		accounts[i].Password = stored
	}

	if err := storeJSON(ctx, s.Store, keyUsers, accounts); err != nil {
		return err
	}
	if err := s.Store.Set(ctx, keyUsersInitialized, "true"); err != nil {
		return persistErr("write", keyUsersInitialized, err)
	}

	l.Info("seed accounts initialized", slog.Int("count", len(accounts)))
	return nil
}

// SignIn authenticates a staff member. A credential mismatch and an unknown
// email fail with the same error, so callers cannot tell which field was
// wrong. On success, the password-stripped session is installed in the
// persistent session slot and returned.
func (s *UserService) SignIn(ctx context.Context, email, password string) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := slogx.FromContext(ctx)
	email = normalizeEmail(email)

	if s.Throttle != nil && !s.Throttle.Allow(email) {
		l.Warn("sign-in throttled", slog.String("email", email))
		return domain.Session{}, domain.ErrTooManyAttempts
	}

	accounts, _, err := loadJSON[[]domain.Account](ctx, s.Store, keyUsers)
	if err != nil {
		return domain.Session{}, err
	}

	for _, a := range accounts {
		if normalizeEmail(a.Email) != email {
			continue
		}
		if s.Verifier.Verify(password, a.Password) != nil {
			break // one account per email; a mismatch is final
		}

		session := domain.SessionOf(a)
		if err := storeJSON(ctx, s.Store, keySession, session); err != nil {
			return domain.Session{}, err
		}
		l.Info("user signed in", slog.String("email", a.Email))
		return session, nil
	}

	l.Info("sign-in rejected", slog.String("email", email))
	return domain.Session{}, domain.ErrInvalidCredentials
}

// SignUp self-registers a new Staff account and signs it in.
func (s *UserService) SignUp(ctx context.Context, in SignUpInput) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := slogx.FromContext(ctx)

	account, err := s.createAccount(ctx, in.Email, in.Password, in.Name, in.StaffID, domain.RoleStaff)
	if err != nil {
		return domain.Session{}, err
	}

	session := domain.SessionOf(account)
	if err := storeJSON(ctx, s.Store, keySession, session); err != nil {
		return domain.Session{}, err
	}

	l.Info("user signed up", slog.String("email", account.Email))
	return session, nil
}

// Onboard creates an account on behalf of someone else. Only a privileged
// actor may call it, the assignable roles exclude Owner, and the actor's own
// session is left untouched.
func (s *UserService) Onboard(ctx context.Context, actor domain.Session, in OnboardInput) (domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := slogx.FromContext(ctx)

	if !actor.Role.Privileged() {
		l.Warn("onboard refused", slog.String("actor_id", actor.ID), slog.String("actor_role", string(actor.Role)))
		return domain.Account{}, domain.ErrForbidden
	}
	if !in.Role.Onboardable() {
		return domain.Account{}, fmt.Errorf("%w: role %q is not assignable", domain.ErrValidation, in.Role)
	}

	account, err := s.createAccount(ctx, in.Email, in.Password, in.Name, in.StaffID, in.Role)
	if err != nil {
		return domain.Account{}, err
	}

	l.Info("user onboarded",
		slog.String("email", account.Email),
		slog.String("role", string(account.Role)),
		slog.String("onboarded_by", actor.ID),
	)
	return account.Redacted(), nil
}

// Terminate removes an account. Only a privileged actor may call it. The
// removal itself does not special-case the actor's own id; keeping the
// actor's account out of the termination screen is the view-model's job
// (TerminationCandidates).
func (s *UserService) Terminate(ctx context.Context, actor domain.Session, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := slogx.FromContext(ctx)

	if !actor.Role.Privileged() {
		l.Warn("terminate refused", slog.String("actor_id", actor.ID), slog.String("actor_role", string(actor.Role)))
		return domain.ErrForbidden
	}

	accounts, _, err := loadJSON[[]domain.Account](ctx, s.Store, keyUsers)
	if err != nil {
		return err
	}

	remaining := accounts[:0:0]
	for _, a := range accounts {
		if a.ID != accountID {
			remaining = append(remaining, a)
		}
	}
	if len(remaining) == len(accounts) {
		return fmt.Errorf("account %q: %w", accountID, domain.ErrNotFound)
	}

	if err := storeJSON(ctx, s.Store, keyUsers, remaining); err != nil {
		return err
	}

	l.Info("account terminated", slog.String("account_id", accountID), slog.String("terminated_by", actor.ID))
	return nil
}

// SignOut clears the persisted session slot.
func (s *UserService) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Store.Delete(ctx, keySession); err != nil {
		return persistErr("delete", keySession, err)
	}
	slogx.FromContext(ctx).Info("user signed out")
	return nil
}

// ListAccounts returns all accounts, password-stripped, optionally filtered
// by a case-insensitive substring match on name, email, staff id, or role.
func (s *UserService) ListAccounts(ctx context.Context, query string) ([]domain.Account, error) {
	accounts, _, err := loadJSON[[]domain.Account](ctx, s.Store, keyUsers)
	if err != nil {
		return nil, err
	}

	redacted := make([]domain.Account, 0, len(accounts))
	for _, a := range accounts {
		redacted = append(redacted, a.Redacted())
	}
	return FilterAccounts(redacted, query), nil
}

// createAccount validates, checks uniqueness, appends, and persists. Callers
// hold mu.
func (s *UserService) createAccount(ctx context.Context, email, password, name, staffID string, role domain.Role) (domain.Account, error) {
	email = normalizeEmail(email)
	name = strings.TrimSpace(name)
	staffID = strings.TrimSpace(staffID)

	switch {
	case email == "" || password == "" || name == "" || staffID == "":
		return domain.Account{}, fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	case !strings.Contains(email, "@"):
		return domain.Account{}, fmt.Errorf("%w: email address is malformed", domain.ErrValidation)
	case len(password) < minPasswordLen:
		return domain.Account{}, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	case len(staffID) < minStaffIDLen:
		return domain.Account{}, fmt.Errorf("%w: staff id must be at least %d characters", domain.ErrValidation, minStaffIDLen)
	}

	accounts, _, err := loadJSON[[]domain.Account](ctx, s.Store, keyUsers)
	if err != nil {
		return domain.Account{}, err
	}

	for _, a := range accounts {
		if normalizeEmail(a.Email) == email {
			return domain.Account{}, domain.ErrEmailTaken
		}
		if a.StaffID == staffID {
			return domain.Account{}, domain.ErrStaffIDTaken
		}
	}

	stored, err := s.Verifier.Hash(password)
	if err != nil {
		return domain.Account{}, fmt.Errorf("hash credential: %w", err)
	}

	account := domain.Account{
		ID:       idx.New(),
		Email:    email,
		Password: stored,
		Name:     name,
		StaffID:  staffID,
		Role:     role,
	}

	accounts = append(accounts, account)
	if err := storeJSON(ctx, s.Store, keyUsers, accounts); err != nil {
		return domain.Account{}, err
	}
	return account, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
