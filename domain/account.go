package domain

// Account is a staff account record as persisted in the `users` collection.
// The stored form still carries the credential; anything handed to a caller
// outside sign-in verification must be Redacted first.
//
// Records are never edited in place: they are created by self-registration or
// administrator onboarding and removed by termination.
type Account struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	StaffID  string `json:"staffId"`
	Role     Role   `json:"role"`
}

// Redacted returns a copy with the credential cleared.
func (a Account) Redacted() Account {
	a.Password = ""
	return a
}

// Session is the currently authenticated account minus the credential. It is
// what sign-in and sign-up resolve to, what the persistent `user` slot holds,
// and what callers thread through privileged operations as the acting
// principal. The type has no password field at all, so a serialized session
// can never leak one.
type Session struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	StaffID string `json:"staffId"`
	Role    Role   `json:"role"`
}

// SessionOf derives the session record for an account.
func SessionOf(a Account) Session {
	return Session{
		ID:      a.ID,
		Email:   a.Email,
		Name:    a.Name,
		StaffID: a.StaffID,
		Role:    a.Role,
	}
}
