// Package sessiontoken mints and verifies signed session tokens. A token is
// the password-stripped account serialized into HS256 JWT claims, letting a
// host pass the acting principal explicitly through store calls instead of
// relying on ambient global state.
package sessiontoken

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalid = errors.New("sessiontoken: invalid token")
	ErrExpired = errors.New("sessiontoken: token expired")
)

// DefaultTTL matches a working shift with slack; on-device sessions are
// long-lived by design.
const DefaultTTL = 24 * time.Hour

// Claims carry the session record. Subject is the account id.
type Claims struct {
	jwt.RegisteredClaims

	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
	StaffID string `json:"staff_id,omitempty"`
	Role    string `json:"role,omitempty"`
}

// Minter signs and verifies tokens with a single local HMAC secret.
type Minter struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewMinter(secret []byte, issuer string, ttl time.Duration) *Minter {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Minter{secret: secret, issuer: issuer, ttl: ttl}
}

// Mint signs a token for the given session fields.
func (m *Minter) Mint(accountID, email, name, staffID, role string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Email:   email,
		Name:    name,
		StaffID: staffID,
		Role:    role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses and validates a token and returns its claims.
func (m *Minter) Verify(token string) (Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpired
		}
		return Claims{}, ErrInvalid
	}
	if !parsed.Valid {
		return Claims{}, ErrInvalid
	}
	return claims, nil
}
