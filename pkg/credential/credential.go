// Package credential verifies a presented credential against a stored one.
//
// Two schemes exist. Plaintext reproduces the app's historical on-device
// behavior: the stored value is the password itself and verification is an
// exact match. Argon2 stores a salted argon2id digest in PHC form. Devices
// with pre-existing plaintext data must keep using Plaintext; switching
// schemes invalidates every stored credential.
package credential

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrMismatch reports a failed verification. Callers translate it into their
// own error taxonomy; the distinction between "wrong password" and "malformed
// stored hash" is deliberately not exposed.
var ErrMismatch = errors.New("credential: mismatch")

// Verifier turns a plaintext password into its stored form and checks a
// presented password against a stored one.
type Verifier interface {
	Hash(plain string) (string, error)
	Verify(plain, stored string) error
}

// Plaintext stores passwords as-is and verifies by constant-time equality.
type Plaintext struct{}

func (Plaintext) Hash(plain string) (string, error) { return plain, nil }

func (Plaintext) Verify(plain, stored string) error {
	if subtle.ConstantTimeCompare([]byte(plain), []byte(stored)) == 1 {
		return nil
	}
	return ErrMismatch
}

// Argon2 stores PHC-encoded argon2id digests.
type Argon2 struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// NewArgon2 returns a verifier with interactive-login parameters.
func NewArgon2() Argon2 {
	return Argon2{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

func (a Argon2) Hash(plain string) (string, error) {
	salt := make([]byte, a.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key := argon2.IDKey([]byte(plain), salt, a.Iterations, a.Memory, a.Parallelism, a.KeyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		a.Memory, a.Iterations, a.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (a Argon2) Verify(plain, stored string) error {
	// $argon2id$v=19$m=..,t=..,p=..$salt$key
	parts := strings.Split(stored, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return ErrMismatch
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return ErrMismatch
	}

	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return ErrMismatch
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return ErrMismatch
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return ErrMismatch
	}

	got := argon2.IDKey([]byte(plain), salt, iters, mem, par, uint32(len(want)))
	if subtle.ConstantTimeCompare(got, want) == 1 {
		return nil
	}
	return ErrMismatch
}
