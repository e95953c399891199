// Package idx generates record identifiers. Ids are ULIDs: lexicographically
// sortable, derived from the generation-time timestamp, and safe to mint
// concurrently thanks to a shared monotonic entropy source.
package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ErrInvalid reports a malformed ULID string.
var ErrInvalid = errors.New("idx: invalid ulid")

var (
	mu      sync.Mutex
	once    sync.Once
	entropy *ulid.MonotonicEntropy
)

// New returns a fresh id for the current UTC time.
func New() string {
	return NewAt(time.Now().UTC())
}

// NewAt returns an id for the given time. Tests use it to build ids with a
// known ordering.
func NewAt(t time.Time) string {
	once.Do(func() { entropy = ulid.Monotonic(rand.Reader, 0) })

	mu.Lock()
	defer mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// Parse validates s and returns it in canonical form.
func Parse(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalid
	}
	u, err := ulid.ParseStrict(s)
	if err != nil {
		return "", ErrInvalid
	}
	return u.String(), nil
}

// Time extracts the embedded UTC timestamp, or the zero time for a malformed
// id.
func Time(s string) time.Time {
	u, err := ulid.ParseStrict(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(u.Time()).UTC()
}
