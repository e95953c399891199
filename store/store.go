// Package store defines the on-device persistence contract: an asynchronous
// string-keyed store of JSON blobs. Collections (`users`, `stock`) and the
// session slot (`user`) are whole values under fixed keys; every mutation
// rewrites the full blob. Concrete drivers live under drivers/.
package store

import (
	"context"
	"errors"
)

// ErrNotFound reports an absent key. Absence is a normal state (first run,
// signed-out session); callers decide whether it means "seed now" or "empty".
var ErrNotFound = errors.New("store: not found")

type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}
