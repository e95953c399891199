package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blakekali/blakeprintz/domain"
	"github.com/blakekali/blakeprintz/store"
)

// Fixed persistent-store keys. Each collection is a single JSON blob; every
// mutation rewrites the whole value.
const (
	keyUsersInitialized = "users_initialized"
	keyUsers            = "users"
	keySession          = "user"
	keyStock            = "stock"
)

// loadJSON reads and decodes the blob under key. found is false when the key
// is absent, which is a normal state, not an error.
func loadJSON[T any](ctx context.Context, st store.Store, key string) (v T, found bool, err error) {
	raw, err := st.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return v, false, nil
	}
	if err != nil {
		return v, false, persistErr("read", key, err)
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return v, false, persistErr("decode", key, err)
	}
	return v, true, nil
}

func storeJSON[T any](ctx context.Context, st store.Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return persistErr("encode", key, err)
	}
	if err := st.Set(ctx, key, string(raw)); err != nil {
		return persistErr("write", key, err)
	}
	return nil
}

func persistErr(op, key string, cause error) error {
	return fmt.Errorf("%s %q: %w: %v", op, key, domain.ErrPersistence, cause)
}
