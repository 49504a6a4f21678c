package ports

import (
	"context"
	"errors"
)

// ErrKeyNotFound reports an absent key. Adapters return it (possibly
// wrapped) for missing entries so callers can fail open to defaults.
var ErrKeyNotFound = errors.New("state key not found")

// StateStore is the key-value persistence collaborator. Values are whole
// serialized documents; a key is read once at startup and rewritten on every
// mutation.
type StateStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
