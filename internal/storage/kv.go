package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has never been written
// or has been deleted.
var ErrKeyNotFound = errors.New("key not found")

// Known keys. Values are JSON-encoded.
const (
	KeyCart  = "cart"
	KeyUser  = "user"
	KeyToken = "token"
)

// KV is durable string-keyed storage, the application's equivalent of the
// browser's local storage: whole values written and read atomically,
// surviving restarts.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
