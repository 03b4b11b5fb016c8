package storage

import "errors"

// ErrNotFound is returned when a slot has never been written.
var ErrNotFound = errors.New("key not found")

// KV is the local key-value store the storefront persists into. Five
// independent slots live behind it; there is no cross-key transaction
// guarantee, callers order their writes accordingly.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
