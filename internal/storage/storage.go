// Package storage implements the persistent key-value store backing every
// collection in the application. Each logical collection lives under one
// well-known key and is always rewritten as a whole JSON blob; there are no
// partial updates and no transactions spanning multiple keys.
package storage

import "context"

// Well-known keys. The names are carried over from the legacy browser store
// so an exported localStorage payload round-trips unchanged.
const (
	UsersKey    = "gas_users_v1"
	SessionKey  = "gas_session_v1"
	ReportsKey  = "reports_storage_v1"
	ShimLogsKey = "shims_storage_v1"
)

// KV is the store contract every manager is constructed over. Implementations
// must be durable across restarts (SQLiteKV) or explicitly ephemeral
// (MemoryKV, used by tests and the in-memory mode).
type KV interface {
	// Get returns the value stored under key, or (nil, nil) if absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set fully overwrites any prior value for key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Update runs an atomic read-modify-write cycle for one key: fn receives
	// the current value (nil if absent) and returns the replacement. If fn
	// returns an error nothing is written and the error is propagated.
	Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error
}
