// ABOUTME: Key-value medium contract shared by every storage backend.
// ABOUTME: Values are opaque byte blobs addressed by fixed string keys.
package kv

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when the key has never been set.
var ErrNotFound = errors.New("key not found")

// ErrReadOnly is returned by writes against a medium opened read-only.
var ErrReadOnly = errors.New("cannot write: store is locked by another process")

// Store is a local key-value persistence medium.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes all given keys. Missing keys are not an error. Backends
	// that can do so remove the batch in one transaction.
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
	BackendCharm  = "charm"
)

// Options configures Open.
type Options struct {
	// Dir is the data directory for file-backed backends.
	Dir string
	// CharmHost overrides the Charm server for the charm backend.
	CharmHost string
	// CharmName is the Charm KV database name.
	CharmName string
}

// Open creates the named backend.
func Open(backend string, opts Options) (Store, error) {
	switch backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendBadger:
		return OpenBadger(opts.Dir)
	case BackendSQLite:
		return OpenSQLite(SQLitePath(opts.Dir))
	case BackendCharm:
		return OpenCharm(opts.CharmName, opts.CharmHost)
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}
