// ABOUTME: Charm KV backend for users who already run a Charm account.
// ABOUTME: Opens read-only when another process holds the lock; writes stay local.
package kv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	charmkv "github.com/charmbracelet/charm/kv"
	"github.com/dgraph-io/badger/v3"
)

// DefaultCharmName is the Charm KV database name.
const DefaultCharmName = "velamind"

// Charm wraps a Charm KV database.
type Charm struct {
	kv *charmkv.KV
	mu sync.RWMutex
}

var _ Store = (*Charm)(nil)

// OpenCharm opens the named Charm KV database. When host is non-empty it
// overrides CHARM_HOST before the database is opened.
func OpenCharm(name, host string) (*Charm, error) {
	if name == "" {
		name = DefaultCharmName
	}
	if host != "" {
		if err := os.Setenv("CHARM_HOST", host); err != nil {
			return nil, fmt.Errorf("set charm host: %w", err)
		}
	}
	db, err := charmkv.OpenWithDefaultsFallback(name)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}
	return &Charm{kv: db}, nil
}

// IsReadOnly reports whether another process holds the database lock.
func (c *Charm) IsReadOnly() bool {
	return c.kv.IsReadOnly()
}

// Get returns the value at key.
func (c *Charm) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, err := c.kv.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return v, nil
}

// Set stores value at key.
func (c *Charm) Set(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv.IsReadOnly() {
		return ErrReadOnly
	}
	if err := c.kv.Set([]byte(key), value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Delete removes keys one at a time; Charm KV has no batch delete.
func (c *Charm) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv.IsReadOnly() {
		return ErrReadOnly
	}
	for _, k := range keys {
		err := c.kv.Delete([]byte(k))
		if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete %s: %w", k, err)
		}
	}
	return nil
}

// Close closes the database.
func (c *Charm) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv != nil {
		return c.kv.Close()
	}
	return nil
}
