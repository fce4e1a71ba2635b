// Package kvstore is the durable key-value store the planner persists its
// documents into. Values are opaque blobs, always written whole.
package kvstore

import (
	"context"
	"errors"
	"fmt"
)

// Driver names accepted by Open.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

var ErrClosed = errors.New("kvstore: store is closed")

// Store reads and writes whole values by key.
type Store interface {
	// Get returns the value for key; ok is false when the key was never set.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Config selects and configures a backend.
type Config struct {
	Driver string
	Path   string
}

// Open returns the backend named by cfg.Driver.
func Open(cfg Config) (Store, error) {
	switch cfg.Driver {
	case "", DriverMemory:
		return NewMemory(), nil
	case DriverSQLite:
		return NewSQLite(cfg.Path)
	default:
		return nil, fmt.Errorf("kvstore: unknown driver %q", cfg.Driver)
	}
}
