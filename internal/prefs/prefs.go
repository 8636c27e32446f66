// Package prefs persists small user preferences behind a key/value Store.
//
// Three backends are provided:
//   - MemoryStore: process-local, for tests and one-shot commands
//   - FileStore: a JSON document under the user's config directory
//   - RedisStore: shared storage for preview servers running as several
//     instances
//
// Values are strings. A missing key is reported with ok=false, not an error.
package prefs

import (
	"context"
	"fmt"
	"strings"
)

// Store is a string key/value store.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

// Options selects and configures a backend.
type Options struct {
	Backend     string
	Path        string
	RedisAddr   string
	RedisPrefix string
}

// Open returns the Store described by opts. An empty backend selects the
// file store.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch strings.ToLower(opts.Backend) {
	case BackendMemory:
		return NewMemoryStore(), nil
	case "", BackendFile:
		return NewFileStore(opts.Path)
	case BackendRedis:
		return NewRedisStore(ctx, RedisConfig{Addr: opts.RedisAddr, Prefix: opts.RedisPrefix})
	}
	return nil, fmt.Errorf("unknown prefs backend %q", opts.Backend)
}

// GetBool reads key as a boolean flag. Only "true" counts as set.
func GetBool(ctx context.Context, s Store, key string) (bool, error) {
	v, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	return v == "true", nil
}

// SetBool stores a boolean flag.
func SetBool(ctx context.Context, s Store, key string, v bool) error {
	if v {
		return s.Set(ctx, key, "true")
	}
	return s.Set(ctx, key, "false")
}
