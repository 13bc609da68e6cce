// Package config adapts the host CLI's key-value configuration store.
//
// Persistent wrapper state (channel, pinned version, feature toggles)
// lives in the host CLI's own config so it survives extension upgrades.
// The Store interface is injected everywhere so tests can substitute an
// in-memory implementation.
package config

import (
	"context"
	"fmt"

	"github.com/ZebulonRouseFrantzich/gh-codeql/internal/hostcli"
)

// Key identifies a configuration entry in the host CLI's store.
type Key string

const (
	// KeyChannel selects the release registry (stable or nightly).
	KeyChannel Key = "codeql-channel"
	// KeyVersion is the globally pinned version tag.
	KeyVersion Key = "codeql-version"
	// KeyDebug enables verbose trace output.
	KeyDebug Key = "codeql-debug"
	// KeyLocalVersion enables per-directory version pin files.
	KeyLocalVersion Key = "codeql-local-version"
	// KeyPlatform overrides the detected tool platform.
	KeyPlatform Key = "codeql-platform"
)

// Store is a persistent key-value store with get/set semantics.
// A failed or empty read reports the key as unset, never an error;
// configuration reads are not fatal.
type Store interface {
	Get(ctx context.Context, key Key) (string, bool)
	Set(ctx context.Context, key Key, value string) error
	Unset(ctx context.Context, key Key) error
}

// Bool reads a key as a boolean toggle. Only the literal "true" enables
// the toggle; anything else, including an unset key, disables it.
func Bool(ctx context.Context, s Store, key Key) bool {
	v, ok := s.Get(ctx, key)
	return ok && v == "true"
}

// SetBool writes a boolean toggle.
func SetBool(ctx context.Context, s Store, key Key, on bool) error {
	if on {
		return s.Set(ctx, key, "true")
	}
	return s.Set(ctx, key, "false")
}

// HostStore is the production Store backed by the host CLI's config.
type HostStore struct {
	cli *hostcli.Client
}

// NewHostStore creates a Store over the given host CLI client.
func NewHostStore(cli *hostcli.Client) *HostStore {
	return &HostStore{cli: cli}
}

// Get reads a key. Any read failure, and the empty string the host CLI
// reports for cleared keys, count as unset.
func (s *HostStore) Get(ctx context.Context, key Key) (string, bool) {
	v, err := s.cli.ConfigGet(ctx, string(key))
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}

// Set writes a key.
func (s *HostStore) Set(ctx context.Context, key Key, value string) error {
	if err := s.cli.ConfigSet(ctx, string(key), value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Unset clears a key. The host CLI has no removal operation, so clearing
// writes the empty string, which Get reports as unset.
func (s *HostStore) Unset(ctx context.Context, key Key) error {
	if err := s.cli.ConfigSet(ctx, string(key), ""); err != nil {
		return fmt.Errorf("unset %s: %w", key, err)
	}
	return nil
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	values map[Key]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[Key]string)}
}

// Get reads a key from memory.
func (s *MemStore) Get(_ context.Context, key Key) (string, bool) {
	v, ok := s.values[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Set writes a key in memory.
func (s *MemStore) Set(_ context.Context, key Key, value string) error {
	s.values[key] = value
	return nil
}

// Unset removes a key from memory.
func (s *MemStore) Unset(_ context.Context, key Key) error {
	delete(s.values, key)
	return nil
}
