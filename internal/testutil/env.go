// Package testutil provides utilities for testing the extension in
// isolation.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZebulonRouseFrantzich/gh-codeql/internal/cache"
)

// SetupTestEnv points the install root and the host CLI's config
// directory at per-test temporary locations so tests never touch the
// real cache or the user's host CLI configuration. It returns the
// temporary root. Cleanup is handled by t.TempDir.
func SetupTestEnv(t *testing.T) string {
	t.Helper()

	tmp := t.TempDir()
	home := filepath.Join(tmp, "home")
	ghConfig := filepath.Join(tmp, "gh-config")

	t.Setenv(cache.EnvHome, home)
	t.Setenv("GH_CONFIG_DIR", ghConfig)

	for _, dir := range []string{home, ghConfig} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("failed to create test directory %s: %v", dir, err)
		}
	}
	return tmp
}

// FakeHostCLI installs a scripted `gh` stand-in on PATH and returns its
// path. The script body receives the host CLI's arguments verbatim.
func FakeHostCLI(t *testing.T, script string) string {
	t.Helper()

	binDir := filepath.Join(t.TempDir(), "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("failed to create fake bin dir: %v", err)
	}
	path := filepath.Join(binDir, "gh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("failed to write fake host CLI: %v", err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return path
}
