// Package stub installs a forwarding executable on the system path.
//
// The stub lets plain `codeql` invocations reach the wrapper (and
// therefore the managed tool version) without going through the host
// CLI's extension syntax.
package stub

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DefaultDir is where the stub is installed when no directory is given.
const DefaultDir = "/usr/local/bin"

// Name returns the stub file name for the current OS.
func Name() string {
	if runtime.GOOS == "windows" {
		return "codeql.cmd"
	}
	return "codeql"
}

// Script returns the stub contents for the current OS.
func Script() string {
	if runtime.GOOS == "windows" {
		return "@echo off\r\ngh codeql %*\r\n"
	}
	return "#!/bin/sh\nexec gh codeql \"$@\"\n"
}

// Install writes the executable stub into dir and returns its path.
// The directory must already exist and be writable; nothing is created
// on failure.
func Install(dir string) (string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("stub directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("stub target %s is not a directory", dir)
	}

	path := filepath.Join(dir, Name())
	if err := os.WriteFile(path, []byte(Script()), 0o755); err != nil {
		return "", fmt.Errorf("write stub: %w", err)
	}
	return path, nil
}
