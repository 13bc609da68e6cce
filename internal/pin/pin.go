// Package pin reads and writes the per-directory version pin file.
//
// The pin file holds a single version tag and overrides the globally
// pinned version — never the channel — for invocations from its
// directory. It is only honored when local-version support is enabled
// in configuration.
package pin

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the pin file looked up in the working directory.
const FileName = ".codeql-version"

// Read returns the pinned tag in dir and whether a pin file exists.
// A present but empty file counts as no pin.
func Read(dir string) (string, bool, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read %s: %w", FileName, err)
	}
	tag := strings.TrimSpace(string(data))
	if tag == "" {
		return "", false, nil
	}
	return tag, true, nil
}

// Write pins a tag in dir.
func Write(dir, tag string) error {
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(tag+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", FileName, err)
	}
	return nil
}

// Remove deletes the pin file in dir. Removing an absent pin is not an
// error; the caller decides whether to warn.
func Remove(dir string) error {
	err := os.Remove(filepath.Join(dir, FileName))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", FileName, err)
	}
	return nil
}
