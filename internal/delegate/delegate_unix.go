//go:build !windows

// Package delegate hands control to the cached tool executable.
package delegate

import (
	"fmt"
	"syscall"
)

// Run replaces the current process image with the executable at path,
// forwarding args and env unchanged. On success it does not return; the
// tool's exit code becomes the process's exit code with no cleanup step
// in between.
func Run(path string, args []string, env []string) error {
	argv := append([]string{path}, args...)
	if err := syscall.Exec(path, argv, env); err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}
	return nil
}
