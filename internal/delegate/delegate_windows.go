//go:build windows

package delegate

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Run starts the executable at path with args and env, passing the
// standard streams through, and exits with the tool's exact exit code.
// Windows has no process-image replacement, so spawn-and-wait stands in
// with identical externally observed behavior.
func Run(path string, args []string, env []string) error {
	cmd := exec.Command(path, args...)
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}
	if err != nil {
		return fmt.Errorf("run %s: %w", path, err)
	}
	os.Exit(0)
	return nil
}
