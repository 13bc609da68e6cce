// Command gh-codeql manages download, version selection, and invocation
// of the CodeQL CLI as a GitHub CLI extension.
//
// The first argument selects a management command; anything else is
// forwarded verbatim to the active CodeQL version.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Environment variables recognized by the wrapper.
const (
	// EnvVersion overrides the effective version with the highest
	// precedence, above local and global pins.
	EnvVersion = "GH_CODEQL_VERSION"
	// EnvDebug enables verbose trace output, equivalent to `debug on`.
	EnvDebug = "GH_CODEQL_DEBUG"
	// EnvDist is exported before delegation and names the active
	// version's install directory.
	EnvDist = "CODEQL_DIST"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow)
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		if err := runStatus(); err != nil {
			fatal(err)
		}
		return
	}

	var err error
	switch args[0] {
	case "set-channel":
		err = runSetChannel(args[1:])
	case "set-version":
		err = runSetVersion(args[1:])
	case "local-version":
		err = runLocalVersion(args[1:])
	case "set-local-version":
		err = runSetLocalVersion(args[1:])
	case "unset-local-version":
		err = runUnsetLocalVersion(args[1:])
	case "list-versions":
		err = runListVersions(args[1:])
	case "list-installed":
		err = runListInstalled(args[1:])
	case "cleanup":
		err = runCleanup(args[1:])
	case "cleanup-all":
		err = runCleanupAll(args[1:])
	case "download":
		err = runDownload(args[1:])
	case "debug":
		err = runDebug(args[1:])
	case "install-stub":
		err = runInstallStub(args[1:])
	default:
		// Not a management command: delegate everything, first
		// argument included, to the active tool version.
		err = runExec(args)
	}
	if err != nil {
		fatal(err)
	}
}

// fatal reports an error on stderr and terminates with a non-zero
// status.
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", errColor.Sprint("Error:"), err)
	os.Exit(1)
}

// warn reports an advisory condition on stderr without altering
// control flow.
func warn(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", warnColor.Sprint("Warning:"), fmt.Sprintf(format, a...))
}
