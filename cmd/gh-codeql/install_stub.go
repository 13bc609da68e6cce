package main

import (
	"errors"
	"fmt"

	"github.com/ZebulonRouseFrantzich/gh-codeql/internal/stub"
)

// runInstallStub handles `gh codeql install-stub [dir]`, writing a
// forwarding executable so that plain `codeql` invocations reach the
// wrapper. Defaults to the system binary directory.
func runInstallStub(args []string) error {
	if len(args) > 1 {
		return errors.New("usage: gh codeql install-stub [dir]")
	}
	dir := stub.DefaultDir
	if len(args) == 1 {
		dir = args[0]
	}

	path, err := stub.Install(dir)
	if err != nil {
		return err
	}
	fmt.Printf("Installed stub at %s\n", path)
	return nil
}
