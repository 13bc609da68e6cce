package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ZebulonRouseFrantzich/gh-codeql/internal/config"
	"github.com/ZebulonRouseFrantzich/gh-codeql/internal/pin"
	"github.com/ZebulonRouseFrantzich/gh-codeql/internal/release"
)

// runLocalVersion handles `gh codeql local-version <on|off>`, toggling
// whether per-directory pin files are honored.
func runLocalVersion(args []string) error {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		return errors.New("usage: gh codeql local-version <on|off>")
	}

	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	if err := config.SetBool(ctx, a.store, config.KeyLocalVersion, args[0] == "on"); err != nil {
		return err
	}
	fmt.Printf("Local version support is %s\n", args[0])
	return nil
}

// runSetLocalVersion handles `gh codeql set-local-version [version]`.
// It resolves and downloads the version, then writes the pin file in
// the working directory. Requires local-version support to be enabled;
// nothing is written otherwise.
func runSetLocalVersion(args []string) error {
	if len(args) > 1 {
		return errors.New("usage: gh codeql set-local-version [version]")
	}
	token := release.Latest
	if len(args) == 1 {
		token = args[0]
	}

	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	if !config.Bool(ctx, a.store, config.KeyLocalVersion) {
		return errors.New("local version support is disabled; enable it with 'gh codeql local-version on'")
	}

	ch, err := a.channel(ctx)
	if err != nil {
		return err
	}
	_, tag, err := a.ensure(ctx, ch, token)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	if err := pin.Write(cwd, tag); err != nil {
		return err
	}
	fmt.Printf("Pinned %s for %s\n", tag, cwd)
	return nil
}

// runUnsetLocalVersion handles `gh codeql unset-local-version`. A
// missing pin file is an advisory condition, not an error.
func runUnsetLocalVersion(args []string) error {
	if len(args) != 0 {
		return errors.New("usage: gh codeql unset-local-version")
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	_, exists, err := pin.Read(cwd)
	if err != nil {
		return err
	}
	if !exists {
		warn("no local version set in %s", cwd)
		return nil
	}
	if err := pin.Remove(cwd); err != nil {
		return err
	}
	fmt.Printf("Removed local version pin from %s\n", cwd)
	return nil
}
