package main

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ZebulonRouseFrantzich/gh-codeql/internal/config"
	"github.com/ZebulonRouseFrantzich/gh-codeql/internal/release"
)

// runSetVersion handles `gh codeql set-version [version]`, defaulting
// to latest. The version is resolved, downloaded, and pinned globally;
// on success the tool's self-reported version is printed.
func runSetVersion(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("usage: gh codeql set-version [version]")
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
	ch, err := a.channel(ctx)
	if err != nil {
		return err
	}

	_, tag, err := a.ensure(ctx, ch, token)
	if err != nil {
		return err
	}
	if err := a.store.Set(ctx, config.KeyVersion, tag); err != nil {
		return err
	}

	self, err := toolVersion(ctx, a.cache.ExecutablePath(ch, tag))
	if err != nil {
		// The pin took effect; the version banner is a courtesy.
		warn("pinned %s but could not query the tool's version: %v", tag, err)
		return nil
	}
	fmt.Printf("Now using CodeQL CLI %s (%s on channel %s)\n", self, tag, ch.Name())
	return nil
}

// toolVersion asks the cached executable for its own version.
func toolVersion(ctx context.Context, exe string) (string, error) {
	cmd := exec.CommandContext(ctx, exe, "version", "--format=terse")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(out.String()), nil
}
