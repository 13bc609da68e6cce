package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/ZebulonRouseFrantzich/gh-codeql/internal/config"
	"github.com/ZebulonRouseFrantzich/gh-codeql/internal/release"
)

// runSetChannel handles `gh codeql set-channel <stable|nightly>`.
//
// Switching channels clears the globally pinned version, since tags are
// not meaningful across channels. Selecting the already-active channel
// is a no-op and leaves the pin alone.
func runSetChannel(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: gh codeql set-channel <stable|nightly>")
	}
	ch, err := release.ParseChannel(args[0])
	if err != nil {
		return err
	}

	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	current, err := a.channel(ctx)
	if err == nil && current == ch {
		fmt.Printf("Already on channel %s\n", ch.Name())
		return nil
	}

	if err := a.store.Set(ctx, config.KeyChannel, ch.Name()); err != nil {
		return err
	}
	if err := a.store.Unset(ctx, config.KeyVersion); err != nil {
		return err
	}
	fmt.Printf("Switched to channel %s; pinned version cleared\n", ch.Name())
	return nil
}
