package main

import (
	"context"
	"errors"
	"fmt"
)

// runCleanup handles `gh codeql cleanup <version>`, removing one cache
// entry on the current channel. An absent entry is an error and the
// cache is left unchanged.
func runCleanup(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: gh codeql cleanup <version>")
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
	if err := a.cache.Cleanup(ch, args[0]); err != nil {
		return err
	}
	fmt.Printf("Removed %s from channel %s\n", args[0], ch.Name())
	return nil
}

// runCleanupAll handles `gh codeql cleanup-all`, removing every cached
// version on every channel.
func runCleanupAll(args []string) error {
	if len(args) != 0 {
		return errors.New("usage: gh codeql cleanup-all")
	}

	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	if err := a.cache.CleanupAll(); err != nil {
		return err
	}
	fmt.Println("Removed all downloaded versions")
	return nil
}
