package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/ZebulonRouseFrantzich/gh-codeql/internal/release"
)

// runDownload handles `gh codeql download [version]`: ensure a version
// is cached without changing any pin. Defaults to latest. Downloading
// an already-cached version performs no network activity.
func runDownload(args []string) error {
	if len(args) > 1 {
		return errors.New("usage: gh codeql download [version]")
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

	entry, tag, err := a.ensure(ctx, ch, token)
	if err != nil {
		return err
	}
	fmt.Printf("%s is available at %s\n", tag, entry)
	return nil
}
