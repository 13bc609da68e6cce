package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
)

// runListVersions handles `gh codeql list-versions`: every remote
// release tag on the current channel, in registry listing order, with
// installed versions marked.
func runListVersions(args []string) error {
	if len(args) != 0 {
		return errors.New("usage: gh codeql list-versions")
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

	releases, err := a.source(ch).ListReleases(ctx)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Version", "Installed"})
	var rows [][]string
	for _, rel := range releases {
		if rel.Draft {
			continue
		}
		installed := ""
		if a.cache.IsInstalled(ch, rel.TagName) {
			installed = "yes"
		}
		rows = append(rows, []string{rel.TagName, installed})
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

// runListInstalled handles `gh codeql list-installed`: exactly the
// entry names under the current channel's cache directory, one per
// line.
func runListInstalled(args []string) error {
	if len(args) != 0 {
		return errors.New("usage: gh codeql list-installed")
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

	names, err := a.cache.List(ch)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
