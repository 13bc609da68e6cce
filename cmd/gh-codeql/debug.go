package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/ZebulonRouseFrantzich/gh-codeql/internal/config"
)

// runDebug handles `gh codeql debug <on|off>`, toggling verbose trace
// output for subsequent invocations.
func runDebug(args []string) error {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		return errors.New("usage: gh codeql debug <on|off>")
	}

	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	if err := config.SetBool(ctx, a.store, config.KeyDebug, args[0] == "on"); err != nil {
		return err
	}
	fmt.Printf("Debug output is %s\n", args[0])
	return nil
}
