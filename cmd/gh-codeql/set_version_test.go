package main

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestToolVersion(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake tool is a shell script")
	}

	exe := filepath.Join(t.TempDir(), "codeql")
	script := "#!/bin/sh\necho '2.17.0'\n"
	if err := os.WriteFile(exe, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake tool: %v", err)
	}

	v, err := toolVersion(context.Background(), exe)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "2.17.0" {
		t.Errorf("got %q, want 2.17.0", v)
	}
}

func TestToolVersionFailure(t *testing.T) {
	if _, err := toolVersion(context.Background(), filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing executable")
	}
}

func TestSetVersionUsage(t *testing.T) {
	setupCmdTest(t)

	if err := runSetVersion([]string{"a", "b"}); err == nil {
		t.Error("expected usage error with extra arguments")
	}
}
