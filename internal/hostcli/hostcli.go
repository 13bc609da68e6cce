// Package hostcli invokes the GitHub CLI on behalf of the extension.
//
// All remote access goes through the host CLI rather than a direct HTTP
// client so that its authentication and proxy settings apply unchanged.
package hostcli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// DefaultBinary is the host CLI executable name resolved via PATH.
const DefaultBinary = "gh"

// Client shells out to the host CLI for config and API operations.
type Client struct {
	bin string
}

// New creates a client that invokes the default host CLI binary.
func New() *Client {
	return &Client{bin: DefaultBinary}
}

// NewWithBinary creates a client that invokes a specific executable.
// Used by tests to substitute a scripted fake.
func NewWithBinary(bin string) *Client {
	return &Client{bin: bin}
}

// ConfigGet reads a host CLI configuration key. The returned value is
// trimmed of surrounding whitespace.
func (c *Client) ConfigGet(ctx context.Context, key string) (string, error) {
	out, err := c.output(ctx, "config", "get", key)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// ConfigSet writes a host CLI configuration key.
func (c *Client) ConfigSet(ctx context.Context, key, value string) error {
	_, err := c.output(ctx, "config", "set", key, value)
	return err
}

// GetJSON issues an authenticated API request and decodes the JSON
// response body into v.
func (c *Client) GetJSON(ctx context.Context, path string, v any) error {
	out, err := c.output(ctx, "api", path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(out), v); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// Download issues an authenticated API request with an octet-stream
// accept header and streams the response body to w.
func (c *Client) Download(ctx context.Context, path string, w io.Writer) error {
	cmd := exec.CommandContext(ctx, c.bin, "api", "-H", "Accept: application/octet-stream", path)
	var stderr bytes.Buffer
	cmd.Stdout = w
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return commandError(c.bin, "api", err, &stderr)
	}
	return nil
}

// output runs a host CLI subcommand and returns its stdout.
func (c *Client) output(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, c.bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", commandError(c.bin, args[0], err, &stderr)
	}
	return stdout.String(), nil
}

func commandError(bin, sub string, err error, stderr *bytes.Buffer) error {
	msg := strings.TrimSpace(stderr.String())
	if msg == "" {
		return fmt.Errorf("%s %s: %w", bin, sub, err)
	}
	return fmt.Errorf("%s %s: %w: %s", bin, sub, err, msg)
}
