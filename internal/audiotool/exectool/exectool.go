// Package exectool adapts a user-supplied external fingerprinting binary
// to season.AudioTool.Fingerprint: build args, run under CommandContext,
// parse stdout, wrap errors with the binary's name for context.
package exectool

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"introscan/internal/fingerprint"
)

var commandContext = exec.CommandContext

// Option configures a CLI.
type Option func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithArgs overrides the argument template passed before the input path.
func WithArgs(args ...string) Option {
	return func(c *CLI) {
		c.args = append([]string(nil), args...)
	}
}

// CLI shells out to an external fingerprinting tool that writes one
// unsigned 32-bit decimal value per line to stdout, one per 0.128s of
// audio, in time order - the same contract introscan's own spectralfp
// tool produces.
type CLI struct {
	binary string
	args   []string
}

func New(opts ...Option) *CLI {
	cli := &CLI{binary: "introscan-fingerprint"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Fingerprint runs the configured binary against path and parses its
// stdout into a fingerprint.Stream.
func (c *CLI) Fingerprint(ctx context.Context, path string) (fingerprint.Stream, error) {
	args := append(append([]string(nil), c.args...), path)
	cmd := commandContext(ctx, c.binary, args...) //nolint:gosec
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("exectool: stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("exectool: start %s: %w", c.binary, err)
	}

	var stream fingerprint.Stream
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseUint(line, 10, 32)
		if err != nil {
			continue
		}
		stream = append(stream, uint32(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("exectool: read %s output: %w", c.binary, err)
	}

	if err := cmd.Wait(); err != nil {
		return nil, fmt.Errorf("exectool: %s failed for %s: %w", c.binary, path, err)
	}

	return stream, nil
}
