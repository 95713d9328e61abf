// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package toolrun executes external helper tools (the yt-dlp binary and the
// chart helper script) behind an interface so adapters can be tested with
// fakes.
package toolrun

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner abstracts external command execution.
type Runner interface {
	// LookPath reports whether the binary exists on PATH, returning its
	// resolved location.
	LookPath(bin string) (string, error)

	// Output runs the command and returns its stdout. A non-zero exit is
	// an error carrying the trimmed stderr.
	Output(ctx context.Context, bin string, args ...string) ([]byte, error)
}

// ExecRunner is the production Runner backed by os/exec.
type ExecRunner struct{}

func (ExecRunner) LookPath(bin string) (string, error) {
	return exec.LookPath(bin)
}

func (ExecRunner) Output(ctx context.Context, bin string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, bin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", bin, err, msg)
		}
		return nil, fmt.Errorf("%s: %w", bin, err)
	}
	return stdout.Bytes(), nil
}
