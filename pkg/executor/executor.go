package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// stderr lines kept when a command fails; detector and ffmpeg runs can emit
// thousands of progress lines before the actual error.
const stderrTailLines = 20

type implExecutor struct{}

// New creates a new Executor instance
func New() Executor {
	return &implExecutor{}
}

// Execute runs an external command and returns its stdout. On failure the
// tail of stderr is attached to the error for diagnostics.
func (e *implExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("command %q not found in PATH: %w", name, err)
		}
		if msg := tail(stderr.String(), stderrTailLines); msg != "" {
			return "", fmt.Errorf("command %q failed: %w\nstderr: %s", name, err, msg)
		}
		return "", fmt.Errorf("command %q failed: %w", name, err)
	}

	return stdout.String(), nil
}

func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
