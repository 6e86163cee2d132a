// Package execx provides a testable abstraction for running external hooks.
package execx

import (
	"context"
	"os/exec"
)

// Runner executes an external command and collects its output.
type Runner interface {
	CombinedOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// RealRunner implements Runner using os/exec.
type RealRunner struct{}

// NewRealRunner creates a new RealRunner.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// CombinedOutput runs name in dir (the current directory when empty) and
// returns its interleaved stdout and stderr.
func (r *RealRunner) CombinedOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}
