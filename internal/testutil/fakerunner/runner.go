// Package fakerunner provides a fake implementation of execx.Runner for testing.
package fakerunner

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Runner is a fake implementation of execx.Runner for testing.
type Runner struct {
	mu      sync.Mutex
	outputs map[string][]byte
	errors  map[string]error
	calls   []Call
}

// Call represents a captured hook execution.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// New creates a new fake runner.
func New() *Runner {
	return &Runner{
		outputs: make(map[string][]byte),
		errors:  make(map[string]error),
		calls:   []Call{},
	}
}

// SetOutput sets the output for a specific command.
func (r *Runner) SetOutput(name string, args []string, output []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outputs[makeKey(name, args)] = output
}

// SetError sets the error for a specific command. Output registered for the
// same command is returned alongside it.
func (r *Runner) SetError(name string, args []string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors[makeKey(name, args)] = err
}

// CombinedOutput implements execx.Runner.
func (r *Runner) CombinedOutput(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, Call{Dir: dir, Name: name, Args: args})

	key := makeKey(name, args)
	return r.outputs[key], r.errors[key]
}

// GetCalls returns all captured calls.
func (r *Runner) GetCalls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Reset clears all stored outputs, errors, and calls.
func (r *Runner) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outputs = make(map[string][]byte)
	r.errors = make(map[string]error)
	r.calls = []Call{}
}

func makeKey(name string, args []string) string {
	return fmt.Sprintf("%s %s", name, strings.Join(args, " "))
}
