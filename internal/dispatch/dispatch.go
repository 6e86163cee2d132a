package dispatch

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/oavp/oavp-cli/internal/log"
)

// ErrNotImplemented is returned for recognized commands that have no handler yet.
var ErrNotImplemented = errors.New("not implemented yet")

// Handler performs the work behind a command.
type Handler interface {
	Handle(ctx context.Context) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context) error

// Handle calls f(ctx).
func (f HandlerFunc) Handle(ctx context.Context) error {
	return f(ctx)
}

// Dispatcher maps a resolved command onto its handler.
type Dispatcher struct {
	create      Handler
	strictBuild bool
	logger      log.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithStrictBuild makes build fail with ErrNotImplemented instead of
// falling back to create.
func WithStrictBuild(strict bool) DispatcherOption {
	return func(d *Dispatcher) {
		d.strictBuild = strict
	}
}

// NewDispatcher creates a Dispatcher routing to the create handler.
func NewDispatcher(create Handler, logger log.Logger, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{create: create, logger: logger}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch invokes the handler for opts.Command. Every command, known or
// not, reaches the create handler unless strict build is enabled, which
// fails recognized commands that are not implemented.
func (d *Dispatcher) Dispatch(ctx context.Context, opts Options) error {
	command := Command(opts.Command)
	switch {
	case command.Implemented():
		return d.create.Handle(ctx)
	case slices.Contains(ValidCommands, command):
		if d.strictBuild {
			return fmt.Errorf("command '%s' is %w", command, ErrNotImplemented)
		}
		d.logger.Debug("Command has no handler, falling back to create", "command", command)
		return d.create.Handle(ctx)
	default:
		d.logger.Debug("Dispatching to default handler", "command", opts.Command)
		return d.create.Handle(ctx)
	}
}
