package dispatch

import (
	"context"

	"github.com/benbjohnson/clock"

	"github.com/oavp/oavp-cli/internal/console"
	"github.com/oavp/oavp-cli/internal/log"
)

// Runner ties the resolve and dispatch steps together for one invocation.
type Runner struct {
	resolver   *Resolver
	dispatcher *Dispatcher
	out        console.Printer
	clock      clock.Clock
	logger     log.Logger
}

// NewRunner creates a Runner.
func NewRunner(resolver *Resolver, dispatcher *Dispatcher, out console.Printer, clk clock.Clock, logger log.Logger) *Runner {
	return &Runner{
		resolver:   resolver,
		dispatcher: dispatcher,
		out:        out,
		clock:      clk,
		logger:     logger,
	}
}

// Run resolves opts and dispatches it. A handler error is reported as its
// bare message on the console and swallowed, so the invocation still
// succeeds. Resolve errors are returned.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	resolved, err := r.resolver.Resolve(ctx, opts)
	if err != nil {
		return err
	}

	start := r.clock.Now()
	if err := r.dispatcher.Dispatch(ctx, resolved); err != nil {
		r.logger.Debug("Handler failed", "command", resolved.Command, "error", err)
		r.out.Println(err.Error())
		return nil
	}

	r.logger.Debug("Handler finished", "command", resolved.Command, "elapsed", r.clock.Since(start))
	return nil
}
