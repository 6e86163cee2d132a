// Package create binds the create command to the operator's scaffolding
// hook. The scaffolding itself lives outside oavp.
package create

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/oavp/oavp-cli/internal/config"
	"github.com/oavp/oavp-cli/internal/console"
	"github.com/oavp/oavp-cli/internal/execx"
	"github.com/oavp/oavp-cli/internal/log"
)

// ErrNotConfigured is returned when no scaffolding hook is configured.
var ErrNotConfigured = errors.New("no create hook configured: set create.command in the oavp config file or OAVP_CREATE_COMMAND")

// ExecHandler runs the configured hook and echoes its output.
type ExecHandler struct {
	settings config.CreateSettings
	runner   execx.Runner
	out      console.Printer
	logger   log.Logger
}

// NewExecHandler creates an ExecHandler.
func NewExecHandler(settings config.CreateSettings, runner execx.Runner, out console.Printer, logger log.Logger) *ExecHandler {
	return &ExecHandler{
		settings: settings,
		runner:   runner,
		out:      out,
		logger:   logger,
	}
}

// Handle runs the hook once. Output is echoed even when the hook fails.
func (h *ExecHandler) Handle(ctx context.Context) error {
	if strings.TrimSpace(h.settings.Command) == "" {
		return ErrNotConfigured
	}

	h.logger.Debug("Running create hook", "command", h.settings.Command, "args", h.settings.Args, "dir", h.settings.Dir)

	output, err := h.runner.CombinedOutput(ctx, h.settings.Dir, h.settings.Command, h.settings.Args...)
	for _, line := range splitLines(output) {
		h.out.Println(line)
	}
	if err != nil {
		return fmt.Errorf("create hook %s failed: %w", h.settings.Command, err)
	}
	return nil
}

func splitLines(output []byte) []string {
	text := strings.TrimRight(strings.ReplaceAll(string(output), "\r\n", "\n"), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
