// Package cmd provides the command line interface for oavp
package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/oavp/oavp-cli/internal/config"
	"github.com/oavp/oavp-cli/internal/console"
	"github.com/oavp/oavp-cli/internal/create"
	"github.com/oavp/oavp-cli/internal/dispatch"
	"github.com/oavp/oavp-cli/internal/execx"
	"github.com/oavp/oavp-cli/internal/log"
	"github.com/oavp/oavp-cli/internal/prompt"
)

type contextKey string

const appContextKey contextKey = "app"

// App holds the application dependencies for command line interface.
type App struct {
	Logger         log.Logger
	Config         *config.Settings
	ConfigProvider config.Provider
	Console        console.Printer
	Prompter       prompt.Prompter
	Runner         execx.Runner
	CreateHandler  dispatch.Handler
}

// NewApp creates a new App with all dependencies initialized. Console lines
// go to stdout; prompts use the process's terminal.
func NewApp(logger log.Logger, configProv config.Provider, stdout io.Writer) *App {
	cfg := configProv.GetConfig()
	printer := console.NewPrinter(stdout)
	runner := execx.NewRealRunner()

	return &App{
		Logger:         logger,
		Config:         cfg,
		ConfigProvider: configProv,
		Console:        printer,
		Prompter:       prompt.NewPromptUI(nil, nil),
		Runner:         runner,
		CreateHandler:  create.NewExecHandler(cfg.Create, runner, printer, logger),
	}
}

// appFromContext returns the App stored on cmd's context, or nil.
func appFromContext(cmd *cobra.Command) *App {
	if cmd.Context() == nil {
		return nil
	}
	app, _ := cmd.Context().Value(appContextKey).(*App)
	return app
}
