// Package cmd provides the command line interface for oavp
/*
Copyright © 2025 Travis Lyons travis.lyons@gmail.com

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oavp/oavp-cli/internal/config"
	"github.com/oavp/oavp-cli/internal/console"
	"github.com/oavp/oavp-cli/internal/dispatch"
	"github.com/oavp/oavp-cli/internal/log"
	"github.com/oavp/oavp-cli/internal/prompt"
)

// RootOptions holds root command options.
type RootOptions struct {
	Verbose        bool
	ConfigFilePath string
	Help           bool
	Version        bool
}

// RootDeps holds the dispatcher's collaborators.
type RootDeps struct {
	CommonDeps
	Prompter      prompt.Prompter
	Console       console.Printer
	CreateHandler dispatch.Handler
}

// RootCommand represents the root command for oavp CLI.
type RootCommand struct{}

// NewRootCommand creates a new RootCommand.
func NewRootCommand() *RootCommand {
	return &RootCommand{}
}

// getApp retrieves the App from the command context.
func (c *RootCommand) getApp(cmd *cobra.Command) *App {
	return cmd.Context().Value(appContextKey).(*App)
}

// GetCobraCommand returns the cobra root command for oavp CLI.
func (c *RootCommand) GetCobraCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "oavp [command]",
		Short: "oavp scaffolds and builds oavp sketch projects.",
		Long: `oavp scaffolds and builds oavp sketch projects.

Commands: create, build. When no command is given you are asked to pick one.`,
		Args:    cobra.ArbitraryArgs,
		Version: versionString(),
		// Flags are read by parseRootArgs and dispatch.ParseArgs. An unknown
		// flag never takes the following token as its value.
		DisableFlagParsing: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts, _ := parseRootArgs(args)
			if opts.Help || opts.Version || appFromContext(cmd) != nil {
				return nil
			}

			app, err := c.initApp(cmd, opts)
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), appContextKey, app))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, rest := parseRootArgs(args)
			switch {
			case opts.Help:
				return cmd.Help()
			case opts.Version:
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", cmd.Name(), cmd.Version)
				return err
			}

			app := c.getApp(cmd)
			deps := c.buildDeps(app)
			return c.Run(cmd.Context(), app, dispatch.ParseArgs(rest), deps)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Registered for help output only.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().String("config", "", "Path to the configuration file")
	rootCmd.Flags().BoolP("yes", "y", false, "Answer every prompt with its default")
	_ = rootCmd.Flags().MarkHidden("yes")

	return rootCmd
}

// parseRootArgs takes the root command's own flags out of args and returns
// the remaining tokens for dispatch.ParseArgs. Scanning stops at "--",
// which is kept along with everything after it.
func parseRootArgs(args []string) (RootOptions, []string) {
	var opts RootOptions
	rest := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return opts, append(rest, args[i:]...)
		case arg == "-v" || arg == "--verbose":
			opts.Verbose = true
		case strings.HasPrefix(arg, "--verbose="):
			opts.Verbose, _ = strconv.ParseBool(strings.TrimPrefix(arg, "--verbose="))
		case arg == "--config":
			if i+1 < len(args) {
				i++
				opts.ConfigFilePath = args[i]
			}
		case strings.HasPrefix(arg, "--config="):
			opts.ConfigFilePath = strings.TrimPrefix(arg, "--config=")
		case arg == "-h" || arg == "--help":
			opts.Help = true
		case arg == "--version":
			opts.Version = true
		default:
			rest = append(rest, arg)
		}
	}

	return opts, rest
}

// initApp loads configuration and logging and builds the production App.
func (c *RootCommand) initApp(cmd *cobra.Command, opts RootOptions) (*App, error) {
	provider := config.NewDefaultConfigProvider()
	if opts.ConfigFilePath != "" {
		provider.SetConfigFilePath(opts.ConfigFilePath)
	}

	cfg, err := provider.InitConfig()
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		cfg.Verbose = true
	}

	log.Init(cfg.Verbose)
	logger := log.GetLogger()
	logger.Debug("Configuration loaded", "file", config.ConfigFileUsed(provider))

	return NewApp(logger, provider, cmd.OutOrStdout()), nil
}

// Run resolves and dispatches one invocation. Handler failures are printed
// and do not fail the command.
func (c *RootCommand) Run(ctx context.Context, app *App, opts dispatch.Options, deps RootDeps) error {
	resolver := dispatch.NewResolver(deps.Prompter, deps.Console, deps.Logger)
	dispatcher := dispatch.NewDispatcher(deps.CreateHandler, deps.Logger,
		dispatch.WithStrictBuild(app.Config.StrictBuild))

	return dispatch.NewRunner(resolver, dispatcher, deps.Console, deps.Clock, deps.Logger).Run(ctx, opts)
}

// buildDeps creates production dependencies for the root command.
func (c *RootCommand) buildDeps(app *App) RootDeps {
	return RootDeps{
		CommonDeps:    NewRootDeps(app),
		Prompter:      app.Prompter,
		Console:       app.Console,
		CreateHandler: app.CreateHandler,
	}
}
