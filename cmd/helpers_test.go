package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"

	"github.com/oavp/oavp-cli/internal/console"
	"github.com/oavp/oavp-cli/internal/testutil"
)

// ExecuteCommand runs cmd with args and returns everything written to its
// output and error streams.
func ExecuteCommand(t *testing.T, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

// SetupCommandContext creates a command with app context for testing.
func SetupCommandContext(cmd *cobra.Command, app *App) {
	ctx := context.WithValue(context.Background(), appContextKey, app)
	cmd.SetContext(ctx)
}

// testApp is an App wired to fakes, with its console captured.
type testApp struct {
	*App
	console  *bytes.Buffer
	prompter *MockPrompter
	handler  *MockHandler
}

func newTestApp(t *testing.T, opts ...testutil.ConfigOption) *testApp {
	t.Helper()

	var buf bytes.Buffer
	provider := testutil.NewMockConfig(t, opts...)
	prompter := &MockPrompter{}
	handler := &MockHandler{}

	app := &App{
		Logger:         testutil.NewTestLogger(t),
		Config:         provider.GetConfig(),
		ConfigProvider: provider,
		Console:        console.NewPrinter(&buf),
		Prompter:       prompter,
		CreateHandler:  handler,
	}
	return &testApp{App: app, console: &buf, prompter: prompter, handler: handler}
}

// rootWithApp returns a root cobra command bound to app.
func rootWithApp(app *App) *cobra.Command {
	cmd := NewRootCommand().GetCobraCommand()
	SetupCommandContext(cmd, app)
	return cmd
}
