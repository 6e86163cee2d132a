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
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/oavp/oavp-cli/internal/docgen"
	"github.com/oavp/oavp-cli/internal/log"
)

// DefaultDocsOutput is where the markdown reference is written by default.
const DefaultDocsOutput = "doc-export.md"

// DocsOptions holds docs command options.
type DocsOptions struct {
	Out     string
	Format  string
	List    bool
	Verbose bool
}

// DocsDeps holds docs dependencies.
type DocsDeps struct {
	CommonDeps
}

// DocsCommand generates the library reference from doc comments.
type DocsCommand struct{}

// NewDocsCommand creates a new DocsCommand.
func NewDocsCommand() *DocsCommand {
	return &DocsCommand{}
}

// GetCobraCommand returns the cobra command for oavp-docs.
func (c *DocsCommand) GetCobraCommand() *cobra.Command {
	var opts DocsOptions

	docsCmd := &cobra.Command{
		Use:   "oavp-docs [source-file]",
		Short: "Generate the oavp reference from source doc comments",
		Long: `Generate the oavp reference from source doc comments.

Every /** ... */ comment directly followed by a method declaration becomes one
entry; overloads are merged. Markdown is written to --out, json and yaml are
printed.`,
		Args:    cobra.MaximumNArgs(1),
		Version: versionString(),
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return validateDocsFormat(opts.Format)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Init(opts.Verbose)
			deps := c.buildDeps()

			var source string
			if len(args) > 0 {
				source = args[0]
			}
			return c.Run(cmd.Context(), cmd.OutOrStdout(), source, opts, deps)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	docsCmd.Flags().StringVarP(&opts.Out, "out", "o", DefaultDocsOutput, "Markdown output file")
	docsCmd.Flags().StringVarP(&opts.Format, "format", "f", "markdown", "Output format (markdown, json, yaml)")
	docsCmd.Flags().BoolVarP(&opts.List, "list", "l", false, "List the documented methods instead of exporting")
	docsCmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable verbose logging")
	err := docsCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return docsFormats, cobra.ShellCompDirectiveNoFileComp
	})
	if err != nil {
		return docsCmd
	}

	return docsCmd
}

var docsFormats = []string{"markdown", "json", "yaml"}

func validateDocsFormat(format string) error {
	switch strings.ToLower(format) {
	case "markdown", "md", "json", "yaml", "yml":
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s (expected one of %s)", format, strings.Join(docsFormats, ", "))
	}
}

// Run parses source and writes the reference in the requested form.
// Without a source an empty reference is produced.
func (c *DocsCommand) Run(_ context.Context, out io.Writer, source string, opts DocsOptions, deps DocsDeps) error {
	start := deps.Clock.Now()

	var docs []docgen.Document
	if source == "" {
		_, _ = fmt.Fprintln(out, "No path given")
	} else {
		data, err := deps.FileSystem.ReadFile(source)
		if err != nil {
			return fmt.Errorf("failed to read source %s: %w", source, err)
		}
		docs, err = docgen.Parse(string(data))
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", source, err)
		}
	}
	deps.Logger.Debug("Parsed doc comments", "source", source, "entries", len(docs), "elapsed", deps.Clock.Since(start))

	if opts.List {
		printDocsTable(out, docs)
		return nil
	}

	switch strings.ToLower(opts.Format) {
	case "json", "yaml", "yml":
		return PrintOutput(out, opts.Format, docs)
	}

	_, _ = fmt.Fprintln(out, "Generating docs...")

	var buf bytes.Buffer
	if err := docgen.RenderMarkdown(&buf, docs); err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	if err := deps.FileSystem.WriteFile(opts.Out, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.Out, err)
	}

	_, _ = fmt.Fprintf(out, "Wrote %d entries to %s\n", len(docs), opts.Out)
	return nil
}

func printDocsTable(out io.Writer, docs []docgen.Document) {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("Name", "Anchor", "Overloads", "Params", "Returns")
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt).WithWriter(out)

	for _, d := range docs {
		tbl.AddRow(d.Name, d.Anchor(), len(d.Syntax), len(d.Params), d.ReturnType)
	}
	tbl.Print()
}

// buildDeps creates production dependencies for the docs command.
func (c *DocsCommand) buildDeps() DocsDeps {
	return DocsDeps{
		CommonDeps: NewCommonDeps(log.GetLogger()),
	}
}
