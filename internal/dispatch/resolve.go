package dispatch

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/oavp/oavp-cli/internal/console"
	"github.com/oavp/oavp-cli/internal/log"
	"github.com/oavp/oavp-cli/internal/prompt"
)

// SelectLabel is the title of the command selection prompt.
const SelectLabel = "Please select a command:"

// Resolver makes sure Options carries a command, prompting the operator
// when none was given.
type Resolver struct {
	prompter prompt.Prompter
	out      console.Printer
	logger   log.Logger
}

// NewResolver creates a Resolver.
func NewResolver(prompter prompt.Prompter, out console.Printer, logger log.Logger) *Resolver {
	return &Resolver{prompter: prompter, out: out, logger: logger}
}

// Resolve returns opts with Command set. A given command is kept as typed,
// an absent one is answered by the prompt or, with SkipPrompts, by
// DefaultCommand. Only a failed prompt returns an error.
func (r *Resolver) Resolve(_ context.Context, opts Options) (Options, error) {
	if notRecognized(opts.Command) {
		r.out.Println(fmt.Sprintf("[ oavp ] Command '%s' not recognized.", opts.Command))
	}

	if opts.HasCommand() {
		r.logger.Debug("Command given on the command line", "command", opts.Command)
		return opts, nil
	}

	if opts.SkipPrompts {
		r.logger.Debug("Prompts skipped, using default command", "command", DefaultCommand)
		opts.Command = string(DefaultCommand)
		return opts, nil
	}

	answer, err := r.prompter.Select(prompt.Question{
		Label:   SelectLabel,
		Choices: CommandNames(),
		Default: string(DefaultCommand),
	})
	if err != nil {
		return opts, fmt.Errorf("failed to select a command: %w", err)
	}

	r.logger.Debug("Command selected at prompt", "command", answer)
	opts.Command = answer
	return opts, nil
}

// notRecognized matches the check shipped in earlier releases: it is true
// for a present command whose lower-cased name IS in ValidCommands.
// Whether the diagnostic was meant for unknown names instead is still open,
// so the behavior is kept as is.
func notRecognized(command string) bool {
	return command != "" && IsRecognized(command)
}

// IsRecognized reports whether command names one of ValidCommands,
// ignoring case.
func IsRecognized(command string) bool {
	return slices.Contains(ValidCommands, Command(cases.Lower(language.Und).String(command)))
}
