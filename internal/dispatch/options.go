// Package dispatch turns the operator's command line into a single call of
// the project handler: parse, prompt when needed, dispatch.
package dispatch

import "strings"

// Command names a top-level operation.
type Command string

// Recognized commands.
const (
	CommandCreate Command = "create"
	CommandBuild  Command = "build"
)

// DefaultCommand is pre-selected in the prompt and used when prompts are skipped.
const DefaultCommand = CommandCreate

// ValidCommands lists the recognized commands in prompt order.
var ValidCommands = []Command{CommandCreate, CommandBuild}

// Implemented reports whether c has a handler of its own. Build is
// recognized but pending.
func (c Command) Implemented() bool {
	return c == CommandCreate
}

// CommandNames returns ValidCommands as plain strings.
func CommandNames() []string {
	names := make([]string, 0, len(ValidCommands))
	for _, c := range ValidCommands {
		names = append(names, string(c))
	}
	return names
}

// Options is the per-invocation request. It is created from the argument
// list, filled in at most once by the resolver and consumed by the
// dispatcher.
type Options struct {
	// Command is the requested command name. Empty means none was given.
	Command string
	// SkipPrompts answers every prompt with its default.
	SkipPrompts bool
}

// HasCommand reports whether a command name is present.
func (o Options) HasCommand() bool {
	return o.Command != ""
}

// ParseArgs builds Options from the arguments following the program name.
// The first non-flag token is the command; tokens after "--" are always
// positional. -y and --yes set SkipPrompts, any other flag is ignored.
// The command is not validated.
func ParseArgs(args []string) Options {
	var opts Options
	positionalOnly := false

	for _, arg := range args {
		if !positionalOnly {
			switch {
			case arg == "--":
				positionalOnly = true
				continue
			case arg == "-y" || arg == "--yes":
				opts.SkipPrompts = true
				continue
			case strings.HasPrefix(arg, "-") && arg != "-":
				continue
			}
		}
		if !opts.HasCommand() && arg != "" {
			opts.Command = arg
		}
	}

	return opts
}
