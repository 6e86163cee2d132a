// Package prompt provides interactive operator prompts.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/manifoldco/promptui"
)

var (
	// ErrAborted is returned when the operator interrupts a prompt.
	ErrAborted = errors.New("prompt aborted")
	// ErrInvalidDefault is returned when a question's default is not one of its choices.
	ErrInvalidDefault = errors.New("default is not one of the choices")
)

// Question describes a single-select list prompt.
type Question struct {
	Label   string
	Choices []string
	Default string
}

// Prompter asks the operator to pick one of a question's choices. Select
// blocks until an answer is chosen.
type Prompter interface {
	Select(q Question) (string, error)
}

// PromptUI renders questions with promptui.
type PromptUI struct {
	stdin  io.ReadCloser
	stdout io.WriteCloser
}

// NewPromptUI creates a PromptUI. Nil streams fall back to the process's
// stdin and stdout.
func NewPromptUI(stdin io.ReadCloser, stdout io.WriteCloser) *PromptUI {
	return &PromptUI{stdin: stdin, stdout: stdout}
}

// Select shows q as a list with the cursor on q.Default.
func (p *PromptUI) Select(q Question) (string, error) {
	pos, err := DefaultIndex(q)
	if err != nil {
		return "", err
	}

	sel := promptui.Select{
		Label:     q.Label,
		Items:     q.Choices,
		CursorPos: pos,
		HideHelp:  true,
		Stdin:     p.stdin,
		Stdout:    p.stdout,
	}

	_, answer, err := sel.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
			return "", fmt.Errorf("%w: %s", ErrAborted, q.Label)
		}
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return answer, nil
}

// DefaultIndex returns the position of q.Default in q.Choices. An empty
// default selects the first choice.
func DefaultIndex(q Question) (int, error) {
	if len(q.Choices) == 0 {
		return 0, errors.New("question has no choices")
	}
	if q.Default == "" {
		return 0, nil
	}
	idx := slices.Index(q.Choices, q.Default)
	if idx < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDefault, q.Default)
	}
	return idx, nil
}

var _ Prompter = (*PromptUI)(nil)
