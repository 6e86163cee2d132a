package dispatch

import (
	"bytes"
	"context"
	"strings"
	"sync"

	"github.com/oavp/oavp-cli/internal/prompt"
)

// fakePrompter records questions and answers with a fixed choice.
type fakePrompter struct {
	mu        sync.Mutex
	answer    string
	err       error
	questions []prompt.Question
}

func (p *fakePrompter) Select(q prompt.Question) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.questions = append(p.questions, q)
	if p.err != nil {
		return "", p.err
	}
	if p.answer == "" {
		return q.Default, nil
	}
	return p.answer, nil
}

func (p *fakePrompter) asked() []prompt.Question {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]prompt.Question(nil), p.questions...)
}

// countingHandler counts invocations and returns err.
type countingHandler struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (h *countingHandler) Handle(_ context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls++
	return h.err
}

func (h *countingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.calls
}

// lines splits captured console output into lines without the trailing newline.
func lines(buf *bytes.Buffer) []string {
	s := strings.TrimSuffix(buf.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
