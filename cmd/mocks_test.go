package cmd

import (
	"context"
	"sync"

	"github.com/oavp/oavp-cli/internal/dispatch"
	"github.com/oavp/oavp-cli/internal/prompt"
)

// MockPrompter implements prompt.Prompter for testing.
type MockPrompter struct {
	mu         sync.Mutex
	SelectFunc func(prompt.Question) (string, error)
	Questions  []prompt.Question
}

func (m *MockPrompter) Select(q prompt.Question) (string, error) {
	m.mu.Lock()
	m.Questions = append(m.Questions, q)
	m.mu.Unlock()

	if m.SelectFunc != nil {
		return m.SelectFunc(q)
	}
	return q.Default, nil
}

// MockHandler implements dispatch.Handler for testing.
type MockHandler struct {
	mu         sync.Mutex
	HandleFunc func(context.Context) error
	Calls      int
}

func (m *MockHandler) Handle(ctx context.Context) error {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()

	if m.HandleFunc != nil {
		return m.HandleFunc(ctx)
	}
	return nil
}

var (
	_ prompt.Prompter  = (*MockPrompter)(nil)
	_ dispatch.Handler = (*MockHandler)(nil)
)
