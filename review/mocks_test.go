package review

import (
	"context"

	"github.com/jeremyhunt/empathetic-reviewer/openai"
)

// MockCompleter is a mock chat completion client for testing
type MockCompleter struct {
	CompleteFunc func(ctx context.Context, req openai.CompletionRequest) (string, error)
	Requests     []openai.CompletionRequest
}

// Complete implements the Completer interface
func (m *MockCompleter) Complete(ctx context.Context, req openai.CompletionRequest) (string, error) {
	m.Requests = append(m.Requests, req)
	return m.CompleteFunc(ctx, req)
}
